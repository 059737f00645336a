package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/mrlokans/readkeeper/internal/entities"
)

func parseID(field, raw string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || n == 0 {
		return 0, &entities.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%q is not a positive whole number", raw),
		}
	}
	return uint(n), nil
}

func parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &entities.ValidationError{
			Field:  "year",
			Reason: fmt.Sprintf("%q is not a whole number", raw),
		}
	}
	return year, nil
}

// parseIDList parses "1, 2,3" into unique ids. Blank input is an empty list.
func parseIDList(field, raw string) ([]uint, error) {
	parts := lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := parseID(field, part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return lo.Uniq(ids), nil
}
