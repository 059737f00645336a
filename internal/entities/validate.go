package entities

import "strings"

// ValidateName trims name and rejects it if nothing is left.
func ValidateName(field, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &ValidationError{Field: field, Reason: "must not be blank"}
	}
	return trimmed, nil
}
