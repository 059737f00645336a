package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// prompter reads answers line by line from the command's input. Create one
// per command run; it buffers.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
}

// ask prints "label: " and returns the trimmed answer.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", fmt.Errorf("no answer for %q", label)
		}
	}
	return strings.TrimSpace(line), nil
}

// flagOrAsk returns the flag's value when it was given on the command line,
// otherwise prompts for it.
func (p *prompter) flagOrAsk(cmd *cobra.Command, flag, label string) (string, error) {
	if cmd.Flags().Changed(flag) {
		return cmd.Flags().GetString(flag)
	}
	return p.ask(label)
}

// idInput takes an id from the first positional argument, the --id flag, or
// a prompt, in that order.
func (p *prompter) idInput(cmd *cobra.Command, args []string, flag, label string) (uint, error) {
	if len(args) > 0 {
		return parseID(flag, args[0])
	}
	raw, err := p.flagOrAsk(cmd, flag, label)
	if err != nil {
		return 0, err
	}
	return parseID(flag, raw)
}
