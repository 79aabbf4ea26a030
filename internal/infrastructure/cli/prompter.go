package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/ports"
)

// Prompter implements ConfirmationPrompter using stdin/stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Enabled indicates the prompter is interactive.
func (p *Prompter) Enabled() bool {
	return true
}

// Confirm asks the user a yes/no question, defaulting to no.
func (p *Prompter) Confirm(message string) (bool, error) {
	color.New(color.FgYellow).Fprintln(p.out, message)
	fmt.Fprint(p.out, "Continue? [y/N]: ")
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)

// SetupPrompter collects provider selection and an API key when no other
// configuration source resolves.
type SetupPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSetupPrompter constructs a setup prompter referencing stdio.
func NewSetupPrompter(in io.Reader, out io.Writer) *SetupPrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &SetupPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Enabled indicates the prompter is interactive.
func (p *SetupPrompter) Enabled() bool {
	return true
}

// SelectProvider asks the user to pick one of the supported backends.
// Invalid input falls back to the first supported provider.
func (p *SetupPrompter) SelectProvider() (domain.ProviderName, error) {
	color.New(color.FgCyan, color.Bold).Fprintln(p.out, "\nSelect your AI provider:")
	for i, provider := range domain.SupportedProviders {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, provider)
	}
	fmt.Fprintf(p.out, "\nEnter your choice (1-%d) [1]: ", len(domain.SupportedProviders))

	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	choice := strings.TrimSpace(line)
	for i, provider := range domain.SupportedProviders {
		if choice == fmt.Sprintf("%d", i+1) {
			return provider, nil
		}
	}
	return domain.SupportedProviders[0], nil
}

// APIKey asks the user for the provider's API key, rejecting empty input.
func (p *SetupPrompter) APIKey(provider domain.ProviderName) (string, error) {
	for {
		fmt.Fprintf(p.out, "\nEnter your %s API key: ", provider)
		line, err := p.in.ReadString('\n')
		if err != nil {
			return "", err
		}
		if key := strings.TrimSpace(line); key != "" {
			return key, nil
		}
		color.New(color.FgRed).Fprintln(p.out, "API key cannot be empty.")
	}
}

var _ ports.SetupPrompter = (*SetupPrompter)(nil)
