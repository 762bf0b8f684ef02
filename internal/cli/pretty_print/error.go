package pretty_print

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	humane "github.com/sierrasoftworks/humane-errors-go"
)

// renderError builds the CLI representation of an error. Humane errors get
// their advice and cause chain rendered; anything else is a single line.
func renderError(err error) string {
	var he humane.Error
	if !errors.As(err, &he) {
		return render(levelStyles[ErrLvl], "✗ "+err.Error())
	}

	var causes []string
	advice := make([]string, 0)
	cur := error(he)
	for cur != nil {
		causes = append(causes, cur.Error())

		if adv, ok := cur.(interface{ Advice() []string }); ok {
			advice = append(adv.Advice(), advice...)
		}

		cur = nextInChain(cur)
	}

	section := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	bullet := render(lipgloss.NewStyle().Foreground(lipgloss.Color("12")), "•")
	code := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(render(levelStyles[ErrLvl], "✗ "+he.Error()))
	b.WriteString("\n")

	if len(advice) > 0 {
		b.WriteString("\n")
		b.WriteString(render(section, "What you can do:") + "\n")
		for _, tip := range advice {
			b.WriteString("  " + bullet + " " + tip + "\n")
		}
	}

	if len(causes) > 1 {
		b.WriteString("\n")
		b.WriteString(render(section, "Root causes:") + "\n")
		for _, c := range causes[1:] {
			b.WriteString("  " + bullet + " " + render(code, c) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// nextInChain follows Unwrap when available and falls back to Cause, which
// humane errors expose.
func nextInChain(err error) error {
	if next := errors.Unwrap(err); next != nil {
		return next
	}
	if c, ok := err.(interface{ Cause() error }); ok {
		return c.Cause()
	}
	return nil
}
