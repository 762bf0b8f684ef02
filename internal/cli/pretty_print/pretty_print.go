// Package pretty_print renders the installer's step output: leveled,
// icon-prefixed status lines with optional indented context, styled with
// lipgloss when stdout is a terminal.
package pretty_print

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// PrintLevel classifies a status line.
type PrintLevel int

const (
	OkLvl PrintLevel = iota
	InfoLvl
	WarnLvl
	ErrLvl
	DebugLvl
)

var levelIcons = map[PrintLevel]string{
	OkLvl:    "✓",
	InfoLvl:  "ℹ",
	WarnLvl:  "!",
	ErrLvl:   "✗",
	DebugLvl: "D",
}

var levelStyles = map[PrintLevel]lipgloss.Style{
	OkLvl:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	InfoLvl:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	WarnLvl:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ErrLvl:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	DebugLvl: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

var contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func colorEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return IsTerminal()
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

// Format renders a single status line without printing it. Context lines are
// indented underneath the message.
func Format(lvl PrintLevel, msg string, context ...string) string {
	return FormatWithOptions(lvl, msg, context)
}

// FormatWithOptions renders a status line honoring the given options.
func FormatWithOptions(lvl PrintLevel, msg string, context []string, opts ...Option) string {
	options := defaultOptions(lvl)
	for _, opt := range opts {
		opt(options)
	}

	var b strings.Builder
	if options.icon != "" {
		b.WriteString(render(levelStyles[lvl], options.icon))
		b.WriteString(" ")
	}
	b.WriteString(msg)

	for _, line := range context {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", options.indent))
		b.WriteString(render(contextStyle, line))
	}

	if !options.noNewline {
		b.WriteString("\n")
	}
	return b.String()
}

func printLine(lvl PrintLevel, msg string, context []string, opts ...Option) {
	out := os.Stdout
	if lvl == ErrLvl {
		out = os.Stderr
	}
	_, _ = fmt.Fprint(out, FormatWithOptions(lvl, msg, context, opts...))
}

// PrintOk prints a success line with optional context.
func PrintOk(msg string, context ...string) {
	printLine(OkLvl, msg, context)
}

// PrintInfo prints an informational line with optional context.
func PrintInfo(msg string, context ...string) {
	printLine(InfoLvl, msg, context)
}

// PrintInfoIcon prints an informational line with a custom icon.
func PrintInfoIcon(icon, msg string, context ...string) {
	printLine(InfoLvl, msg, context, WithIcon(icon))
}

// PrintWarn prints a warning line with optional context.
func PrintWarn(msg string, context ...string) {
	printLine(WarnLvl, msg, context)
}

// PrintErrorMessage prints an error line to stderr with optional context.
func PrintErrorMessage(msg string, context ...string) {
	printLine(ErrLvl, msg, context)
}

// PrintError renders err to stderr, using humane-errors formatting (message,
// advice, cause chain) where available.
func PrintError(err error) {
	_, _ = fmt.Fprintln(os.Stderr, renderError(err))
}

type printOptions struct {
	icon      string
	indent    int
	noNewline bool
}

// Option adjusts how a single line is formatted.
type Option func(*printOptions)

func defaultOptions(lvl PrintLevel) *printOptions {
	return &printOptions{
		icon:   levelIcons[lvl],
		indent: 4,
	}
}

// WithIcon overrides the level's default icon.
func WithIcon(icon string) Option {
	return func(o *printOptions) {
		o.icon = icon
	}
}

// WithoutNewline drops the trailing newline.
func WithoutNewline() Option {
	return func(o *printOptions) {
		o.noNewline = true
	}
}
