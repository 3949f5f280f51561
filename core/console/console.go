package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Severity markers. Informational lines use Line with a topical emoji.
const (
	MarkSuccess = "✅"
	MarkWarning = "⚠️ "
	MarkError   = "❌"
)

// Printer writes marked lines to an io.Writer.
// Write errors are ignored: there is nowhere else to report them.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Title prints a bold heading followed by an underline of matching width.
func (p *Printer) Title(mark, text string) {
	heading := mark + " " + text
	p.println(p.title.Render(heading))
	p.println(strings.Repeat("=", lipgloss.Width(text)+lipgloss.Width(mark)+1))
}

// Line prints text behind an arbitrary marker, unstyled.
func (p *Printer) Line(mark, text string) {
	p.println(mark + " " + text)
}

// Heading prints a bold line behind an arbitrary marker.
func (p *Printer) Heading(mark, text string) {
	p.println(p.title.Render(mark + " " + text))
}

// Success prints a success line.
func (p *Printer) Success(text string) {
	p.println(p.success.Render(MarkSuccess + " " + text))
}

// Warn prints a warning line.
func (p *Printer) Warn(text string) {
	p.println(p.warning.Render(MarkWarning + " " + text))
}

// Error prints an error line.
func (p *Printer) Error(text string) {
	p.println(p.failure.Render(MarkError + " " + text))
}

// Detail prints an indented continuation line for the previous message.
func (p *Printer) Detail(text string) {
	p.println("   " + text)
}

// Plain prints text as is.
func (p *Printer) Plain(text string) {
	p.println(text)
}

// Steps prints a numbered list.
func (p *Printer) Steps(steps []string) {
	for i, s := range steps {
		p.println(fmt.Sprintf("%d. %s", i+1, s))
	}
}

// Bullets prints an indented dash list.
func (p *Printer) Bullets(items []string) {
	for _, s := range items {
		p.println("   - " + s)
	}
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.println("")
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}
