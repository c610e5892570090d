// Package ui prints the session's status panels.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const clearSequence = "\x1b[2J\x1b[0f"

// Printer writes prefixed, colored status lines. Colors are dropped when the
// writer is not a terminal.
type Printer struct {
	out io.Writer

	banner  lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
	warn    lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style
	bar     lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		banner:  r.NewStyle().Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0")),
		title:   r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:     r.NewStyle().Faint(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		bar:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Clear wipes the terminal.
func (p *Printer) Clear() {
	fmt.Fprintln(p.out, clearSequence)
}

// Intro prints the opening banner.
func (p *Printer) Intro(title string) {
	fmt.Fprintf(p.out, "%s  %s\n", p.bar.Render("┌"), p.banner.Render(" "+title+" "))
}

// Section prints a titled block; every content line is dimmed.
func (p *Printer) Section(title, content string) {
	p.line("│", p.title.Render(title))
	for _, l := range strings.Split(content, "\n") {
		p.line("│", p.dim.Render(l))
	}
}

func (p *Printer) Message(msg string) {
	p.line("│", msg)
}

func (p *Printer) Warn(msg string) {
	p.line(p.warn.Render("▲"), p.warn.Render(msg))
}

func (p *Printer) Error(msg string) {
	p.line(p.failure.Render("■"), p.failure.Render(msg))
}

// ErrorDetail prints a red line without the error marker.
func (p *Printer) ErrorDetail(msg string) {
	p.line("│", p.failure.Render(msg))
}

func (p *Printer) Success(msg string) {
	p.line(p.success.Render("◆"), p.success.Render(msg))
}

// Dim prints lines without styling beyond faint text.
func (p *Printer) Dim(lines ...string) {
	for _, l := range lines {
		p.line("│", p.dim.Render(l))
	}
}

// Outro closes the output with a final message.
func (p *Printer) Outro(msg string) {
	fmt.Fprintf(p.out, "%s  %s\n", p.bar.Render("└"), msg)
}

// OutroSuccess closes with a green message.
func (p *Printer) OutroSuccess(msg string) {
	p.Outro(p.success.Render(msg))
}

// OutroFailure closes with a red message.
func (p *Printer) OutroFailure(msg string) {
	p.Outro(p.failure.Render(msg))
}

// Cancel closes the output after a user abort; it is not styled as an error.
func (p *Printer) Cancel(msg string) {
	p.Outro(p.dim.Render(msg))
}

func (p *Printer) line(marker, text string) {
	fmt.Fprintf(p.out, "%s  %s\n", marker, text)
}
