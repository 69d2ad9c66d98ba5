package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted output to a writer.
// Drafts and results go to the main writer; status hints, warnings, and
// errors go to the error writer so piped output stays clean.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
}

// NewPrinter creates a new Printer.
// If isTTY is true, colors will be enabled.
func NewPrinter(writer io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Muted:   lipgloss.NewStyle().Faint(true),
	}

	// Disable colors if not a TTY
	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.Bold = lipgloss.NewStyle()
		styles.Dim = lipgloss.NewStyle()
		styles.Title = lipgloss.NewStyle()
		styles.Muted = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors, warnings, and status hints.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsTTY returns true if the printer output is a TTY.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println formats and writes to the output with a newline.
func (p *Printer) Println(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format+"\n", args...))
}

// Success writes a styled success message.
func (p *Printer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
}

// Error writes a styled error message to the error writer.
// Tool errors include the failing command and its stderr.
func (p *Printer) Error(err error) {
	scribeErr := &Error{}
	if !errors.As(err, &scribeErr) {
		scribeErr = NewUnexpectedError(err)
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), scribeErr.Message))
	if scribeErr.Command != "" {
		mustWrite(fmt.Fprintf(p.errW, "  %s\n", p.styles.Dim.Render(scribeErr.Command)))
	}
	if scribeErr.Stderr != "" {
		mustWrite(fmt.Fprintf(p.errW, "%s\n", p.styles.Dim.Render(scribeErr.Stderr)))
	}
}

// Warn writes a styled warning to the error writer.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Stderr writes a status hint to the error writer.
func (p *Printer) Stderr(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.errW, format, args...))
}

// Section renders a section header with underline.
// Adds a blank line before the header.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	underline := strings.Repeat("─", len(title))
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(underline)))
}

// Rule renders a horizontal rule spanning the given width.
func (p *Printer) Rule(width int) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(strings.Repeat("═", width))))
}

// KeyValue renders a key-value pair.
// Format: "Key: Value"
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Bold.Render(key+":"), value))
}

// mustWrite panics on write failure. Writes to stdout/stderr failing means
// the process environment is broken beyond recovery.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
