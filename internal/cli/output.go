package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

var (
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// styles renders for one writer; colours are dropped when it is not a terminal.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// printer writes styled lines to one output stream.
type printer struct {
	w  io.Writer
	st styles
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, st: newStyles(w)}
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) title(text string) {
	_, _ = fmt.Fprintln(p.w, p.st.title.Render(text))
}

func (p *printer) success(text string) {
	_, _ = fmt.Fprintln(p.w, p.st.success.Render(text))
}

func (p *printer) failure(text string) {
	_, _ = fmt.Fprintln(p.w, p.st.failure.Render(text))
}

func (p *printer) muted(text string) {
	_, _ = fmt.Fprintln(p.w, p.st.muted.Render(text))
}

func (p *printer) table(s string) {
	_, _ = io.WriteString(p.w, s)
}

// renderTable lays out rows under header, with an optional footer.
func renderTable(header []string, rows [][]string, footer []string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	if len(footer) > 0 {
		table.SetFooter(footer)
	}
	table.Render()

	return buf.String()
}
