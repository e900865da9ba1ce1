package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

// Renderer produces help and version output for a [Node].
type Renderer interface {
	RenderHelp(w io.Writer, n *Node) error
	RenderVersion(w io.Writer, n *Node) error
}

const (
	DefaultSummaryWidth  = 32
	DefaultSummaryIndent = 4
	DefaultTitleIndent   = 2
)

// TextRenderer lays out help as a usage banner followed by titled sections.
// Section titles are bold when writing to a terminal.
type TextRenderer struct {
	TitleIndent   int
	SummaryWidth  int // SummaryWidth is the width of the item column, and half the width of wrapped text.
	SummaryIndent int
}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{
		TitleIndent:   DefaultTitleIndent,
		SummaryWidth:  DefaultSummaryWidth,
		SummaryIndent: DefaultSummaryIndent,
	}
}

// RenderVersion writes the program name and version, e.g. "convert 1.0.0".
func (r *TextRenderer) RenderVersion(w io.Writer, n *Node) error {
	_, err := fmt.Fprintf(w, "%s %s\n", n.Root().Name(), n.Version())
	return err
}

func (r *TextRenderer) RenderHelp(w io.Writer, n *Node) error {
	var (
		buf   strings.Builder
		title = lipgloss.NewRenderer(target(w)).NewStyle().Bold(true)
		width = r.textWidth(w)
	)
	buf.WriteString("Usage: " + strings.TrimSpace(n.Path()+" "+r.synopsis(n)) + "\n\n")

	section := func(name string, rows []string) {
		if len(rows) == 0 {
			return
		}
		buf.WriteString(strings.Repeat(" ", r.TitleIndent) + title.Render(name+":") + "\n")
		indent := strings.Repeat(" ", r.SummaryIndent)
		for _, row := range rows {
			buf.WriteString(strings.TrimRight(indent+row, " ") + "\n")
		}
		buf.WriteString("\n")
	}

	var opts, args, defaults, cmds []string
	for _, p := range n.Options() {
		spec := p.Spec()
		if len(p.Short()) == 0 {
			spec = "    " + spec
		}
		opts = append(opts, r.summarize(spec, p.Description(), r.SummaryWidth, r.SummaryWidth-1)...)
		if def := p.DefaultString(); len(def) > 0 {
			defaults = append(defaults, def)
		}
	}
	for _, p := range n.Arguments() {
		args = append(args, r.summarize(p.DisplayName(), p.Description(), r.SummaryWidth, r.SummaryWidth-1)...)
	}
	for _, key := range n.ListCommands() {
		child, _ := n.Subcommand(key)
		item := strings.Join(append([]string{key}, n.commands.Aliases(key)...), ", ")
		cmds = append(cmds, r.summarize(item, child.Summary(), r.SummaryWidth, r.SummaryWidth*3/2)...)
	}
	section("Options", opts)
	section("Arguments", args)
	section("Summary", wrap(n.Summary(), width))
	section("Description", wrap(n.Description(), width))
	section("Defaults", defaults)
	section("Commands", cmds)

	_, err := io.WriteString(w, buf.String())
	return err
}

func (r *TextRenderer) synopsis(n *Node) string {
	if len(n.Synopsis()) > 0 {
		return n.Synopsis()
	}
	if n.HasCommands() {
		return "[options] command [command options] [arguments ...]"
	}
	var parts []string
	if len(n.Options()) > 0 {
		parts = append(parts, "[options]")
	}
	for _, p := range n.Arguments() {
		part := p.DisplayName()
		if !p.Required() {
			part = "[" + part + "]"
		}
		if p.Multiple() {
			part += "[, " + p.DisplayName() + "]*"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

// textWidth is twice the summary width, narrowed to fit the terminal.
func (r *TextRenderer) textWidth(w io.Writer) int {
	width := r.SummaryWidth * 2
	if f, ok := target(w).(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols-r.SummaryIndent < width {
			width = max(cols-r.SummaryIndent, r.SummaryWidth)
		}
	}
	return width
}

// summarize lays out an item and its summary in two columns, wrapping either as needed.
func (r *TextRenderer) summarize(item, summary string, width, maxWidth int) []string {
	items := wrap(item, maxWidth)
	summaries := wrap(summary, maxWidth)
	rows := make([]string, max(len(items), len(summaries)))
	for i := range rows {
		var left, right string
		if i < len(items) {
			left = items[i]
		}
		if i < len(summaries) {
			right = summaries[i]
		}
		pad := max(width-ansi.StringWidth(left), 0)
		rows[i] = left + strings.Repeat(" ", pad) + " " + right
	}
	return rows
}

func wrap(text string, width int) []string {
	if len(strings.TrimSpace(text)) == 0 {
		return nil
	}
	if ansi.StringWidth(text) <= width && !strings.Contains(text, "\n") {
		return []string{text}
	}
	lines := strings.Split(ansi.Wordwrap(text, width, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// target unwraps a [Printer] to find where output is really going.
func target(w io.Writer) io.Writer {
	if p, ok := w.(*Printer); ok {
		return p.Writer()
	}
	return w
}
