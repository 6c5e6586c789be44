package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benedoc-inc/pdfsplit/core/manipulate"
	"github.com/benedoc-inc/pdfsplit/core/plan"
	"github.com/benedoc-inc/pdfsplit/types"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// nameStyle for output file names
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	// boxStyle for summaries
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// rangeHint is shown after any range specification error
const rangeHint = `Ranges are comma separated 1-based pages or start-end spans, e.g. "1-3,5,7-9"`

// FormatError renders a command failure, with a syntax hint for range errors
func FormatError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error:"), err)
	if types.IsRangeError(err) {
		fmt.Fprintln(w, dimStyle.Render(rangeHint))
	}
}

// FormatPlan renders the outputs of a split plan
func FormatPlan(w io.Writer, p *plan.SplitPlan) {
	header := fmt.Sprintf("%s %s  %s %s  %s %d",
		dimStyle.Render("Mode:"), titleStyle.Render(p.Mode.Name()),
		dimStyle.Render("Base:"), p.BaseName,
		dimStyle.Render("Pages:"), p.TotalPages,
	)

	lines := []string{header}
	for _, item := range p.Items {
		lines = append(lines, fmt.Sprintf("%s  %s %s",
			nameStyle.Render(item.OutputName),
			dimStyle.Render("pages"), item.Label,
		))
	}
	lines = append(lines, dimStyle.Render(fmt.Sprintf("%d outputs, %d pages", p.Len(), p.PageCount())))

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// FormatResult renders the written outputs of a split or merge
func FormatResult(w io.Writer, res *manipulate.Result, paths []string) {
	lines := make([]string, 0, res.Len()+1)
	for _, o := range res.Outputs() {
		lines = append(lines, fmt.Sprintf("%s %s  %s %s  %s",
			successStyle.Render("✓"),
			nameStyle.Render(o.Name),
			dimStyle.Render("pages"), o.Label,
			dimStyle.Render(formatBytes(int64(len(o.Data)))),
		))
	}
	lines = append(lines, dimStyle.Render(fmt.Sprintf("%d files written, %s total", len(paths), formatBytes(res.Size()))))

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// FormatWarnings renders non-fatal issues, one per line
func FormatWarnings(w io.Writer, warnings []*types.Warning) {
	hint := false
	for _, warn := range warnings {
		hint = hint || types.IsRangeError(warn.Cause)
		if group, ok := warn.Context["group"]; ok {
			fmt.Fprintf(w, "%s group %v skipped: %s\n", warnStyle.Render("!"), group, warn.Message)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("!"), warn.Message)
	}
	if hint {
		fmt.Fprintln(w, dimStyle.Render(rangeHint))
	}
}

// FormatInfo renders one line per document
func FormatInfo(w io.Writer, infos []manipulate.DocumentInfo) {
	for _, info := range infos {
		fmt.Fprintf(w, "%s  %s %d  %s %s\n",
			nameStyle.Render(info.Name),
			dimStyle.Render("pages"), info.PageCount,
			dimStyle.Render("size"), info.Size(),
		)
	}
}

// FormatProgress renders a single progress line
func FormatProgress(w io.Writer, p manipulate.Progress) {
	fmt.Fprintf(w, "%s %s\n",
		dimStyle.Render(fmt.Sprintf("[%d/%d]", p.Done, p.Total)),
		p.Item,
	)
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
