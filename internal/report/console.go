package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderConsole writes a colored summary table of pairs to w, one row per
// accepted clone pair plus a trailing summary line. colored controls
// whether ANSI styling is applied (disabled automatically when writing
// to a file rather than a terminal).
func RenderConsole(pairs []Pair, w io.Writer, colored bool) error {
	title := "Code Clones Detected"
	if colored {
		color.New(color.Bold).Fprintln(w, title)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	if len(pairs) == 0 {
		fmt.Fprintln(w, "No clones found.")
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			Footer: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.Off},
			},
		}),
	)

	table.Header([]string{"Location A", "Location B", "N-gram Sim", "LCS Sim"})
	for _, p := range pairs {
		lcs := "-"
		if p.HasLCS {
			lcs = fmt.Sprintf("%d%%", p.LCSSim)
		}
		table.Append([]string{
			location(p.Block1),
			location(p.Block2),
			fmt.Sprintf("%d%%", p.NGramSim),
			lcs,
		})
	}

	avg := averageSimilarity(pairs)
	table.Footer([]any{
		fmt.Sprintf("Total: %d", len(pairs)),
		"",
		fmt.Sprintf("Avg: %d%%", avg),
		"",
	})
	table.Render()
	fmt.Fprintln(w)

	return nil
}

func location(b Block) string {
	if b.FilePath == "" {
		return "?"
	}
	return fmt.Sprintf("%s:%d-%d", b.FilePath, b.StartLine, b.EndLine)
}

func averageSimilarity(pairs []Pair) int {
	if len(pairs) == 0 {
		return 0
	}
	total := 0
	for _, p := range pairs {
		total += p.NGramSim
	}
	return total / len(pairs)
}
