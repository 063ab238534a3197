// Package report renders the outcome of a planning run: a summary table of
// outdated formulae, the batch sequence, and suggested update commands for
// the first batch.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/tapplan/internal/core/ports"
)

var tableHeaders = []string{"Formula", "Current version", "New version", "Outdated dependencies"}

// Generator writes human-readable planning reports.
type Generator struct {
	out    io.Writer
	logger ports.Logger
}

// New creates a Generator writing to out.
func New(out io.Writer, logger ports.Logger) *Generator {
	return &Generator{out: out, logger: logger}
}

// Render writes the full report. The working set provides the formula file
// locations needed for the first-batch command suggestions. Suggested
// commands are advisory; the new download URL is never verified against the
// network.
func (g *Generator) Render(
	ws *domain.WorkingSet,
	items []domain.OutdatedFormula,
	batches []domain.Batch,
) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(g.out, "Nothing to update.")
		return err
	}

	var s strings.Builder
	s.WriteString(renderTable(items))
	s.WriteString("\n")

	for _, batch := range batches {
		names := make([]string, 0, len(batch.Formulae))
		for _, ref := range batch.Formulae {
			names = append(names, ref.String())
		}
		s.WriteString(fmt.Sprintf("Batch %d: %s\n", batch.Index, strings.Join(names, " ")))
	}

	if len(batches) > 0 {
		s.WriteString("\nSuggested commands for batch 1:\n")
		g.suggestCommands(&s, ws, items, batches[0])
		s.WriteString("\nVerify each new download URL before opening a pull request.\n")
	}

	_, err := io.WriteString(g.out, s.String())
	return err
}

func (g *Generator) suggestCommands(
	s *strings.Builder,
	ws *domain.WorkingSet,
	items []domain.OutdatedFormula,
	first domain.Batch,
) {
	versions := make(map[domain.FormulaRef]domain.VersionPair, len(items))
	for _, item := range items {
		versions[item.Ref] = item.Versions
	}

	for _, ref := range first.Formulae {
		pair := versions[ref]

		path, ok := ws.Path(ref)
		if !ok {
			g.logger.Warn(fmt.Sprintf("no formula file recorded for %s", ref))
			continue
		}
		source, err := os.ReadFile(path) //nolint:gosec // path was resolved by the package manager
		if err != nil {
			g.logger.Warn(fmt.Sprintf("cannot read formula file for %s: %v", ref, err))
			continue
		}

		url, found := SuggestURL(string(source), pair.Old, pair.New)
		if !found {
			g.logger.Warn(fmt.Sprintf(
				"no download URL containing version %s found in %s", pair.Old, path,
			))
			continue
		}
		s.WriteString(fmt.Sprintf("  brew bump-formula-pr --no-browse --url=%s %s\n", url, ref))
	}
}

// renderTable lays the summary out in fixed columns sized to their widest
// cell, two spaces apart.
func renderTable(items []domain.OutdatedFormula) string {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, tableHeaders)
	for _, item := range items {
		rows = append(rows, []string{
			item.Ref.String(),
			item.Versions.Old,
			item.Versions.New,
			renderDeps(item.OutdatedDeps),
		})
	}

	widths := make([]int, len(tableHeaders))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var s strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = lipgloss.NewStyle().Width(widths[i] + 2).Render(cell)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		s.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return s.String()
}

func renderDeps(deps []domain.FormulaRef) string {
	if len(deps) == 0 {
		return "-"
	}
	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		names = append(names, dep.String())
	}
	return strings.Join(names, ", ")
}
