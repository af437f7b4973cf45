package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/okian/slate/internal/domain/model"
)

type consoleStyles struct {
	header lipgloss.Style
	dim    lipgloss.Style
	tiers  []lipgloss.Style // by tier position, best first
}

func newConsoleStyles(re *lipgloss.Renderer) consoleStyles {
	return consoleStyles{
		header: re.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		dim:    re.NewStyle().Foreground(lipgloss.Color("8")),
		tiers: []lipgloss.Style{
			re.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
			re.NewStyle().Foreground(lipgloss.Color("12")),
			re.NewStyle().Foreground(lipgloss.Color("3")),
		},
	}
}

func (s consoleStyles) tier(pos int) lipgloss.Style {
	if pos < 0 || pos >= len(s.tiers) {
		return s.dim
	}
	return s.tiers[pos]
}

// Console prints the top rankings and matchups. A top below 1 prints
// everything. Colors are dropped when w is not a terminal.
func Console(w io.Writer, r *Report, top int) error {
	st := newConsoleStyles(lipgloss.NewRenderer(w))
	var b strings.Builder

	title := strings.ToUpper(r.Meta.Sport) + " power rankings"
	if r.Meta.Season != "" {
		title += " (" + r.Meta.Season + ")"
	}
	b.WriteString(st.header.Render(title) + "\n")
	if len(r.Rankings) == 0 {
		b.WriteString(st.dim.Render("  no completed games") + "\n")
	}
	for _, e := range limit(r.Rankings, top) {
		fmt.Fprintf(&b, "  %3d. %-6s %6.1f  %s\n", e.Rank, e.Team, e.Power, st.dim.Render(record(e)))
	}

	b.WriteString("\n" + st.header.Render("Top matchups") + "\n")
	if len(r.Matchups) == 0 {
		b.WriteString(st.dim.Render("  no upcoming games") + "\n")
	}
	for _, m := range limit(r.Matchups, top) {
		when := m.Date.In(r.Meta.Location).Format("Mon Jan 2 3:04 PM")
		teams := fmt.Sprintf("%s @ %s", m.Away.Team, m.Home.Team)
		tier := st.tier(r.Meta.Tiers.Rank(model.Tier(m.Tier))).Render(m.Tier)
		fmt.Fprintf(&b, "  %3d. %-12s %-18s %5.1f  %s\n", m.Rank, teams, when, m.Matchup, tier)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func limit[T any](rows []T, n int) []T {
	if n < 1 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
