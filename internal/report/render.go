package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/slate/internal/domain/rating"
	"github.com/okian/slate/internal/domain/types"
)

// Document file names.
const (
	FileUpcoming        = "upcoming_matchups.txt"
	FilePowerRankings   = "power_rankings.txt"
	FileMatchupRankings = "matchup_rankings.txt"
)

const (
	ruleWidth  = 80
	dayLayout  = "Monday, January 2, 2006"
	timeLayout = "3:04 PM MST"
)

var (
	doubleRule = strings.Repeat("=", ruleWidth)
	singleRule = strings.Repeat("-", ruleWidth)
)

// Upcoming renders the games of the window grouped by date.
func (r *Report) Upcoming(w io.Writer) error {
	var b strings.Builder
	r.header(&b, "UPCOMING MATCHUPS")
	fmt.Fprintf(&b, "Window: next %d days\n", r.Meta.DaysAhead)
	b.WriteString(doubleRule + "\n\n")

	if len(r.Days) == 0 {
		b.WriteString("No games scheduled in the window.\n")
	}
	for _, day := range r.Days {
		b.WriteString(day.Date.Format(dayLayout) + "\n")
		b.WriteString(strings.Repeat("-", len(dayLayout)) + "\n")
		for _, m := range day.Matchups {
			fmt.Fprintf(&b, "  %-13s %s @ %s\n", m.Date.In(r.Meta.Location).Format(timeLayout), m.Away.Team, m.Home.Team)
			fmt.Fprintf(&b, "    Status: %s\n", statusOrDefault(m.Status))
			fmt.Fprintf(&b, "    Tier: %s (%.1f)\n", m.Tier, m.Matchup)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// PowerRankings renders the power table with the methodology behind it.
func (r *Report) PowerRankings(w io.Writer) error {
	var b strings.Builder
	r.header(&b, "TEAM POWER RANKINGS")
	b.WriteString(doubleRule + "\n\n")

	wt := r.Meta.Weights
	b.WriteString("Ranking Methodology:\n")
	fmt.Fprintf(&b, "  - Win Percentage (%s)\n", percent(wt.WinRate))
	fmt.Fprintf(&b, "  - %s (%s)\n", differentialLabel(r.Meta.DifferentialMode), percent(wt.Differential))
	fmt.Fprintf(&b, "  - Offensive Efficiency (%s)\n", percent(wt.Offense))
	fmt.Fprintf(&b, "  - Defensive Efficiency (%s)\n", percent(wt.Defense))
	b.WriteString("  - Power Score: 0-100 scale (higher is better)\n\n")

	if len(r.Rankings) == 0 {
		b.WriteString("No completed games; power ratings unavailable.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(singleRule + "\n")
	fmt.Fprintf(&b, "%-6s%-8s%-9s%-10s%-8s%-8s%-8s%-8s%-8s%-8s%s\n",
		"Rank", "Team", "Power", "Record", "PPG", "PAPG", "Diff", "Win%", "DiffC", "Off", "Def")
	b.WriteString(singleRule + "\n")
	for _, e := range r.Rankings {
		fmt.Fprintf(&b, "%-6d%-8s%-9.1f%-10s%-8.1f%-8.1f%-8s%-8.3f%-8.3f%-8.3f%.3f\n",
			e.Rank, e.Team, e.Power, record(e), e.PPG, e.PAPG,
			fmt.Sprintf("%+.1f", e.PPG-e.PAPG),
			e.WinRate, e.Differential, e.Offense, e.Defense)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// MatchupRankings renders every scored game in matchup order.
func (r *Report) MatchupRankings(w io.Writer) error {
	var b strings.Builder
	r.header(&b, "MATCHUP RANKINGS")
	b.WriteString(doubleRule + "\n\n")

	b.WriteString("Scoring Methodology:\n")
	b.WriteString("  - Quality Score: average power rating of both teams (0-100)\n")
	b.WriteString("  - Competitiveness Score: closeness of the two power ratings (0-100)\n")
	fmt.Fprintf(&b, "  - Matchup Score: %s quality + %s competitiveness (0-100)\n",
		percent(r.Meta.QualityWeight), percent(r.Meta.CompetitiveWeight))
	if line := tierLine(r.Meta); line != "" {
		fmt.Fprintf(&b, "  - Tiers: %s\n", line)
	}
	b.WriteString("\n" + doubleRule + "\n\n")

	if len(r.Matchups) == 0 {
		b.WriteString("No upcoming games in the window.\n")
	}
	for _, m := range r.Matchups {
		local := m.Date.In(r.Meta.Location)
		fmt.Fprintf(&b, "RANK %d: MATCHUP SCORE = %.1f/100 [%s]\n", m.Rank, m.Matchup, m.Tier)
		b.WriteString(singleRule + "\n")
		fmt.Fprintf(&b, "Date: %s\n", local.Format(dayLayout))
		fmt.Fprintf(&b, "Time: %s\n", local.Format(timeLayout))
		fmt.Fprintf(&b, "Matchup: %s @ %s\n\n", m.Away.Team, m.Home.Team)
		writeSide(&b, "Away", m.Away)
		writeSide(&b, "Home", m.Home)
		b.WriteString("  Scores:\n")
		fmt.Fprintf(&b, "    - Combined Quality Score: %.1f/100\n", m.Quality)
		fmt.Fprintf(&b, "    - Competitiveness Score: %.1f/100\n", m.Competitive)
		fmt.Fprintf(&b, "    - Overall Matchup Score: %.1f/100\n\n", m.Matchup)
		b.WriteString(doubleRule + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) header(b *strings.Builder, title string) {
	b.WriteString(doubleRule + "\n")
	fmt.Fprintf(b, "%s %s\n", strings.ToUpper(r.Meta.Sport), title)
	if r.Meta.Season != "" {
		fmt.Fprintf(b, "Season: %s\n", r.Meta.Season)
	}
	fmt.Fprintf(b, "Analysis Date: %s\n", r.Meta.GeneratedAt.In(r.Meta.Location).Format("2006-01-02"))
}

func writeSide(b *strings.Builder, role string, s types.SideEntry) {
	fmt.Fprintf(b, "  %s Team: %s\n", role, s.Team)
	if s.Ranked {
		fmt.Fprintf(b, "    - Power Rank: #%d (Score: %.1f)\n\n", s.Rank, s.Power)
		return
	}
	fmt.Fprintf(b, "    - Unranked: #%d (neutral score %.1f)\n\n", s.Rank, s.Power)
}

func tierLine(m Meta) string {
	if m.Tiers.Floor == "" {
		return ""
	}
	parts := make([]string, 0, len(m.Tiers.Bands)+1)
	for _, band := range m.Tiers.Bands {
		parts = append(parts, fmt.Sprintf("%s >= %s", band.Tier, strconv.FormatFloat(band.Min, 'f', -1, 64)))
	}
	parts = append(parts, "otherwise "+string(m.Tiers.Floor))
	return strings.Join(parts, ", ")
}

func differentialLabel(mode string) string {
	switch mode {
	case rating.ModePythagorean:
		return "Pythagorean Expectation"
	case rating.ModeNetPoints:
		return "Net Points per Game"
	default:
		return "Point Differential"
	}
}

func percent(w float64) string {
	return strconv.FormatFloat(types.Round(w*100, 1), 'f', -1, 64) + "%"
}

func record(e types.RankingEntry) string {
	if e.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", e.Wins, e.Losses, e.Ties)
	}
	return fmt.Sprintf("%d-%d", e.Wins, e.Losses)
}

func statusOrDefault(s string) string {
	if s == "" {
		return "Scheduled"
	}
	return s
}
