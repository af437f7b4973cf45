package rating

import "github.com/okian/slate/internal/domain/model"

// Table is an immutable ranked set of power ratings with lookup by team id.
type Table struct {
	ordered []model.PowerRating
	byTeam  map[string]int
}

func newTable(ordered []model.PowerRating) *Table {
	t := &Table{
		ordered: ordered,
		byTeam:  make(map[string]int, len(ordered)),
	}
	for i, r := range ordered {
		t.byTeam[r.TeamID] = i
	}
	return t
}

// NewTable builds a table from ratings that are already ranked.
func NewTable(ordered []model.PowerRating) *Table {
	return newTable(append([]model.PowerRating(nil), ordered...))
}

// Len returns the number of rated teams.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ordered)
}

// Ratings returns a copy of the ratings in rank order.
func (t *Table) Ratings() []model.PowerRating {
	if t == nil {
		return nil
	}
	return append([]model.PowerRating(nil), t.ordered...)
}

// Lookup returns the rating for teamID.
func (t *Table) Lookup(teamID string) (model.PowerRating, bool) {
	if t == nil {
		return model.PowerRating{}, false
	}
	i, ok := t.byTeam[teamID]
	if !ok {
		return model.PowerRating{}, false
	}
	return t.ordered[i], true
}

// UnrankedRank is the worst-case rank given to teams missing from the table.
func (t *Table) UnrankedRank() int {
	return t.Len() + 1
}
