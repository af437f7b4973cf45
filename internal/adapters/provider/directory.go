package provider

import "sort"

// Team is a directory entry.
type Team struct {
	ID           string `yaml:"id" json:"id"`
	Abbreviation string `yaml:"abbreviation" json:"abbreviation"`
	Name         string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Directory maps team ids to display labels. It is read-only after
// construction; a nil *Directory labels every team with its raw id.
type Directory struct {
	byID map[string]Team
}

// NewDirectory indexes teams by id. Later duplicates replace earlier ones.
func NewDirectory(teams []Team) *Directory {
	d := &Directory{byID: make(map[string]Team, len(teams))}
	for _, t := range teams {
		if t.ID == "" {
			continue
		}
		d.byID[t.ID] = t
	}
	return d
}

// Label returns the abbreviation for id, or id itself when unknown.
func (d *Directory) Label(id string) string {
	if d == nil {
		return id
	}
	if t, ok := d.byID[id]; ok && t.Abbreviation != "" {
		return t.Abbreviation
	}
	return id
}

// Name returns the full team name, falling back to Label.
func (d *Directory) Name(id string) string {
	if d != nil {
		if t, ok := d.byID[id]; ok && t.Name != "" {
			return t.Name
		}
	}
	return d.Label(id)
}

// Lookup returns the entry for id.
func (d *Directory) Lookup(id string) (Team, bool) {
	if d == nil {
		return Team{}, false
	}
	t, ok := d.byID[id]
	return t, ok
}

// Len returns the number of teams.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byID)
}

// Teams returns all entries ordered by id.
func (d *Directory) Teams() []Team {
	if d == nil {
		return nil
	}
	out := make([]Team, 0, len(d.byID))
	for _, t := range d.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// WithOverrides returns a copy whose abbreviations are replaced by
// overrides (team id -> label). Unknown ids are added.
func (d *Directory) WithOverrides(overrides map[string]string) *Directory {
	out := NewDirectory(d.Teams())
	for id, label := range overrides {
		t := out.byID[id]
		t.ID = id
		t.Abbreviation = label
		out.byID[id] = t
	}
	return out
}
