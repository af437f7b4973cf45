package provider

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/slate/internal/domain/model"
)

// Fixture is the on-disk league format read by File and written by the
// fixture generator.
type Fixture struct {
	Sport string        `yaml:"sport"`
	Teams []Team        `yaml:"teams"`
	Games []FixtureGame `yaml:"games"`
}

// FixtureGame is one game row. Scores are omitted for games not yet played.
type FixtureGame struct {
	ID        string    `yaml:"id"`
	Date      time.Time `yaml:"date"`
	Away      string    `yaml:"away"`
	Home      string    `yaml:"home"`
	AwayScore *int      `yaml:"away_score,omitempty"`
	HomeScore *int      `yaml:"home_score,omitempty"`
	Status    string    `yaml:"status,omitempty"`
	Week      int       `yaml:"week,omitempty"`
}

// DecodeFixture reads a YAML fixture, rejecting unknown fields. An empty
// document yields an empty fixture.
func DecodeFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrFixture, err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// Encode writes the fixture as YAML.
func (f *Fixture) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	return enc.Close()
}

// Validate checks that every game has an id, a date and both teams.
func (f *Fixture) Validate() error {
	for i, g := range f.Games {
		switch {
		case g.ID == "":
			return fmt.Errorf("%w: game %d has no id", ErrFixture, i)
		case g.Date.IsZero():
			return fmt.Errorf("%w: game %q has no date", ErrFixture, g.ID)
		case g.Away == "" || g.Home == "":
			return fmt.Errorf("%w: game %q is missing a team", ErrFixture, g.ID)
		}
	}
	return nil
}

// Game converts the row to a domain game.
func (g FixtureGame) Game() model.Game {
	return model.Game{
		ID:         g.ID,
		Date:       g.Date.UTC(),
		AwayTeamID: g.Away,
		HomeTeamID: g.Home,
		AwayScore:  g.AwayScore,
		HomeScore:  g.HomeScore,
		Status:     g.Status,
		Week:       g.Week,
	}
}

// FixtureGameFrom converts a domain game to a row.
func FixtureGameFrom(g model.Game) FixtureGame {
	return FixtureGame{
		ID:        g.ID,
		Date:      g.Date.UTC(),
		Away:      g.AwayTeamID,
		Home:      g.HomeTeamID,
		AwayScore: g.AwayScore,
		HomeScore: g.HomeScore,
		Status:    g.Status,
		Week:      g.Week,
	}
}
