// Package catalog resolves offenses from the static offense table merged with
// user overrides. The adapter itself does no I/O; the override set is loaded
// from and persisted to settings by the caller.
package catalog

import (
	"sort"
	"strings"

	"github.com/linesmerrill/police-report-writer-api/models"
)

// MaxResults caps how many offenses a search returns.
const MaxResults = 50

// Catalog is an offense lookup over the static table plus overrides.
type Catalog struct {
	overrides map[string]models.Offense
}

// New creates a catalog with the given override set. The map is copied so the
// caller's settings object is never aliased.
func New(overrides map[string]models.Offense) *Catalog {
	c := &Catalog{overrides: map[string]models.Offense{}}
	for literal, o := range overrides {
		c.overrides[literal] = o
	}
	return c
}

// Search returns up to MaxResults offenses whose literal or citation contains
// the term, case-insensitively. Literal-prefix matches rank before non-prefix
// matches; ties break alphabetically by literal.
func (c *Catalog) Search(term string) []models.Offense {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var prefix, rest []models.Offense
	for _, o := range c.merged() {
		literal := strings.ToLower(o.Literal)
		citation := strings.ToLower(o.Citation)
		switch {
		case strings.HasPrefix(literal, term):
			prefix = append(prefix, o)
		case strings.Contains(literal, term) || strings.Contains(citation, term):
			rest = append(rest, o)
		}
	}
	byLiteral := func(list []models.Offense) func(i, j int) bool {
		return func(i, j int) bool { return list[i].Literal < list[j].Literal }
	}
	sort.Slice(prefix, byLiteral(prefix))
	sort.Slice(rest, byLiteral(rest))

	out := append(prefix, rest...)
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}

// Resolve returns the offense for a literal. An override wins wholesale over
// the static entry. An unknown literal is treated as a custom offense rather
// than an error.
func (c *Catalog) Resolve(literal string) models.Offense {
	if o, ok := c.overrides[literal]; ok {
		return o
	}
	if o, ok := staticByLiteral(literal); ok {
		return o
	}
	return models.Offense{Literal: literal, Statute: models.StatuteCustom}
}

// Override stores or replaces the override for the offense's literal.
func (c *Catalog) Override(o models.Offense) {
	o.ID = ""
	c.overrides[o.Literal] = o
}

// DeleteOverride removes an override; lookups revert to the static entry if
// one exists.
func (c *Catalog) DeleteOverride(literal string) {
	delete(c.overrides, literal)
}

// Overrides returns a copy of the override set in the bulk export format: a
// flat object keyed by offense literal.
func (c *Catalog) Overrides() map[string]models.Offense {
	out := make(map[string]models.Offense, len(c.overrides))
	for literal, o := range c.overrides {
		out[literal] = o
	}
	return out
}

// merged returns the static table with overrides substituted in place plus
// overrides that have no static counterpart.
func (c *Catalog) merged() []models.Offense {
	out := make([]models.Offense, 0, len(staticOffenses)+len(c.overrides))
	seen := map[string]bool{}
	for _, o := range staticOffenses {
		seen[o.Literal] = true
		if ov, ok := c.overrides[o.Literal]; ok {
			out = append(out, ov)
			continue
		}
		out = append(out, o)
	}
	for literal, o := range c.overrides {
		if !seen[literal] {
			out = append(out, o)
		}
	}
	return out
}

func staticByLiteral(literal string) (models.Offense, bool) {
	for _, o := range staticOffenses {
		if o.Literal == literal {
			return o, true
		}
	}
	return models.Offense{}, false
}
