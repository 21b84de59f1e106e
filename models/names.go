package models

import "encoding/json"

// NameEntry is one involved party within a category. Dispositions are keyed
// by offense id and may only exist for offenses in LinkedOffenses; the
// mutators below preserve that invariant.
type NameEntry struct {
	Name                string            `bson:"name" json:"name"`
	Sex                 string            `bson:"sex" json:"sex"`
	IsArrested          bool              `bson:"isArrested" json:"isArrested"`
	IsPursuing          bool              `bson:"isPursuing" json:"isPursuing"`
	IsVictimSame        bool              `bson:"isVictimSame" json:"isVictimSame"`
	LinkedOffenses      []string          `bson:"linkedOffenses" json:"linkedOffenses"`
	OffenseDispositions map[string]string `bson:"offenseDispositions" json:"offenseDispositions"`
}

// UnmarshalJSON accepts either a structured entry or a legacy bare-string
// name from pre-schema-v2 documents.
func (e *NameEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = NameEntry{Name: s}
		return nil
	}
	type alias NameEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = NameEntry(a)
	return nil
}

// Linked reports whether the offense id is in LinkedOffenses.
func (e *NameEntry) Linked(offenseID string) bool {
	for _, id := range e.LinkedOffenses {
		if id == offenseID {
			return true
		}
	}
	return false
}

// LinkOffense links the offense to this party. Linking twice is a no-op.
func (e *NameEntry) LinkOffense(offenseID string) {
	if e.Linked(offenseID) {
		return
	}
	e.LinkedOffenses = append(e.LinkedOffenses, offenseID)
}

// UnlinkOffense removes the link and its disposition, if any.
func (e *NameEntry) UnlinkOffense(offenseID string) {
	out := e.LinkedOffenses[:0]
	for _, id := range e.LinkedOffenses {
		if id != offenseID {
			out = append(out, id)
		}
	}
	e.LinkedOffenses = out
	delete(e.OffenseDispositions, offenseID)
}

// SetDisposition records the legal outcome for a linked offense. The offense
// is linked first if needed so a disposition can never reference a delinked
// offense. An empty or "none" disposition deletes the entry.
func (e *NameEntry) SetDisposition(offenseID, disposition string) {
	if disposition == "" || disposition == "none" {
		delete(e.OffenseDispositions, offenseID)
		return
	}
	e.LinkOffense(offenseID)
	if e.OffenseDispositions == nil {
		e.OffenseDispositions = map[string]string{}
	}
	e.OffenseDispositions[offenseID] = disposition
}

// Names groups every involved party by the five fixed report categories.
type Names struct {
	Complainants []NameEntry `bson:"complainants" json:"complainants"`
	Victims      []NameEntry `bson:"victims" json:"victims"`
	Suspects     []NameEntry `bson:"suspects" json:"suspects"`
	Witnesses    []NameEntry `bson:"witnesses" json:"witnesses"`
	Others       []NameEntry `bson:"others" json:"others"`
}

// Categories returns the five party lists in fixed report order.
func (n *Names) Categories() [][]NameEntry {
	return [][]NameEntry{n.Complainants, n.Victims, n.Suspects, n.Witnesses, n.Others}
}

// ForEach visits every entry across all categories, in report order, and
// allows in-place mutation.
func (n *Names) ForEach(fn func(e *NameEntry)) {
	for _, list := range []*[]NameEntry{&n.Complainants, &n.Victims, &n.Suspects, &n.Witnesses, &n.Others} {
		for i := range *list {
			fn(&(*list)[i])
		}
	}
}

// NonEmpty returns every non-blank name across all categories, in report
// order. This is the option list for NAME placeholders.
func (n *Names) NonEmpty() []string {
	var out []string
	n.ForEach(func(e *NameEntry) {
		if e.Name != "" {
			out = append(out, e.Name)
		}
	})
	return out
}

// RemoveOffenseLinks cascades an offense removal through every party: the
// link and its disposition are deleted together.
func (n *Names) RemoveOffenseLinks(offenseID string) {
	n.ForEach(func(e *NameEntry) {
		e.UnlinkOffense(offenseID)
	})
}
