package narrative

import (
	"strings"

	"github.com/linesmerrill/police-report-writer-api/models"
)

// RecomputeArrest re-derives the arrest optional section and the probable
// cause statement from the current disposition state. It is the single
// recomputation step run after a disposition mutation (see ArrestSetChanged),
// so the two fields always agree with the Names data no matter which party
// changed.
//
// With at least one ARREST disposition anywhere: the arrest section is
// enabled and, while its edit lock is off, its text is rewritten from the
// arrest template with the comma-joined literals of every ARREST-disposed
// offense (in incident order, not the order dispositions were set) and the
// same text is copied into the probable cause field. With none: the section
// is disabled; the text reset honors the edit lock the same way, and probable
// cause clears only while it still carries the generated text, so a
// hand-written statement survives.
func RecomputeArrest(r *models.Report) {
	sec := r.Narratives.OptionalSectionByID(SectionArrest)
	if sec == nil {
		return
	}

	arrested := arrestedOffenseIDs(r)
	if len(arrested) == 0 {
		if r.Narratives.ProbableCause == sec.Text {
			r.Narratives.ProbableCause = ""
		}
		sec.Enabled = false
		if !sec.Edited {
			sec.Text = ArrestTemplate
		}
		return
	}

	var literals []string
	for _, o := range r.Incident.Offenses {
		if arrested[o.ID] {
			literals = append(literals, o.Literal)
		}
	}
	sec.Enabled = true
	if !sec.Edited {
		text := strings.ReplaceAll(ArrestTemplate, "[OFFENSE]", strings.Join(literals, ", "))
		sec.Text = text
		r.Narratives.ProbableCause = text
	}
}

// ArrestSetChanged reports whether the set of ARREST-disposed offenses
// differs between two report states. A nil state counts as the empty set.
// This is the trigger condition for RecomputeArrest: probable cause is
// free-editable between transitions, so recomputing on a save that did not
// touch a disposition would destroy user text.
func ArrestSetChanged(prev, next *models.Report) bool {
	var before, after map[string]bool
	if prev != nil {
		before = arrestedOffenseIDs(prev)
	}
	if next != nil {
		after = arrestedOffenseIDs(next)
	}
	if len(before) != len(after) {
		return true
	}
	for id := range after {
		if !before[id] {
			return true
		}
	}
	return false
}

// arrestedOffenseIDs collects every offense id carrying an ARREST disposition
// across all party categories.
func arrestedOffenseIDs(r *models.Report) map[string]bool {
	out := map[string]bool{}
	r.Names.ForEach(func(e *models.NameEntry) {
		for id, d := range e.OffenseDispositions {
			if d == models.DispositionArrest {
				out[id] = true
			}
		}
	})
	return out
}
