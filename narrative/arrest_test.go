package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/police-report-writer-api/models"
)

func TestRecomputeArrestJoinsLiteralsInIncidentOrder(t *testing.T) {
	r := NewReport("sess")
	theft := r.AddOffense(models.Offense{Literal: "THEFT UNDER $100"})
	assault := r.AddOffense(models.Offense{Literal: "ASSAULT BODILY INJURY"})

	r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}}
	// dispositions set in reverse order; the text must follow incident order
	r.Names.Suspects[0].SetDisposition(assault.ID, models.DispositionArrest)
	r.Names.Suspects[0].SetDisposition(theft.ID, models.DispositionArrest)
	RecomputeArrest(r)

	sec := r.Narratives.OptionalSectionByID(SectionArrest)
	assert.True(t, sec.Enabled)
	assert.Contains(t, sec.Text, "the offense(s) of THEFT UNDER $100, ASSAULT BODILY INJURY.")
	assert.Equal(t, sec.Text, r.Narratives.ProbableCause)
	assert.NotContains(t, sec.Text, "[OFFENSE]")
}

func TestRecomputeArrestIgnoresOtherDispositions(t *testing.T) {
	r := NewReport("sess")
	theft := r.AddOffense(models.Offense{Literal: "THEFT UNDER $100"})
	trespass := r.AddOffense(models.Offense{Literal: "CRIMINAL TRESPASS"})

	r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}}
	r.Names.Suspects[0].SetDisposition(theft.ID, models.DispositionArrest)
	r.Names.Suspects[0].SetDisposition(trespass.ID, models.DispositionWarning)
	RecomputeArrest(r)

	sec := r.Narratives.OptionalSectionByID(SectionArrest)
	assert.Contains(t, sec.Text, "THEFT UNDER $100")
	assert.NotContains(t, sec.Text, "CRIMINAL TRESPASS")
}

func TestRecomputeArrestCollectsAcrossParties(t *testing.T) {
	r := NewReport("sess")
	theft := r.AddOffense(models.Offense{Literal: "THEFT UNDER $100"})
	assault := r.AddOffense(models.Offense{Literal: "ASSAULT BODILY INJURY"})

	r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}}
	r.Names.Others = []models.NameEntry{{Name: "Jane Roe"}}
	r.Names.Suspects[0].SetDisposition(theft.ID, models.DispositionArrest)
	r.Names.Others[0].SetDisposition(assault.ID, models.DispositionArrest)
	RecomputeArrest(r)

	sec := r.Narratives.OptionalSectionByID(SectionArrest)
	assert.Contains(t, sec.Text, "THEFT UNDER $100, ASSAULT BODILY INJURY")
}

func TestRecomputeArrestClearsWhenNoArrestsRemain(t *testing.T) {
	r := NewReport("sess")
	theft := r.AddOffense(models.Offense{Literal: "THEFT UNDER $100"})
	r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}}
	r.Names.Suspects[0].SetDisposition(theft.ID, models.DispositionArrest)
	RecomputeArrest(r)
	assert.True(t, r.Narratives.OptionalSectionByID(SectionArrest).Enabled)

	r.Names.Suspects[0].SetDisposition(theft.ID, "none")
	RecomputeArrest(r)

	sec := r.Narratives.OptionalSectionByID(SectionArrest)
	assert.False(t, sec.Enabled)
	assert.Equal(t, ArrestTemplate, sec.Text)
	assert.Equal(t, "", r.Narratives.ProbableCause)
}

func TestRecomputeArrestKeepsHandTypedProbableCause(t *testing.T) {
	r := NewReport("sess")
	r.AddOffense(models.Offense{Literal: "ASSAULT BODILY INJURY"})
	r.Narratives.ProbableCause = "I observed the defendant strike the victim."

	// no ARREST disposition anywhere: the recompute must not wipe a
	// probable-cause statement the officer typed by hand
	RecomputeArrest(r)

	assert.Equal(t, "I observed the defendant strike the victim.", r.Narratives.ProbableCause)
}

func TestRecomputeArrestHonorsSectionEditLock(t *testing.T) {
	r := NewReport("sess")
	theft := r.AddOffense(models.Offense{Literal: "THEFT UNDER $100"})
	r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}}
	r.Names.Suspects[0].SetDisposition(theft.ID, models.DispositionArrest)

	sec := r.Narratives.OptionalSectionByID(SectionArrest)
	sec.Edited = true
	sec.Text = "Custom arrest wording the officer wrote."
	r.Narratives.ProbableCause = "Custom probable cause."

	RecomputeArrest(r)
	assert.True(t, sec.Enabled)
	assert.Equal(t, "Custom arrest wording the officer wrote.", sec.Text)
	assert.Equal(t, "Custom probable cause.", r.Narratives.ProbableCause)

	// clearing the arrest disables the section but the lock still holds
	r.Names.Suspects[0].SetDisposition(theft.ID, "none")
	RecomputeArrest(r)
	assert.False(t, sec.Enabled)
	assert.Equal(t, "Custom arrest wording the officer wrote.", sec.Text)
	assert.Equal(t, "Custom probable cause.", r.Narratives.ProbableCause)
}

func TestArrestSetChanged(t *testing.T) {
	arrestedState := func(disposition string) *models.Report {
		r := NewReport("sess")
		r.AddOffense(models.Offense{ID: "off-1", Literal: "THEFT UNDER $100"})
		r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}}
		if disposition != "" {
			r.Names.Suspects[0].SetDisposition("off-1", disposition)
		}
		return r
	}

	none := arrestedState("")
	arrested := arrestedState(models.DispositionArrest)
	warned := arrestedState(models.DispositionWarning)

	// a nil state compares as the empty set
	assert.False(t, ArrestSetChanged(nil, none))
	assert.True(t, ArrestSetChanged(nil, arrested))

	assert.False(t, ArrestSetChanged(arrested, arrested))
	assert.True(t, ArrestSetChanged(none, arrested))
	assert.True(t, ArrestSetChanged(arrested, none))
	// downgrading the disposition empties the arrest set
	assert.True(t, ArrestSetChanged(arrested, warned))
	assert.False(t, ArrestSetChanged(none, warned))
}

func TestRecomputeArrestDuplicateDispositionsJoinOnce(t *testing.T) {
	r := NewReport("sess")
	theft := r.AddOffense(models.Offense{Literal: "THEFT UNDER $100"})

	r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}, {Name: "Jane Roe"}}
	r.Names.Suspects[0].SetDisposition(theft.ID, models.DispositionArrest)
	r.Names.Suspects[1].SetDisposition(theft.ID, models.DispositionArrest)
	RecomputeArrest(r)

	sec := r.Narratives.OptionalSectionByID(SectionArrest)
	assert.Equal(t, 1, strings.Count(sec.Text, "THEFT UNDER $100"))
}
