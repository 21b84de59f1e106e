package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/police-report-writer-api/models"
)

func TestScanTokensClassification(t *testing.T) {
	text := "I met with [NAME]. [NAME] stated [HE / SHE] was struck. EMS unit [UNIT #] responded."
	tokens := ScanTokens(text)

	assert.Len(t, tokens, 3)
	assert.Equal(t, Token{Text: "NAME", Kind: TokenName}, tokens[0])
	assert.Equal(t, Token{Text: "HE / SHE", Kind: TokenChoice, Options: []string{"HE", "SHE"}}, tokens[1])
	assert.Equal(t, Token{Text: "UNIT #", Kind: TokenFree}, tokens[2])
}

func TestScanTokensFirstSeenOrder(t *testing.T) {
	tokens := ScanTokens("[B] then [A] then [B] again")
	assert.Len(t, tokens, 2)
	assert.Equal(t, "B", tokens[0].Text)
	assert.Equal(t, "A", tokens[1].Text)
}

func TestScanTokensIgnoresStrayBrackets(t *testing.T) {
	assert.Nil(t, ScanTokens("no tokens [here!] or [] at all"))
}

func TestChoiceOptionsTrimmed(t *testing.T) {
	tokens := ScanTokens("[THE SCENE / THE INJURIES / THE DAMAGE]")
	assert.Len(t, tokens, 1)
	assert.Equal(t, []string{"THE SCENE", "THE INJURIES", "THE DAMAGE"}, tokens[0].Options)
}

func TestInterpolateSetValuesReplaceAllOccurrences(t *testing.T) {
	text := "[NAME] stated that [NAME] lives at [ADDRESS]."
	got := Interpolate(text, map[string]string{"NAME": "John Doe", "ADDRESS": "153 Oak Ave"})
	assert.Equal(t, "John Doe stated that John Doe lives at 153 Oak Ave.", got)
}

func TestInterpolateUnsetNameResolvesEmpty(t *testing.T) {
	got := Interpolate("Officer [NAME] arrived on scene.", nil)
	assert.Equal(t, "Officer arrived on scene.", got)
	assert.NotContains(t, got, "[")
}

func TestInterpolateUnsetNameLeavesOtherSpacingAlone(t *testing.T) {
	// the cleanup after an empty NAME removal only touches spacing at the
	// removal site, not spacing typed elsewhere in the section
	text := "Filed under case #22-104.  See attached. Officer [NAME] arrived on scene."
	got := Interpolate(text, nil)
	assert.Equal(t, "Filed under case #22-104.  See attached. Officer arrived on scene.", got)
}

func TestInterpolateAdjacentUnsetNamesCollapseToSingleSpace(t *testing.T) {
	got := Interpolate("Contacted [NAME] [NAME] on scene.", nil)
	assert.Equal(t, "Contacted on scene.", got)
}

func TestInterpolateUnsetChoiceKeepsBracketText(t *testing.T) {
	text := "[HE / SHE] was booked without incident."
	assert.Equal(t, text, Interpolate(text, nil))
}

func TestInterpolateUnsetFreeKeepsBracketText(t *testing.T) {
	text := "The vehicle was towed by [TOW COMPANY]."
	assert.Equal(t, text, Interpolate(text, nil))
}

func TestInterpolateBlankValueTreatedAsUnset(t *testing.T) {
	text := "Towed by [TOW COMPANY]."
	assert.Equal(t, text, Interpolate(text, map[string]string{"TOW COMPANY": "   "}))
}

func TestInterpolateEscapesTokenText(t *testing.T) {
	// Token text contains regex metacharacters; they must be treated literally.
	got := Interpolate("EMS unit [UNIT #] responded.", map[string]string{"UNIT #": "MED-12"})
	assert.Equal(t, "EMS unit MED-12 responded.", got)
}

func TestGlobalTokenValuesFromReportState(t *testing.T) {
	r := NewReport("sess")
	r.Incident.Date = "01/02/2026"
	r.Incident.Time = "1630"
	r.Incident.Officer = "J. Smith"
	r.Incident.Address = "153 Oak Ave"
	r.Incident.CallType = "Burglary"
	r.Names.Suspects = []models.NameEntry{{Name: "John Doe"}, {Name: "Jane Roe"}}
	r.AddOffense(models.Offense{Literal: "THEFT UNDER $100", Citation: "PC 31.03(e)(1)", Statute: "31.03", Level: "Class C Misdemeanor"})

	vals := GlobalTokenValues(r)
	assert.Equal(t, "01/02/2026", vals["DATE"])
	assert.Equal(t, "John Doe, Jane Roe", vals["SUSPECT"])
	assert.Equal(t, "100", vals["BLOCK"])
	assert.Equal(t, "Oak Ave", vals["STREET"])
	assert.Equal(t, "the 100 block of Oak Ave", vals["LOCATION"])
	assert.Equal(t, "burglary", vals["CALLTYPE"])
	assert.Equal(t, "THEFT UNDER $100", vals["OFFENSE"])
	assert.Equal(t, "PC 31.03(e)(1)", vals["CITATION"])
}

func TestApplyGlobalTokensLeavesEmptyValuesInPlace(t *testing.T) {
	r := NewReport("sess")
	r.Incident.Date = "01/02/2026"

	got := ApplyGlobalTokens("On [DATE], [VICTIM] reported the incident.", r)
	assert.Equal(t, "On 01/02/2026, [VICTIM] reported the incident.", got)
}

func TestExpandOffenseLinesStacked(t *testing.T) {
	r := NewReport("sess")
	r.AddOffense(models.Offense{Literal: "THEFT UNDER $100", Citation: "PC 31.03(e)(1)", Level: "Class C Misdemeanor"})
	r.AddOffense(models.Offense{Literal: "CRIMINAL TRESPASS", Citation: "PC 30.05", Level: "Class B Misdemeanor"})

	got := ApplyGlobalTokens("Charged with [OFFENSE] ([CITATION]), a [LEVEL].", r)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Charged with THEFT UNDER $100 (PC 31.03(e)(1)), a Class C Misdemeanor.", lines[0])
	assert.Equal(t, "Charged with CRIMINAL TRESPASS (PC 30.05), a Class B Misdemeanor.", lines[1])
}

func TestExpandOffenseLinesSingleOffenseNoExpansion(t *testing.T) {
	r := NewReport("sess")
	r.AddOffense(models.Offense{Literal: "ROBBERY", Citation: "PC 29.02", Statute: "29.02", Level: "Felony 2"})

	got := ApplyGlobalTokens("Charged with [OFFENSE].", r)
	assert.Equal(t, "Charged with ROBBERY.", got)
}

func TestStatuteTitlePrefersStatuteText(t *testing.T) {
	o := models.Offense{
		Literal:     "THEFT UNDER $100",
		StatuteText: "Theft. A person commits an offense if he unlawfully appropriates property.",
	}
	assert.Equal(t, "Theft", StatuteTitle(o))
}

func TestStatuteTitleFallsBackToTitleCasedLiteral(t *testing.T) {
	o := models.Offense{Literal: "CRIMINAL TRESPASS"}
	assert.Equal(t, "Criminal Trespass", StatuteTitle(o))
}
