package narrative

import (
	"fmt"
	"strings"

	"github.com/linesmerrill/police-report-writer-api/models"
)

// Assemble renders all three final documents for a report. Settings may be
// nil, in which case every summary-title field is shown.
func Assemble(r *models.Report, s *models.Settings) models.Document {
	return models.Document{
		Investigative: InvestigativeNarrative(r, s),
		Public:        PublicNarrative(r),
		ProbableCause: ProbableCauseStatement(r),
	}
}

// InvestigativeNarrative concatenates every enabled block in the fixed
// macro-order, joined with double line-breaks. Disabled blocks contribute
// nothing, so no stray separators appear.
func InvestigativeNarrative(r *models.Report, s *models.Settings) string {
	n := &r.Narratives
	var blocks []string

	add := func(text string) {
		if strings.TrimSpace(text) != "" {
			blocks = append(blocks, text)
		}
	}
	section := func(sec models.Section) {
		if sec.Enabled {
			add(Interpolate(sec.Text, nil))
		}
	}
	customs := func(position string) {
		for _, p := range n.CustomParagraphsAt(position) {
			add(Interpolate(p.Text, nil))
		}
	}

	section(n.NamesBlock)
	if n.Introduction.Enabled {
		add(narrativeHeader + "\n\n" + Interpolate(n.Introduction.Text, nil))
	}
	section(n.BodyCam1)
	section(n.CallNotes)
	section(n.Arrival)
	customs(models.PositionAfterArrival)
	section(n.Statements)
	customs(models.PositionAfterStatements)
	section(n.Property)
	customs(models.PositionAfterProperty)
	section(n.Conclusion)
	for _, sec := range n.OptionalSections {
		if !sec.Enabled {
			continue
		}
		add(renderOptionalSection(sec))
	}
	section(n.BodyCam2)
	if n.OffenseSummaryEnabled && len(r.Incident.Offenses) > 0 {
		add(offenseSummaryBlock(r, s))
	}

	return ApplyGlobalTokens(strings.Join(blocks, "\n\n"), r)
}

// PublicNarrative renders the public-facing document.
func PublicNarrative(r *models.Report) string {
	return ApplyGlobalTokens(Interpolate(r.Narratives.Public.Text, nil), r)
}

// ProbableCauseStatement renders the probable-cause document.
func ProbableCauseStatement(r *models.Report) string {
	return ApplyGlobalTokens(Interpolate(r.Narratives.ProbableCause, nil), r)
}

// renderOptionalSection interpolates a section's templates against its own
// value map and appends the conviction list when one is present.
func renderOptionalSection(sec models.OptionalSection) string {
	out := Interpolate(sec.Text, sec.Values)
	if strings.TrimSpace(sec.Text2) != "" {
		out += "\n\n" + Interpolate(sec.Text2, sec.Values)
	}
	if len(sec.Convictions) > 0 {
		out += "\n" + convictionList(sec.Convictions, sec.ListStyle)
	}
	return out
}

func convictionList(convictions []string, style string) string {
	lines := make([]string, 0, len(convictions))
	for i, c := range convictions {
		switch style {
		case models.ListStyleNumber:
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
		case models.ListStyleBullet:
			lines = append(lines, "• "+c)
		default:
			lines = append(lines, "- "+c)
		}
	}
	return strings.Join(lines, "\n")
}

// offenseSummaryBlock lists each offense in incident order: a title line
// built from the configured subset of citation, statute name and level,
// followed by the interpolated summary body when one was written.
func offenseSummaryBlock(r *models.Report, s *models.Settings) string {
	fields := models.SummaryTitleFields{Citation: true, StatuteName: true, Level: true}
	if s != nil {
		fields = s.SummaryTitle
	}

	var b strings.Builder
	b.WriteString(offenseSummaryHeader)
	for _, o := range r.Incident.Offenses {
		var parts []string
		if fields.Citation && o.Citation != "" {
			parts = append(parts, o.Citation)
		}
		if fields.StatuteName {
			parts = append(parts, o.Literal)
		}
		if fields.Level && o.Level != "" {
			parts = append(parts, o.Level)
		}
		b.WriteString("\n\n" + strings.Join(parts, " - "))
		if sum, ok := r.Narratives.OffenseSummaries[o.ID]; ok && strings.TrimSpace(sum.Text) != "" {
			b.WriteString("\n" + Interpolate(sum.Text, nil))
		}
	}
	return b.String()
}
