package narrative

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linesmerrill/police-report-writer-api/models"
)

// NewReport returns a fresh default report for a drafting session, with the
// boilerplate sections populated and the canonical optional-section set
// attached.
func NewReport(sessionID string) *models.Report {
	now := time.Now()
	r := &models.Report{
		SessionID: sessionID,
		Narratives: models.Narratives{
			Public:       models.Section{Enabled: true},
			Introduction: models.Section{Enabled: true},
			NamesBlock:   models.Section{Text: defaultNamesBlock},
			BodyCam1:     models.Section{Text: defaultBodyCam, Enabled: true},
			CallNotes:    models.Section{Text: defaultCallNotes},
			Arrival:      models.Section{Text: defaultArrival, Enabled: true},
			Statements:   models.Section{Text: defaultStatements},
			Property:     models.Section{Text: defaultProperty},
			Conclusion:   models.Section{Text: defaultConclusion, Enabled: true},
			BodyCam2:     models.Section{Text: defaultBodyCam},

			OffenseSummaryEnabled: true,
			OffenseSummaries:      map[string]models.Section{},
			OptionalSections:      DefaultOptionalSections(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	Derive(r)
	return r
}

// DecodeReport parses a persisted report document and migrates it to the
// current schema. Malformed input falls back to a fresh default report; a
// stale draft must never take the session down.
func DecodeReport(data []byte, sessionID string) *models.Report {
	var r models.Report
	if err := json.Unmarshal(data, &r); err != nil {
		zap.S().Warnw("malformed report document, starting fresh",
			"sessionId", sessionID,
			"error", err)
		return NewReport(sessionID)
	}
	if r.SessionID == "" {
		r.SessionID = sessionID
	}
	NormalizeReport(&r)
	return &r
}

// NormalizeReport migrates a loaded report to the current schema in place:
// offense ids are synthesized where missing, the legacy single-offense field
// folds into the offense list, optional sections merge by identifier against
// the current default set, and party links are pruned to offenses that still
// exist.
func NormalizeReport(r *models.Report) {
	ensureOffenseIDs(r)
	migrateLegacyOffense(r)
	r.Narratives.OptionalSections = mergeOptionalSections(r.Narratives.OptionalSections)
	if r.Narratives.OffenseSummaries == nil {
		r.Narratives.OffenseSummaries = map[string]models.Section{}
	}
	normalizeNames(r)
}

func ensureOffenseIDs(r *models.Report) {
	for i := range r.Incident.Offenses {
		if r.Incident.Offenses[i].ID == "" {
			r.Incident.Offenses[i].ID = uuid.New().String()
		}
	}
}

// migrateLegacyOffense folds the pre-list single-offense field into the
// offense list as a custom entry.
func migrateLegacyOffense(r *models.Report) {
	if r.Incident.LegacyOffense == "" {
		return
	}
	r.AddOffense(models.Offense{
		Literal: r.Incident.LegacyOffense,
		Statute: models.StatuteCustom,
	})
	r.Incident.LegacyOffense = ""
}

// mergeOptionalSections merges persisted sections with the current default
// set by identifier: a persisted section keeps its enabled/text/edited/values
// untouched, newly introduced identifiers are appended with defaults, nothing
// is dropped and nothing duplicated.
func mergeOptionalSections(persisted []models.OptionalSection) []models.OptionalSection {
	seen := map[string]bool{}
	out := make([]models.OptionalSection, 0, len(persisted))
	for _, sec := range persisted {
		if seen[sec.ID] {
			continue
		}
		seen[sec.ID] = true
		if sec.Values == nil {
			sec.Values = map[string]string{}
		}
		out = append(out, sec)
	}
	for _, d := range DefaultOptionalSections() {
		if !seen[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

// normalizeNames drops party links and dispositions that reference offenses
// no longer on the incident, restoring the linked-offense invariant for
// documents written before cascade deletes existed.
func normalizeNames(r *models.Report) {
	live := map[string]bool{}
	for _, o := range r.Incident.Offenses {
		live[o.ID] = true
	}
	r.Names.ForEach(func(e *models.NameEntry) {
		kept := e.LinkedOffenses[:0]
		for _, id := range e.LinkedOffenses {
			if live[id] {
				kept = append(kept, id)
			}
		}
		e.LinkedOffenses = kept
		for id := range e.OffenseDispositions {
			if !live[id] || !e.Linked(id) {
				delete(e.OffenseDispositions, id)
			}
		}
	})
}
