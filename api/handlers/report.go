package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/police-report-writer-api/api"
	"github.com/linesmerrill/police-report-writer-api/config"
	"github.com/linesmerrill/police-report-writer-api/databases"
	"github.com/linesmerrill/police-report-writer-api/models"
	"github.com/linesmerrill/police-report-writer-api/narrative"
)

// Report exposes the drafting-session endpoints
type Report struct {
	RDB databases.ReportDatabase
	SDB databases.SettingsDatabase
}

// CreateReportHandler starts a new drafting session. The client may supply a
// session id; otherwise one is generated.
func (re Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string `json:"sessionId"`
	}
	// an empty body is fine, we only need it if the client picked its own id
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	report := narrative.NewReport(sessionID)
	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err := re.RDB.UpsertOne(ctx, bson.M{"sessionId": sessionID}, *report)
	if err != nil {
		config.ErrorStatus("failed to create report", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ReportBySessionIDHandler loads a drafting session. Loading runs the
// migration pass, so legacy documents come back in the current schema. A
// missing session returns a fresh default report rather than a 404, matching
// the first-visit behavior of the UI.
func (re Report) ReportBySessionIDHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := re.RDB.FindOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			report = narrative.NewReport(sessionID)
		} else {
			config.ErrorStatus("failed to get report by session id", http.StatusInternalServerError, w, err)
			return
		}
	} else {
		narrative.NormalizeReport(report)
		narrative.Derive(report)
	}

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SaveReportHandler persists a drafting session. The save path is the single
// write step: normalize, derive, recompute the arrest section when a
// disposition changed, then upsert.
func (re Report) SaveReportHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	data, err := io.ReadAll(r.Body)
	if err != nil {
		config.ErrorStatus("failed to read request body", http.StatusBadRequest, w, err)
		return
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	report.SessionID = sessionID
	report.UpdatedAt = time.Now()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = report.UpdatedAt
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// The arrest recompute fires only on a disposition transition relative to
	// the stored state; probable cause is free-editable in between. A missing
	// or unreadable stored document compares as the empty set.
	stored, err := re.RDB.FindOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		stored = nil
	}

	narrative.NormalizeReport(&report)
	narrative.Derive(&report)
	if narrative.ArrestSetChanged(stored, &report) {
		narrative.RecomputeArrest(&report)
	}

	err = re.RDB.UpsertOne(ctx, bson.M{"sessionId": sessionID}, report)
	if err != nil {
		config.ErrorStatus("failed to save report", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteReportHandler deletes a drafting session
func (re Report) DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err := re.RDB.DeleteOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		config.ErrorStatus("failed to delete report", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "report deleted"}`))
}

// DeriveReportHandler re-runs narrative derivation on the stored session,
// persists the result and returns the narratives block
func (re Report) DeriveReportHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	report, err := re.RDB.FindOne(r.Context(), bson.M{"sessionId": sessionID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("no report found for session id", http.StatusNotFound, w, err)
		} else {
			config.ErrorStatus("failed to get report by session id", http.StatusInternalServerError, w, err)
		}
		return
	}

	// No disposition can change here, the input is the stored document, so
	// the arrest recompute does not apply.
	narrative.NormalizeReport(report)
	narrative.Derive(report)
	report.UpdatedAt = time.Now()

	err = re.RDB.UpsertOne(r.Context(), bson.M{"sessionId": sessionID}, *report)
	if err != nil {
		config.ErrorStatus("failed to save derived report", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(report.Narratives)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DocumentHandler assembles the final export documents for a session:
// the investigative narrative, the public narrative and the probable-cause
// statement, fully interpolated
func (re Report) DocumentHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	report, err := re.RDB.FindOne(r.Context(), bson.M{"sessionId": sessionID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("no report found for session id", http.StatusNotFound, w, err)
		} else {
			config.ErrorStatus("failed to get report by session id", http.StatusInternalServerError, w, err)
		}
		return
	}

	settings, err := re.SDB.FindOne(r.Context(), bson.M{"key": models.SettingsKey})
	if err != nil {
		settings = models.DefaultSettings()
	}

	narrative.NormalizeReport(report)
	narrative.Derive(report)
	doc := narrative.Assemble(report, settings)

	b, err := json.Marshal(doc)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// TokensHandler scans every narrative block of a session for placeholder
// tokens so the UI can render its fill-in chips. Keys are the fixed section
// names plus optional-section and offense ids.
func (re Report) TokensHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := re.RDB.FindOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("no report found for session id", http.StatusNotFound, w, err)
		} else {
			config.ErrorStatus("failed to get report by session id", http.StatusInternalServerError, w, err)
		}
		return
	}

	n := &report.Narratives
	tokens := map[string][]narrative.Token{}
	add := func(key, text string) {
		found := narrative.ScanTokens(text)
		if len(found) > 0 {
			tokens[key] = found
		}
	}

	add("public", n.Public.Text)
	add("introduction", n.Introduction.Text)
	add("namesBlock", n.NamesBlock.Text)
	add("bodyCam1", n.BodyCam1.Text)
	add("callNotes", n.CallNotes.Text)
	add("arrival", n.Arrival.Text)
	add("statements", n.Statements.Text)
	add("property", n.Property.Text)
	add("conclusion", n.Conclusion.Text)
	add("bodyCam2", n.BodyCam2.Text)
	for id, sec := range n.OffenseSummaries {
		add(id, sec.Text)
	}
	for _, sec := range n.OptionalSections {
		add(sec.ID, sec.Text)
	}
	for _, p := range n.CustomParagraphs {
		add(p.ID, p.Text)
	}

	b, err := json.Marshal(tokens)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
