package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/police-report-writer-api/api/handlers"
	"github.com/linesmerrill/police-report-writer-api/databases"
	mocksdb "github.com/linesmerrill/police-report-writer-api/databases/mocks"
	"github.com/linesmerrill/police-report-writer-api/models"
	"github.com/linesmerrill/police-report-writer-api/narrative"
)

func TestReport_ReportBySessionIDHandlerFallsBackToFresh(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/report/sess-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.ReportBySessionIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var testReport models.Report
	_ = json.Unmarshal(rr.Body.Bytes(), &testReport)

	assert.Equal(t, "sess-1", testReport.SessionID)
	assert.Len(t, testReport.Narratives.OptionalSections, len(narrative.DefaultOptionalSections()))
}

func TestReport_ReportBySessionIDHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/report/sess-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Report)
		(*arg).SessionID = "sess-1"
		(*arg).Incident.Date = "01/02/2026"
		(*arg).Incident.Time = "1630"
		(*arg).Incident.Officer = "J. Smith"
		(*arg).Incident.Address = "153 Oak Ave"
		(*arg).Incident.CallType = "Burglary"
		(*arg).Incident.HowReceived = models.HowReceivedDispatched
	})
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.ReportBySessionIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var testReport models.Report
	_ = json.Unmarshal(rr.Body.Bytes(), &testReport)

	assert.Equal(t, "sess-1", testReport.SessionID)
	// load runs derivation, so the public narrative is populated
	assert.Contains(t, testReport.Narratives.Public.Text, "officers were dispatched to the 100 block of Oak Ave")
}

func TestReport_ReportBySessionIDHandlerDBError(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/report/sess-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.ReportBySessionIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusInternalServerError)
	}

	expected := `{"response": "failed to get report by session id, mocked-error"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestReport_CreateReportHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/report", strings.NewReader(`{"sessionId": "sess-9"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}

	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CreateReportHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	var testReport models.Report
	_ = json.Unmarshal(rr.Body.Bytes(), &testReport)

	assert.Equal(t, "sess-9", testReport.SessionID)
	assert.True(t, testReport.Narratives.OffenseSummaryEnabled)
}

func TestReport_CreateReportHandlerGeneratesSessionID(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/report", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}

	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CreateReportHandler)

	handler.ServeHTTP(rr, req)

	var testReport models.Report
	_ = json.Unmarshal(rr.Body.Bytes(), &testReport)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, testReport.SessionID)
}

func TestReport_SaveReportHandlerBadJSON(t *testing.T) {
	req, err := http.NewRequest("PUT", "/api/v1/report/sess-1", strings.NewReader(`{"incident": not json`))
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	u := handlers.Report{
		RDB: databases.NewReportDatabase(&mocksdb.DatabaseHelper{}),
		SDB: databases.NewSettingsDatabase(&mocksdb.DatabaseHelper{}),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.SaveReportHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}

func TestReport_SaveReportHandlerSuccess(t *testing.T) {
	body := `{"incident":{"date":"01/02/2026","time":"1630","officer":"J. Smith","address":"153 Oak Ave","callType":"Burglary","howReceived":"dispatched"}}`
	req, err := http.NewRequest("PUT", "/api/v1/report/sess-1", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.SaveReportHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var testReport models.Report
	_ = json.Unmarshal(rr.Body.Bytes(), &testReport)

	assert.Equal(t, "sess-1", testReport.SessionID)
	// save runs derivation before persisting
	assert.Contains(t, testReport.Narratives.Public.Text, "officers were dispatched")
	assert.Len(t, testReport.Narratives.OptionalSections, len(narrative.DefaultOptionalSections()))
}

func TestReport_SaveReportHandlerKeepsProbableCauseWithoutArrests(t *testing.T) {
	body := `{"narratives":{"probableCause":"I observed the defendant strike the victim."}}`
	req, err := http.NewRequest("PUT", "/api/v1/report/sess-1", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.SaveReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var testReport models.Report
	_ = json.Unmarshal(rr.Body.Bytes(), &testReport)

	// no disposition changed, so the hand-typed probable cause survives the save
	assert.Equal(t, "I observed the defendant strike the victim.", testReport.Narratives.ProbableCause)
}

func TestReport_SaveReportHandlerRecomputesArrestOnTransition(t *testing.T) {
	body := `{
		"incident": {"offenses": [{"id": "off-1", "literal": "ROBBERY"}]},
		"names": {"suspects": [{"name": "John Doe", "linkedOffenses": ["off-1"], "offenseDispositions": {"off-1": "ARREST"}}]}
	}`
	req, err := http.NewRequest("PUT", "/api/v1/report/sess-1", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	// nothing stored yet: the incoming ARREST disposition is a transition
	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.SaveReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var testReport models.Report
	_ = json.Unmarshal(rr.Body.Bytes(), &testReport)

	sec := testReport.Narratives.OptionalSectionByID(narrative.SectionArrest)
	assert.NotNil(t, sec)
	assert.True(t, sec.Enabled)
	assert.Contains(t, sec.Text, "ROBBERY")
	assert.Equal(t, sec.Text, testReport.Narratives.ProbableCause)
}

func TestReport_DeleteReportHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/report/sess-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}

	conn.(*mocksdb.CollectionHelper).On("DeleteOne", mock.Anything, mock.Anything).Return(nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.DeleteReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"message": "report deleted"}`, rr.Body.String())
}

func TestReport_DeriveReportHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/report/sess-1/derive", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.DeriveReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReport_DeriveReportHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/report/sess-1/derive", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Report)
		(*arg).SessionID = "sess-1"
		(*arg).Incident.Date = "01/02/2026"
		(*arg).Incident.Time = "1630"
		(*arg).Incident.Officer = "J. Smith"
		(*arg).Incident.Address = "153 Oak Ave"
		(*arg).Incident.CallType = "Burglary"
	})
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocksdb.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.DeriveReportHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var testNarratives models.Narratives
	_ = json.Unmarshal(rr.Body.Bytes(), &testNarratives)

	assert.Contains(t, testNarratives.Public.Text, "officers were dispatched to the 100 block of Oak Ave")
}

func TestReport_DocumentHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/report/sess-1/document", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var reportsConn databases.CollectionHelper
	var settingsConn databases.CollectionHelper
	var reportResult databases.SingleResultHelper
	var settingsResult databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	reportsConn = &mocksdb.CollectionHelper{}
	settingsConn = &mocksdb.CollectionHelper{}
	reportResult = &mocksdb.SingleResultHelper{}
	settingsResult = &mocksdb.SingleResultHelper{}

	reportResult.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Report)
		(*arg).SessionID = "sess-1"
		(*arg).Incident.Date = "01/02/2026"
		(*arg).Incident.Time = "1630"
		(*arg).Incident.Officer = "J. Smith"
		(*arg).Incident.Address = "153 Oak Ave"
		(*arg).Incident.CallType = "Burglary"
	})
	settingsResult.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	reportsConn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(reportResult)
	settingsConn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(settingsResult)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(reportsConn)
	db.(*mocksdb.DatabaseHelper).On("Collection", "settings").Return(settingsConn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.DocumentHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var doc models.Document
	_ = json.Unmarshal(rr.Body.Bytes(), &doc)

	assert.Contains(t, doc.Public, "officers were dispatched")
}

func TestReport_TokensHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/report/sess-1/tokens", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"session_id": "sess-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &mocksdb.DatabaseHelper{}
	conn = &mocksdb.CollectionHelper{}
	singleResultHelper = &mocksdb.SingleResultHelper{}

	singleResultHelper.(*mocksdb.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Report)
		(*arg).SessionID = "sess-1"
		(*arg).Narratives.Arrival = models.Section{
			Text:    "When I arrived, I met with [NAME], who provided me with the following information.",
			Enabled: true,
		}
	})
	conn.(*mocksdb.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*mocksdb.DatabaseHelper).On("Collection", "reports").Return(conn)

	u := handlers.Report{
		RDB: databases.NewReportDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.TokensHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var tokens map[string][]narrative.Token
	_ = json.Unmarshal(rr.Body.Bytes(), &tokens)

	assert.Len(t, tokens["arrival"], 1)
	assert.Equal(t, "NAME", tokens["arrival"][0].Text)
	assert.Equal(t, narrative.TokenName, tokens["arrival"][0].Kind)
}
