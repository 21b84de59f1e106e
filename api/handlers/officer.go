package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/police-report-writer-api/config"
	"github.com/linesmerrill/police-report-writer-api/databases"
	"github.com/linesmerrill/police-report-writer-api/models"
)

// Officer exposes the account registration endpoint
type Officer struct {
	ODB databases.OfficerDatabase
}

// RegisterOfficerHandler creates an officer account with a bcrypt-hashed
// password
func (o Officer) RegisterOfficerHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Badge    string `json:"badge"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if body.Email == "" || body.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "email and password are required"}`))
		return
	}

	count, err := o.ODB.CountDocuments(context.Background(), bson.M{"email": body.Email})
	if err != nil {
		config.ErrorStatus("failed to check for existing officer", http.StatusInternalServerError, w, err)
		return
	}
	if count > 0 {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "an officer with that email already exists"}`))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	officer := models.Officer{
		ID:        primitive.NewObjectID(),
		Email:     body.Email,
		Name:      body.Name,
		Badge:     body.Badge,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	_ = o.ODB.InsertOne(context.Background(), officer)

	b, err := json.Marshal(officer)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
