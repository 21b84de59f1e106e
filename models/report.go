package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// How-received modes for an incident.
const (
	HowReceivedDispatched  = "dispatched"
	HowReceivedInitiated   = "initiated"
	HowReceivedFlaggedDown = "flagged down"
)

// IncidentDetails holds the structured fields the narrative engine derives
// text from. Address supports "streetA / streetB" intersection syntax.
type IncidentDetails struct {
	Date          string    `bson:"date" json:"date"`
	Time          string    `bson:"time" json:"time"`
	FromDate      string    `bson:"fromDate,omitempty" json:"fromDate,omitempty"`
	FromTime      string    `bson:"fromTime,omitempty" json:"fromTime,omitempty"`
	ToDate        string    `bson:"toDate,omitempty" json:"toDate,omitempty"`
	ToTime        string    `bson:"toTime,omitempty" json:"toTime,omitempty"`
	Address       string    `bson:"address" json:"address"`
	IsBusiness    bool      `bson:"isBusiness" json:"isBusiness"`
	BusinessName  string    `bson:"businessName" json:"businessName"`
	Officer       string    `bson:"officer" json:"officer"`
	CallType      string    `bson:"callType" json:"callType"`
	Subtype       string    `bson:"subtype" json:"subtype"`
	HowReceived   string    `bson:"howReceived" json:"howReceived"`
	ReasonForStop string    `bson:"reasonForStop" json:"reasonForStop"`
	Consensual    bool      `bson:"consensual" json:"consensual"`
	Offenses      []Offense `bson:"offenses" json:"offenses"`

	// LegacyOffense carries the single-offense field from pre-list schema
	// versions. Migration folds it into Offenses and clears it.
	LegacyOffense string `bson:"offense,omitempty" json:"offense,omitempty"`
}

// Vehicle is a vehicle attached to the incident.
type Vehicle struct {
	ID    string `bson:"id" json:"id"`
	Plate string `bson:"plate" json:"plate"`
	VIN   string `bson:"vin" json:"vin"`
	Year  string `bson:"year" json:"year"`
	Make  string `bson:"make" json:"make"`
	Model string `bson:"model" json:"model"`
	Color string `bson:"color" json:"color"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Report is one drafting session's full state: incident details, involved
// parties, vehicles and every narrative block. No entity inside it is shared
// with another report.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID  string             `bson:"sessionId" json:"sessionId"`
	Incident   IncidentDetails    `bson:"incident" json:"incident"`
	Names      Names              `bson:"names" json:"names"`
	Vehicles   []Vehicle          `bson:"vehicles" json:"vehicles"`
	Narratives Narratives         `bson:"narratives" json:"narratives"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AddOffense appends an offense to the incident, assigning a stable id if the
// caller did not provide one, and returns a pointer to the stored entry.
func (r *Report) AddOffense(o Offense) *Offense {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	r.Incident.Offenses = append(r.Incident.Offenses, o)
	return &r.Incident.Offenses[len(r.Incident.Offenses)-1]
}

// OffenseByID returns the incident offense with the given id, or nil.
func (r *Report) OffenseByID(id string) *Offense {
	for i := range r.Incident.Offenses {
		if r.Incident.Offenses[i].ID == id {
			return &r.Incident.Offenses[i]
		}
	}
	return nil
}

// RemoveOffense deletes an offense from the incident and cascades in the same
// update: party links and dispositions referencing it are removed, and its
// offense-summary stub is dropped.
func (r *Report) RemoveOffense(id string) {
	out := r.Incident.Offenses[:0]
	for _, o := range r.Incident.Offenses {
		if o.ID != id {
			out = append(out, o)
		}
	}
	r.Incident.Offenses = out
	r.Names.RemoveOffenseLinks(id)
	delete(r.Narratives.OffenseSummaries, id)
}
