package models

// Disposition values link a party to the legal outcome for one offense.
const (
	DispositionArrest   = "ARREST"
	DispositionCitation = "CITATION"
	DispositionWarning  = "WARNING"
)

// StatuteCustom marks an offense that was typed in by hand rather than picked
// from the catalog.
const StatuteCustom = "CUSTOM"

// Offense is a single charged or investigated offense. On an incident the ID
// is a stable unique identifier independent of the catalog literal, so
// duplicate literals and custom entries can coexist. Catalog entries carry an
// empty ID.
type Offense struct {
	ID          string `bson:"id,omitempty" json:"id,omitempty"`
	Literal     string `bson:"literal" json:"literal"`
	Citation    string `bson:"citation" json:"citation"`
	Statute     string `bson:"statute" json:"statute"`
	Level       string `bson:"level" json:"level"`
	Elements    string `bson:"elements,omitempty" json:"elements,omitempty"`
	StatuteText string `bson:"statuteText,omitempty" json:"statuteText,omitempty"`
}
