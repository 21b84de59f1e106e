package models

// Section is one narrative block: its text, an edit lock that stops automatic
// regeneration once the user has touched it, and an enable flag that controls
// whether the assembly pipeline includes it.
type Section struct {
	Text    string `bson:"text" json:"text"`
	Edited  bool   `bson:"edited" json:"edited"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}

// List styles for optional-section conviction lists.
const (
	ListStyleBullet = "bullet"
	ListStyleDash   = "dash"
	ListStyleNumber = "number"
)

// OptionalSection is a user-toggleable narrative block with its own template,
// placeholder value map and edit state. Values are keyed by the full token
// text as written between the brackets; the map is per-section, never shared
// across sections.
type OptionalSection struct {
	ID          string            `bson:"id" json:"id"`
	Label       string            `bson:"label" json:"label"`
	Enabled     bool              `bson:"enabled" json:"enabled"`
	Text        string            `bson:"text" json:"text"`
	Text2       string            `bson:"text2,omitempty" json:"text2,omitempty"`
	Values      map[string]string `bson:"values" json:"values"`
	Edited      bool              `bson:"edited" json:"edited"`
	Convictions []string          `bson:"convictions,omitempty" json:"convictions,omitempty"`
	ListStyle   string            `bson:"listStyle,omitempty" json:"listStyle,omitempty"`
}

// Anchor positions for custom paragraphs.
const (
	PositionAfterArrival    = "after-arrival"
	PositionAfterStatements = "after-statements"
	PositionAfterProperty   = "after-property"
)

// CustomParagraph is free text anchored at one of three fixed points in the
// investigative narrative. Paragraphs sharing a position keep insertion order.
type CustomParagraph struct {
	ID       string `bson:"id" json:"id"`
	Position string `bson:"position" json:"position"`
	Text     string `bson:"text" json:"text"`
}

// Narratives holds every narrative block of a report: the auto-derived
// top-level texts, the fixed boilerplate sections, the ordered optional
// sections and custom paragraphs, and the probable-cause statement.
type Narratives struct {
	Public       Section `bson:"public" json:"public"`
	Introduction Section `bson:"introduction" json:"introduction"`
	NamesBlock   Section `bson:"namesBlock" json:"namesBlock"`
	BodyCam1     Section `bson:"bodyCam1" json:"bodyCam1"`
	CallNotes    Section `bson:"callNotes" json:"callNotes"`
	Arrival      Section `bson:"arrival" json:"arrival"`
	Statements   Section `bson:"statements" json:"statements"`
	Property     Section `bson:"property" json:"property"`
	Conclusion   Section `bson:"conclusion" json:"conclusion"`
	BodyCam2     Section `bson:"bodyCam2" json:"bodyCam2"`

	// OffenseSummaries is keyed strictly by offense id, never literal, so two
	// offenses with the same literal keep independent summaries.
	OffenseSummaries      map[string]Section `bson:"offenseSummaries" json:"offenseSummaries"`
	OffenseSummaryEnabled bool               `bson:"offenseSummaryEnabled" json:"offenseSummaryEnabled"`

	OptionalSections []OptionalSection `bson:"optionalSections" json:"optionalSections"`
	CustomParagraphs []CustomParagraph `bson:"customParagraphs" json:"customParagraphs"`

	// ProbableCause is free-editable and only auto-populated on arrest
	// disposition transitions.
	ProbableCause string `bson:"probableCause" json:"probableCause"`
}

// OptionalSectionByID returns the optional section with the given id, or nil.
func (n *Narratives) OptionalSectionByID(id string) *OptionalSection {
	for i := range n.OptionalSections {
		if n.OptionalSections[i].ID == id {
			return &n.OptionalSections[i]
		}
	}
	return nil
}

// CustomParagraphsAt returns the paragraphs anchored at a position, in
// insertion order.
func (n *Narratives) CustomParagraphsAt(position string) []CustomParagraph {
	var out []CustomParagraph
	for _, p := range n.CustomParagraphs {
		if p.Position == position {
			out = append(out, p)
		}
	}
	return out
}

// Document is the set of final rendered outputs for a report.
type Document struct {
	Investigative string `json:"investigative"`
	Public        string `json:"public"`
	ProbableCause string `json:"probableCause"`
}
