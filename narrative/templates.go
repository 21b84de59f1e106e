package narrative

import "github.com/linesmerrill/police-report-writer-api/models"

// Fixed boilerplate for the always-present report sections.
const (
	defaultNamesBlock = "COMPLAINANT: [NAME]\nVICTIM: [NAME]\nSUSPECT: [NAME]\nWITNESS: [NAME]"

	defaultBodyCam   = "My body worn camera was activated during this investigation. Refer to the body worn camera footage for exact statements, exact sequence of events, and further details."
	bodyCamInitiated = "My body worn camera was activated prior to me initiating contact. Refer to the body worn camera footage for exact statements, exact sequence of events, and further details."

	defaultCallNotes  = "Prior to my arrival, I reviewed the call notes attached to this call for service."
	defaultArrival    = "When I arrived, I met with [NAME], who provided me with the following information."
	defaultStatements = "[NAME] provided a written statement in reference to this incident. Refer to the attached statement for exact details."
	defaultProperty   = "All property and evidence collected in reference to this case was submitted to the property room under this case number."
	defaultConclusion = "This case will be forwarded to the appropriate follow up unit for review. Nothing further at this time."

	narrativeHeader      = "NARRATIVE"
	offenseSummaryHeader = "OFFENSE SUMMARY"
)

// ArrestTemplate is the un-substituted arrest section boilerplate. The
// [OFFENSE] token is replaced with the comma-joined literals of every offense
// currently carrying an ARREST disposition, and the result is copied into the
// probable-cause statement.
const ArrestTemplate = "Based on the facts and circumstances outlined in this report, I developed probable cause to believe that the arrested subject committed the offense(s) of [OFFENSE]. The subject was taken into custody and transported to the magistrate's office, where [HE / SHE] was booked without incident."

// SectionArrest is the optional-section id the disposition recomputation
// targets.
const SectionArrest = "arrest"

// DefaultOptionalSections returns the canonical optional-section set, all
// disabled. This set is fixed at initialization; merge-on-load appends any
// newly introduced ids to persisted reports.
func DefaultOptionalSections() []models.OptionalSection {
	sections := []models.OptionalSection{
		{
			ID:    SectionArrest,
			Label: "Arrest",
			Text:  ArrestTemplate,
		},
		{
			ID:    "miranda",
			Label: "Miranda Warning",
			Text:  "I read [NAME] the Miranda warning from my department issued card. [NAME] stated that [HE / SHE] understood [HIS / HER] rights and agreed to speak with me.",
		},
		{
			ID:    "medical",
			Label: "Medical / EMS",
			Text:  "EMS unit [UNIT #] responded to the scene and evaluated [NAME]. [NAME] [WAS / WAS NOT] transported to [HOSPITAL] for further treatment.",
		},
		{
			ID:    "tow",
			Label: "Vehicle Tow",
			Text:  "The vehicle was towed from the scene by [TOW COMPANY] and transported to the impound lot. A tow slip was completed and filed with this report.",
		},
		{
			ID:    "photos",
			Label: "Photographs",
			Text:  "I took photographs of [THE SCENE / THE INJURIES / THE DAMAGE]. The photographs were uploaded to the digital evidence locker under this case number.",
		},
		{
			ID:    "victim-notice",
			Label: "Victim Notice",
			Text:  "I provided [NAME] with the victim information packet, which includes crime victim compensation and advocacy resources. [NAME] acknowledged receipt of the packet.",
		},
		{
			ID:          "family-violence",
			Label:       "Family Violence",
			Text:        "This incident is classified as family violence as defined by the Texas Family Code. The listed parties share a [DATING / FAMILY / HOUSEHOLD] relationship.",
			Text2:       "I confirmed the prior convictions listed below through a criminal history check:",
			ListStyle:   models.ListStyleDash,
			Convictions: nil,
		},
		{
			ID:    "dwi",
			Label: "DWI Investigation",
			Text:  "While speaking with [NAME], I observed signs of intoxication, including [SIGNS]. I administered the standardized field sobriety tests, which [NAME] performed as documented on the DWI supplement.",
			Text2: "Based on the totality of the circumstances, I determined that [NAME] was intoxicated and had lost the normal use of [HIS / HER] mental and physical faculties.",
		},
		{
			ID:    "pursuit",
			Label: "Pursuit",
			Text:  "The suspect fled and a pursuit was initiated in accordance with department policy. The pursuit was monitored by a supervisor and is documented on the pursuit supplement.",
		},
	}
	for i := range sections {
		sections[i].Values = map[string]string{}
	}
	return sections
}

// Call types phrased as stops versus check-outs when self-initiated.
var stopCallTypes = map[string]bool{
	"traffic stop":    true,
	"subject stop":    true,
	"pedestrian stop": true,
	"vehicle stop":    true,
	"bicycle stop":    true,
}

var checkOutCallTypes = map[string]bool{
	"suspicious vehicle": true,
	"suspicious person":  true,
	"parked vehicle":     true,
	"abandoned vehicle":  true,
	"open door":          true,
}
