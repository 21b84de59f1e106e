// Package narrative is the report text engine: it derives the auto-generated
// narrative fields from structured incident details, interpolates bracketed
// placeholders, and assembles the final documents from the enabled blocks.
package narrative

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/linesmerrill/police-report-writer-api/models"
)

// Derive recomputes every auto-generated narrative field on the report,
// honoring edit locks: a field whose Edited flag is true is never touched,
// and Derive itself never changes any Edited flag. Re-running with unchanged
// inputs yields byte-identical output.
func Derive(r *models.Report) {
	pub, intro := openingSentences(&r.Incident)
	if !r.Narratives.Public.Edited {
		r.Narratives.Public.Text = pub
	}
	if !r.Narratives.Introduction.Edited {
		r.Narratives.Introduction.Text = intro
	}
	syncOffenseSummaries(r)
	syncBodyCam(r)
}

// syncOffenseSummaries keeps one summary stub per incident offense, keyed
// strictly by offense id so duplicate literals keep independent summaries.
func syncOffenseSummaries(r *models.Report) {
	if r.Narratives.OffenseSummaries == nil {
		r.Narratives.OffenseSummaries = map[string]models.Section{}
	}
	live := map[string]bool{}
	for _, o := range r.Incident.Offenses {
		live[o.ID] = true
		if _, ok := r.Narratives.OffenseSummaries[o.ID]; !ok {
			r.Narratives.OffenseSummaries[o.ID] = models.Section{Enabled: true}
		}
	}
	for id := range r.Narratives.OffenseSummaries {
		if !live[id] {
			delete(r.Narratives.OffenseSummaries, id)
		}
	}
}

// syncBodyCam switches both body-camera sections to the "initiated" variant
// while how-received is initiated, and back to the default once it is not.
// The switch only fires while the field is unedited, and the revert only
// fires while the text still equals the fixed initiated variant.
func syncBodyCam(r *models.Report) {
	for _, bc := range []*models.Section{&r.Narratives.BodyCam1, &r.Narratives.BodyCam2} {
		if bc.Edited {
			continue
		}
		if r.Incident.HowReceived == models.HowReceivedInitiated {
			bc.Text = bodyCamInitiated
		} else if bc.Text == bodyCamInitiated || bc.Text == "" {
			bc.Text = defaultBodyCam
		}
	}
}

// MergeCallTypeSubtype combines the call type and subtype into one lowercase
// descriptive phrase. The subtype is stripped to everything after its first
// hyphen; if the call type's words appear in order at the tail of that
// phrase, the phrase stands alone, otherwise the subtype words not already in
// the call type are appended in subtype order. Words split on whitespace
// only.
func MergeCallTypeSubtype(callType, subtype string) string {
	ct := strings.ToLower(strings.TrimSpace(callType))
	st := strings.ToLower(strings.TrimSpace(subtype))
	if st == "" {
		return ct
	}
	if i := strings.Index(st, "-"); i >= 0 {
		st = strings.TrimSpace(st[i+1:])
	}
	if st == "" {
		return ct
	}
	ctWords := strings.Fields(ct)
	stWords := strings.Fields(st)
	if endsWithSubsequence(stWords, ctWords) {
		return strings.Join(stWords, " ")
	}
	present := map[string]bool{}
	for _, w := range ctWords {
		present[w] = true
	}
	out := ctWords
	for _, w := range stWords {
		if !present[w] {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// endsWithSubsequence reports whether want appears, in order, within have,
// with the final words of both aligned.
func endsWithSubsequence(have, want []string) bool {
	if len(want) == 0 || len(have) == 0 {
		return false
	}
	if have[len(have)-1] != want[len(want)-1] {
		return false
	}
	i := 0
	for _, w := range have {
		if i < len(want) && w == want[i] {
			i++
		}
	}
	return i == len(want)
}

var blockAddress = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// AddressParts splits an address into block number, street, and display
// title. "A / B" is an intersection; "<number> <rest>" floors the number to
// the nearest hundred; anything else passes through with a sentinel block.
func AddressParts(address string) (block, street, title string) {
	addr := strings.TrimSpace(address)
	if strings.Contains(addr, "/") {
		parts := strings.SplitN(addr, "/", 2)
		a := strings.TrimSpace(parts[0])
		b := strings.TrimSpace(parts[1])
		return "", "", fmt.Sprintf("the intersection of %s and %s", a, b)
	}
	if m := blockAddress.FindStringSubmatch(addr); m != nil {
		n, _ := strconv.Atoi(m[1])
		blk := strconv.Itoa(n / 100 * 100)
		return blk, m[2], fmt.Sprintf("the %s block of %s", blk, m[2])
	}
	return "___", addr, addr
}

// openingSentences produces the first sentence of the public narrative and of
// the introduction for the current incident details.
func openingSentences(inc *models.IncidentDetails) (pub, intro string) {
	_, _, blockTitle := AddressParts(inc.Address)
	// The public narrative cites the block, the introduction the exact address.
	pubLoc := locationPhrase(inc, blockTitle)
	introLoc := locationPhrase(inc, strings.TrimSpace(inc.Address))
	call := MergeCallTypeSubtype(inc.CallType, inc.Subtype)
	when := whenPhrase(inc)

	switch inc.HowReceived {
	case models.HowReceivedFlaggedDown:
		pub = fmt.Sprintf("%s officers were flagged down at %s in reference to a %s.", when, pubLoc, call)
		intro = fmt.Sprintf("%s I, Officer %s, was flagged down at %s in reference to a %s.", when, inc.Officer, introLoc, call)
	case models.HowReceivedInitiated:
		pub, intro = initiatedSentences(inc, when, pubLoc, introLoc, call)
	default:
		pub = fmt.Sprintf("%s officers were dispatched to %s in reference to a %s call.", when, pubLoc, call)
		intro = fmt.Sprintf("%s I, Officer %s, was dispatched to %s in reference to a %s call.", when, inc.Officer, introLoc, call)
	}
	return pub, intro
}

// initiatedSentences holds the phrase library for self-initiated activity:
// follow-ups, consensual subject and vehicle contacts, the fixed stop and
// check-out call-type lists, and a generic fallback.
func initiatedSentences(inc *models.IncidentDetails, when, pubLoc, introLoc, call string) (pub, intro string) {
	reason := ""
	if strings.TrimSpace(inc.ReasonForStop) != "" {
		reason = fmt.Sprintf(" The reason for the stop was %s.", strings.TrimSpace(inc.ReasonForStop))
	}
	// The stop and check-out lists key off the bare call type, not the merged
	// phrase, so a subtype cannot move a call between branches.
	base := strings.ToLower(strings.TrimSpace(inc.CallType))

	switch {
	case strings.Contains(call, "follow"):
		pub = fmt.Sprintf("%s officers conducted a follow up investigation at %s.", when, pubLoc)
		intro = fmt.Sprintf("%s I, Officer %s, conducted a follow up investigation at %s in reference to this case.", when, inc.Officer, introLoc)
	case inc.Consensual && strings.Contains(call, "vehicle"):
		pub = fmt.Sprintf("%s officers initiated a consensual contact with the occupants of a vehicle at %s.", when, pubLoc)
		intro = fmt.Sprintf("%s I, Officer %s, initiated a consensual contact with the occupants of a vehicle at %s.", when, inc.Officer, introLoc)
	case inc.Consensual:
		pub = fmt.Sprintf("%s officers initiated a consensual contact with a subject at %s.", when, pubLoc)
		intro = fmt.Sprintf("%s I, Officer %s, initiated a consensual contact with a subject at %s.", when, inc.Officer, introLoc)
	case stopCallTypes[base]:
		pub = fmt.Sprintf("%s officers initiated a %s at %s.%s", when, call, pubLoc, reason)
		intro = fmt.Sprintf("%s I, Officer %s, initiated a %s at %s.%s", when, inc.Officer, call, introLoc, reason)
	case checkOutCallTypes[base]:
		pub = fmt.Sprintf("%s officers checked out at %s in reference to a %s.", when, pubLoc, call)
		intro = fmt.Sprintf("%s I, Officer %s, checked out at %s in reference to a %s.", when, inc.Officer, introLoc, call)
	default:
		pub = fmt.Sprintf("%s officers initiated a %s at %s.", when, call, pubLoc)
		intro = fmt.Sprintf("%s I, Officer %s, initiated a %s at %s.", when, inc.Officer, call, introLoc)
	}
	return pub, intro
}

// whenPhrase renders the incident timeframe: either the single date/time or
// the from/to range when one was entered.
func whenPhrase(inc *models.IncidentDetails) string {
	if inc.FromDate != "" && inc.ToDate != "" {
		return fmt.Sprintf("Between %s at approximately %s and %s at approximately %s,",
			inc.FromDate, inc.FromTime, inc.ToDate, inc.ToTime)
	}
	return fmt.Sprintf("On %s, at approximately %s,", inc.Date, inc.Time)
}

// locationPhrase prefixes the business name when the incident happened at a
// business.
func locationPhrase(inc *models.IncidentDetails, addr string) string {
	if inc.IsBusiness && strings.TrimSpace(inc.BusinessName) != "" {
		return fmt.Sprintf("%s, located at %s", strings.TrimSpace(inc.BusinessName), addr)
	}
	return addr
}
