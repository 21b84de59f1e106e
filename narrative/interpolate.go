package narrative

import (
	"regexp"
	"strings"

	"github.com/linesmerrill/police-report-writer-api/models"
)

// Token kinds understood by the interpolator.
const (
	TokenName   = "name"
	TokenChoice = "choice"
	TokenFree   = "free"
)

// Token is one bracketed placeholder found in section text. Text is the
// content between the brackets exactly as written; it doubles as the value
// map key, so two occurrences of the same token text within a section share
// one stored value.
type Token struct {
	Text    string   `json:"text"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
}

// tokenPattern matches [TOKEN] placeholders. The character class bounds what
// a token may contain so stray brackets in prose are not treated as
// placeholders.
var tokenPattern = regexp.MustCompile(`\[([A-Za-z0-9 #:.,/']+)\]`)

// ScanTokens returns each distinct placeholder in text, in first-seen order.
func ScanTokens(text string) []Token {
	seen := map[string]bool{}
	var tokens []Token
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		inner := m[1]
		if seen[inner] {
			continue
		}
		seen[inner] = true
		tokens = append(tokens, classifyToken(inner))
	}
	return tokens
}

func classifyToken(inner string) Token {
	if strings.EqualFold(strings.TrimSpace(inner), "NAME") {
		return Token{Text: inner, Kind: TokenName}
	}
	if strings.Contains(inner, "/") {
		parts := strings.Split(inner, "/")
		opts := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				opts = append(opts, p)
			}
		}
		return Token{Text: inner, Kind: TokenChoice, Options: opts}
	}
	return Token{Text: inner, Kind: TokenFree}
}

// Interpolate resolves every placeholder in text against a section's value
// map. An unset NAME token exports as empty string so placeholder syntax
// never leaks into a finished document; any other unset token keeps its
// bracket text so the gap stays visible in the draft.
func Interpolate(text string, values map[string]string) string {
	for _, tok := range ScanTokens(text) {
		val, ok := values[tok.Text]
		if !ok || strings.TrimSpace(val) == "" {
			if tok.Kind != TokenName {
				continue
			}
			text = removeToken(text, tok.Text)
			continue
		}
		// Token text is user-typed, so it must be escaped before compiling.
		pattern := regexp.MustCompile(regexp.QuoteMeta("[" + tok.Text + "]"))
		text = pattern.ReplaceAllLiteralString(text, val)
	}
	return text
}

// removeToken deletes every occurrence of a token resolving to empty string,
// absorbing the doubled space a mid-sentence removal would leave behind. Only
// spacing adjacent to the token is touched; spacing the user typed elsewhere
// stands.
func removeToken(text, tokenText string) string {
	site := regexp.QuoteMeta("[" + tokenText + "]")
	padded := regexp.MustCompile(" " + site + " ")
	for {
		collapsed := padded.ReplaceAllLiteralString(text, " ")
		if collapsed == text {
			break
		}
		text = collapsed
	}
	return regexp.MustCompile(site).ReplaceAllLiteralString(text, "")
}

// globalTokenOrder fixes the substitution order for the report-level pass.
var globalTokenOrder = []string{
	"DATE", "TIME", "OFFICER",
	"SUSPECT", "VICTIM", "COMPLAINANT", "WITNESS",
	"ADDRESS", "BLOCK", "STREET", "LOCATION", "CALLTYPE",
	"OFFENSES", "OFFENSE", "CITATION", "STATUTE", "LEVEL",
}

// GlobalTokenValues computes the report-level semantic token values from the
// current report state. These are independent of the per-section value maps.
func GlobalTokenValues(r *models.Report) map[string]string {
	block, street, title := AddressParts(r.Incident.Address)

	vals := map[string]string{
		"DATE":        r.Incident.Date,
		"TIME":        r.Incident.Time,
		"OFFICER":     r.Incident.Officer,
		"SUSPECT":     joinNames(r.Names.Suspects),
		"VICTIM":      joinNames(r.Names.Victims),
		"COMPLAINANT": joinNames(r.Names.Complainants),
		"WITNESS":     joinNames(r.Names.Witnesses),
		"ADDRESS":     strings.TrimSpace(r.Incident.Address),
		"BLOCK":       block,
		"STREET":      street,
		"LOCATION":    title,
		"CALLTYPE":    MergeCallTypeSubtype(r.Incident.CallType, r.Incident.Subtype),
		"OFFENSES":    joinOffenseLiterals(r.Incident.Offenses),
	}
	if len(r.Incident.Offenses) > 0 {
		o := r.Incident.Offenses[0]
		vals["OFFENSE"] = o.Literal
		vals["CITATION"] = o.Citation
		vals["STATUTE"] = o.Statute
		vals["LEVEL"] = o.Level
	}
	return vals
}

// ApplyGlobalTokens expands stacked offense lines and substitutes the fixed
// report-level tokens. Expansion runs first so the single-offense pass
// operates on already-expanded lines. Tokens whose computed value is empty
// are left in place.
func ApplyGlobalTokens(text string, r *models.Report) string {
	text = expandOffenseLines(text, r.Incident.Offenses)
	vals := GlobalTokenValues(r)
	for _, name := range globalTokenOrder {
		v := vals[name]
		if v == "" {
			continue
		}
		text = strings.ReplaceAll(text, "["+name+"]", v)
	}
	return text
}

// expandOffenseLines repeats any line containing [OFFENSE] once per offense
// when the incident carries more than one, substituting that offense's
// fields, in offense list order.
func expandOffenseLines(text string, offenses []models.Offense) string {
	if len(offenses) < 2 {
		return text
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.Contains(line, "[OFFENSE]") {
			out = append(out, line)
			continue
		}
		for _, o := range offenses {
			l := strings.ReplaceAll(line, "[OFFENSE]", o.Literal)
			l = strings.ReplaceAll(l, "[CITATION]", o.Citation)
			l = strings.ReplaceAll(l, "[STATUTE TITLE]", StatuteTitle(o))
			l = strings.ReplaceAll(l, "[STATUTE]", o.Statute)
			l = strings.ReplaceAll(l, "[LEVEL]", o.Level)
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// StatuteTitle derives a display title for an offense, preferring the first
// sentence of the full statute text over the raw literal.
func StatuteTitle(o models.Offense) string {
	if o.StatuteText != "" {
		if i := strings.IndexAny(o.StatuteText, ".\n"); i > 0 {
			return strings.TrimSpace(o.StatuteText[:i])
		}
		return strings.TrimSpace(o.StatuteText)
	}
	return titleCase(o.Literal)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func joinNames(entries []models.NameEntry) string {
	var names []string
	for _, e := range entries {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return strings.Join(names, ", ")
}

func joinOffenseLiterals(offenses []models.Offense) string {
	literals := make([]string, 0, len(offenses))
	for _, o := range offenses {
		literals = append(literals, o.Literal)
	}
	return strings.Join(literals, ", ")
}
