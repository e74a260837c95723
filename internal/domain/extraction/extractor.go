package extraction

import (
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"skill-gap/internal/domain/taxonomy"
)

const (
	signalWindow  = 60
	contextWindow = 40

	fuzzyMinTermLen       = 4
	fuzzyShortDistanceMax = 1
	fuzzyLongDistanceMax  = 2
	fuzzyLongTermLen      = 8
)

var (
	experiencePhraseRe = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience\s+(?:in|with)\s+)?([a-z0-9+#./\- ]{2,40})`)
	skillPhraseRe      = regexp.MustCompile(`(?i)(?:proficient|experienced|skilled|expertise)\s+(?:in|with)\s+([a-z0-9+#./\- ]{2,40})`)
	tokenRe            = regexp.MustCompile(`[a-z0-9+#.]+`)
)

type indexedTerm struct {
	skillID uuid.UUID
	text    string
	method  Method
}

// Extractor scans normalized text against the skill taxonomy. It holds only
// read-only state derived from the taxonomy and is safe for concurrent use.
type Extractor struct {
	tax    *taxonomy.Taxonomy
	logger *log.Logger
	terms  []indexedTerm
}

func NewExtractor(tax *taxonomy.Taxonomy, logger *log.Logger) (*Extractor, error) {
	if tax == nil || tax.Len() == 0 {
		return nil, taxonomy.ErrUnavailable
	}
	if logger == nil {
		logger = log.Default()
	}

	var terms []indexedTerm
	for _, s := range tax.Skills() {
		terms = append(terms, indexedTerm{skillID: s.ID, text: strings.ToLower(s.Name), method: MethodExact})
		for _, a := range s.Aliases {
			a = strings.ToLower(strings.TrimSpace(a))
			if a == "" {
				continue
			}
			terms = append(terms, indexedTerm{skillID: s.ID, text: a, method: MethodAlias})
		}
	}

	return &Extractor{tax: tax, logger: logger, terms: terms}, nil
}

type mention struct {
	skillID uuid.UUID
	method  Method
	pos     int
	length  int
	years   float64
	senior  bool
}

// Extract produces one deduplicated Record per skill found in the text.
// Matching runs in order: exact phrase, alias table, fuzzy edit distance,
// then contextual phrases. A taxonomy skill absent from the text is simply
// absent from the output.
func (e *Extractor) Extract(text string) []Record {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var mentions []mention

	for _, t := range e.terms {
		for _, pos := range findOccurrences(lower, t.text) {
			mentions = append(mentions, e.newMention(lower, t.skillID, t.method, pos, len(t.text)))
		}
	}

	matched := make(map[uuid.UUID]bool, len(mentions))
	for _, m := range mentions {
		matched[m.skillID] = true
	}

	mentions = append(mentions, e.fuzzyMentions(lower, matched)...)
	mentions = append(mentions, e.contextualMentions(lower, matched)...)

	return e.fold(text, mentions)
}

func (e *Extractor) newMention(lower string, id uuid.UUID, method Method, pos, length int) mention {
	window := clampSlice(lower, pos-signalWindow, pos+length+signalWindow)
	return mention{
		skillID: id,
		method:  method,
		pos:     pos,
		length:  length,
		years:   yearsNear(window),
		senior:  seniorityNear(window),
	}
}

// fuzzyMentions catches near-misses (typos, close spellings) for skills that
// had no direct or alias match.
func (e *Extractor) fuzzyMentions(lower string, matched map[uuid.UUID]bool) []mention {
	var out []mention

	tokens := tokenRe.FindAllStringIndex(lower, -1)
	for _, s := range e.tax.Skills() {
		if matched[s.ID] {
			continue
		}
		name := strings.ToLower(s.Name)
		if len(name) < fuzzyMinTermLen {
			continue
		}
		maxDist := fuzzyShortDistanceMax
		if len(name) >= fuzzyLongTermLen {
			maxDist = fuzzyLongDistanceMax
		}
		for _, span := range tokens {
			tok := lower[span[0]:span[1]]
			if len(tok) < fuzzyMinTermLen || tok == name {
				continue
			}
			if abs(len(tok)-len(name)) > maxDist {
				continue
			}
			if levenshtein.ComputeDistance(tok, name) <= maxDist {
				out = append(out, e.newMention(lower, s.ID, MethodFuzzy, span[0], span[1]-span[0]))
				matched[s.ID] = true
				break
			}
		}
	}
	return out
}

// contextualMentions resolves skills implied by adjacent keyword patterns,
// e.g. "5 years of Python" or "proficient in SQL".
func (e *Extractor) contextualMentions(lower string, matched map[uuid.UUID]bool) []mention {
	var out []mention

	for _, idx := range experiencePhraseRe.FindAllStringSubmatchIndex(lower, -1) {
		years, _ := strconv.Atoi(lower[idx[2]:idx[3]])
		tail := lower[idx[4]:idx[5]]
		if s, pos, ok := e.resolvePhrase(tail); ok && !matched[s.ID] {
			m := e.newMention(lower, s.ID, MethodContextual, idx[4]+pos, len(s.Name))
			if m.years == 0 {
				m.years = float64(years)
			}
			out = append(out, m)
			matched[s.ID] = true
		}
	}

	for _, idx := range skillPhraseRe.FindAllStringSubmatchIndex(lower, -1) {
		tail := lower[idx[2]:idx[3]]
		if s, pos, ok := e.resolvePhrase(tail); ok && !matched[s.ID] {
			out = append(out, e.newMention(lower, s.ID, MethodContextual, idx[2]+pos, len(s.Name)))
			matched[s.ID] = true
		}
	}

	return out
}

// resolvePhrase tries decreasing token prefixes of a captured phrase against
// the taxonomy (name, then alias).
func (e *Extractor) resolvePhrase(tail string) (taxonomy.Skill, int, bool) {
	tail = strings.TrimSpace(tail)
	if tail == "" {
		return taxonomy.Skill{}, 0, false
	}
	fields := strings.Fields(tail)
	if len(fields) > 3 {
		fields = fields[:3]
	}
	for n := len(fields); n >= 1; n-- {
		candidate := strings.Join(fields[:n], " ")
		if s, ok := e.tax.Resolve(candidate); ok {
			return s, strings.Index(tail, fields[0]), true
		}
	}
	return taxonomy.Skill{}, 0, false
}

// fold deduplicates mentions into one record per skill: highest-confidence
// method wins, best proficiency estimate carries over.
func (e *Extractor) fold(text string, mentions []mention) []Record {
	if len(mentions) == 0 {
		return nil
	}

	grouped := make(map[uuid.UUID][]mention)
	for _, m := range mentions {
		grouped[m.skillID] = append(grouped[m.skillID], m)
	}

	out := make([]Record, 0, len(grouped))
	for id, ms := range grouped {
		skill, ok := e.tax.ByID(id)
		if !ok {
			continue
		}

		best := ms[0]
		var (
			years    float64
			senior   bool
			duration bool
		)
		for _, m := range ms {
			if methodRank(m.method) > methodRank(best.method) {
				best = m
			}
			if m.years > years {
				years = m.years
			}
			if m.years > 0 {
				duration = true
			}
			if m.senior {
				senior = true
			}
		}

		out = append(out, Record{
			Skill:       skill,
			Confidence:  confidenceFor(best.method, len(ms), duration),
			Method:      best.method,
			Context:     clampSlice(text, best.pos-contextWindow, best.pos+best.length+contextWindow),
			Proficiency: inferProficiency(years, senior),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Skill.Name < out[j].Skill.Name
	})
	return out
}

// findOccurrences locates whole-word occurrences of term. Boundary checks are
// manual so terms with non-word characters (C++, C#, Node.js) still match.
func findOccurrences(lower, term string) []int {
	if term == "" {
		return nil
	}
	var out []int
	for start := 0; start < len(lower); {
		i := strings.Index(lower[start:], term)
		if i < 0 {
			break
		}
		pos := start + i
		if boundaryBefore(lower, pos) && boundaryAfter(lower, pos+len(term)) {
			out = append(out, pos)
		}
		start = pos + len(term)
	}
	return out
}

func boundaryBefore(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	return !isWordByte(s[pos-1])
}

func boundaryAfter(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	return !isWordByte(s[pos])
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func clampSlice(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	for from > 0 && !utf8.RuneStart(s[from]) {
		from--
	}
	for to < len(s) && !utf8.RuneStart(s[to]) {
		to++
	}
	return s[from:to]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
