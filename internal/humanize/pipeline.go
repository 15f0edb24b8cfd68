package humanize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Engine applies the rewrite pipeline with a fixed rule set. An Engine is
// immutable and safe for concurrent use; every method allocates new output
// strings and never touches shared state.
type Engine struct {
	rules      *Rules
	aggressive bool
}

// NewEngine creates an engine over the given rule tables. A nil rules value
// selects the built-in defaults. When aggressive is true the engine also
// rewrites formal verb phrases into contractions.
func NewEngine(rules *Rules, aggressive bool) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules, aggressive: aggressive}
}

// Apply runs the full pipeline over text: punctuation normalization, word
// replacement, hedge removal, the content-type specializer, contractions
// (aggressive mode only), then whitespace cleanup. Empty or whitespace-only
// input is returned unchanged.
func (e *Engine) Apply(text string, ct ContentType) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	text = normalizePunctuation(text)
	text = e.replaceWords(text)
	text = e.removeHedges(text)

	switch ct {
	case ContentTitle:
		text = e.fixTitle(text)
	case ContentDescription:
		text = e.fixDescription(text)
	}

	if e.aggressive {
		text = e.addContractions(text)
	}

	text = normalizeWhitespace(text)
	return strings.TrimSpace(text)
}

// Apply runs the full pipeline with the built-in rule tables.
func Apply(text string, ct ContentType, aggressive bool) string {
	return NewEngine(nil, aggressive).Apply(text, ct)
}

// HumanizeTitle rewrites a video title. Titles always use aggressive mode.
func HumanizeTitle(title string) string {
	return Apply(title, ContentTitle, true)
}

// HumanizeDescription rewrites a video description.
func HumanizeDescription(description string) string {
	return Apply(description, ContentDescription, false)
}

// HumanizeTags rewrites a tag list. Tags get only the base pipeline.
func HumanizeTags(tags string) string {
	return Apply(tags, ContentTags, false)
}

// ParseContentType parses a user-supplied content type string.
func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(strings.ToLower(s))
	switch ct {
	case ContentGeneral, ContentTitle, ContentDescription, ContentTags:
		return ct, nil
	}
	return "", fmt.Errorf("unknown content type %q (must be general, title, description, or tags)", s)
}

const emDash = "—"

var (
	bangRunRe     = regexp.MustCompile(`!{2,}`)
	questionRunRe = regexp.MustCompile(`\?{2,}`)
	ellipsisRunRe = regexp.MustCompile(`\.{3,}`)
)

// normalizePunctuation splits dash-joined clauses into separate capitalized
// sentences and collapses repeated terminal punctuation. Exactly three dots
// stay as an ellipsis.
func normalizePunctuation(text string) string {
	if strings.Contains(text, emDash) {
		var kept []string
		for i, part := range strings.Split(text, emDash) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if i > 0 {
				part = upperFirst(part)
			}
			kept = append(kept, part)
		}
		text = strings.Join(kept, ". ")
	}

	text = bangRunRe.ReplaceAllString(text, "!")
	text = questionRunRe.ReplaceAllString(text, "?")
	text = ellipsisRunRe.ReplaceAllString(text, "...")
	return text
}

// replaceWords applies the replacement table in order. Later rules see the
// output of earlier ones.
func (e *Engine) replaceWords(text string) string {
	for _, rule := range e.rules.Replacements {
		text = rule.Pattern.ReplaceAllString(text, rule.Replacement)
	}
	return text
}

// removeHedges deletes hedging phrases wherever they occur, re-capitalizing
// sentence starts the removals expose.
func (e *Engine) removeHedges(text string) string {
	text = removeSpans(text, e.rules.Hedges)
	return upperFirst(strings.TrimSpace(text))
}

var titlePunctRunRe = regexp.MustCompile(`[!?]{2,}`)

// fixTitle applies title-mode rules. The length thresholds keep short
// titles untouched so stripping cannot hollow them out.
func (e *Engine) fixTitle(text string) string {
	text = titlePunctRunRe.ReplaceAllString(text, "")

	if utf8.RuneCountInString(text) > titleBuzzwordMinLen {
		for _, re := range e.rules.TitleBuzzwords {
			text = re.ReplaceAllString(text, "")
		}
	}

	if utf8.RuneCountInString(text) > titleSuperlativeMinLen {
		for _, rule := range e.rules.TitleSuperlatives {
			text = rule.Pattern.ReplaceAllString(text, rule.Replacement)
		}
	}

	return text
}

// fixDescription strips formulaic intros (start of text only) and
// subscribe calls-to-action (anywhere), then re-capitalizes the remainder.
func (e *Engine) fixDescription(text string) string {
	for _, re := range e.rules.IntroPhrases {
		text = re.ReplaceAllString(text, "")
	}
	text = removeSpans(text, e.rules.SubscribeCTAs)
	return upperFirst(strings.TrimSpace(text))
}

// addContractions expands the formal-to-casual table. Aggressive mode only,
// since it changes tone.
func (e *Engine) addContractions(text string) string {
	for _, rule := range e.rules.Contractions {
		text = rule.Pattern.ReplaceAllString(text, rule.Replacement)
	}
	return text
}

// The extension guard: after a period, a run of at most this many lowercase
// letters is assumed to be a file extension or abbreviation ("file.txt",
// "e.g.") and no space is inserted. Deliberately approximate.
const extensionGuardLen = 4

var (
	multiSpaceRe          = regexp.MustCompile(` {2,}`)
	spaceBeforePunctRe    = regexp.MustCompile(`\s+([!?.,;])\s+`)
	spaceBeforePunctEOLRe = regexp.MustCompile(`(?m)\s+([!?.,;])$`)
	punctLetterRunRe      = regexp.MustCompile(`([.,!?;:])([A-Za-z]+)`)
	lowerPrefixRe         = regexp.MustCompile(`^[a-z]+`)
	multiNewlineRe        = regexp.MustCompile(`\n{3,}`)
)

// normalizeWhitespace collapses redundant spacing and fixes spacing around
// punctuation, guarding file-extension-like tokens.
func normalizeWhitespace(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")

	// "word !" becomes "word!", mid-line and at line ends.
	text = spaceBeforePunctRe.ReplaceAllString(text, "$1 ")
	text = spaceBeforePunctEOLRe.ReplaceAllString(text, "$1")

	text = punctLetterRunRe.ReplaceAllStringFunc(text, func(m string) string {
		punct, run := m[:1], m[1:]
		// The guard keys off the run of lowercase letters directly after
		// the period, so "file.txtXml" stays glued just like "file.txt".
		if punct == "." {
			if p := lowerPrefixRe.FindString(run); p != "" && len(p) <= extensionGuardLen {
				return m
			}
		}
		return punct + " " + run
	})

	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	return text
}

// removeSpans deletes every match of every rule from text. When a removed
// span sat at a sentence start, the letter now occupying that position is
// uppercased so the sentence still reads correctly.
func removeSpans(text string, rules []*regexp.Regexp) string {
	for _, re := range rules {
		for {
			loc := re.FindStringIndex(text)
			if loc == nil {
				break
			}
			atSentenceStart := sentenceStart(text[:loc[0]])
			text = text[:loc[0]] + text[loc[1]:]
			if atSentenceStart {
				text = upperFirstAt(text, loc[0])
			}
		}
	}
	return text
}

// sentenceStart reports whether text ending at this prefix leaves the next
// character at the start of a sentence.
func sentenceStart(prefix string) bool {
	trimmed := strings.TrimRight(prefix, " \t\n")
	if trimmed == "" {
		return true
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// upperFirst uppercases the first rune of s when it is lowercase.
func upperFirst(s string) string {
	return upperFirstAt(s, 0)
}

// upperFirstAt uppercases the rune starting at byte offset i when it is
// lowercase. Offsets past the end of s are ignored.
func upperFirstAt(s string, i int) string {
	if i < 0 || i >= len(s) {
		return s
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return s[:i] + string(unicode.ToUpper(r)) + s[i+size:]
}
