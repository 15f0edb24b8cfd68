package humanize

import "regexp"

// ContentType selects which specialized rule set the pipeline applies.
type ContentType string

const (
	// ContentGeneral applies the standard pipeline with no specialization.
	ContentGeneral ContentType = "general"
	// ContentTitle applies title-specific rules (hype words, punctuation runs).
	ContentTitle ContentType = "title"
	// ContentDescription applies description-specific rules (intro phrases,
	// subscribe calls-to-action).
	ContentDescription ContentType = "description"
	// ContentTags applies no specialization beyond the base pipeline.
	ContentTags ContentType = "tags"
)

// ReplaceRule rewrites every match of Pattern with Replacement.
// The replacement is inserted verbatim regardless of the matched casing.
type ReplaceRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Tell represents one detected AI telltale sign.
type Tell struct {
	Category string `json:"category"`
	Match    string `json:"match,omitempty"`
	Count    int    `json:"count"`
}

// Rules bundles the ordered rule tables used by the pipeline. A Rules value
// is immutable after construction and safe for concurrent use.
type Rules struct {
	// Replacements maps AI-flavored words and phrases to plainer
	// alternatives. Order matters: high-priority tells come before generic
	// transitions so earlier rules are not shadowed by later ones.
	Replacements []ReplaceRule

	// Hedges are filler phrases deleted wherever they occur.
	Hedges []*regexp.Regexp

	// IntroPhrases are description-mode openers deleted only at the start
	// of the text.
	IntroPhrases []*regexp.Regexp

	// SubscribeCTAs are description-mode calls-to-action deleted wherever
	// they occur.
	SubscribeCTAs []*regexp.Regexp

	// TitleBuzzwords are all-caps hype words stripped from titles longer
	// than titleBuzzwordMinLen runes. Matching is case-sensitive.
	TitleBuzzwords []*regexp.Regexp

	// TitleSuperlatives collapse "<superlative> guide" to "guide" in titles
	// longer than titleSuperlativeMinLen runes.
	TitleSuperlatives []ReplaceRule

	// Contractions expand formal verb phrases into contractions. Applied
	// only in aggressive mode.
	Contractions []ReplaceRule
}
