package humanize

import (
	"fmt"
	"regexp"
	"sync"
)

// Title length thresholds are hard cutoffs: short titles are left alone so
// they are not stripped down to nothing.
const (
	titleBuzzwordMinLen    = 30
	titleSuperlativeMinLen = 40
)

var (
	defaultRulesOnce sync.Once
	defaultRules     *Rules
)

// DefaultRules returns the process-wide built-in rule tables. The value is
// built once and never mutated afterwards.
func DefaultRules() *Rules {
	defaultRulesOnce.Do(func() {
		defaultRules = buildDefaultRules()
	})
	return defaultRules
}

func buildDefaultRules() *Rules {
	return &Rules{
		Replacements: []ReplaceRule{
			// High-priority tells. These stay ahead of the generic
			// transitions so inflected forms resolve first.
			{regexp.MustCompile(`(?i)\bdelve(?:s|d)?\b`), "explore"},
			{regexp.MustCompile(`(?i)\bdelving\b`), "exploring"},
			{regexp.MustCompile(`(?i)\bleverage(?:s|d)?\b`), "use"},
			{regexp.MustCompile(`(?i)\bleveraging\b`), "using"},
			{regexp.MustCompile(`(?i)\butilize(?:s|d)?\b`), "use"},
			{regexp.MustCompile(`(?i)\butilizing\b`), "using"},

			// Overly formal transitions.
			{regexp.MustCompile(`(?i)\bmoreover\b`), "also"},
			{regexp.MustCompile(`(?i)\bfurthermore\b`), "also"},
			{regexp.MustCompile(`(?i)\badditionally\b`), "plus"},
			{regexp.MustCompile(`(?i)\bhence\b`), "so"},
			{regexp.MustCompile(`(?i)\bthus\b`), "so"},

			// Marketing buzzwords.
			{regexp.MustCompile(`(?i)\bunlock(?:s|ed|ing)?\b`), "discover"},
			{regexp.MustCompile(`(?i)\bharness(?:es|ed|ing)?\b`), "use"},
			{regexp.MustCompile(`(?i)\bseamless(?:ly)?\b`), "smooth"},
			{regexp.MustCompile(`(?i)\brobust\b`), "strong"},
			{regexp.MustCompile(`(?i)\bcomprehensive\b`), "complete"},

			// Stock gaming-content phrasing.
			{regexp.MustCompile(`(?i)\bembark(?:s|ed|ing)? on (?:a|an) (?:epic )?(?:journey|adventure)\b`), "start your adventure"},
			{regexp.MustCompile(`(?i)\bmaster the art of\b`), "learn"},
			{regexp.MustCompile(`(?i)\bunleash(?:s|ed|ing)? your potential\b`), "improve your skills"},
			{regexp.MustCompile(`(?i)\belevate(?:s|d)? your (?:gameplay|experience)\b`), "improve your game"},
		},

		Hedges: []*regexp.Regexp{
			regexp.MustCompile(`(?i)It'?s worth noting that `),
			regexp.MustCompile(`(?i)It is worth noting that `),
			regexp.MustCompile(`(?i)It'?s important to note that `),
			regexp.MustCompile(`(?i)It is important to note that `),
			regexp.MustCompile(`(?i)Generally speaking,? `),
			regexp.MustCompile(`(?i)In today'?s digital landscape,? `),
			regexp.MustCompile(`(?i)In the world of `),
			regexp.MustCompile(`(?i)As we (?:all )?know,? `),
			regexp.MustCompile(`(?i)At the end of the day,? `),
			regexp.MustCompile(`(?i)The fact of the matter is,? `),
		},

		IntroPhrases: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^In this video,? (?:we'?ll|we will|I'?ll|I will) `),
			regexp.MustCompile(`(?i)^Welcome to (?:this|my) (?:video|channel)[!.]?\s*`),
			regexp.MustCompile(`(?i)^Today,? (?:we'?re|we are|I'?m|I am) going to `),
			regexp.MustCompile(`(?i)^(?:Hey|Hi) (?:guys|everyone|folks),?\s*`),
		},

		SubscribeCTAs: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Don'?t forget to (?:like and )?subscribe[!.]?\s*`),
			regexp.MustCompile(`(?i)Make sure to (?:hit the )?(?:like button|subscribe)[!.]?\s*`),
			regexp.MustCompile(`(?i)Remember to (?:like and )?subscribe[!.]?\s*`),
		},

		TitleBuzzwords: []*regexp.Regexp{
			regexp.MustCompile(`\bEPIC\b\s*`),
			regexp.MustCompile(`\bINCREDIBLE\b\s*`),
			regexp.MustCompile(`\bAMAZING\b\s*`),
			regexp.MustCompile(`\bUNBELIEVABLE\b\s*`),
			regexp.MustCompile(`\bINSANE\b\s*`),
			regexp.MustCompile(`\bCRAZY\b\s*`),
		},

		TitleSuperlatives: []ReplaceRule{
			{regexp.MustCompile(`(?i)\bultimate\b\s+guide\b`), "guide"},
			{regexp.MustCompile(`(?i)\bcomplete\b\s+guide\b`), "guide"},
			{regexp.MustCompile(`(?i)\bcomprehensive\b\s+guide\b`), "guide"},
			{regexp.MustCompile(`(?i)\bdefinitive\b\s+guide\b`), "guide"},
		},

		Contractions: []ReplaceRule{
			{regexp.MustCompile(`(?i)\bdo not\b`), "don't"},
			{regexp.MustCompile(`(?i)\bdoes not\b`), "doesn't"},
			{regexp.MustCompile(`(?i)\bdid not\b`), "didn't"},
			{regexp.MustCompile(`(?i)\bcannot\b`), "can't"},
			{regexp.MustCompile(`(?i)\bwill not\b`), "won't"},
			{regexp.MustCompile(`(?i)\bshould not\b`), "shouldn't"},
			{regexp.MustCompile(`(?i)\bwould not\b`), "wouldn't"},
			{regexp.MustCompile(`(?i)\bcould not\b`), "couldn't"},
			{regexp.MustCompile(`(?i)\bmust not\b`), "mustn't"},
			{regexp.MustCompile(`(?i)\byou are\b`), "you're"},
			{regexp.MustCompile(`(?i)\bthey are\b`), "they're"},
			{regexp.MustCompile(`(?i)\bwe are\b`), "we're"},
			{regexp.MustCompile(`(?i)\bit is\b`), "it's"},
			{regexp.MustCompile(`(?i)\bthat is\b`), "that's"},
			{regexp.MustCompile(`(?i)\bwho is\b`), "who's"},
			{regexp.MustCompile(`(?i)\bwhat is\b`), "what's"},
			{regexp.MustCompile(`(?i)\bhere is\b`), "here's"},
			{regexp.MustCompile(`(?i)\bthere is\b`), "there's"},
			{regexp.MustCompile(`(?i)\bI am\b`), "I'm"},
			{regexp.MustCompile(`(?i)\byou will\b`), "you'll"},
			{regexp.MustCompile(`(?i)\bthey will\b`), "they'll"},
			{regexp.MustCompile(`(?i)\bwe will\b`), "we'll"},
			{regexp.MustCompile(`(?i)\bI will\b`), "I'll"},
		},
	}
}

// CompileReplacement builds a word-boundary, case-insensitive ReplaceRule
// from a user-supplied pattern fragment. The fragment is a regular
// expression body; boundaries and case folding are added here so user rules
// behave like the built-in table.
func CompileReplacement(pattern, replacement string) (ReplaceRule, error) {
	re, err := regexp.Compile(`(?i)\b(?:` + pattern + `)\b`)
	if err != nil {
		return ReplaceRule{}, fmt.Errorf("invalid replacement pattern %q: %w", pattern, err)
	}
	return ReplaceRule{Pattern: re, Replacement: replacement}, nil
}

// Extend returns a copy of r with extra replacement rules appended after the
// built-in table. The receiver is not modified.
func (r *Rules) Extend(extra []ReplaceRule) *Rules {
	if len(extra) == 0 {
		return r
	}
	out := *r
	out.Replacements = make([]ReplaceRule, 0, len(r.Replacements)+len(extra))
	out.Replacements = append(out.Replacements, r.Replacements...)
	out.Replacements = append(out.Replacements, extra...)
	return &out
}

// RuleDump is a serializable view of the active rule tables, used by the
// CLI to show users what the pipeline will rewrite.
type RuleDump struct {
	Replacements []RuleDumpEntry `yaml:"replacements"`
	Hedges       []string        `yaml:"hedges"`
	IntroPhrases []string        `yaml:"intro_phrases"`
	Subscribe    []string        `yaml:"subscribe_ctas"`
	Buzzwords    []string        `yaml:"title_buzzwords"`
	Superlatives []RuleDumpEntry `yaml:"title_superlatives"`
	Contractions []RuleDumpEntry `yaml:"contractions"`
}

// RuleDumpEntry is one pattern/replacement pair in a RuleDump.
type RuleDumpEntry struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Dump returns a serializable view of the rule tables in application order.
func (r *Rules) Dump() RuleDump {
	d := RuleDump{}
	for _, rule := range r.Replacements {
		d.Replacements = append(d.Replacements, RuleDumpEntry{rule.Pattern.String(), rule.Replacement})
	}
	for _, re := range r.Hedges {
		d.Hedges = append(d.Hedges, re.String())
	}
	for _, re := range r.IntroPhrases {
		d.IntroPhrases = append(d.IntroPhrases, re.String())
	}
	for _, re := range r.SubscribeCTAs {
		d.Subscribe = append(d.Subscribe, re.String())
	}
	for _, re := range r.TitleBuzzwords {
		d.Buzzwords = append(d.Buzzwords, re.String())
	}
	for _, rule := range r.TitleSuperlatives {
		d.Superlatives = append(d.Superlatives, RuleDumpEntry{rule.Pattern.String(), rule.Replacement})
	}
	for _, rule := range r.Contractions {
		d.Contractions = append(d.Contractions, RuleDumpEntry{rule.Pattern.String(), rule.Replacement})
	}
	return d
}
