package humanize

import (
	"fmt"
	"regexp"
	"strings"
)

// Tell categories reported by DetectTells.
const (
	CategoryEmDash  = "em_dash"
	CategoryHedging = "hedging"
)

// tellWords are the AI-flavored words the detector scans for, in report
// order. Each word is matched with its -s/-d/-ing variants.
var tellWords = []string{
	"delve", "leverage", "utilize", "moreover", "furthermore",
	"unlock", "harness", "seamless", "robust", "comprehensive",
}

// hedgePhrases are matched as case-insensitive substrings, one Tell per
// phrase found regardless of how often it occurs.
var hedgePhrases = []string{
	"it's worth noting",
	"generally speaking",
	"in today's digital landscape",
}

var tellWordPatterns = compileTellWords()

func compileTellWords() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(tellWords))
	for i, word := range tellWords {
		patterns[i] = regexp.MustCompile(fmt.Sprintf(`(?i)\b%s(?:s|d|ing)?\b`, word))
	}
	return patterns
}

// DetectTells scans text for AI telltale signs without modifying it. It
// reports word matches in list order (one Tell per occurrence), then an
// aggregate em-dash count, then hedging phrases in list order (one Tell per
// phrase found). Safe to call concurrently.
func DetectTells(text string) []Tell {
	tells := []Tell{}

	for i, re := range tellWordPatterns {
		for _, match := range re.FindAllString(text, -1) {
			tells = append(tells, Tell{Category: tellWords[i], Match: match, Count: 1})
		}
	}

	if n := strings.Count(text, emDash); n > 0 {
		tells = append(tells, Tell{Category: CategoryEmDash, Count: n})
	}

	lower := strings.ToLower(text)
	for _, phrase := range hedgePhrases {
		if strings.Contains(lower, phrase) {
			tells = append(tells, Tell{Category: CategoryHedging, Match: phrase, Count: 1})
		}
	}

	return tells
}
