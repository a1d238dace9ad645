package scoring

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// FlagThreshold is the score from which a listing is flagged for review.
const FlagThreshold = 0.5

type Verdict struct {
	Score   float64
	Flagged bool
	Reasons []string
}

var (
	blockedWords = []string{"weapon", "gun", "drugs", "counterfeit", "replica", "stolen", "casino"}
	linkPattern  = regexp.MustCompile(`(?i)\bhttps?://|\bwww\.`)
	emailPattern = regexp.MustCompile(`[[:alnum:]._%+-]+@[[:alnum:].-]+\.[[:alpha:]]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{8,}\d`)
)

type rule struct {
	weight float64
	reason string
	match  func(title, description string) bool
}

var rules = []rule{
	{
		weight: 0.6,
		reason: "contains blocked words",
		match: func(title, description string) bool {
			text := strings.ToLower(title + " " + description)
			for _, word := range blockedWords {
				if strings.Contains(text, word) {
					return true
				}
			}
			return false
		},
	},
	{
		weight: 0.3,
		reason: "contains external links",
		match: func(title, description string) bool {
			return linkPattern.MatchString(title) || linkPattern.MatchString(description)
		},
	},
	{
		weight: 0.3,
		reason: "contains contact details",
		match: func(title, description string) bool {
			text := title + " " + description
			return emailPattern.MatchString(text) || phonePattern.MatchString(text)
		},
	},
	{
		weight: 0.2,
		reason: "title is shouting",
		match: func(title, _ string) bool {
			return isShouting(title)
		},
	},
	{
		weight: 0.1,
		reason: "description is too short",
		match: func(_, description string) bool {
			return len([]rune(strings.TrimSpace(description))) < 10
		},
	},
	{
		weight: 0.1,
		reason: "too many exclamation marks",
		match: func(title, description string) bool {
			return strings.Count(title+description, "!") > 3
		},
	},
}

// Moderate scores a listing between 0 and 1. It never rejects anything,
// it only reports what looked suspicious.
func Moderate(title, description string) Verdict {
	verdict := Verdict{Reasons: []string{}}
	for _, r := range rules {
		if r.match(title, description) {
			verdict.Score += r.weight
			verdict.Reasons = append(verdict.Reasons, r.reason)
		}
	}
	verdict.Score = math.Round(min(verdict.Score, 1)*100) / 100
	verdict.Flagged = verdict.Score >= FlagThreshold
	return verdict
}

func isShouting(title string) bool {
	var letters, upper int
	for _, r := range title {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return letters >= 5 && upper == letters
}
