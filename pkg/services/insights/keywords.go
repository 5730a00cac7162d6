package insights

import "regexp"

// This file is the single home for every classification table the metric
// functions share. The same tone mapping feeds the streak, the repair rate,
// and the heatmap; the same phrase lists feed the repair classifier and the
// health scorer. Keeping them here prevents the definitions from drifting
// apart across dashboards.

// ruptureTones are the tone labels classified as tense/negative.
var ruptureTones = map[string]struct{}{
	"alert":      {},
	"angry":      {},
	"aggressive": {},
	"caution":    {},
}

// tensionScores maps tone labels to a continuous severity. Tones absent from
// the table score baselineTension.
var tensionScores = map[string]float64{
	"alert":   1.0,
	"caution": 0.6,
}

const baselineTension = 0.2

// repairPhrases are matched as case-insensitive substrings, not whole words.
// The tail of the list is the broader set used by scorer contexts.
var repairPhrases = []string{
	"sorry",
	"apologize",
	"understand",
	"i see",
	"makes sense",
	"thank you",
	"appreciate",
	"can we restart",
	"let me try again",
	"want to work together",
	"my fault",
	"i was wrong",
	"see your point",
	"help me understand",
}

// positiveTones feed the communication sub-score.
var positiveTones = map[string]struct{}{
	"happy":         {},
	"supportive":    {},
	"loving":        {},
	"understanding": {},
	"grateful":      {},
	"excited":       {},
}

// supportKeywords feed the emotional-support sub-score, paired with the
// clear/positive tone signal.
var supportKeywords = []string{
	"support",
	"understand",
	"help",
	"care",
	"love",
	"comfort",
}

var clearTones = map[string]struct{}{
	"clear":    {},
	"positive": {},
}

// stronglyPositiveTones and stronglyNegativeTones adjust the confidence-based
// overall score by +/- overallToneAdjustment.
var stronglyPositiveTones = map[string]struct{}{
	"happy":      {},
	"supportive": {},
	"loving":     {},
	"grateful":   {},
}

var stronglyNegativeTones = map[string]struct{}{
	"angry":      {},
	"aggressive": {},
	"alert":      {},
}

const overallToneAdjustment = 0.2

// coupleConnectionKeywords and coParentCooperationKeywords are the
// relationship-type-specific sets behind the connection sub-score.
var coupleConnectionKeywords = []string{
	"love",
	"miss you",
	"we should",
	"together",
	"date",
	"appreciate",
	"looking forward",
}

var coParentCooperationKeywords = []string{
	"kids",
	"school",
	"pickup",
	"drop off",
	"schedule",
	"together",
	"thank",
}

type topicPattern struct {
	topic string
	re    *regexp.Regexp
}

// topicPatterns is an ordered table: the first pattern that matches a tense
// message wins, so "pay for the meeting" lands in Money, not Work. Tests lock
// the ordering.
var topicPatterns = []topicPattern{
	{"Money", regexp.MustCompile(`money|budget|pay|rent|bills?`)},
	{"Plans/Time", regexp.MustCompile(`plan|schedule|time|when|later|tomorrow|date`)},
	{"Chores", regexp.MustCompile(`chores?|dishes|laundry|clean|trash|groceries`)},
	{"Family", regexp.MustCompile(`family|mother|father|mom|dad|in-laws?|kids?`)},
	{"Intimacy", regexp.MustCompile(`intimacy|intimate|affection|close|touch|cuddle`)},
	{"Work", regexp.MustCompile(`work|job|boss|office|meeting|shift`)},
}

// topicOther is the terminal bucket for tense messages no pattern matches.
const topicOther = "Other"
