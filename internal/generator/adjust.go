// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/email-engine/pkg/types"
)

// Thresholds for style post-processing on the rendered body.
const (
	formalAbove  = 0.7
	casualBelow  = 0.3
	hedgingBelow = 0.4
)

// substitution is one ordered lexical replacement. Longer phrases come first
// so "thanks a lot" is rewritten before "thanks".
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

func newSubstitutions(pairs [][2]string) []substitution {
	subs := make([]substitution, len(pairs))
	for i, p := range pairs {
		subs[i] = substitution{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p[0]) + `\b`),
			replacement: p[1],
		}
	}
	return subs
}

var formalSubstitutions = newSubstitutions([][2]string{
	{"thanks a lot", "Thank you very much"},
	{"thanks", "Thank you"},
	{"hi", "Dear"},
	{"hey", "Dear"},
	{"cool", "excellent"},
	{"awesome", "excellent"},
	{"gonna", "going to"},
	{"wanna", "want to"},
	{"kinda", "somewhat"},
	{"sorta", "somewhat"},
})

var casualSubstitutions = newSubstitutions([][2]string{
	{"thank you very much", "Thanks a lot"},
	{"i would appreciate", "I'd appreciate"},
	{"dear", "Hi"},
	{"sincerely", "Best"},
	{"regards", "Best"},
	{"i am", "I'm"},
	{"you are", "you're"},
	{"we are", "we're"},
})

// imperativeVerbs mark a sentence as a direct request worth hedging.
var imperativeVerbs = map[string]bool{
	"send": true, "provide": true, "complete": true, "submit": true,
	"review": true, "confirm": true, "share": true, "update": true,
	"schedule": true, "give": true, "let": true, "make": true,
}

var sentenceBoundary = regexp.MustCompile(`(?s)[^.!?]+[.!?]*\s*`)

// applyStyle transforms the rendered body according to the profile's style
// metrics. The subject is never touched.
func applyStyle(body string, style types.StyleMetrics) string {
	switch {
	case style.FormalityScore > formalAbove:
		body = substituteAll(body, formalSubstitutions)
	case style.FormalityScore < casualBelow:
		body = substituteAll(body, casualSubstitutions)
	}
	if style.DirectnessScore < hedgingBelow {
		body = hedgeFirstImperative(body)
	}
	return body
}

func substituteAll(text string, subs []substitution) string {
	for _, s := range subs {
		text = s.pattern.ReplaceAllString(text, s.replacement)
	}
	return text
}

// hedgeFirstImperative softens the first sentence that opens with an
// imperative verb, rewriting "Send the report by Friday." into "I was
// wondering if you could send the report by Friday." Only one sentence is
// rewritten per body.
func hedgeFirstImperative(body string) string {
	sentences := sentenceBoundary.FindAllString(body, -1)
	for i, sentence := range sentences {
		rest, ok := imperativeRest(sentence)
		if !ok {
			continue
		}
		lead := sentence[:len(sentence)-len(strings.TrimLeft(sentence, " \t\n"))]
		sentences[i] = lead + "I was wondering if you could " + lowerFirst(rest)
		return strings.Join(sentences, "")
	}
	return body
}

// imperativeRest reports whether a sentence opens with an imperative verb,
// optionally prefixed by "Please", and returns the sentence with that prefix
// stripped.
func imperativeRest(sentence string) (string, bool) {
	trimmed := strings.TrimLeft(sentence, " \t\n")
	words := strings.Fields(trimmed)
	if len(words) == 0 {
		return "", false
	}

	first := strings.ToLower(strings.Trim(words[0], ",.!?"))
	if first == "please" && len(words) > 1 {
		next := strings.ToLower(strings.Trim(words[1], ",.!?"))
		if imperativeVerbs[next] {
			rest := strings.TrimLeft(trimmed[len(words[0]):], " \t,")
			return rest, true
		}
		return "", false
	}
	if imperativeVerbs[first] {
		return trimmed, true
	}
	return "", false
}

func lowerFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToLower(r)) + s[i+len(string(r)):]
	}
	return s
}
