// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	askYouIfPattern  = regexp.MustCompile(`(?i)\bAsk you if (he|she)\b`)
	showYouHow       = regexp.MustCompile(`(?i)\bI want to show you how (he|she)\b`)
	separatorPattern = regexp.MustCompile(`[._-]+`)
)

// RecipientName derives a display name from an email address: the local
// part with separators replaced by spaces and each word title-cased. A plain
// name passes through unchanged.
func RecipientName(recipient string) string {
	name := recipient
	if at := strings.Index(recipient, "@"); at != -1 {
		name = recipient[:at]
	} else {
		return recipient
	}
	name = separatorPattern.ReplaceAllString(name, " ")
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// EnsureFirstPerson rewrites text so it reads as the sender speaking to the
// recipient: redundant self-introductions are stripped, third-person
// references to the recipient's display name become second person, and a
// lower-case leading letter left by a rewrite is capitalized.
func EnsureFirstPerson(text, recipient, senderName string) string {
	if senderName != "" {
		intro := regexp.MustCompile(`(?i)^(I'm|I am|My name is)?\s*` + regexp.QuoteMeta(senderName) + `[\s,.]*`)
		text = intro.ReplaceAllString(text, "")
	}

	if name := RecipientName(recipient); name != "" {
		q := regexp.QuoteMeta(name)
		text = regexp.MustCompile(`(?i)\bAsk `+q+` if (he|she) (has|can|is)\b`).
			ReplaceAllString(text, "I would like to ask you if you $2")
		text = regexp.MustCompile(`(?i)\bAsk `+q+` if (he|she)\b`).
			ReplaceAllString(text, "I would like to ask you if you")
		text = regexp.MustCompile(`(?i)\bAsk `+q+`\b`).
			ReplaceAllString(text, "I'd like to ask you")
		text = regexp.MustCompile(`(?i)\bTell `+q+`\b`).
			ReplaceAllString(text, "I'd like to tell you")
		text = regexp.MustCompile(`(?i)\bShow `+q+`\b`).
			ReplaceAllString(text, "show you")
		text = regexp.MustCompile(`(?i)\bInvite `+q+`\b`).
			ReplaceAllString(text, "invite you")
		text = regexp.MustCompile(`(?i)\b` + q + `\b`).
			ReplaceAllString(text, "you")
	}

	text = askYouIfPattern.ReplaceAllString(text, "ask you if you")
	text = showYouHow.ReplaceAllString(text, "I want to show you how I")

	text = strings.TrimSpace(text)
	if text != "" {
		runes := []rune(text)
		if unicode.IsLower(runes[0]) {
			runes[0] = unicode.ToUpper(runes[0])
			text = string(runes)
		}
	}
	return text
}
