// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The repair pipeline is an ordered chain of tolerant parse attempts, each
// returning success or failure instead of raising, applied to the raw
// backend text until one recovers a JSON object.

var (
	fencedBlockPattern   = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	trailingCommaBrace   = regexp.MustCompile(`,\s*}`)
	trailingCommaBracket = regexp.MustCompile(`,\s*]`)
	smartQuoteReplacer   = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
)

// ExtractObject recovers a JSON object from raw backend output. Strategies,
// in order: fenced code block; first-{ to last-} span with trailing commas
// stripped; the same span with smart quotes normalized. The boolean reports
// whether any strategy succeeded.
func ExtractObject(raw string) (map[string]any, bool) {
	if m := fencedBlockPattern.FindStringSubmatch(raw); m != nil {
		if obj, ok := parseObject(m[1]); ok {
			return obj, true
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}

	span := raw[start : end+1]
	span = trailingCommaBrace.ReplaceAllString(span, "}")
	span = trailingCommaBracket.ReplaceAllString(span, "]")

	if obj, ok := parseObject(span); ok {
		return obj, true
	}
	if obj, ok := parseObject(smartQuoteReplacer.Replace(span)); ok {
		return obj, true
	}
	return nil, false
}

func parseObject(s string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// ExtractPlainBody is the last-resort heuristic when no JSON can be
// recovered: header-like lines are dropped and the remainder is collected as
// body content once a line longer than ten characters is seen.
func ExtractPlainBody(raw string) string {
	var body []string
	inBody := false
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "subject:") || strings.HasPrefix(lower, "from:") ||
			strings.HasPrefix(lower, "to:") || strings.HasPrefix(lower, "date:") {
			continue
		}
		if !inBody && len(line) > 10 {
			inBody = true
		}
		if inBody {
			body = append(body, line)
		}
	}
	return strings.Join(body, "\n")
}

// StringFields converts a parsed object to string-valued fields, dropping
// anything that is not a string.
func StringFields(obj map[string]any) map[string]string {
	fields := make(map[string]string, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	return fields
}
