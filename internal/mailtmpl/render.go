// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mailtmpl

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/pdiddy/email-engine/pkg/types"
)

// variablePattern captures the field name in actions like {{.subject}},
// {{if .context}}, and {{range .benefits}}.
var variablePattern = regexp.MustCompile(`\{\{[^}]*?\.(\w+)`)

// VariableNames extracts the distinct variable names referenced by a
// template source, sorted for stable output.
func VariableNames(source string) []string {
	seen := map[string]bool{}
	for _, m := range variablePattern.FindAllStringSubmatch(source, -1) {
		seen[m[1]] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rendered is the output of one template rendering.
type Rendered struct {
	Subject string
	Body    string
}

// Render executes the template's subject and body against vars. Referenced
// variables absent from vars render as empty rather than erroring, so
// conditional sections simply drop.
func Render(tmpl *types.EmailTemplate, vars map[string]any) (Rendered, error) {
	data := fillMissing(tmpl, vars)

	subject, err := execute(tmpl.Name+":subject", tmpl.SubjectTemplate, data)
	if err != nil {
		return Rendered{}, err
	}
	body, err := execute(tmpl.Name+":body", tmpl.BodyTemplate, data)
	if err != nil {
		return Rendered{}, err
	}

	return Rendered{
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
	}, nil
}

// fillMissing copies vars and adds an empty string for every referenced
// variable the caller did not supply. An empty string is falsy in an if
// action, so guarded sections behave as if the variable were undefined.
func fillMissing(tmpl *types.EmailTemplate, vars map[string]any) map[string]any {
	data := make(map[string]any, len(vars))
	for k, v := range vars {
		data[k] = v
	}

	// Scan the sources rather than trusting the declared variable list; a
	// custom template may declare fewer variables than it references.
	referenced := VariableNames(tmpl.SubjectTemplate + " " + tmpl.BodyTemplate)
	for _, name := range referenced {
		if _, ok := data[name]; !ok {
			data[name] = ""
		}
	}
	return data
}

func execute(name, source string, data map[string]any) (string, error) {
	t, err := template.New(name).Parse(source)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return sb.String(), nil
}
