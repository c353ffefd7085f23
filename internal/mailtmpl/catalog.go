// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mailtmpl manages the email template catalog: built-in templates,
// custom templates loaded from YAML files, deterministic selection, and the
// rendering wrapper around the template engine.
package mailtmpl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/email-engine/pkg/types"
)

// DefaultTemplateName is the catalog-wide fallback used when nothing else
// matches.
const DefaultTemplateName = "business_formal_standard"

// Catalog holds the known templates, keyed by name.
type Catalog struct {
	templates map[string]*types.EmailTemplate
}

// NewCatalog returns a catalog preloaded with the built-in templates.
func NewCatalog() *Catalog {
	c := &Catalog{templates: make(map[string]*types.EmailTemplate)}
	for i := range builtinTemplates {
		t := builtinTemplates[i]
		c.templates[t.Name] = &t
	}
	return c
}

// NewEmptyCatalog returns a catalog with no templates. Selection still
// succeeds through the built-in basic fallback.
func NewEmptyCatalog() *Catalog {
	return &Catalog{templates: make(map[string]*types.EmailTemplate)}
}

// LoadDir reads custom *.yaml template files from dir into the catalog,
// overriding built-ins with the same name. A missing directory is not an
// error; an unparsable file produces a warning on w and is skipped.
func (c *Catalog) LoadDir(dir string, w io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			warnf(w, "warning: could not read template %s: %v\n", name, err)
			continue
		}
		var tmpl types.EmailTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			warnf(w, "warning: could not parse template %s: %v\n", name, err)
			continue
		}
		if tmpl.Name == "" {
			tmpl.Name = strings.TrimSuffix(strings.TrimSuffix(name, ".yml"), ".yaml")
		}
		if tmpl.Category == "" {
			tmpl.Category = string(types.EmailBusiness)
		}
		c.Add(tmpl)
	}
	return nil
}

func warnf(w io.Writer, format string, args ...any) {
	if w != nil {
		fmt.Fprintf(w, format, args...)
	}
}

// Get returns the named template, or nil when unknown.
func (c *Catalog) Get(name string) *types.EmailTemplate {
	return c.templates[name]
}

// Add inserts or replaces a template.
func (c *Catalog) Add(tmpl types.EmailTemplate) {
	if tmpl.Variables == nil {
		tmpl.Variables = VariableNames(tmpl.SubjectTemplate + " " + tmpl.BodyTemplate)
	}
	c.templates[tmpl.Name] = &tmpl
}

// List returns templates sorted by name, optionally filtered by category
// and tags.
func (c *Catalog) List(category string, tags []string) []*types.EmailTemplate {
	var out []*types.EmailTemplate
	for _, name := range c.names() {
		t := c.templates[name]
		if category != "" && t.Category != category {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(t, tags) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Search matches templates by name, description, or tag substring.
func (c *Catalog) Search(query string) []*types.EmailTemplate {
	query = strings.ToLower(query)
	var out []*types.EmailTemplate
	for _, name := range c.names() {
		t := c.templates[name]
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.Description), query) ||
			hasAnyTag(t, []string{query}) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct categories present, sorted.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	for _, t := range c.templates {
		seen[t.Category] = true
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

func (c *Catalog) names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hasAnyTag(t *types.EmailTemplate, tags []string) bool {
	for _, want := range tags {
		for _, have := range t.Tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
