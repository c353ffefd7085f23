// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EmailTemplate describes one structural email template in the catalog.
// Templates are read-only during generation; the subject and body use Go
// text/template syntax with conditional blocks for optional variables.
type EmailTemplate struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`

	SubjectTemplate string `json:"subject_template" yaml:"subject_template"`
	BodyTemplate    string `json:"body_template" yaml:"body_template"`

	// Variables lists the variable names the templates reference.
	Variables []string `json:"variables" yaml:"variables"`

	Tags []string `json:"tags" yaml:"tags"`
}
