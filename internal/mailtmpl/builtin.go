// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mailtmpl

import "github.com/pdiddy/email-engine/pkg/types"

// builtinTemplates are the templates every catalog starts with. Bodies are
// text/template sources; optional sections are guarded so an empty variable
// drops the whole block.
var builtinTemplates = []types.EmailTemplate{
	{
		Name:            "business_formal_standard",
		Category:        string(types.EmailBusiness),
		Description:     "Standard formal business email template",
		SubjectTemplate: "{{.subject}}",
		BodyTemplate: `{{if .greeting}}{{.greeting}} {{.recipient_name}},{{end}}

{{.opening}}

{{if .context}}{{.context}}

{{end}}{{if .call_to_action}}{{.call_to_action}}

{{end}}{{if .closing}}{{.closing}}

{{end}}{{.signature}}`,
		Variables: []string{"subject", "greeting", "recipient_name", "opening", "context", "call_to_action", "closing", "signature"},
		Tags:      []string{"formal", "professional", "standard"},
	},
	{
		Name:            "business_inquiry",
		Category:        string(types.EmailBusiness),
		Description:     "Business inquiry email template",
		SubjectTemplate: "Inquiry: {{.subject}}",
		BodyTemplate: `Dear {{.recipient_name}},

I hope this email finds you well. My name is {{.sender_name}}{{if .sender_role}} and I am {{.sender_role}}{{end}}{{if .sender_company}} at {{.sender_company}}{{end}}.

I am writing to {{.inquiry_purpose}}{{if .context}}. {{.context}}{{end}}

{{if .call_to_action}}{{.call_to_action}}

{{end}}Thank you for your time and consideration. I look forward to hearing from you.

Best regards,

{{.sender_name}}
{{if .sender_role}}{{.sender_role}}
{{end}}{{if .sender_company}}{{.sender_company}}
{{end}}{{if .contact_info}}{{.contact_info}}{{end}}`,
		Variables: []string{"subject", "recipient_name", "sender_name", "sender_role", "sender_company", "inquiry_purpose", "context", "call_to_action", "contact_info"},
		Tags:      []string{"inquiry", "formal", "business"},
	},
	{
		Name:            "casual_friendly",
		Category:        string(types.EmailCasual),
		Description:     "Friendly casual email template",
		SubjectTemplate: "{{.subject}}",
		BodyTemplate: `{{if .greeting}}{{.greeting}} {{.recipient_name}},{{end}}

{{.opening}}

{{if .context}}{{.context}}

{{end}}{{if .call_to_action}}{{.call_to_action}}

{{end}}Talk soon,

{{.signature}}`,
		Variables: []string{"subject", "greeting", "recipient_name", "opening", "context", "call_to_action", "signature"},
		Tags:      []string{"casual", "friendly", "informal"},
	},
	{
		Name:            "casual_check_in",
		Category:        string(types.EmailCasual),
		Description:     "Casual check-in email template",
		SubjectTemplate: "Checking in: {{.subject}}",
		BodyTemplate: `Hi {{.recipient_name}},

Just wanted to check in and see how things are going{{if .context}} regarding {{.context}}{{end}}.

{{if .question}}{{.question}}

{{end}}Hope everything's going well on your end!

Best,

{{.sender_name}}`,
		Variables: []string{"subject", "recipient_name", "context", "question", "sender_name"},
		Tags:      []string{"check-in", "casual", "follow-up"},
	},
	{
		Name:            "sales_persuasive",
		Category:        string(types.EmailSales),
		Description:     "Persuasive sales email template",
		SubjectTemplate: "{{.subject}}",
		BodyTemplate: `Dear {{.recipient_name}},

{{.hook}}

I'm {{.sender_name}} from {{.company_name}}, and I help {{.target_audience}} achieve {{.key_benefit}}.

{{if .problem_statement}}{{.problem_statement}}

{{end}}Our solution helps you:
{{if .benefits}}{{range .benefits}}• {{.}}
{{end}}{{end}}
{{if .call_to_action}}{{.call_to_action}}

{{end}}Would you be open to a brief {{.meeting_duration}}-minute call next week to discuss how we can help you {{.specific_outcome}}?

Best regards,

{{.sender_name}}
{{if .sender_title}}{{.sender_title}}
{{end}}{{if .company_name}}{{.company_name}}
{{end}}{{if .contact_info}}{{.contact_info}}{{end}}`,
		Variables: []string{"subject", "recipient_name", "hook", "sender_name", "company_name", "target_audience", "key_benefit", "problem_statement", "benefits", "call_to_action", "meeting_duration", "specific_outcome", "sender_title", "contact_info"},
		Tags:      []string{"sales", "persuasive", "business"},
	},
	{
		Name:            "sales_follow_up",
		Category:        string(types.EmailSales),
		Description:     "Sales follow-up email template",
		SubjectTemplate: "Following up: {{.subject}}",
		BodyTemplate: `Hi {{.recipient_name}},

Following up on my previous email{{if .previous_context}} regarding {{.previous_context}}{{end}}.

I wanted to {{.follow_up_reason}}{{if .additional_value}} and share that {{.additional_value}}{{end}}.

{{if .question}}{{.question}}

{{end}}Are you available for a quick chat this week?

Best,

{{.sender_name}}
{{.company_name}}`,
		Variables: []string{"subject", "recipient_name", "previous_context", "follow_up_reason", "additional_value", "question", "sender_name", "company_name"},
		Tags:      []string{"sales", "follow-up", "business"},
	},
}
