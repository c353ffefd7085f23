// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"bytes"
	"text/template"
)

// emailPromptTmpl instructs the backend to return exactly one JSON object
// with four fields, written in the first person and without proper names.
var emailPromptTmpl = template.Must(template.New("email").Parse(`You are an expert email writer. Analyze the information below and generate a natural email in the FIRST PERSON.

CONTEXT: {{.Context}}
RECIPIENT: {{.Recipient}}
TOPIC: {{.Topic}}
INTENT: {{.Intent}}
WRITING STYLE: {{.StyleProfile}}
SENDER: {{.SenderName}}

Requirements:
1. Write as {{.SenderName}} using "I", "my", and "me".
2. Address {{.Recipient}} as "you".
3. DO NOT use the names "{{.SenderName}}" or "{{.Recipient}}" in the content.
4. Transform all instructions into direct actions (e.g., "Ask him" -> "I'd like to ask you").
5. IMPORTANT: Only return the JSON object. Do not add any preamble or postscript text.
6. Use valid JSON syntax (no trailing commas, escape quotes correctly).

JSON:
{
  "purpose": "professional reason for writing",
  "body": "a creative, professional rewrite of the context in FIRST PERSON",
  "opening": "a polite opening sentence",
  "next_step": "a clear call to action or closing thought"
}`))

// classifyPromptTmpl asks the backend to classify a request into the fixed
// intent categories plus urgency, formality, and email type.
var classifyPromptTmpl = template.Must(template.New("classify").Parse(`Classify the user's intent for this email request:

REQUEST: {{.UserRequest}}
CONTEXT: {{.Context}}
RECIPIENT: {{.Recipient}}

Classify the intent into one of these categories:
- information_request: Asking for information or clarification
- action_required: Requesting action or response
- follow_up: Following up on previous communication
- introduction: Introducing something or someone
- apology: Apologizing or addressing issues
- thank_you: Expressing gratitude
- sales_pitch: Promotional or sales related
- announcement: Making announcements
- inquiry: General inquiry or question
- other: Other specific intent

Also provide:
1. Urgency level (low/medium/high/urgent)
2. Formality level (casual/professional/formal)
3. Recommended email type (business/casual/sales)
4. A confidence value between 0 and 1

Respond with a single JSON object with keys "intent", "urgency", "formality", "email_type", "confidence":`))

// EmailParams are the inputs to the email generation prompt.
type EmailParams struct {
	Context      string
	Recipient    string
	Topic        string
	Intent       string
	StyleProfile string
	SenderName   string
}

func renderEmailPrompt(p EmailParams) (string, error) {
	var buf bytes.Buffer
	if err := emailPromptTmpl.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderClassifyPrompt(userRequest, reqContext, recipient string) (string, error) {
	var buf bytes.Buffer
	err := classifyPromptTmpl.Execute(&buf, struct {
		UserRequest, Context, Recipient string
	}{userRequest, reqContext, recipient})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
