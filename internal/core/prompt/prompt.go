// Package prompt renders the four instruction prompts sent to the model.
package prompt

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("prompts").ParseFS(templateFS, "templates/*.tmpl"))

// Step names one prompt in the generation sequence. The value is also used
// as the metrics label and in error messages.
type Step string

const (
	StepResume          Step = "resume"
	StepCoverLetter     Step = "cover_letter"
	StepMissingSkills   Step = "missing_skills"
	StepLinkedInSummary Step = "linkedin_summary"
)

// Data is substituted into a template. Resume is the original resume for the
// first step and the rewritten one for every later step.
// User text is inserted as data and never parsed as template syntax.
type Data struct {
	Resume string
	Job    string
}

// Render fills the template for step.
func Render(step Step, data Data) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, string(step)+".tmpl", data); err != nil {
		return "", err
	}
	return b.String(), nil
}
