// Package types provides the request payloads accepted by the resume-scorer API.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ScoreTextRequest represents a request to score raw resume text.
type ScoreTextRequest struct {
	Text           string  `json:"text" validate:"required"`
	JobDescription *string `json:"job_description,omitempty"`
}

// ResumeForm represents a resume entered field by field instead of uploaded as a document.
type ResumeForm struct {
	Name           string   `json:"name" validate:"max=200"`
	Title          string   `json:"title" validate:"max=200"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Phone          string   `json:"phone" validate:"max=50"`
	Location       string   `json:"location" validate:"max=200"`
	Summary        string   `json:"summary" validate:"max=5000"`
	Skills         []string `json:"skills" validate:"max=100,dive,max=200"`
	Experience     []string `json:"experience" validate:"max=50,dive,max=2000"`
	Education      []string `json:"education" validate:"max=20,dive,max=1000"`
	Projects       []string `json:"projects" validate:"max=20,dive,max=2000"`
	JobDescription *string  `json:"job_description,omitempty"`
}

// Validate validates the ScoreTextRequest using the validator.
func (r *ScoreTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResumeForm using the validator.
func (f *ResumeForm) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// Text renders the form as plain resume text: contact lines first, then upper-case
// section headings with one bullet per experience, education and project entry.
// Empty fields and sections are left out.
func (f *ResumeForm) Text() string {
	var b strings.Builder

	for _, line := range []string{f.Name, f.Title, f.Email, f.Phone, f.Location} {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if summary := strings.TrimSpace(f.Summary); summary != "" {
		writeSection(&b, "SUMMARY", []string{summary}, "")
	}
	if skills := nonBlank(f.Skills); len(skills) > 0 {
		writeSection(&b, "SKILLS", []string{strings.Join(skills, ", ")}, "")
	}
	writeSection(&b, "EXPERIENCE", nonBlank(f.Experience), "- ")
	writeSection(&b, "EDUCATION", nonBlank(f.Education), "- ")
	writeSection(&b, "PROJECTS", nonBlank(f.Projects), "- ")

	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, heading string, lines []string, prefix string) {
	if len(lines) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(heading)
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
