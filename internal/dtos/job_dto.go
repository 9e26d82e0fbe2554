package dtos

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/justsurfingit/job-board/internal/models"
)

// Field is a raw JSON string value that remembers whether its key was sent at all.
// Partial updates depend on telling "absent" apart from "null".
type Field struct {
	Set     bool
	Null    bool
	Invalid bool // present but not a JSON string
	Value   string
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.Set = true
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		f.Null = true
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		f.Invalid = true
		return nil
	}
	f.Value = s
	return nil
}

// Blank reports whether the field carries no usable value. Blank strings count as null.
func (f Field) Blank() bool {
	return !f.Set || f.Null || (!f.Invalid && strings.TrimSpace(f.Value) == "")
}

// JobApplicationPayload is the body accepted by the create, update and status endpoints.
type JobApplicationPayload struct {
	Title    Field `json:"title"`
	Company  Field `json:"company"`
	Location Field `json:"location"`
	Link     Field `json:"link"`
	Notes    Field `json:"notes"`
	Status   Field `json:"status"`
}

// Lookup returns the payload field with the given JSON name.
func (p *JobApplicationPayload) Lookup(name string) Field {
	switch name {
	case "title":
		return p.Title
	case "company":
		return p.Company
	case "location":
		return p.Location
	case "link":
		return p.Link
	case "notes":
		return p.Notes
	case "status":
		return p.Status
	}
	return Field{}
}

// Optional is a nullable value that is only applied when Set.
type Optional struct {
	Set   bool
	Value *string
}

// JobApplicationChanges is a validated payload. Nil pointers and unset optionals
// mean "leave unchanged".
type JobApplicationChanges struct {
	Title    *string
	Company  *string
	Location *string
	Link     Optional
	Notes    Optional
	Status   *models.Status
}

// Apply merges the changes onto job.
func (c JobApplicationChanges) Apply(job *models.JobApplication) {
	if c.Title != nil {
		job.Title = *c.Title
	}
	if c.Company != nil {
		job.Company = *c.Company
	}
	if c.Location != nil {
		job.Location = *c.Location
	}
	if c.Link.Set {
		job.Link = c.Link.Value
	}
	if c.Notes.Set {
		job.Notes = c.Notes.Value
	}
	if c.Status != nil {
		job.Status = *c.Status
	}
}

type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

// JobDraft is a pre-filled create form produced from a job posting.
type JobDraft struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
	Notes    string `json:"notes"`
}
