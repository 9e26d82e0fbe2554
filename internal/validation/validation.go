package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

type presence int

const (
	// required fields must be sent and non-blank.
	required presence = iota
	// sometimes fields may be omitted, but must be non-blank when sent.
	sometimes
	// nullable fields may be omitted, null or blank.
	nullable
)

type rule struct {
	field    string
	presence presence
	tags     string
}

// Rules is an ordered list of field rules. Fields not listed are ignored.
type Rules []rule

var (
	CreateRules = Rules{
		{"title", required, "max=255"},
		{"company", required, "max=255"},
		{"location", required, "max=255"},
		{"link", nullable, "url,max=255"},
		{"notes", nullable, ""},
		{"status", nullable, "job_status"},
	}

	UpdateRules = Rules{
		{"title", sometimes, "max=255"},
		{"company", sometimes, "max=255"},
		{"location", sometimes, "max=255"},
		{"link", nullable, "url,max=255"},
		{"notes", nullable, ""},
		{"status", sometimes, "job_status"},
	}

	StatusRules = Rules{
		{"status", required, "job_status"},
	}
)

var messages = map[string]string{
	"required":   "The {0} field is required.",
	"string":     "The {0} field must be a string.",
	"max":        "The {0} field must not be greater than {1} characters.",
	"url":        "The {0} field must be a valid URL.",
	"job_status": "The selected {0} is invalid.",
}

// Error lists every failed rule per field.
type Error struct {
	Fields map[string][]string
	order  []string
}

func (e *Error) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Message summarizes the error the way the board shows it in its banner.
func (e *Error) Message() string {
	if len(e.order) == 0 {
		return "The given data was invalid."
	}
	first := e.Fields[e.order[0]][0]
	total := 0
	for _, msgs := range e.Fields {
		total += len(msgs)
	}
	switch extra := total - 1; extra {
	case 0:
		return first
	case 1:
		return first + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, extra)
	}
}

func (e *Error) Error() string {
	return e.Message()
}

// FieldNames returns the failing fields in rule order.
func (e *Error) FieldNames() []string {
	return append([]string(nil), e.order...)
}

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("job_status", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).Valid()
	}); err != nil {
		return nil, fmt.Errorf("register job_status: %w", err)
	}

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	for key, text := range messages {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("register message %q: %w", key, err)
		}
	}

	return &Validator{validate: v, trans: trans}, nil
}

// Validate checks the payload against rules and returns the normalized changes.
// Nothing is returned unless every rule passes.
func (v *Validator) Validate(rules Rules, p *dtos.JobApplicationPayload) (*dtos.JobApplicationChanges, error) {
	verr := &Error{}
	changes := &dtos.JobApplicationChanges{}

	for _, r := range rules {
		f := p.Lookup(r.field)

		if f.Blank() {
			switch r.presence {
			case required:
				verr.add(r.field, v.message("required", r.field))
			case sometimes:
				if f.Set {
					verr.add(r.field, v.message("required", r.field))
				}
			case nullable:
				if f.Set {
					assign(changes, r.field, nil)
				}
			}
			continue
		}

		if f.Invalid {
			verr.add(r.field, v.message("string", r.field))
			continue
		}

		value := strings.TrimSpace(f.Value)
		if r.field == "link" {
			value = models.NormalizeLink(value)
		}

		if r.tags != "" {
			if err := v.validate.Var(value, r.tags); err != nil {
				var fieldErrs validator.ValidationErrors
				if !errors.As(err, &fieldErrs) {
					return nil, fmt.Errorf("validate %s: %w", r.field, err)
				}
				for _, fe := range fieldErrs {
					verr.add(r.field, v.message(fe.Tag(), r.field, fe.Param()))
				}
				continue
			}
		}

		assign(changes, r.field, &value)
	}

	if len(verr.order) > 0 {
		return nil, verr
	}
	return changes, nil
}

func (v *Validator) message(tag, field string, params ...string) string {
	msg, err := v.trans.T(tag, append([]string{field}, params...)...)
	if err != nil {
		return fmt.Sprintf("The %s field is invalid.", field)
	}
	return msg
}

func assign(c *dtos.JobApplicationChanges, field string, value *string) {
	switch field {
	case "title":
		c.Title = value
	case "company":
		c.Company = value
	case "location":
		c.Location = value
	case "link":
		c.Link = dtos.Optional{Set: true, Value: value}
	case "notes":
		c.Notes = dtos.Optional{Set: true, Value: value}
	case "status":
		if value != nil {
			status := models.Status(*value)
			c.Status = &status
		}
	}
}
