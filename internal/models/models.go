package models

import (
	"time"
)

// Status is the workflow state of a job application. The set is closed and ordered.
type Status string

const (
	StatusApplied          Status = "Applied"
	StatusOnlineAssessment Status = "Online Assessment"
	StatusInterview        Status = "Interview"
	StatusAccepted         Status = "Accepted"
	StatusRejected         Status = "Rejected"
)

// Statuses lists every status in board order.
var Statuses = []Status{
	StatusApplied,
	StatusOnlineAssessment,
	StatusInterview,
	StatusAccepted,
	StatusRejected,
}

// MainStatuses are the columns a job moves through while in progress.
func MainStatuses() []Status {
	return append([]Status(nil), Statuses[:3]...)
}

// OutcomeStatuses are the terminal columns.
func OutcomeStatuses() []Status {
	return append([]Status(nil), Statuses[3:]...)
}

// Index returns the board position of s, or -1 when s is not a known status.
func (s Status) Index() int {
	for i, status := range Statuses {
		if status == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool {
	return s.Index() >= 0
}

// IsOutcome reports whether s is a terminal status.
func (s Status) IsOutcome() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw input into a Status.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

type JobApplication struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string  `gorm:"size:255;not null" json:"title"`
	Company  string  `gorm:"size:255;not null" json:"company"`
	Location string  `gorm:"size:255;not null" json:"location"`
	Link     *string `gorm:"size:255" json:"link"`
	Notes    *string `gorm:"type:text" json:"notes"`

	// The CHECK keeps rows inside the fixed set even when written outside the API.
	Status Status `gorm:"size:32;not null;default:'Applied';check:status IN ('Applied','Online Assessment','Interview','Accepted','Rejected')" json:"status"`
}

// LinkValue returns the link or an empty string.
func (j JobApplication) LinkValue() string {
	if j.Link == nil {
		return ""
	}
	return *j.Link
}

// NotesValue returns the notes or an empty string.
func (j JobApplication) NotesValue() string {
	if j.Notes == nil {
		return ""
	}
	return *j.Notes
}

// Clone returns a deep copy so callers can keep snapshots of a record.
func (j JobApplication) Clone() JobApplication {
	out := j
	if j.Link != nil {
		link := *j.Link
		out.Link = &link
	}
	if j.Notes != nil {
		notes := *j.Notes
		out.Notes = &notes
	}
	return out
}
