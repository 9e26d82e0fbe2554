package board

import (
	"strings"

	"github.com/justsurfingit/job-board/internal/models"
)

const JobsPerPage = 10

type LoadPhase int

const (
	LoadIdle LoadPhase = iota
	Loading
	Loaded
	// LoadedEmpty means the last load failed and the board shows no jobs.
	LoadedEmpty
)

type MutationKind int

const (
	KindEdit MutationKind = iota
	KindStatus
)

func (k MutationKind) String() string {
	if k == KindStatus {
		return "status"
	}
	return "edit"
}

type Phase int

const (
	Idle Phase = iota
	Pending
	Committed
	RolledBack
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled back"
	}
	return "idle"
}

// Mutation tracks the last optimistic change made to one job.
// Snapshot holds the job as it was before the change was applied.
type Mutation struct {
	Kind     MutationKind
	Phase    Phase
	Snapshot models.JobApplication
	Err      error
}

type FormField int

const (
	FieldTitle FormField = iota
	FieldCompany
	FieldLocation
	FieldLink
	FieldNotes
)

// FormFields lists the fields in the order forms show them.
var FormFields = []FormField{FieldTitle, FieldCompany, FieldLocation, FieldLink, FieldNotes}

func (f FormField) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldCompany:
		return "Company"
	case FieldLocation:
		return "Location"
	case FieldLink:
		return "Link"
	case FieldNotes:
		return "Notes"
	}
	return ""
}

// Form holds raw, untrimmed input for the create and edit forms.
type Form struct {
	Title    string
	Company  string
	Location string
	Link     string
	Notes    string
}

func (f Form) Get(field FormField) string {
	switch field {
	case FieldTitle:
		return f.Title
	case FieldCompany:
		return f.Company
	case FieldLocation:
		return f.Location
	case FieldLink:
		return f.Link
	case FieldNotes:
		return f.Notes
	}
	return ""
}

func (f *Form) Set(field FormField, value string) {
	switch field {
	case FieldTitle:
		f.Title = value
	case FieldCompany:
		f.Company = value
	case FieldLocation:
		f.Location = value
	case FieldLink:
		f.Link = value
	case FieldNotes:
		f.Notes = value
	}
}

// Complete reports whether every required field has a non-blank value.
func (f Form) Complete() bool {
	return strings.TrimSpace(f.Title) != "" &&
		strings.TrimSpace(f.Company) != "" &&
		strings.TrimSpace(f.Location) != ""
}

func formFor(job models.JobApplication) Form {
	return Form{
		Title:    job.Title,
		Company:  job.Company,
		Location: job.Location,
		Link:     job.LinkValue(),
		Notes:    job.NotesValue(),
	}
}

// EditChanged reports whether form differs from job. Blank required fields do not
// count as changes because submitting keeps the original value for them.
func EditChanged(form Form, job *models.JobApplication) bool {
	if job == nil {
		return false
	}

	changed := func(draft, original string) bool {
		draft = strings.TrimSpace(draft)
		return draft != "" && draft != strings.TrimSpace(original)
	}

	return changed(form.Title, job.Title) ||
		changed(form.Company, job.Company) ||
		changed(form.Location, job.Location) ||
		strings.TrimSpace(form.Notes) != strings.TrimSpace(job.NotesValue()) ||
		models.NormalizeLink(form.Link) != models.NormalizeLink(job.LinkValue())
}

// State is a point-in-time copy of everything the board shows.
type State struct {
	Jobs    []models.JobApplication
	Load    LoadPhase
	Error   string
	Success string

	Manual   Form
	Creating bool

	Editing   *models.JobApplication
	EditForm  Form
	EditDirty bool
	Saving    bool
	Deleting  bool

	DraggedID  uint64
	DropTarget models.Status

	Expanded models.Status
	Page     int

	Mutations map[uint64]Mutation
}

func (s State) Loading() bool {
	return s.Load == Loading
}

// JobsByStatus groups the jobs per column, keeping their order.
func (s State) JobsByStatus() map[models.Status][]models.JobApplication {
	return GroupByStatus(s.Jobs)
}

// ModalJobs returns every job of the expanded status.
func (s State) ModalJobs() []models.JobApplication {
	if s.Expanded == "" {
		return nil
	}
	return GroupByStatus(s.Jobs)[s.Expanded]
}

func (s State) TotalPages() int {
	if s.Expanded == "" {
		return 0
	}
	return TotalPages(len(s.ModalJobs()))
}

// PageJobs returns the jobs shown on the current page of the "view all" modal.
func (s State) PageJobs() []models.JobApplication {
	return Paginate(s.ModalJobs(), s.Page)
}

// StatusCounts returns the number of jobs per status and the overall total.
func (s State) StatusCounts() (map[models.Status]int, int) {
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, status := range models.Statuses {
		counts[status] = 0
	}
	for _, job := range s.Jobs {
		counts[job.Status]++
	}
	return counts, len(s.Jobs)
}

// MutationFor returns the tracked mutation of a job, or an Idle one.
func (s State) MutationFor(id uint64) Mutation {
	if m, ok := s.Mutations[id]; ok {
		return m
	}
	return Mutation{Phase: Idle}
}

func GroupByStatus(jobs []models.JobApplication) map[models.Status][]models.JobApplication {
	groups := make(map[models.Status][]models.JobApplication, len(models.Statuses))
	for _, status := range models.Statuses {
		groups[status] = []models.JobApplication{}
	}
	for _, job := range jobs {
		groups[job.Status] = append(groups[job.Status], job)
	}
	return groups
}

func TotalPages(n int) int {
	return (n + JobsPerPage - 1) / JobsPerPage
}

// ClampPage keeps page inside [1, total]. An empty result set collapses to page 1.
func ClampPage(page, total int) int {
	if total == 0 || page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate returns the 1-based page of jobs.
func Paginate(jobs []models.JobApplication, page int) []models.JobApplication {
	start := (page - 1) * JobsPerPage
	if page < 1 || start >= len(jobs) {
		return nil
	}
	end := start + JobsPerPage
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}
