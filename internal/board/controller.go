package board

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/justsurfingit/job-board/internal/client"
	"github.com/justsurfingit/job-board/internal/models"
)

const (
	defaultManualNotes = "Added manually."

	msgCreated = "Job added successfully."
	msgUpdated = "Job application updated"
	msgRemoved = "Job application removed"

	msgLoadFailed   = "Unable to load job applications. Please try again."
	msgCreateFailed = "Unable to add job application. Please try again."
	msgUpdateFailed = "Unable to update job application. Please try again."
	msgDeleteFailed = "Unable to delete job application. Please try again."
	msgStatusFailed = "Unable to update job status. Please try again."
)

// Controller owns the board's copy of every job and applies user actions to it,
// optimistically where the server response is predictable.
//
// Methods that talk to the API block until the request finishes. Callers that
// must stay responsive run them on their own goroutine and watch Changes.
type Controller struct {
	api    API
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	st      State
	changes chan struct{}
}

func New(ctx context.Context, api API, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Controller{
		api:     api,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		st:      State{Page: 1, Mutations: map[uint64]Mutation{}},
		changes: make(chan struct{}, 1),
	}
}

// Close aborts in-flight requests. Their results are discarded.
func (c *Controller) Close() {
	c.cancel()
}

// Changes signals after every state change. Signals coalesce, so a receiver
// should read State once per signal.
func (c *Controller) Changes() <-chan struct{} {
	return c.changes
}

// State returns a copy of the current state that is safe to keep.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.st
	s.Jobs = make([]models.JobApplication, len(c.st.Jobs))
	for i, job := range c.st.Jobs {
		s.Jobs[i] = job.Clone()
	}
	if c.st.Editing != nil {
		editing := c.st.Editing.Clone()
		s.Editing = &editing
	}
	s.EditDirty = EditChanged(c.st.EditForm, c.st.Editing)
	s.Mutations = make(map[uint64]Mutation, len(c.st.Mutations))
	for id, m := range c.st.Mutations {
		s.Mutations[id] = m
	}
	return s
}

// update runs fn under the lock and notifies observers. It reports false,
// without running fn, once the controller is closed.
func (c *Controller) update(fn func(s *State)) bool {
	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return false
	}
	fn(&c.st)
	c.st.Page = clampExpandedPage(&c.st)
	c.mu.Unlock()

	c.notify()
	return true
}

func (c *Controller) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// Load replaces the board with the server's jobs. There is no retry.
func (c *Controller) Load() {
	if !c.update(func(s *State) {
		s.Load = Loading
		s.Jobs = nil
	}) {
		return
	}

	jobs, err := c.api.List(c.ctx)

	c.update(func(s *State) {
		if err != nil {
			c.logger.Printf("Failed to load job applications: %v", err)
			s.Jobs = nil
			s.Load = LoadedEmpty
			s.Error = errorMessage(err, msgLoadFailed)
			return
		}
		s.Jobs = jobs
		s.Load = Loaded
		s.Error = ""
	})
}

func (c *Controller) UpdateManual(field FormField, value string) {
	c.update(func(s *State) {
		s.Manual.Set(field, value)
	})
}

func (c *Controller) ResetManual() {
	c.update(func(s *State) {
		s.Manual = Form{}
	})
}

// SubmitManual creates a job from the manual form. Nothing is sent while a
// create is in flight or a required field is blank. The job only appears
// once the server has assigned its id.
func (c *Controller) SubmitManual() {
	var fields client.JobFields
	var submit bool
	c.update(func(s *State) {
		if s.Creating || !s.Manual.Complete() {
			return
		}
		fields = client.JobFields{
			Title:    strings.TrimSpace(s.Manual.Title),
			Company:  strings.TrimSpace(s.Manual.Company),
			Location: strings.TrimSpace(s.Manual.Location),
			Link:     optional(models.NormalizeLink(s.Manual.Link)),
			Notes:    optional(strings.TrimSpace(s.Manual.Notes)),
		}
		if fields.Notes == nil {
			fields.Notes = optional(defaultManualNotes)
		}
		s.Creating = true
		submit = true
	})
	if !submit {
		return
	}

	job, err := c.api.Create(c.ctx, fields)

	c.update(func(s *State) {
		s.Creating = false
		if err != nil {
			c.logger.Printf("Failed to create job application: %v", err)
			s.Error = errorMessage(err, msgCreateFailed)
			return
		}
		s.Jobs = append([]models.JobApplication{*job}, s.Jobs...)
		s.Manual = Form{}
		s.Success = msgCreated
		s.Error = ""
	})
}

// StartEdit opens the edit modal for a job with its fields copied into the draft.
func (c *Controller) StartEdit(id uint64) bool {
	found := false
	c.update(func(s *State) {
		i := indexOf(s.Jobs, id)
		if i < 0 {
			return
		}
		editing := s.Jobs[i].Clone()
		s.Editing = &editing
		s.EditForm = formFor(editing)
		found = true
	})
	return found
}

func (c *Controller) UpdateEditForm(field FormField, value string) {
	c.update(func(s *State) {
		s.EditForm.Set(field, value)
	})
}

func (c *Controller) EditDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return EditChanged(c.st.EditForm, c.st.Editing)
}

func (c *Controller) CloseEdit() {
	c.update(closeEdit)
}

func closeEdit(s *State) {
	s.Editing = nil
	s.EditForm = Form{}
}

// SubmitEdit saves the edit draft. The job is replaced in place right away and
// restored, together with the edit snapshot, if the server rejects the change.
func (c *Controller) SubmitEdit() {
	var (
		previous models.JobApplication
		fields   client.JobFields
		submit   bool
	)
	c.update(func(s *State) {
		if s.Editing == nil || s.Saving || !EditChanged(s.EditForm, s.Editing) {
			return
		}
		if s.MutationFor(s.Editing.ID).Phase == Pending {
			return
		}

		previous = s.Editing.Clone()
		fields = client.JobFields{
			Title:    orDefault(s.EditForm.Title, previous.Title),
			Company:  orDefault(s.EditForm.Company, previous.Company),
			Location: orDefault(s.EditForm.Location, previous.Location),
			Link:     optional(models.NormalizeLink(s.EditForm.Link)),
			Notes:    optional(strings.TrimSpace(s.EditForm.Notes)),
		}

		optimistic := previous.Clone()
		optimistic.Title = fields.Title
		optimistic.Company = fields.Company
		optimistic.Location = fields.Location
		optimistic.Link = fields.Link
		optimistic.Notes = fields.Notes

		replace(s.Jobs, optimistic)
		editing := optimistic.Clone()
		s.Editing = &editing
		s.Saving = true
		s.Mutations[previous.ID] = Mutation{Kind: KindEdit, Phase: Pending, Snapshot: previous}
		submit = true
	})
	if !submit {
		return
	}

	updated, err := c.api.Update(c.ctx, previous.ID, fields)

	c.update(func(s *State) {
		s.Saving = false
		if err != nil {
			c.logger.Printf("Failed to update job application: %v", err)
			replace(s.Jobs, previous)
			restored := previous.Clone()
			s.Editing = &restored
			s.Error = errorMessage(err, msgUpdateFailed)
			s.Mutations[previous.ID] = Mutation{Kind: KindEdit, Phase: RolledBack, Snapshot: previous, Err: err}
			return
		}
		replace(s.Jobs, *updated)
		s.Success = msgUpdated
		s.Error = ""
		s.Mutations[previous.ID] = Mutation{Kind: KindEdit, Phase: Committed, Snapshot: previous}
		closeEdit(s)
	})
}

// DeleteEditing removes the job open in the edit modal.
func (c *Controller) DeleteEditing() {
	var id uint64
	c.update(func(s *State) {
		if s.Editing == nil || s.Deleting || s.MutationFor(s.Editing.ID).Phase == Pending {
			return
		}
		id = s.Editing.ID
		s.Deleting = true
	})
	if id == 0 {
		return
	}

	err := c.api.Delete(c.ctx, id)

	c.update(func(s *State) {
		s.Deleting = false
		if err != nil {
			c.logger.Printf("Failed to delete job application: %v", err)
			s.Error = errorMessage(err, msgDeleteFailed)
			return
		}
		if i := indexOf(s.Jobs, id); i >= 0 {
			s.Jobs = append(s.Jobs[:i], s.Jobs[i+1:]...)
		}
		delete(s.Mutations, id)
		s.Success = msgRemoved
		s.Error = ""
		closeEdit(s)
	})
}

// ChangeStatus moves a job to another column, optimistically. Unknown ids,
// unchanged statuses and jobs with a change already in flight are ignored.
func (c *Controller) ChangeStatus(id uint64, status models.Status) {
	var original models.JobApplication
	var submit bool
	c.update(func(s *State) {
		if !status.Valid() {
			return
		}
		i := indexOf(s.Jobs, id)
		if i < 0 || s.Jobs[i].Status == status || s.MutationFor(id).Phase == Pending {
			return
		}
		original = s.Jobs[i].Clone()
		s.Jobs[i].Status = status
		s.Mutations[id] = Mutation{Kind: KindStatus, Phase: Pending, Snapshot: original}
		submit = true
	})
	if !submit {
		return
	}

	updated, err := c.api.UpdateStatus(c.ctx, id, status)

	c.update(func(s *State) {
		if err != nil {
			c.logger.Printf("Failed to update job status: %v", err)
			replace(s.Jobs, original)
			s.Error = errorMessage(err, msgStatusFailed)
			s.Mutations[id] = Mutation{Kind: KindStatus, Phase: RolledBack, Snapshot: original, Err: err}
			return
		}
		replace(s.Jobs, *updated)
		s.Error = ""
		s.Mutations[id] = Mutation{Kind: KindStatus, Phase: Committed, Snapshot: original}
	})
}

// BeginDrag records the job being dragged.
func (c *Controller) BeginDrag(id uint64) {
	c.update(func(s *State) {
		s.DraggedID = id
	})
}

// DragEnter highlights a column as the drop target.
func (c *Controller) DragEnter(status models.Status) {
	c.update(func(s *State) {
		s.DropTarget = status
	})
}

// DragLeave clears the highlight once the pointer has really left the column.
// stillInside is true when it only moved between the column's children.
func (c *Controller) DragLeave(status models.Status, stillInside bool) {
	if stillInside {
		return
	}
	c.update(func(s *State) {
		if s.DropTarget == status {
			s.DropTarget = ""
		}
	})
}

// Drop moves the dragged job into status. carriedID is used when the
// tracked id was lost.
func (c *Controller) Drop(status models.Status, carriedID uint64) {
	var id uint64
	c.update(func(s *State) {
		id = s.DraggedID
		if id == 0 {
			id = carriedID
		}
		s.DropTarget = ""
		if id != 0 {
			s.DraggedID = 0
		}
	})
	if id == 0 {
		return
	}
	c.ChangeStatus(id, status)
}

func (c *Controller) EndDrag() {
	c.update(func(s *State) {
		s.DraggedID = 0
		s.DropTarget = ""
	})
}

// OpenStatusModal shows every job of one status, starting at page 1.
func (c *Controller) OpenStatusModal(status models.Status) {
	c.update(func(s *State) {
		s.Expanded = status
		s.Page = 1
	})
}

func (c *Controller) CloseStatusModal() {
	c.update(func(s *State) {
		s.Expanded = ""
		s.Page = 1
	})
}

func (c *Controller) NextPage() {
	c.update(func(s *State) {
		if total := s.TotalPages(); total > 0 && s.Page < total {
			s.Page++
		}
	})
}

func (c *Controller) PrevPage() {
	c.update(func(s *State) {
		if s.Page > 1 {
			s.Page--
		}
	})
}

func (c *Controller) DismissError() {
	c.update(func(s *State) {
		s.Error = ""
	})
}

func (c *Controller) CloseSuccess() {
	c.update(func(s *State) {
		s.Success = ""
	})
}

func clampExpandedPage(s *State) int {
	if s.Expanded == "" {
		return s.Page
	}
	return ClampPage(s.Page, s.TotalPages())
}

// errorMessage prefers the message the server sent.
func errorMessage(err error, fallback string) string {
	if msg := client.BodyMessage(err); msg != "" {
		return msg
	}
	return fallback
}

func indexOf(jobs []models.JobApplication, id uint64) int {
	for i := range jobs {
		if jobs[i].ID == id {
			return i
		}
	}
	return -1
}

// replace swaps the job with the same id, if it is still on the board.
func replace(jobs []models.JobApplication, job models.JobApplication) {
	if i := indexOf(jobs, job.ID); i >= 0 {
		jobs[i] = job
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
