package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/justsurfingit/job-board/internal/client"
	"github.com/justsurfingit/job-board/internal/models"
	"go.uber.org/mock/gomock"
)

func newTestController(t *testing.T) (*Controller, *MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := NewMockAPI(ctrl)
	c := New(context.Background(), api, log.New(io.Discard, "", 0))
	t.Cleanup(c.Close)
	return c, api
}

func strPtr(s string) *string { return &s }

func job(id uint64, title string, status models.Status) models.JobApplication {
	return models.JobApplication{
		ID:       id,
		Title:    title,
		Company:  "Acme Inc.",
		Location: "Remote",
		Link:     strPtr("https://example.com/jobs/" + fmt.Sprint(id)),
		Notes:    strPtr("Exciting opportunity"),
		Status:   status,
	}
}

func loaded(t *testing.T, jobs ...models.JobApplication) (*Controller, *MockAPI) {
	t.Helper()
	c, api := newTestController(t)
	api.EXPECT().List(gomock.Any()).Return(jobs, nil)
	c.Load()
	return c, api
}

var networkErr = &client.Error{Message: "Unable to reach the server", Cause: errors.New("connection refused")}

func TestLoad(t *testing.T) {
	c, _ := loaded(t, job(2, "B", models.StatusInterview), job(1, "A", models.StatusApplied))

	s := c.State()
	if s.Load != Loaded || len(s.Jobs) != 2 || s.Error != "" {
		t.Fatalf("unexpected state %+v", s)
	}
	groups := s.JobsByStatus()
	if len(groups[models.StatusApplied]) != 1 || len(groups[models.StatusInterview]) != 1 || len(groups[models.StatusRejected]) != 0 {
		t.Errorf("unexpected grouping %v", groups)
	}
}

func TestLoadFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network", networkErr, "Unable to load job applications. Please try again."},
		{"server message", &client.Error{Status: 500, Message: "Server Error", Body: &client.ErrorBody{Message: "Server Error"}}, "Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, api := newTestController(t)
			api.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.JobApplication, error) {
				if s := c.State(); s.Load != Loading || !s.Loading() {
					t.Errorf("expected loading state during request, got %v", s.Load)
				}
				return nil, tt.err
			})

			c.Load()
			s := c.State()
			if s.Load != LoadedEmpty || len(s.Jobs) != 0 || s.Error != tt.want {
				t.Errorf("unexpected state %+v", s)
			}

			c.DismissError()
			if c.State().Error != "" {
				t.Error("error not dismissed")
			}
		})
	}
}

func TestLoadAfterCloseIsDiscarded(t *testing.T) {
	c, api := newTestController(t)
	api.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.JobApplication, error) {
		c.Close()
		if ctx.Err() == nil {
			t.Error("request context should be cancelled by Close")
		}
		return []models.JobApplication{job(1, "A", models.StatusApplied)}, nil
	})

	c.Load()
	if s := c.State(); s.Load != Loading || len(s.Jobs) != 0 {
		t.Errorf("completion after Close must be discarded, got %+v", s)
	}

	// Closed controllers issue no more requests.
	c.Load()
}

func TestDragRollback(t *testing.T) {
	c, api := loaded(t, job(1, "Software Engineer", models.StatusApplied))

	api.EXPECT().UpdateStatus(gomock.Any(), uint64(1), models.StatusInterview).
		DoAndReturn(func(ctx context.Context, id uint64, status models.Status) (*models.JobApplication, error) {
			s := c.State()
			if got := s.JobsByStatus()[models.StatusInterview]; len(got) != 1 || got[0].ID != 1 {
				t.Errorf("card should move to Interview immediately, columns %v", s.JobsByStatus())
			}
			if m := s.MutationFor(1); m.Phase != Pending || m.Kind != KindStatus || m.Snapshot.Status != models.StatusApplied {
				t.Errorf("unexpected pending mutation %+v", m)
			}
			return nil, networkErr
		})

	c.BeginDrag(1)
	c.DragEnter(models.StatusInterview)
	if s := c.State(); s.DraggedID != 1 || s.DropTarget != models.StatusInterview {
		t.Fatalf("drag state not tracked: %+v", s)
	}
	c.Drop(models.StatusInterview, 0)

	s := c.State()
	if s.Jobs[0].Status != models.StatusApplied {
		t.Errorf("card should return to Applied, got %s", s.Jobs[0].Status)
	}
	if s.Error != "Unable to update job status. Please try again." {
		t.Errorf("unexpected banner %q", s.Error)
	}
	if s.DraggedID != 0 || s.DropTarget != "" {
		t.Errorf("drag state not cleared: %+v", s)
	}
	m := s.MutationFor(1)
	if m.Phase != RolledBack || !errors.Is(m.Err, networkErr) {
		t.Errorf("unexpected mutation %+v", m)
	}
}

func TestStatusChangeCommits(t *testing.T) {
	c, api := loaded(t, job(1, "Engineer", models.StatusApplied))

	server := job(1, "Engineer", models.StatusOnlineAssessment)
	api.EXPECT().UpdateStatus(gomock.Any(), uint64(1), models.StatusOnlineAssessment).Return(&server, nil)

	c.ChangeStatus(1, models.StatusOnlineAssessment)

	s := c.State()
	if s.Jobs[0].Status != models.StatusOnlineAssessment || s.Error != "" {
		t.Errorf("unexpected state %+v", s)
	}
	if m := s.MutationFor(1); m.Phase != Committed {
		t.Errorf("expected committed mutation, got %v", m.Phase)
	}
}

func TestStatusChangeIgnored(t *testing.T) {
	// No UpdateStatus expectation: any request fails the test.
	c, _ := loaded(t, job(1, "Engineer", models.StatusApplied))

	c.ChangeStatus(1, models.StatusApplied)
	c.ChangeStatus(42, models.StatusInterview)
	c.ChangeStatus(1, models.Status("Pending"))

	c.BeginDrag(1)
	c.Drop(models.StatusApplied, 0)
	if s := c.State(); s.DraggedID != 0 || s.Jobs[0].Status != models.StatusApplied {
		t.Errorf("unexpected state %+v", s)
	}

	// Nothing tracked and nothing carried.
	c.Drop(models.StatusInterview, 0)
}

func TestStatusChangeWhilePending(t *testing.T) {
	c, api := loaded(t, job(1, "Engineer", models.StatusApplied))

	server := job(1, "Engineer", models.StatusInterview)
	api.EXPECT().UpdateStatus(gomock.Any(), uint64(1), models.StatusInterview).
		DoAndReturn(func(ctx context.Context, id uint64, status models.Status) (*models.JobApplication, error) {
			c.ChangeStatus(1, models.StatusRejected)
			return &server, nil
		}).Times(1)

	c.ChangeStatus(1, models.StatusInterview)
	if got := c.State().Jobs[0].Status; got != models.StatusInterview {
		t.Errorf("expected Interview, got %s", got)
	}
}

func TestDropFallsBackToCarriedID(t *testing.T) {
	c, api := loaded(t, job(1, "A", models.StatusApplied), job(2, "B", models.StatusApplied))

	server := job(2, "B", models.StatusRejected)
	api.EXPECT().UpdateStatus(gomock.Any(), uint64(2), models.StatusRejected).Return(&server, nil)

	c.Drop(models.StatusRejected, 2)
	if got := c.State().Jobs[1].Status; got != models.StatusRejected {
		t.Errorf("expected Rejected, got %s", got)
	}
}

func TestDragLeave(t *testing.T) {
	c, _ := loaded(t)

	c.DragEnter(models.StatusInterview)
	c.DragLeave(models.StatusInterview, true)
	if c.State().DropTarget != models.StatusInterview {
		t.Error("moving between children must keep the highlight")
	}
	c.DragLeave(models.StatusApplied, false)
	if c.State().DropTarget != models.StatusInterview {
		t.Error("leaving another column must keep the highlight")
	}
	c.DragLeave(models.StatusInterview, false)
	if c.State().DropTarget != "" {
		t.Error("highlight should clear")
	}

	c.BeginDrag(3)
	c.DragEnter(models.StatusAccepted)
	c.EndDrag()
	if s := c.State(); s.DraggedID != 0 || s.DropTarget != "" {
		t.Errorf("EndDrag should reset drag state: %+v", s)
	}
}

func TestSubmitManual(t *testing.T) {
	c, api := loaded(t, job(1, "Existing", models.StatusApplied))

	// Incomplete form sends nothing.
	c.UpdateManual(FieldTitle, "Backend Engineer")
	c.SubmitManual()

	c.UpdateManual(FieldCompany, "  Initech ")
	c.UpdateManual(FieldLocation, "Austin")
	c.UpdateManual(FieldLink, "initech.com/jobs")

	created := models.JobApplication{ID: 9, Title: "Backend Engineer", Company: "Initech", Location: "Austin", Status: models.StatusApplied}
	api.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fields client.JobFields) (*models.JobApplication, error) {
			if !c.State().Creating {
				t.Error("creating flag not set")
			}
			if fields.Company != "Initech" || fields.Link == nil || *fields.Link != "https://initech.com/jobs" {
				t.Errorf("unexpected fields %+v", fields)
			}
			if fields.Notes == nil || *fields.Notes != "Added manually." {
				t.Errorf("notes should default, got %v", fields.Notes)
			}
			return &created, nil
		})

	c.SubmitManual()

	s := c.State()
	if len(s.Jobs) != 2 || s.Jobs[0].ID != 9 {
		t.Errorf("created job should be prepended: %+v", s.Jobs)
	}
	if s.Manual != (Form{}) || s.Creating {
		t.Errorf("form not reset: %+v", s.Manual)
	}
	if s.Success != "Job added successfully." {
		t.Errorf("unexpected success %q", s.Success)
	}
	c.CloseSuccess()
	if c.State().Success != "" {
		t.Error("success not closed")
	}
}

func TestSubmitManualFailureKeepsForm(t *testing.T) {
	c, api := loaded(t)

	c.UpdateManual(FieldTitle, "Engineer")
	c.UpdateManual(FieldCompany, "Acme")
	c.UpdateManual(FieldLocation, "Remote")

	body := &client.ErrorBody{Message: "The link field must be a valid URL.", Errors: map[string][]string{"link": {"The link field must be a valid URL."}}}
	api.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fields client.JobFields) (*models.JobApplication, error) {
			if fields.Link != nil {
				t.Error("blank link must be sent as null")
			}
			return nil, &client.Error{Status: http.StatusUnprocessableEntity, Message: body.Message, Body: body}
		})

	c.SubmitManual()

	s := c.State()
	if s.Manual.Title != "Engineer" || s.Creating || len(s.Jobs) != 0 {
		t.Errorf("unexpected state %+v", s)
	}
	if s.Error != "The link field must be a valid URL." {
		t.Errorf("server message should win, got %q", s.Error)
	}
}

func TestEditDirty(t *testing.T) {
	original := job(1, "Engineer", models.StatusApplied)
	original.Link = strPtr("https://acme.com/jobs/1")
	original.Notes = nil

	tests := []struct {
		name  string
		form  Form
		dirty bool
	}{
		{"unchanged", formFor(original), false},
		{"blank title is not a change", Form{Company: "Acme Inc.", Location: "Remote", Link: "https://acme.com/jobs/1"}, false},
		{"padded title", Form{Title: " Engineer ", Company: "Acme Inc.", Location: "Remote", Link: "https://acme.com/jobs/1"}, false},
		{"new title", Form{Title: "Senior Engineer", Company: "Acme Inc.", Location: "Remote", Link: "https://acme.com/jobs/1"}, true},
		{"blank notes stay blank", Form{Title: "Engineer", Company: "Acme Inc.", Location: "Remote", Link: "https://acme.com/jobs/1", Notes: "  "}, false},
		{"notes added", Form{Title: "Engineer", Company: "Acme Inc.", Location: "Remote", Link: "https://acme.com/jobs/1", Notes: "Call back"}, true},
		{"link without scheme is the same", Form{Title: "Engineer", Company: "Acme Inc.", Location: "Remote", Link: "acme.com/jobs/1"}, false},
		{"link cleared", Form{Title: "Engineer", Company: "Acme Inc.", Location: "Remote"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditChanged(tt.form, &original); got != tt.dirty {
				t.Errorf("EditChanged = %v, want %v", got, tt.dirty)
			}
		})
	}

	if EditChanged(Form{Title: "x"}, nil) {
		t.Error("no job means nothing to change")
	}
}

func TestSubmitEdit(t *testing.T) {
	c, api := loaded(t, job(1, "Engineer", models.StatusInterview))

	if !c.StartEdit(1) {
		t.Fatal("StartEdit should find the job")
	}
	// Not dirty: no request.
	c.SubmitEdit()

	c.UpdateEditForm(FieldTitle, "Senior Engineer")
	c.UpdateEditForm(FieldCompany, "  ")
	c.UpdateEditForm(FieldNotes, "")
	if !c.EditDirty() {
		t.Fatal("form should be dirty")
	}

	server := job(1, "Senior Engineer", models.StatusInterview)
	server.Notes = nil
	api.EXPECT().Update(gomock.Any(), uint64(1), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uint64, fields client.JobFields) (*models.JobApplication, error) {
			if fields.Title != "Senior Engineer" || fields.Company != "Acme Inc." || fields.Notes != nil {
				t.Errorf("unexpected payload %+v", fields)
			}
			s := c.State()
			if !s.Saving || s.Jobs[0].Title != "Senior Engineer" || s.Editing.Title != "Senior Engineer" {
				t.Errorf("optimistic update not applied: %+v", s)
			}
			return &server, nil
		})

	c.SubmitEdit()

	s := c.State()
	if s.Editing != nil || s.Saving {
		t.Error("edit modal should close")
	}
	if s.Success != "Job application updated" {
		t.Errorf("unexpected success %q", s.Success)
	}
	if s.Jobs[0].Title != "Senior Engineer" || s.Jobs[0].Notes != nil {
		t.Errorf("server record not reconciled: %+v", s.Jobs[0])
	}
	if s.MutationFor(1).Phase != Committed {
		t.Error("expected committed edit")
	}
}

func TestSubmitEditRollback(t *testing.T) {
	original := job(1, "Engineer", models.StatusApplied)
	c, api := loaded(t, original)

	c.StartEdit(1)
	c.UpdateEditForm(FieldTitle, "Staff Engineer")
	api.EXPECT().Update(gomock.Any(), uint64(1), gomock.Any()).Return(nil, networkErr)

	c.SubmitEdit()

	s := c.State()
	if s.Jobs[0].Title != "Engineer" {
		t.Errorf("record not rolled back: %+v", s.Jobs[0])
	}
	if s.Editing == nil || s.Editing.Title != "Engineer" {
		t.Errorf("edit snapshot not rolled back: %+v", s.Editing)
	}
	if s.EditForm.Title != "Staff Engineer" {
		t.Error("draft should be kept for another try")
	}
	if s.Error != "Unable to update job application. Please try again." || s.Saving {
		t.Errorf("unexpected state %+v", s)
	}
	if m := s.MutationFor(1); m.Phase != RolledBack || m.Kind != KindEdit {
		t.Errorf("unexpected mutation %+v", m)
	}
}

func TestDeleteEditing(t *testing.T) {
	c, api := loaded(t, job(1, "A", models.StatusApplied), job(2, "B", models.StatusApplied))

	// Nothing open: no request.
	c.DeleteEditing()

	c.StartEdit(2)
	api.EXPECT().Delete(gomock.Any(), uint64(2)).Return(networkErr)
	c.DeleteEditing()

	s := c.State()
	if len(s.Jobs) != 2 || s.Editing == nil || s.Deleting {
		t.Errorf("failed delete must keep the job and the modal: %+v", s)
	}
	if s.Error != "Unable to delete job application. Please try again." {
		t.Errorf("unexpected error %q", s.Error)
	}

	api.EXPECT().Delete(gomock.Any(), uint64(2)).Return(nil)
	c.DeleteEditing()

	s = c.State()
	if len(s.Jobs) != 1 || s.Jobs[0].ID != 1 || s.Editing != nil {
		t.Errorf("unexpected state after delete %+v", s)
	}
	if s.Success != "Job application removed" || s.Error != "" {
		t.Errorf("unexpected messages %q / %q", s.Success, s.Error)
	}
}

func TestStatusModalPagination(t *testing.T) {
	var jobs []models.JobApplication
	for i := 1; i <= 21; i++ {
		jobs = append(jobs, job(uint64(i), fmt.Sprintf("Job %d", i), models.StatusApplied))
	}
	c, api := loaded(t, jobs...)

	c.OpenStatusModal(models.StatusApplied)
	s := c.State()
	if s.Page != 1 || s.TotalPages() != 3 || len(s.PageJobs()) != 10 {
		t.Fatalf("unexpected first page: page=%d total=%d", s.Page, s.TotalPages())
	}

	c.PrevPage()
	c.NextPage()
	c.NextPage()
	c.NextPage()
	s = c.State()
	if s.Page != 3 || len(s.PageJobs()) != 1 || s.PageJobs()[0].ID != 21 {
		t.Fatalf("unexpected last page: page=%d jobs=%d", s.Page, len(s.PageJobs()))
	}

	// Moving the only job on page 3 away shrinks the modal to 2 pages.
	moved := job(21, "Job 21", models.StatusRejected)
	api.EXPECT().UpdateStatus(gomock.Any(), uint64(21), models.StatusRejected).Return(&moved, nil)
	c.ChangeStatus(21, models.StatusRejected)
	if s := c.State(); s.Page != 2 || s.TotalPages() != 2 {
		t.Errorf("page not clamped: page=%d total=%d", s.Page, s.TotalPages())
	}

	c.CloseStatusModal()
	if s := c.State(); s.Expanded != "" || s.Page != 1 || s.TotalPages() != 0 {
		t.Errorf("modal not closed: %+v", s)
	}

	c.OpenStatusModal(models.StatusAccepted)
	c.NextPage()
	if s := c.State(); s.Page != 1 || len(s.PageJobs()) != 0 {
		t.Errorf("empty status should stay on page 1, got %d", s.Page)
	}
}

func TestStatusCounts(t *testing.T) {
	c, _ := loaded(t,
		job(1, "A", models.StatusApplied),
		job(2, "B", models.StatusApplied),
		job(3, "C", models.StatusRejected),
	)

	counts, total := c.State().StatusCounts()
	if total != 3 || counts[models.StatusApplied] != 2 || counts[models.StatusRejected] != 1 || counts[models.StatusInterview] != 0 {
		t.Errorf("unexpected counts %v / %d", counts, total)
	}
}

func TestChangesSignal(t *testing.T) {
	c, _ := loaded(t)

	// Drain whatever Load left behind.
	select {
	case <-c.Changes():
	default:
	}

	c.DragEnter(models.StatusApplied)
	c.DragEnter(models.StatusInterview)
	select {
	case <-c.Changes():
	default:
		t.Fatal("expected a change signal")
	}
	select {
	case <-c.Changes():
		t.Error("signals should coalesce")
	default:
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct{ page, total, want int }{
		{1, 0, 1},
		{5, 0, 1},
		{0, 3, 1},
		{4, 3, 3},
		{2, 3, 2},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
	if TotalPages(0) != 0 || TotalPages(10) != 1 || TotalPages(11) != 2 {
		t.Error("unexpected TotalPages")
	}
}
