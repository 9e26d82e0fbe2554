package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justsurfingit/job-board/internal/board"
	"github.com/justsurfingit/job-board/internal/models"
)

// cardsPerColumn is how many cards a column shows before the "+N" marker.
const cardsPerColumn = 3

const (
	defaultWidth = 120
	chartBarMax  = 30
)

// visibleCards splits a column into the cards shown and the number hidden.
func visibleCards(jobs []models.JobApplication) ([]models.JobApplication, int) {
	if len(jobs) <= cardsPerColumn {
		return jobs, 0
	}
	return jobs[:cardsPerColumn], len(jobs) - cardsPerColumn
}

func renderHeader(width int) string {
	left := titleStyle.Render("Job Board")
	right := mutedStyle.Render("S sign out")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return errorStyle.Render("✖ "+msg) + " " + mutedStyle.Render("x to dismiss")
}

// renderChart draws one bar per status, scaled to the largest column.
func renderChart(s board.State) string {
	counts, total := s.StatusCounts()
	if total == 0 {
		return mutedStyle.Render("No applications yet. Press n to add your first job.")
	}

	largest := 0
	for _, n := range counts {
		if n > largest {
			largest = n
		}
	}

	labelWidth := 0
	for _, status := range models.Statuses {
		if w := lipgloss.Width(status.String()); w > labelWidth {
			labelWidth = w
		}
	}

	lines := []string{titleStyle.Render(fmt.Sprintf("Tracking %d jobs", total))}
	for _, status := range models.Statuses {
		n := counts[status]
		bar := strings.Repeat("█", n*chartBarMax/largest)
		if n > 0 && bar == "" {
			bar = "▏"
		}
		label := fmt.Sprintf("%-*s", labelWidth, status.String())
		lines = append(lines, fmt.Sprintf("%s %s %d", label, statusStyle(status).Render(bar), n))
	}
	return strings.Join(lines, "\n")
}

// cursor identifies the selected card on the board.
type cursor struct {
	column int
	card   int
}

func renderCard(job models.JobApplication, selected, dragged, pending bool, width int) string {
	title := cardTitleStyle.Render(truncate(job.Title, width))
	sub := mutedStyle.Render(truncate(job.Company+" · "+job.Location, width))
	card := title + "\n" + sub
	if pending {
		card += "\n" + mutedStyle.Render("saving…")
	}

	switch {
	case dragged:
		return draggedCardStyle.Render("⇕ " + card)
	case selected:
		return selectedCardStyle.Render(card)
	}
	return card
}

func renderColumn(s board.State, status models.Status, jobs []models.JobApplication, focused bool, selectedCard, width int) string {
	style := columnStyle
	switch {
	case s.DropTarget == status:
		style = dropTargetStyle
	case focused:
		style = focusedColumnStyle
	}

	inner := width - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	lines := []string{statusStyle(status).Render(fmt.Sprintf("%s (%d)", status, len(jobs)))}
	shown, hidden := visibleCards(jobs)
	if len(shown) == 0 {
		lines = append(lines, mutedStyle.Render("Drop jobs here"))
	}
	for i, job := range shown {
		selected := focused && i == selectedCard
		dragged := s.DraggedID == job.ID
		pending := s.MutationFor(job.ID).Phase == board.Pending
		lines = append(lines, renderCard(job, selected, dragged, pending, inner))
	}
	if hidden > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("+%d more · v to view all", hidden)))
	}

	return style.Width(inner).Render(strings.Join(lines, "\n"))
}

// renderColumns draws one row of columns. offset is the board index of the first status.
func renderColumns(s board.State, statuses []models.Status, offset int, cur cursor, width int) string {
	groups := s.JobsByStatus()
	colWidth := width / len(statuses)

	cols := make([]string, 0, len(statuses))
	for i, status := range statuses {
		focused := cur.column == offset+i
		cols = append(cols, renderColumn(s, status, groups[status], focused, cur.card, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderBoard(s board.State, cur cursor, width int) string {
	if s.Loading() {
		return mutedStyle.Render("Loading job applications…")
	}
	inProgress := models.MainStatuses()
	outcomes := models.OutcomeStatuses()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderColumns(s, inProgress, 0, cur, width),
		renderColumns(s, outcomes, len(inProgress), cur, width*len(outcomes)/len(inProgress)),
	)
}

func renderViewAll(s board.State) string {
	if s.Expanded == "" {
		return ""
	}
	lines := []string{statusStyle(s.Expanded).Render(fmt.Sprintf("All %s jobs", s.Expanded)), ""}

	jobs := s.PageJobs()
	if len(jobs) == 0 {
		lines = append(lines, mutedStyle.Render("No jobs in this column."))
	}
	for i, job := range jobs {
		n := (s.Page-1)*board.JobsPerPage + i + 1
		lines = append(lines, fmt.Sprintf("%2d. %s  %s", n, cardTitleStyle.Render(job.Title), mutedStyle.Render(job.Company+" · "+job.Location)))
	}

	total := s.TotalPages()
	if total == 0 {
		total = 1
	}
	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("Page %d of %d · ←/→ page · esc close", s.Page, total)))
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func renderSuccess(msg string) string {
	return successStyle.Render("✔ " + msg + "\n\n" + mutedStyle.Render("press any key"))
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + "…"
}
