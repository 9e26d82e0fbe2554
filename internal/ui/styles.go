package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/justsurfingit/job-board/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 2)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedColumnStyle = columnStyle.BorderForeground(lipgloss.Color("69"))
	dropTargetStyle    = columnStyle.BorderForeground(lipgloss.Color("214")).BorderStyle(lipgloss.DoubleBorder())

	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	selectedCardStyle = lipgloss.NewStyle().Reverse(true)
	draggedCardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("69")).
			Padding(1, 2)

	dirtyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var statusColors = map[models.Status]lipgloss.Color{
	models.StatusApplied:          lipgloss.Color("33"),
	models.StatusOnlineAssessment: lipgloss.Color("141"),
	models.StatusInterview:        lipgloss.Color("214"),
	models.StatusAccepted:         lipgloss.Color("42"),
	models.StatusRejected:         lipgloss.Color("160"),
}

func statusStyle(s models.Status) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(statusColors[s])
}
