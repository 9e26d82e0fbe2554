package database

import (
	"context"
	"fmt"
	"log"

	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

func ptr(s string) *string { return &s }

// sampleApplications fill an empty board for local development.
var sampleApplications = []models.JobApplication{
	{
		Title:    "Frontend Engineer",
		Company:  "Aspyre",
		Location: "Remote · North America",
		Link:     ptr("https://jobs.lever.co/example/frontend-engineer"),
		Status:   models.StatusApplied,
		Notes:    ptr("Reached out to recruiter on LinkedIn. Waiting for response."),
	},
	{
		Title:    "Product Designer",
		Company:  "Bright Labs",
		Location: "Amsterdam, NL",
		Link:     ptr("https://boards.greenhouse.io/example/product-designer"),
		Status:   models.StatusInterview,
		Notes:    ptr("Second round scheduled next Tuesday."),
	},
	{
		Title:    "Data Scientist",
		Company:  "Vector Analytics",
		Location: "Berlin, DE",
		Link:     ptr("https://jobs.example.com/vector-analytics/data-scientist"),
		Status:   models.StatusOnlineAssessment,
		Notes:    ptr("Assessment submitted, awaiting feedback."),
	},
	{
		Title:    "Backend Engineer",
		Company:  "Nimbus Systems",
		Location: "Austin, TX",
		Link:     ptr("https://jobs.example.com/nimbus/backend-engineer"),
		Status:   models.StatusAccepted,
		Notes:    ptr("Offer accepted and start date confirmed for next month."),
	},
	{
		Title:    "DevOps Engineer",
		Company:  "CloudScale",
		Location: "Toronto, CA",
		Link:     ptr("https://jobs.example.com/cloudscale/devops-engineer"),
		Status:   models.StatusRejected,
		Notes:    ptr("Received rejection email after final interview."),
	},
}

// Seed inserts the sample applications when the table is empty.
// It returns the number of rows written.
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.JobApplication{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count job applications: %w", err)
	}
	if count > 0 {
		log.Printf("Seed skipped: %d job applications already stored", count)
		return 0, nil
	}

	rows := make([]models.JobApplication, len(sampleApplications))
	for i, app := range sampleApplications {
		rows[i] = app.Clone()
	}
	// One insert per row keeps created_at ordered like the list above.
	for i := range rows {
		if err := db.WithContext(ctx).Create(&rows[i]).Error; err != nil {
			return i, fmt.Errorf("seed %q: %w", rows[i].Title, err)
		}
	}
	return len(rows), nil
}
