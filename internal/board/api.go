package board

import (
	"context"

	"github.com/justsurfingit/job-board/internal/client"
	"github.com/justsurfingit/job-board/internal/models"
)

//go:generate mockgen -source=api.go -destination=mock_api_test.go -package=board

// API is the data layer the controller drives. *client.Client implements it.
type API interface {
	List(ctx context.Context) ([]models.JobApplication, error)
	Create(ctx context.Context, fields client.JobFields) (*models.JobApplication, error)
	Update(ctx context.Context, id uint64, fields client.JobFields) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uint64, status models.Status) (*models.JobApplication, error)
	Delete(ctx context.Context, id uint64) error
}

var _ API = (*client.Client)(nil)
