package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobApplicationNotFound = errors.New("job application not found")

type JobApplicationService struct {
	DB *gorm.DB
}

func NewJobApplicationService(db *gorm.DB) *JobApplicationService {
	return &JobApplicationService{
		DB: db,
	}
}

// List returns every application, newest first.
func (s *JobApplicationService) List(ctx context.Context) ([]models.JobApplication, error) {
	jobs := []models.JobApplication{}
	err := s.DB.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return jobs, nil
}

// Create stores a new application. A missing status defaults to Applied.
func (s *JobApplicationService) Create(ctx context.Context, changes *dtos.JobApplicationChanges) (*models.JobApplication, error) {
	job := &models.JobApplication{Status: models.StatusApplied}
	changes.Apply(job)

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job application: %w", err)
	}
	return job, nil
}

// Replace merges the supplied fields onto an existing application.
func (s *JobApplicationService) Replace(ctx context.Context, id uint64, changes *dtos.JobApplicationChanges) (*models.JobApplication, error) {
	return s.mutate(ctx, id, changes.Apply)
}

// SetStatus changes only the status of an application.
func (s *JobApplicationService) SetStatus(ctx context.Context, id uint64, status models.Status) (*models.JobApplication, error) {
	return s.mutate(ctx, id, func(job *models.JobApplication) {
		job.Status = status
	})
}

// Delete removes an application permanently.
func (s *JobApplicationService) Delete(ctx context.Context, id uint64) error {
	result := s.DB.WithContext(ctx).Delete(&models.JobApplication{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete job application %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobApplicationNotFound
	}
	return nil
}

// mutate runs a locked read-modify-write of a single row.
func (s *JobApplicationService) mutate(ctx context.Context, id uint64, apply func(*models.JobApplication)) (*models.JobApplication, error) {
	var job models.JobApplication

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&job, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobApplicationNotFound
		}
		if err != nil {
			return err
		}

		apply(&job)
		return tx.Save(&job).Error
	})
	if errors.Is(err, ErrJobApplicationNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("update job application %d: %w", id, err)
	}
	return &job, nil
}
