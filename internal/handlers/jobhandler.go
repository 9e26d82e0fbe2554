package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/validation"
)

const (
	msgNotFound    = "Job application not found."
	msgServerError = "Server Error"
)

type JobApplicationHandler struct {
	Jobs      *services.JobApplicationService
	Validator *validation.Validator
	// LLM may be nil, which disables the extract endpoint.
	LLM *services.LLMService
}

func NewJobApplicationHandler(jobs *services.JobApplicationService, v *validation.Validator, llm *services.LLMService) *JobApplicationHandler {
	return &JobApplicationHandler{
		Jobs:      jobs,
		Validator: v,
		LLM:       llm,
	}
}

// List godoc
// @Summary List job applications
// @Description Every application, newest first
// @Tags job-applications
// @Produce json
// @Success 200 {array} models.JobApplication
// @Failure 500 {object} ErrorResponse
// @Router /job-applications [get]
func (h *JobApplicationHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Create godoc
// @Summary Create a job application
// @Tags job-applications
// @Accept json
// @Produce json
// @Param application body JobApplicationRequest true "New application"
// @Success 201 {object} models.JobApplication
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /job-applications [post]
func (h *JobApplicationHandler) Create(c *gin.Context) {
	changes, ok := h.validate(c, validation.CreateRules)
	if !ok {
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), changes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Update a job application
// @Description Only the supplied fields change. null clears link or notes.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param application body JobApplicationRequest true "Fields to change"
// @Success 200 {object} models.JobApplication
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /job-applications/{id} [put]
func (h *JobApplicationHandler) Update(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	changes, ok := h.validate(c, validation.UpdateRules)
	if !ok {
		return
	}

	job, err := h.Jobs.Replace(c.Request.Context(), id, changes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateStatus godoc
// @Summary Move a job application to another status
// @Tags job-applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} models.JobApplication
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /job-applications/{id}/status [patch]
func (h *JobApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	changes, ok := h.validate(c, validation.StatusRules)
	if !ok {
		return
	}

	job, err := h.Jobs.SetStatus(c.Request.Context(), id, *changes.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job application
// @Tags job-applications
// @Param id path int true "Application ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /job-applications/{id} [delete]
func (h *JobApplicationHandler) Delete(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	if err := h.Jobs.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Extract godoc
// @Summary Draft an application from a job posting
// @Description Runs the pasted posting through the configured LLM. Nothing is stored.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param posting body dtos.JobExtractionRequest true "Raw posting"
// @Success 200 {object} dtos.JobDraft
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /job-applications/extract [post]
func (h *JobApplicationHandler) Extract(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The raw_html field is required."})
		return
	}

	draft, err := h.LLM.ExtractJobDetails(c.Request.Context(), req.RawHTML, req.URL)
	if errors.Is(err, services.ErrExtractionDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Job extraction is not configured."})
		return
	}
	if err != nil {
		log.Printf("⚠️  [%s] extraction failed: %v", RequestID(c), err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Unable to extract job details."})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// validate decodes the body and runs rules against it. An empty body is an empty payload.
func (h *JobApplicationHandler) validate(c *gin.Context, rules validation.Rules) (*dtos.JobApplicationChanges, bool) {
	var payload dtos.JobApplicationPayload
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The request body must be a JSON object."})
		return nil, false
	}

	changes, err := h.Validator.Validate(rules, &payload)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return changes, true
}

func (h *JobApplicationHandler) fail(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Message: verr.Message(),
			Errors:  verr.Fields,
		})
	case errors.Is(err, services.ErrJobApplicationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: msgNotFound})
	default:
		log.Printf("❌ [%s] %s %s: %v", RequestID(c), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msgServerError})
	}
}

// jobID parses the :id parameter. Anything that is not a record id is reported as not found.
// Ids are capped at 63 bits since the database drivers reject larger unsigned values.
func jobID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: msgNotFound})
		return 0, false
	}
	return id, true
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// JobApplicationRequest documents the create and update body.
type JobApplicationRequest struct {
	Title    string        `json:"title" example:"Software Engineer"`
	Company  string        `json:"company" example:"Acme Inc."`
	Location string        `json:"location" example:"Remote"`
	Link     *string       `json:"link" example:"https://example.com/jobs/1"`
	Notes    *string       `json:"notes" example:"Added manually."`
	Status   models.Status `json:"status" example:"Applied"`
}

type StatusRequest struct {
	Status models.Status `json:"status" example:"Interview"`
}
