package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wallxy/internal/errors"
	"wallxy/internal/model"
	"wallxy/internal/repository"
	"wallxy/internal/service"
)

// JobHandler handles job listing endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest represents job create/update payloads. Requirements and
// skills accept a JSON array or a comma-separated string.
type JobRequest struct {
	Title           string           `json:"title" validate:"required"`
	CompanyName     string           `json:"company_name" validate:"required"`
	Description     string           `json:"description" validate:"required"`
	Requirements    model.StringList `json:"requirements"`
	Category        string           `json:"category" validate:"required"`
	JobType         string           `json:"job_type" validate:"required"`
	ExperienceLevel string           `json:"experience_level" validate:"required"`
	SalaryMin       decimal.Decimal  `json:"salary_min"`
	SalaryMax       decimal.Decimal  `json:"salary_max"`
	Location        string           `json:"location" validate:"required"`
	Skills          model.StringList `json:"skills"`
	Status          string           `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
}

func (r *JobRequest) toInput() service.JobInput {
	return service.JobInput{
		Title:           r.Title,
		CompanyName:     r.CompanyName,
		Description:     r.Description,
		Requirements:    r.Requirements,
		Category:        r.Category,
		JobType:         r.JobType,
		ExperienceLevel: r.ExperienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		Location:        r.Location,
		Skills:          r.Skills,
	}
}

// listingQueryInt parses an optional non-negative integer query param.
func listingQueryInt(c echo.Context, name string) int {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return 0
}

// ListJobs godoc
// @Summary List active jobs
// @Tags jobs
// @Produce json
// @Param category query string false "Category filter"
// @Param job_type query string false "Job type filter"
// @Param experience_level query string false "Experience level filter"
// @Param limit query int false "Page size (0 returns everything)"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.Job
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	filter := repository.JobFilter{
		Category:        c.QueryParam("category"),
		JobType:         c.QueryParam("job_type"),
		ExperienceLevel: c.QueryParam("experience_level"),
		Limit:           listingQueryInt(c, "limit"),
		Offset:          listingQueryInt(c, "offset"),
	}

	jobs, err := h.jobService.ListJobs(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job by id
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	job, err := h.jobService.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Post a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JobRequest true "Job fields"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), userID, req.toInput())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body JobRequest true "Job fields"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.UpdateJob(
		c.Request().Context(), userID, c.Param("id"), req.toInput(), model.ListingStatus(req.Status),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.jobService.DeleteJob(c.Request().Context(), userID, c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "job deleted successfully",
	})
}
