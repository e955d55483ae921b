package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wallxy/internal/errors"
	"wallxy/internal/model"
	"wallxy/internal/service"
)

// ApplicationHandler handles job application endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// CreateApplicationRequest represents a job application submission.
type CreateApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
}

// UpdateStatusRequest represents a submission review decision.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending interview accepted rejected"`
}

// StatusResponse acknowledges a status change.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// CreateApplication godoc
// @Summary Apply to a job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateApplicationRequest true "Application data"
// @Success 201 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applicationService.Apply(
		c.Request().Context(), userID, req.JobID, req.CoverLetter, req.ResumeURL,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, application)
}

// MyApplications godoc
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Application
// @Failure 401 {object} errors.ErrorResponse
// @Router /applications/my [get]
func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	applications, err := h.applicationService.MyApplications(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, applications)
}

// JobApplications godoc
// @Summary List applications for a job (owner only)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param job_id path string true "Job ID"
// @Success 200 {array} model.Application
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/job/{job_id} [get]
func (h *ApplicationHandler) JobApplications(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	applications, err := h.applicationService.ApplicationsForJob(c.Request().Context(), userID, c.Param("job_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, applications)
}

// UpdateStatus godoc
// @Summary Review an application (job owner only)
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applicationService.UpdateStatus(
		c.Request().Context(), userID, c.Param("id"), model.SubmissionStatus(req.Status),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Message: "application updated",
		Status:  string(application.Status),
	})
}
