package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wallxy/internal/errors"
	"wallxy/internal/model"
	"wallxy/internal/service"
)

// ProposalHandler handles project proposal endpoints.
type ProposalHandler struct {
	proposalService service.ProposalService
}

// NewProposalHandler creates a new proposal handler.
func NewProposalHandler(proposalService service.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

// CreateProposalRequest represents a project proposal submission.
type CreateProposalRequest struct {
	ProjectID      string          `json:"project_id" validate:"required,uuid"`
	CoverLetter    string          `json:"cover_letter" validate:"required"`
	ProposedBudget decimal.Decimal `json:"proposed_budget" validate:"required"`
	DeliveryTime   string          `json:"delivery_time" validate:"required"`
}

// CreateProposal godoc
// @Summary Submit a proposal for a project
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProposalRequest true "Proposal data"
// @Success 201 {object} model.Proposal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /proposals [post]
func (h *ProposalHandler) CreateProposal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	proposal, err := h.proposalService.Submit(
		c.Request().Context(), userID, req.ProjectID, req.CoverLetter, req.ProposedBudget, req.DeliveryTime,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, proposal)
}

// MyProposals godoc
// @Summary List the caller's proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Proposal
// @Failure 401 {object} errors.ErrorResponse
// @Router /proposals/my [get]
func (h *ProposalHandler) MyProposals(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	proposals, err := h.proposalService.MyProposals(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, proposals)
}

// ProjectProposals godoc
// @Summary List proposals for a project (owner only)
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param project_id path string true "Project ID"
// @Success 200 {array} model.Proposal
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /proposals/project/{project_id} [get]
func (h *ProposalHandler) ProjectProposals(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	proposals, err := h.proposalService.ProposalsForProject(c.Request().Context(), userID, c.Param("project_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, proposals)
}

// UpdateStatus godoc
// @Summary Review a proposal (project owner only)
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /proposals/{id} [put]
func (h *ProposalHandler) UpdateStatus(c echo.Context) error {
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

	proposal, err := h.proposalService.UpdateStatus(
		c.Request().Context(), userID, c.Param("id"), model.SubmissionStatus(req.Status),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Message: "proposal updated",
		Status:  string(proposal.Status),
	})
}
