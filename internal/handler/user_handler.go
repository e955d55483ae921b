package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wallxy/internal/errors"
	"wallxy/internal/model"
	"wallxy/internal/service"
)

// UserHandler handles public profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents a partial profile update. Absent
// fields are left unchanged.
type UpdateProfileRequest struct {
	FullName        *string           `json:"full_name,omitempty"`
	AvatarURL       *string           `json:"avatar_url,omitempty"`
	Bio             *string           `json:"bio,omitempty"`
	Skills          *model.StringList `json:"skills,omitempty"`
	HourlyRate      *decimal.Decimal  `json:"hourly_rate,omitempty"`
	ExperienceLevel *string           `json:"experience_level,omitempty"`
	Location        *string           `json:"location,omitempty"`
}

// GetUser godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userService.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, c.Param("id"), service.ProfileUpdate{
		FullName:        req.FullName,
		AvatarURL:       req.AvatarURL,
		Bio:             req.Bio,
		Skills:          req.Skills,
		HourlyRate:      req.HourlyRate,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}
