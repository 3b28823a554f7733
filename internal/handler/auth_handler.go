package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papi/internal/model"
	"papi/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Role     model.Role `json:"role" validate:"required,oneof=buyer seller"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Name     string     `json:"name" validate:"required"`

	Phone                string `json:"phone"`
	Address              string `json:"address"`
	Pincode              string `json:"pincode"`
	BusinessName         string `json:"businessName"`
	OrganicCertification string `json:"organicCertification"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest represents a demo password reset request.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// SessionResponse wraps the session returned by login and register.
type SessionResponse struct {
	Session *model.Session `json:"session"`
}

// Register godoc
// @Summary Register a buyer or seller and log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.authService.Register(c.Request().Context(), model.User{
		Role:                 req.Role,
		Email:                req.Email,
		Password:             req.Password,
		Name:                 req.Name,
		Phone:                req.Phone,
		Address:              req.Address,
		Pincode:              req.Pincode,
		BusinessName:         req.BusinessName,
		OrganicCertification: req.OrganicCertification,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, SessionResponse{Session: session})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, SessionResponse{Session: session})
}

// Logout godoc
// @Summary Invalidate the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authService.Logout(c.Request().Context(), BearerToken(c))
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Return the current session's user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SessionUser
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session := CurrentSession(c)
	return c.JSON(http.StatusOK, session.User)
}

// UpdateProfile godoc
// @Summary Merge profile updates into the user record and session
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProfileUpdate true "Profile fields to change"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req service.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), BearerToken(c), req)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ResetPassword godoc
// @Summary Overwrite a password by email (demo flow, no verification)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email and new password"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "password updated",
	})
}
