package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"khata/internal/credentials"
	apperrors "khata/internal/errors"
	"khata/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
	strategy    credentials.Strategy
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, strategy credentials.Strategy) *AuthHandler {
	return &AuthHandler{userService: userService, strategy: strategy}
}

// CredentialsRequest represents the registration and login request payload
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents a successful login response
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with username and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body CredentialsRequest true "User registration data"
// @Success     200 {object} MessageResponse "User registered"
// @Failure     400 {object} ErrorResponse "Missing fields or duplicate username"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.userService.CreateUser(req.Username, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Registered"})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and issue a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body CredentialsRequest true "User login credentials"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.strategy.Issue(user.Username)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout revokes the presented credential where the strategy supports it.
// The route is public: a client without a credential simply gets the
// acknowledgement and discards nothing.
// @Summary     Logout user
// @Description Revoke the presented credential (no-op for stateless tokens)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Success     200 {object} MessageResponse "Logged out"
// @Router      /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if parts := strings.Split(c.GetHeader("Authorization"), " "); len(parts) == 2 && parts[0] == "Bearer" {
		_ = h.strategy.Revoke(parts[1])
	}

	c.JSON(http.StatusOK, gin.H{"msg": "bye"})
}

// GetProfile returns the authenticated user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByUsername(username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
