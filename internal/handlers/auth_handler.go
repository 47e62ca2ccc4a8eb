package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "roundup/internal/errors"
	"roundup/internal/logger"
	"roundup/internal/middleware"
	"roundup/internal/models"
	"roundup/internal/services"
)

// AuthHandler handles registration, sessions and profiles
type AuthHandler struct {
	userService  services.UserServicer
	tokens       *middleware.TokenService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, tokens *middleware.TokenService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens, cookieSecure: cookieSecure}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileRequest represents a partial profile update. Omitted fields are kept.
type ProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	DOB       *string `json:"dob"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	City      *string `json:"city" binding:"omitempty,max=100"`
	Zip       *string `json:"zip" binding:"omitempty,max=20"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with name, email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} RegisterResponse "User registered"
// @Failure     400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Message: "User registered successfully", User: user})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user. The token is returned in the body and as an http-only cookie.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} LoginResponse "User authenticated"
// @Failure     400 {object} ErrorResponse "Invalid credentials"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.setTokenCookie(c, token, int(h.tokens.TTL().Seconds()))
	logger.ForUser(user.ID).Info("user logged in")
	c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", Token: token})
}

// Logout clears the session cookie
// @Summary     Logout user
// @Tags        auth
// @Produce     json
// @Success     200 {object} MessageResponse "Logged out"
// @Router      /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	if userID, err := getUserID(c); err == nil {
		logger.ForUser(userID).Info("user logged out")
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial profile update
// @Summary     Update user profile
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProfileRequest true "Fields to change"
// @Success     200 {object} models.User "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	update := services.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Zip:       req.Zip,
	}
	if req.DOB != nil && *req.DOB != "" {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			respondWithError(c, err)
			return
		}
		update.DOB = &dob
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.cookieSecure, true)
}
