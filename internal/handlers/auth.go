package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/auth"
	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles register and login.
type AuthHandler struct {
	userSvc  *service.UserService
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(userSvc *service.UserService, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, secret: secret, tokenTTL: tokenTTL}
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "New account"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email, password and name are required"})
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		serverError(c, "register", err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		serverError(c, "login", err)
		return
	}
	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user dom.User) {
	token, err := auth.GenerateToken(user.ID, h.secret, h.tokenTTL)
	if err != nil {
		serverError(c, "issue token", err)
		return
	}
	c.JSON(status, dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}
