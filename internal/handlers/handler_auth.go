package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/middleware"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/platform/config"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration, login and Google sign-in.
type authHandler struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
	googleAuth  portssvc.GoogleAuthSvcFacade
}

func newAuthHandler(cfg *config.Config, userService portssvc.UserSvcFacade, googleAuth portssvc.GoogleAuthSvcFacade) *authHandler {
	return &authHandler{
		cfg:         cfg,
		userService: userService,
		googleAuth:  googleAuth,
	}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services.User, services.GoogleAuth)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/google", h.googleSignIn)
		auth.GET("/google/login", h.googleLogin)
		auth.GET("/google/callback", h.googleCallback)
	}
}

const oauthStateCookie = "oauth_state"

// register godoc
// @Summary Register a donor account
// @Description Creates a new donor account with email and password.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterUserRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	h.respondWithToken(c, logger, user, http.StatusCreated)
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	h.respondWithToken(c, logger, user, http.StatusOK)
}

// googleSignIn godoc
// @Summary Sign in with Google
// @Description Verifies a Google identity and issues an access token,
// @Description creating a donor account on first sign-in.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   payload body dto.GoogleAuthRequest true "Authorization code or ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Verification failed"
// @Router /auth/google [post]
func (h *authHandler) googleSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GoogleSignIn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	idTokenString := req.IDToken
	if idTokenString == "" {
		if req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either code or idToken is required"})
			return
		}
		token, err := h.googleAuth.ExchangeCodeForToken(c.Request.Context(), req.Code)
		if err != nil {
			logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
			return
		}
		extracted, ok := token.Extra("id_token").(string)
		if !ok || extracted == "" {
			logger.Warn("Google token response carried no id_token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
			return
		}
		idTokenString = extracted
	}

	payload, err := h.googleAuth.ValidateIDToken(c.Request.Context(), idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google identity carried no email"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), email, name)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	h.respondWithToken(c, logger, user, http.StatusOK)
}

// googleLogin godoc
// @Summary Start the Google OAuth redirect flow
// @Description Sets a CSRF state cookie and redirects to Google's consent page.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start Google sign-in"})
		return
	}

	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleAuth.GetLoginURL(state))
}

// googleCallback godoc
// @Summary Complete the Google OAuth redirect flow
// @Description Verifies the CSRF state, exchanges the authorization code and
// @Description issues an access token.
// @Tags auth
// @Produce  json
// @Param   code query string true "Authorization code"
// @Param   state query string true "CSRF state"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "State mismatch or verification failed"
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	token, err := h.googleAuth.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Warn("Google token response carried no id_token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	payload, err := h.googleAuth.ValidateIDToken(c.Request.Context(), idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google identity carried no email"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), email, name)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	h.respondWithToken(c, logger, user, http.StatusOK)
}

func (h *authHandler) respondWithToken(c *gin.Context, logger *slog.Logger, user *domain.User, status int) {
	token, err := utils.GenerateJWT(user.UserID, user.Role, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(status, dto.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.cfg.JWTExpiryDuration),
		User:      dto.ToUserResponse(user),
	})
}
