package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"fwsr-hub/internal/config"
	"fwsr-hub/internal/dto"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/middleware"
	"fwsr-hub/internal/service"
	"fwsr-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const oauthStateCookieName = "oauthstate"

type AuthHandler struct {
	authService service.AuthService
	flowService service.FlowService
	validator   *validation.Validator
	appConfig   *config.Config
}

func NewAuthHandler(authService service.AuthService, flowService service.FlowService, appConfig *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		flowService: flowService,
		validator:   validation.NewValidator(),
		appConfig:   appConfig,
	}
}

// resumeFlow promotes a parked plan selection to payment once the session
// holds an authenticated identity. Failures are logged only; sign-in already
// succeeded.
func (h *AuthHandler) resumeFlow(c *fiber.Ctx) {
	sessionID := ensureSessionID(c)
	resumed, _, err := h.flowService.ResumeAfterAuth(c.Context(), sessionID)
	if err != nil {
		logger.Get().Warn("Failed to resume flow after auth", zap.Error(err))
		return
	}
	if resumed {
		logger.Get().Info("Pending plan resumed after auth", zap.String("sessionID", sessionID))
	}
}

// Register creates an email/password account and signs the user in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	appLogger := logger.Get()
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}

	if errs := h.validator.ValidateRegisterRequest(req.Email, req.Password); len(errs) > 0 {
		return errs
	}

	accessToken, refreshToken, user, err := h.authService.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
				Code: "EMAIL_IN_USE", Message: err.Error(), Status: fiber.StatusBadRequest,
			})
		}
		appLogger.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(middleware.ErrorResponse{
			Code: "REGISTRATION_FAILED", Message: "Could not create account", Status: fiber.StatusInternalServerError,
		})
	}

	h.resumeFlow(c)

	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &dto.UserSummary{ID: user.ID, Email: user.Email},
	})
}

// Login verifies credentials and issues a JWT pair.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	appLogger := logger.Get()
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
				Code: "INVALID_CREDENTIALS", Message: err.Error(), Status: fiber.StatusUnauthorized,
			})
		}
		appLogger.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(middleware.ErrorResponse{
			Code: "LOGIN_FAILED", Message: "Could not sign in", Status: fiber.StatusInternalServerError,
		})
	}

	h.resumeFlow(c)

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &dto.UserSummary{ID: user.ID, Email: user.Email},
	})
}

// GoogleLogin initiates the Google OAuth2 login flow.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	appLogger := logger.Get()
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		appLogger.Error("Failed to generate random state for OAuth", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(middleware.ErrorResponse{
			Code: "OAUTH_STATE_GENERATION_ERROR", Message: "Could not generate state for OAuth flow", Status: fiber.StatusInternalServerError,
		})
	}
	state := base64.URLEncoding.EncodeToString(b)

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})

	loginURL := h.authService.GetGoogleLoginURL(state)
	return c.Redirect(loginURL, fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles the callback from Google OAuth2.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	appLogger := logger.Get()
	code := c.Query("code")
	receivedState := c.Query("state")
	expectedState := c.Cookies(oauthStateCookieName)

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})

	if code == "" {
		appLogger.Warn("Authorization code missing in Google OAuth callback")
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "MISSING_CODE", Message: "Authorization code is missing", Status: fiber.StatusBadRequest,
		})
	}
	if receivedState == "" || expectedState == "" || receivedState != expectedState {
		appLogger.Warn("OAuth state mismatch", zap.String("received", receivedState))
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_STATE", Message: "OAuth state mismatch or missing", Status: fiber.StatusBadRequest,
		})
	}

	accessToken, refreshToken, user, err := h.authService.HandleGoogleCallback(c.Context(), code, receivedState, expectedState)
	if err != nil {
		appLogger.Error("Failed to handle Google callback", zap.Error(err))
		if errors.Is(err, service.ErrInvalidAuthState) || errors.Is(err, service.ErrFailedToExchangeToken) {
			return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
				Code: "OAUTH_CALLBACK_ERROR", Message: err.Error(), Status: fiber.StatusBadRequest,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(middleware.ErrorResponse{
			Code: "OAUTH_PROCESSING_ERROR", Message: "Error processing Google login", Status: fiber.StatusInternalServerError,
		})
	}

	appLogger.Info("Google OAuth callback successful, tokens issued", zap.String("userID", user.ID))

	h.resumeFlow(c)

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &dto.UserSummary{ID: user.ID, Email: user.Email},
	})
}

// RefreshToken exchanges a valid refresh token for a new pair.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	appLogger := logger.Get()
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}
	if req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "MISSING_REFRESH_TOKEN", Message: "Refresh token is missing in request body", Status: fiber.StatusBadRequest,
		})
	}

	newAccessToken, newRefreshToken, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		appLogger.Warn("Failed to refresh token", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_REFRESH_TOKEN", Message: "Failed to refresh token: " + err.Error(), Status: fiber.StatusUnauthorized,
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}

// Logout acknowledges a logout. JWTs are dropped client-side; the server
// hook exists for audit logging.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	appLogger := logger.Get()
	if userID, ok := c.Locals(middleware.UserIDKey).(string); ok && userID != "" {
		appLogger.Info("User logout request", zap.String("userID", userID))
	} else {
		appLogger.Info("Logout request received (user not identified from context)")
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Logged out"})
}
