package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soratane/gatehouse/internal/auth/app/flow"
	"github.com/soratane/gatehouse/internal/auth/app/logout"
	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
	"github.com/soratane/gatehouse/internal/auth/domain/challenge"
)

// Handler adapts the login flow use cases to HTTP.
type Handler struct {
	challenge flow.ChallengeUseCase
	callback  flow.CallbackUseCase
	logout    logout.LogoutUseCase
	cookies   CookieOptions
	logger    *slog.Logger
}

func NewHandler(
	challengeUseCase flow.ChallengeUseCase,
	callbackUseCase flow.CallbackUseCase,
	logoutUseCase logout.LogoutUseCase,
	cookies CookieOptions,
) *Handler {
	return &Handler{
		challenge: challengeUseCase,
		callback:  callbackUseCase,
		logout:    logoutUseCase,
		cookies:   cookies,
		logger:    slog.Default().WithGroup("auth").WithGroup("http"),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/external/challenge", h.beginChallenge)
	r.GET("/external/callback", h.completeCallback)
	r.POST("/external/logout", h.logoutSession)
}

func (h *Handler) beginChallenge(c *gin.Context) {
	req := &flow.BeginRequest{
		Provider: c.Query("provider"),
	}

	if raw, ok := c.GetQuery("returnUrl"); ok && raw != "" {
		req.ReturnURL = &raw
	}

	instruction, err := h.challenge.Begin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, flow.ErrProviderUnsupported) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown login provider"})
			return
		}

		h.logger.Error("begin challenge failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "challenge error"})

		return
	}

	setCookie(c.Writer, markerCookieName, instruction.Marker,
		time.Now().Add(challenge.StateExpiration), h.cookies)

	c.Redirect(http.StatusFound, instruction.AuthorizationURL)
}

func (h *Handler) completeCallback(c *gin.Context) {
	marker, err := c.Cookie(markerCookieName)
	if err != nil {
		marker = ""
	}

	result, err := h.callback.Complete(c.Request.Context(), &flow.CallbackRequest{
		State:         c.Query("state"),
		Code:          c.Query("code"),
		Marker:        marker,
		ProviderError: c.Query("error"),
	})

	// The marker is single-use either way.
	clearCookie(c.Writer, markerCookieName, h.cookies)

	if err != nil {
		if errors.Is(err, flow.ErrExternalAuthFailed) ||
			errors.Is(err, assertion.ErrMissingSubjectIdentifier) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "external authentication failed"})
			return
		}

		h.logger.Error("complete callback failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "callback error"})

		return
	}

	setCookie(c.Writer, sessionCookieName, result.SessionToken, result.SessionExpiresAt, h.cookies)

	c.Redirect(http.StatusFound, result.RedirectURL)
}

func (h *Handler) logoutSession(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		token = ""
	}

	clearCookie(c.Writer, sessionCookieName, h.cookies)

	if token == "" {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	result, err := h.logout.Logout(c.Request.Context(), &logout.LogoutRequest{SessionToken: token})
	if err != nil {
		if errors.Is(err, logout.ErrSessionTokenInvalid) ||
			errors.Is(err, logout.ErrSessionTokenRequired) {
			// The cookie is already cleared; treat the stale token as logged out.
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}

		h.logger.Error("logout failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout error"})

		return
	}

	resp := gin.H{"success": result.Success}
	if result.ProviderLogoutURL != "" {
		resp["provider_logout_url"] = result.ProviderLogoutURL
	}

	c.JSON(http.StatusOK, resp)
}
