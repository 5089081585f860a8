package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	"github.com/vmos0/cloud-mail/internal/core/domain"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/vmos0/cloud-mail/internal/dto"
	"github.com/vmos0/cloud-mail/internal/middleware"
	"github.com/vmos0/cloud-mail/internal/platform/config"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OAuthHandler handles OAuth login, bind and unbind requests.
type OAuthHandler struct {
	oauthService portssvc.OAuthSvcFacade
	frontendURL  string
}

// NewOAuthHandler creates a new OAuthHandler.
func NewOAuthHandler(oauthService portssvc.OAuthSvcFacade, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
		frontendURL:  cfg.FrontendBaseURL,
	}
}

// registerOAuthValidators registers the custom binding validators the OAuth
// routes rely on.
func registerOAuthValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("oauthprovider", func(fl validator.FieldLevel) bool {
			return domain.Provider(fl.Field().String()).Valid()
		})
	}
}

// Login godoc
// @Summary OAuth provider login
// @Description Exchanges an authorization code with the provider and reconciles the external identity against mailbox accounts.
// @Tags oauth
// @Accept json
// @Produce json
// @Param provider path string true "Provider name (github, linuxdo)"
// @Param login body dto.OAuthLoginRequest true "Authorization code"
// @Success 200 {object} dto.OAuthLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /oauth/{provider}/login [post]
func (h *OAuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var uri dto.OAuthLoginURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown oauth provider"})
		return
	}

	var req dto.OAuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.oauthService.Login(ctx, domain.Provider(uri.Provider), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUpstreamAuth), errors.Is(err, apperrors.ErrUpstreamProfile):
			logger.Warn("Upstream provider rejected login", slog.String("provider", uri.Provider), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Provider login failed"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("OAuth login failed", slog.String("provider", uri.Provider), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOAuthLoginResponse(result))
}

// Callback godoc
// @Summary GitHub OAuth callback
// @Description Redirects the provider callback to the frontend login page with the authorization code.
// @Tags oauth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 302
// @Router /oauth/github/callback [get]
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	c.Redirect(http.StatusFound, h.frontendURL+"/github/callback?code="+code)
}

// BindUser godoc
// @Summary Bind an OAuth identity to a mailbox
// @Description Links the identity to the account holding the email, registering a new account when none exists.
// @Tags oauth
// @Accept json
// @Produce json
// @Param bind body dto.BindUserRequest true "Bind request"
// @Success 200 {object} dto.OAuthLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /oauth/bindUser [put]
func (h *OAuthHandler) BindUser(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.BindUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.oauthService.BindUser(ctx, req.OAuthUserID, req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyBound):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "User already bound to a mailbox"})
		case errors.Is(err, apperrors.ErrDeletedEmail):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email belongs to a deleted mailbox"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "OAuth identity not found"})
		default:
			logger.Error("OAuth bind failed", slog.Int64("oauth_id", req.OAuthUserID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Bind failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOAuthLoginResponse(result))
}

// Unbind godoc
// @Summary Unbind the caller's OAuth identity
// @Description Deletes the authenticated user's identity rows under the provider. A second call is a no-op.
// @Tags oauth
// @Produce json
// @Param provider path string true "Provider name (github, linuxdo)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /oauth/unbind/{provider} [delete]
func (h *OAuthHandler) Unbind(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var uri dto.OAuthLoginURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown oauth provider"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.oauthService.Unbind(ctx, domain.Provider(uri.Provider), userID); err != nil {
		logger.Error("OAuth unbind failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Unbind failed"})
		return
	}

	c.Status(http.StatusNoContent)
}
