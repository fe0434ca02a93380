package delivery

import (
	"net/http"

	authdomain "github.com/joelcalkins28/JobTracker-CRM/internal/auth/domain"
	authdto "github.com/joelcalkins28/JobTracker-CRM/internal/auth/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/auth/usecase"
	"github.com/joelcalkins28/JobTracker-CRM/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.setSessionCookie(c, resp.AccessToken)
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setSessionCookie(c, resp.AccessToken)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setSessionCookie(c, resp.AccessToken)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		_ = h.authUsecase.Logout(req.RefreshToken)
	}
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user.(*authdomain.User))
}

// GoogleAuthorize redirects the browser to the Google consent screen.
func (h *AuthHandler) GoogleAuthorize(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.authUsecase.GoogleAuthURL(state))
}

// GoogleCallback handles the OAuth redirect from Google.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		c.Redirect(http.StatusTemporaryRedirect, h.config.FrontendURL+"/login?error=google_auth_failed")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.config.FrontendURL+"/login?error=missing_code")
		return
	}

	if state, err := c.Cookie("oauth_state"); err != nil || state == "" || state != c.Query("state") {
		c.Redirect(http.StatusTemporaryRedirect, h.config.FrontendURL+"/login?error=invalid_state")
		return
	}

	resp, err := h.authUsecase.HandleGoogleCallback(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, h.config.FrontendURL+"/login?error=auth_error")
		return
	}

	h.setSessionCookie(c, resp.AccessToken)
	c.Redirect(http.StatusTemporaryRedirect, h.config.FrontendURL+"/dashboard")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, int(h.config.JWTAccessExpiry.Seconds()), "/", "", false, true)
}
