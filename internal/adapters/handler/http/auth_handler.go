package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

// CookieConfig controls the auth cookies set on sign-in.
type CookieConfig struct {
	Domain     string
	SameSite   http.SameSite
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AuthHandler struct {
	log         *slog.Logger
	authService ports.AuthService
	redirectURL string
	cookies     CookieConfig
}

func NewAuthHandler(log *slog.Logger, authService ports.AuthService, redirectURL string, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: authService,
		redirectURL: redirectURL,
		cookies:     cookies,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Registers a user
// @Description  Creates an email and password account and sets the auth cookies.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body  registerRequest  true  "Account"
// @Success      201
// @Failure      400
// @Failure      409
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.authService.Register(r.Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.log, err, "failed to register")
		return
	}

	h.setTokenCookies(w, tokens)
	writeSuccess(w, h.log, http.StatusCreated, nil)
}

// Login godoc
// @Summary      Logs a user in
// @Description  Checks email and password and sets the auth cookies.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  loginRequest  true  "Credentials"
// @Success      200
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.log, err, "failed to log in")
		return
	}

	h.setTokenCookies(w, tokens)
	writeSuccess(w, h.log, http.StatusOK, nil)
}

// GoogleCallback godoc
// @Summary      Google sign-in callback
// @Description  Exchanges a Google ID token for auth cookies and redirects to the frontend.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        credential  formData  string  true  "Google ID token"
// @Success      303
// @Failure      400
// @Failure      401
// @Router       /oauth/callback [post]
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeFailure(w, h.log, http.StatusBadRequest, "failed to parse form")
		return
	}

	credential := r.FormValue("credential")
	if credential == "" {
		writeFailure(w, h.log, http.StatusBadRequest, "missing credential")
		return
	}

	tokens, err := h.authService.LoginWithGoogle(r.Context(), credential)
	if err != nil {
		writeError(w, r, h.log, err, "authentication failed")
		return
	}

	h.setTokenCookies(w, tokens)
	http.Redirect(w, r, h.redirectURL, http.StatusSeeOther)
}

// Refresh godoc
// @Summary      Refreshes the access token
// @Description  Creates a new access token cookie based on the refresh token. This cookie is used as authentication for `/api` calls.
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil || cookie.Value == "" {
		writeFailure(w, h.log, http.StatusUnauthorized, "missing refresh token")
		return
	}

	tokens, err := h.authService.RefreshAccessToken(r.Context(), cookie.Value)
	if err != nil {
		h.expireCookies(w)
		writeError(w, r, h.log, err, "failed to refresh session")
		return
	}

	h.setAccessTokenCookie(w, tokens.AccessToken)
	if tokens.RefreshToken != "" && tokens.RefreshToken != cookie.Value {
		h.setRefreshTokenCookie(w, tokens.RefreshToken)
	}

	writeSuccess(w, h.log, http.StatusOK, nil)
}

// Logout godoc
// @Summary      Logs the authenticated user out
// @Description  Revokes the refresh token and clears the auth cookies
// @Tags         auth
// @Produce      json
// @Success      200
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err == nil && cookie.Value != "" {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			h.log.WarnContext(r.Context(), "failed to revoke refresh token", slog.Any("error", err))
		}
	}

	h.expireCookies(w)
	writeSuccess(w, h.log, http.StatusOK, nil)
}

func (h *AuthHandler) setTokenCookies(w http.ResponseWriter, tokens *ports.TokenPair) {
	h.setAccessTokenCookie(w, tokens.AccessToken)
	h.setRefreshTokenCookie(w, tokens.RefreshToken)
}

func (h *AuthHandler) setAccessTokenCookie(w http.ResponseWriter, token string) {
	h.setCookie(w, accessTokenCookie, token, h.cookies.AccessTTL)
}

func (h *AuthHandler) setRefreshTokenCookie(w http.ResponseWriter, token string) {
	h.setCookie(w, refreshTokenCookie, token, h.cookies.RefreshTTL)
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookies.Domain,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
		MaxAge:   int(ttl.Seconds()),
	})
}

func (h *AuthHandler) expireCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, MaxAge: -1, Path: "/", Domain: h.cookies.Domain})
	http.SetCookie(w, &http.Cookie{Name: refreshTokenCookie, MaxAge: -1, Path: "/", Domain: h.cookies.Domain})
}
