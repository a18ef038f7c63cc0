package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issuetrack/reporting-system/internal/api/metrics"
	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/core/ports"
	"github.com/issuetrack/reporting-system/internal/session"
)

// AuthHandler turns auth service results into session cookies. The service
// itself never touches cookies.
type AuthHandler struct {
	authService ports.AuthService
	codec       *session.Codec
	revoker     session.Revoker // nil when revocation is not configured
	secure      bool            // Secure cookie flag, tied to production mode
}

func NewAuthHandler(authService ports.AuthService, codec *session.Codec, revoker session.Revoker, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec, revoker: revoker, secure: secure}
}

type registerRequest struct {
	Name         string `json:"name"          validate:"required,min=2"`
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=6"`
	EmployeeCode string `json:"employee_code" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminLoginRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

type authResponse struct {
	User *domain.User `json:"user"`
}

// Register creates a new employee account and establishes a session.
//
// @Summary      Register a new employee
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.RegisterEmployee(c.Request().Context(), ports.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		EmployeeCode: req.EmployeeCode,
	})
	if err != nil {
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates an employee and establishes a session.
//
// @Summary      Employee login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.LoginEmployee(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("employee", "failure").Inc()
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("employee", "success").Inc()

	return c.JSON(http.StatusOK, authResponse{User: user})
}

// AdminLogin authenticates the shared admin passcode and establishes a session.
//
// @Summary      Admin passcode login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin passcode"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.LoginAdmin(c.Request().Context(), req.Passcode)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()

	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Logout destroys the session: the cookie is expired and, when a revoker is
// configured, the presented token is added to the server-side denylist.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if h.revoker != nil {
		if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
			_ = h.revoker.Revoke(c.Request().Context(), cookie.Value)
		}
	}
	c.SetCookie(session.ExpiredCookie(h.secure))
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) startSession(c echo.Context, user *domain.User) error {
	token, err := h.codec.Encode(user.Identity())
	if err != nil {
		return err
	}
	c.SetCookie(session.Cookie(token, h.secure))
	return nil
}
