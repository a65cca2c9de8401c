package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/mesotracker/internal/telemetry/tracing"
	"github.com/2beens/mesotracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth

type authService interface {
	Register(ctx context.Context, credentials Credentials) (*User, error)
	Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	service authService
}

func NewHandler(service authService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the /a/* routes; middlewares (e.g. rate limiting) are applied
// to the auth subrouter only.
func (h *Handler) SetupRoutes(mainRouter *mux.Router, middlewares ...mux.MiddlewareFunc) {
	authRouter := mainRouter.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/register", h.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", h.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", h.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	authRouter.Use(middlewares...)
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var credentials Credentials
	if r.Header.Get("Content-Type") == pkg.ContentType.JSON {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			return credentials, err
		}
		return credentials, nil
	}

	if err := r.ParseForm(); err != nil {
		return credentials, err
	}
	credentials.Username = r.Form.Get("username")
	credentials.Password = r.Form.Get("password")
	return credentials, nil
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("register, decode credentials: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUsernameTaken):
			http.Error(w, "username taken", http.StatusConflict)
		default:
			log.Errorf("register user [%s]: %s", credentials.Username, err)
			http.Error(w, "register failed", http.StatusInternalServerError)
		}
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %d", user.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("login, decode credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			log.Tracef("failed login attempt for user: %s", credentials.Username)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LoginResponse{Token: token})
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.service.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Trace("logout success")
	pkg.WriteTextResponseOK(w, "logged-out")
}
