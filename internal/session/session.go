// Package session keeps the per-client state that survives the redirect after
// a form submission. The state travels in a signed cookie; nothing is stored
// server side.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/P3chys/catalogo-disciplinas/internal/config"
	"github.com/P3chys/catalogo-disciplinas/internal/utils"
)

// State is the typed session payload.
type State struct {
	Discipline string   `json:"discipline,omitempty"`
	Semestre   string   `json:"semestre,omitempty"`
	Known      bool     `json:"known"`
	Flashes    []string `json:"flashes,omitempty"`
	CSRFToken  string   `json:"csrf,omitempty"`
}

// AddFlash queues a message for the next rendered page.
func (s *State) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// PopFlashes returns the queued messages and clears them.
func (s *State) PopFlashes() []string {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// EnsureCSRF returns the session's CSRF token, creating one if needed.
func (s *State) EnsureCSRF() (string, error) {
	if s.CSRFToken == "" {
		token, err := utils.GenerateSecureToken(32)
		if err != nil {
			return "", fmt.Errorf("failed to generate csrf token: %w", err)
		}
		s.CSRFToken = token
	}
	return s.CSRFToken, nil
}

type claims struct {
	State
	jwt.RegisteredClaims
}

// Manager encodes State into a signed cookie and back.
type Manager struct {
	key        []byte
	cookieName string
	maxAge     time.Duration
	secure     bool
}

func NewManager(cfg *config.Config) (*Manager, error) {
	key, err := utils.DeriveKey(cfg.SecretKey, "session")
	if err != nil {
		return nil, err
	}
	return &Manager{
		key:        key,
		cookieName: cfg.SessionCookieName,
		maxAge:     cfg.SessionMaxAge,
		secure:     cfg.SessionSecure,
	}, nil
}

// Encode signs the state into a token string.
func (m *Manager) Encode(s State) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		State: s,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	})
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies a token string and returns its state.
func (m *Manager) Decode(raw string) (State, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return State{}, fmt.Errorf("invalid session: %w", err)
	}
	return c.State, nil
}

// Load reads the session from the request cookie. A missing or invalid
// cookie yields an empty state.
func (m *Manager) Load(c *gin.Context) State {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || raw == "" {
		return State{}
	}
	s, err := m.Decode(raw)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		return State{}
	}
	return s
}

// Save writes the session cookie on the response.
func (m *Manager) Save(c *gin.Context, s State) error {
	raw, err := m.Encode(s)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, raw, int(m.maxAge.Seconds()), "/", "", m.secure, true)
	return nil
}
