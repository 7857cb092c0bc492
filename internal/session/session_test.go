package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/P3chys/catalogo-disciplinas/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager(t *testing.T, secret string) *Manager {
	t.Helper()
	m, err := NewManager(&config.Config{
		SecretKey:         secret,
		SessionCookieName: "session",
		SessionMaxAge:     time.Hour,
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func TestManager_SaveThenLoad(t *testing.T) {
	m := newTestManager(t, "hard to guess string")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/disciplinas", nil)

	in := State{Discipline: "Cálculo I", Semestre: "1º semestre", Known: true}
	in.AddFlash("Disciplina já existe na base de dados!")
	if err := m.Save(c, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "session" {
		t.Fatalf("expected one session cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/disciplinas", nil)
	c2.Request.AddCookie(cookies[0])

	out := m.Load(c2)
	if out.Discipline != "Cálculo I" || out.Semestre != "1º semestre" || !out.Known {
		t.Errorf("unexpected state: %+v", out)
	}
	flashes := out.PopFlashes()
	if len(flashes) != 1 || flashes[0] != "Disciplina já existe na base de dados!" {
		t.Errorf("unexpected flashes: %v", flashes)
	}
	if len(out.PopFlashes()) != 0 {
		t.Error("flashes should be cleared after PopFlashes")
	}
}

func TestManager_LoadWithoutCookie(t *testing.T) {
	m := newTestManager(t, "hard to guess string")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	s := m.Load(c)
	if s.Discipline != "" || s.Known || len(s.Flashes) != 0 {
		t.Errorf("expected empty state, got %+v", s)
	}
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	signer := newTestManager(t, "first secret value!!")
	verifier := newTestManager(t, "second secret value!")

	raw, err := signer.Encode(State{Discipline: "Álgebra", Known: true})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := verifier.Decode(raw); err == nil {
		t.Fatal("expected a token signed with another key to be rejected")
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session", Value: raw})

	if s := verifier.Load(c); s.Known || s.Discipline != "" {
		t.Errorf("expected empty state for tampered cookie, got %+v", s)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	m := newTestManager(t, "hard to guess string")
	m.maxAge = -time.Minute

	raw, err := m.Encode(State{Discipline: "Física"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := m.Decode(raw); err == nil {
		t.Fatal("expected expired session to be rejected")
	}
}

func TestState_EnsureCSRF(t *testing.T) {
	var s State
	tok, err := s.EnsureCSRF()
	if err != nil {
		t.Fatalf("EnsureCSRF failed: %v", err)
	}
	if tok == "" {
		t.Fatal("expected a token")
	}
	again, _ := s.EnsureCSRF()
	if again != tok {
		t.Error("EnsureCSRF should keep an existing token")
	}
}
