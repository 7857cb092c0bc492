package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/P3chys/catalogo-disciplinas/internal/forms"
	"github.com/P3chys/catalogo-disciplinas/internal/middleware"
	"github.com/P3chys/catalogo-disciplinas/internal/models"
	"github.com/P3chys/catalogo-disciplinas/internal/render"
	"github.com/P3chys/catalogo-disciplinas/internal/services"
	"github.com/P3chys/catalogo-disciplinas/internal/session"
)

const (
	DisciplinesPath = "/disciplinas"

	FlashAlreadyExists = "Disciplina já existe na base de dados!"
	MsgUnknownSemester = "Semestre não encontrado na base de dados."
)

// ListDisciplines renders the form with the current catalog.
func ListDisciplines(svc services.CatalogService, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := sessions.Load(c)
		renderDisciplines(c, svc, sessions, state, render.DisciplinesPage{})
	}
}

// CreateDiscipline validates a submission, stores the discipline if its name
// is new, and redirects back to the listing.
func CreateDiscipline(svc services.CatalogService, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := sessions.Load(c)

		form, err := forms.BindDiscipline(c, state.CSRFToken)
		if err != nil {
			var ferrs forms.Errors
			if !errors.As(err, &ferrs) {
				_ = c.Error(err)
				middleware.InternalError(c)
				return
			}
			renderDisciplines(c, svc, sessions, state, render.DisciplinesPage{
				Disciplina: form.Disciplina,
				Semestre:   form.Semestre,
				Errors:     ferrs,
			})
			return
		}

		result, err := svc.Register(c.Request.Context(), form.Disciplina, form.Semestre)
		if err != nil {
			if errors.Is(err, services.ErrSemesterNotFound) {
				renderDisciplines(c, svc, sessions, state, render.DisciplinesPage{
					Disciplina: form.Disciplina,
					Semestre:   form.Semestre,
					Errors:     forms.Errors{"semestre": {MsgUnknownSemester}},
				})
				return
			}
			_ = c.Error(err)
			middleware.InternalError(c)
			return
		}

		state.Known = result.Known
		if result.Known {
			state.AddFlash(FlashAlreadyExists)
		}
		state.Discipline = form.Disciplina
		state.Semestre = form.Semestre

		if err := sessions.Save(c, state); err != nil {
			_ = c.Error(err)
			middleware.InternalError(c)
			return
		}

		c.Redirect(http.StatusFound, DisciplinesPath)
	}
}

func renderDisciplines(c *gin.Context, svc services.CatalogService, sessions *session.Manager, state session.State, page render.DisciplinesPage) {
	overview, err := svc.Overview(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		middleware.InternalError(c)
		return
	}

	token, err := state.EnsureCSRF()
	if err != nil {
		_ = c.Error(err)
		middleware.InternalError(c)
		return
	}

	page.CurrentTime = time.Now().UTC()
	page.CSRFToken = token
	page.Choices = models.SemesterLabels
	page.Name = state.Discipline
	page.Known = state.Known
	page.Flashes = state.PopFlashes()
	page.Overview = overview

	// Persist the token and the consumed flashes before the body is written.
	if err := sessions.Save(c, state); err != nil {
		_ = c.Error(err)
		middleware.InternalError(c)
		return
	}

	c.HTML(http.StatusOK, render.PageDisciplines, page)
}
