package render

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/P3chys/catalogo-disciplinas/internal/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageIndex       = "index.html"
	PageDisciplines = "disciplinas.html"
	PageNotFound    = "404.html"
	PageInternal    = "500.html"
	PageTooMany     = "429.html"
)

// IndexPage is the landing page data.
type IndexPage struct {
	CurrentTime time.Time
}

// DisciplinesPage is the data behind the form and listing page.
type DisciplinesPage struct {
	CurrentTime time.Time
	CSRFToken   string

	// Submitted values, echoed back into the form after a failed validation.
	Disciplina string
	Semestre   string
	Choices    []string
	Errors     map[string][]string

	// Last successful submission, read from the session.
	Name  string
	Known bool

	Flashes  []string
	Overview *services.Overview
}

// ErrorPage is shared by the 404, 429 and 500 pages.
type ErrorPage struct {
	CurrentTime time.Time
	Path        string
	RequestID   string
}

var funcs = template.FuncMap{
	"isoTime": func(t time.Time) string {
		return t.UTC().Format(time.RFC3339)
	},
	"displayTime": func(t time.Time) string {
		return t.UTC().Format("02/01/2006 15:04:05 UTC")
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// Install sets the page templates as the engine's HTML renderer.
func Install(r *gin.Engine) error {
	t, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(t)
	return nil
}
