package router

import (
	"database/sql"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/P3chys/catalogo-disciplinas/internal/config"
	"github.com/P3chys/catalogo-disciplinas/internal/forms"
	"github.com/P3chys/catalogo-disciplinas/internal/handlers"
	"github.com/P3chys/catalogo-disciplinas/internal/middleware"
	"github.com/P3chys/catalogo-disciplinas/internal/render"
	"github.com/P3chys/catalogo-disciplinas/internal/services"
	"github.com/P3chys/catalogo-disciplinas/internal/session"
)

const maxBodyBytes = 64 << 10

// Deps are the collaborators the routes need. DB and RateLimiter may be nil.
type Deps struct {
	Config      *config.Config
	Logger      *zap.Logger
	Catalog     services.CatalogService
	Sessions    *session.Manager
	DB          *sql.DB
	RateLimiter *middleware.RateLimiter
}

func Setup(deps Deps) (*gin.Engine, error) {
	cfg := deps.Config

	gin.SetMode(cfg.GinMode)
	forms.RegisterValidators()

	r := gin.New()
	if err := render.Install(r); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
			AllowCredentials: true,
		}))
	}

	r.NoRoute(handlers.NotFound())

	// Health check endpoint
	var db handlers.DatabasePinger
	if deps.DB != nil {
		db = deps.DB
	}
	r.GET("/health", handlers.HealthCheck(db, deps.RateLimiter))

	r.GET("/", handlers.Index())

	list := handlers.ListDisciplines(deps.Catalog, deps.Sessions)
	create := handlers.CreateDiscipline(deps.Catalog, deps.Sessions)
	limit := deps.RateLimiter.RateLimitByIP(handlers.DisciplinesPath, cfg.SubmitRateLimit, cfg.SubmitRateWindow)

	for _, path := range []string{handlers.DisciplinesPath, "/disciplines"} {
		r.GET(path, list)
		r.POST(path, limit, create)
	}

	return r, nil
}
