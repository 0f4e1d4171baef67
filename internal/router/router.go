package router

import (
	"net/http"

	"pet-exercise-tracker/internal/adapters/storage"
	"pet-exercise-tracker/internal/domain/backup"
	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/domain/preferences"
	"pet-exercise-tracker/internal/domain/reports"
	"pet-exercise-tracker/internal/domain/shares"
	"pet-exercise-tracker/internal/domain/users"
	"pet-exercise-tracker/internal/middleware"
	"pet-exercise-tracker/internal/platform/logger"
	"pet-exercise-tracker/internal/ports/auth"

	_ "pet-exercise-tracker/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil = Nop

	// Services ya armados (lo usa serve). Si es nil se arman sobre Repos.
	Services *Services

	// Repos si Services es nil. Vacío = in-memory.
	Repos *storage.Repos

	// RemoteVerifier es opcional; las sesiones locales siempre se aceptan.
	RemoteVerifier auth.AuthVerifier

	// DevMode acepta X-Debug-User-ID. Nunca en prod.
	DevMode bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	svcs := opts.Services
	if svcs == nil {
		repos := storage.Memory()
		if opts.Repos != nil {
			repos = *opts.Repos
		}
		svcs = NewServices(repos, 0)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(middleware.AuthOptions{
		Verifier: auth.Chain(svcs.Users, opts.RemoteVerifier),
		DevMode:  opts.DevMode,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Rutas por módulo
	users.RegisterRoutes(r, svcs.Users)
	preferences.RegisterRoutes(r, svcs.Preferences)
	pets.RegisterRoutes(r, svcs.Pets)
	exercises.RegisterRoutes(r, svcs.Exercises, svcs.Pets)
	moods.RegisterRoutes(r, svcs.Moods, svcs.Pets)
	insights.RegisterRoutes(r, svcs.Insights, svcs.Pets)
	shares.RegisterRoutes(r, svcs.Shares, svcs.Pets)
	reports.RegisterRoutes(r, svcs.Reports, svcs.Pets, svcs.Shares, svcs.Insights)
	backup.RegisterRoutes(r, svcs.Backup)

	return r
}
