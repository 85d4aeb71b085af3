package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/communityworks/grantledger/internal/http/authgate"
	"github.com/communityworks/grantledger/internal/http/exportcsv"
	funderHandler "github.com/communityworks/grantledger/internal/http/funder"
	"github.com/communityworks/grantledger/internal/http/importcsv"
	"github.com/communityworks/grantledger/internal/http/record"
	reportHandler "github.com/communityworks/grantledger/internal/http/report"
)

type Options struct {
	CORSOrigins []string
	// AuthSecret enables the bearer gate when non-empty.
	AuthSecret string
}

func New(
	recordsV1 *record.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exportcsv.Handler,
	reportsV1 *reportHandler.Handler,
	fundersV1 *funderHandler.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	if opts.AuthSecret != "" {
		router.Use(authgate.Middleware(opts.AuthSecret))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recordsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
		r.Route("/export", exportV1.Routes)
		r.Route("/reports", reportsV1.Routes)
		r.Route("/funders", fundersV1.Routes)
	})

	return router
}
