// Package assist_web serves the rider-facing display and the operator API of a
// running simulator.
package assist_web

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"tarediiran-industries.com/gap-assist/internal/assist"
	"tarediiran-industries.com/gap-assist/internal/feed"
)

// Executor runs a function on the goroutine that owns the simulator.
type Executor interface {
	Call(ctx context.Context, fn func()) error
}

type ServerOptions struct {
	PollInterval time.Duration

	// AllowedOrigins enables CORS on the API and feed routes when not empty.
	AllowedOrigins []string

	// Assets serves the route's visuals from the site root. Nil means the built-in
	// visuals.
	Assets fs.FS
}

type AssistWebServer struct {
	sim      *assist.Simulator
	executor Executor
	feed     *feed.Builder
	renderer *Renderer

	pollInterval time.Duration
	now          func() time.Time

	router *chi.Mux
	server *http.Server
}

func NewAssistWebServer(listenAddr string, sim *assist.Simulator, executor Executor, options ServerOptions) (*AssistWebServer, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	server := &AssistWebServer{
		sim:          sim,
		executor:     executor,
		feed:         feed.NewBuilder(sim.Route()),
		renderer:     renderer,
		pollInterval: options.PollInterval,
		now:          time.Now,
		router:       router,
		server: &http.Server{
			Addr:              listenAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, "/display", http.StatusFound)
	})
	router.Get("/display", server.handleDisplayPage)
	router.Get("/display/partial", server.handleDisplayPartial)

	router.Get("/health", server.handleHealth)

	assets := options.Assets
	if assets == nil {
		assets = DefaultAssets()
	}
	router.NotFound(http.FileServerFS(assets).ServeHTTP)

	router.Route("/api", func(api chi.Router) {
		api.Use(corsFor(options.AllowedOrigins))
		api.Get("/snapshot", server.handleSnapshot)
		api.Get("/stations", server.handleStations)
		api.Post("/journey/start", server.handleJourneyStart)
		api.Post("/journey/stop", server.handleJourneyStop)
	})

	router.Route("/gtfs-rt", func(rt chi.Router) {
		rt.Use(corsFor(options.AllowedOrigins))
		rt.Get("/vehicle-positions", server.handleVehiclePositions)
		rt.Get("/alerts", server.handleAlerts)
	})

	return server, nil
}

func (server *AssistWebServer) Handler() http.Handler {
	return server.router
}

// Serve hosts the server until ctx is cancelled, then shuts it down gracefully.
func (server *AssistWebServer) Serve(ctx context.Context) error {
	failed := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.server.Addr).Msg("Display server listening")
		if err := server.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down display server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.server.Shutdown(shutdownCtx)
}

func corsFor(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(wrapped, request)

		log.Debug().
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Int("status", wrapped.Status()).
			Dur("took", time.Since(started)).
			Str("request_id", middleware.GetReqID(request.Context())).
			Msg("Request")
	})
}
