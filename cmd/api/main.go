package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/assethub/hub-api/internal/config"
	"github.com/assethub/hub-api/internal/domain/asset"
	"github.com/assethub/hub-api/internal/domain/coin"
	"github.com/assethub/hub-api/internal/domain/comment"
	"github.com/assethub/hub-api/internal/domain/install"
	"github.com/assethub/hub-api/internal/domain/invite"
	"github.com/assethub/hub-api/internal/domain/issue"
	"github.com/assethub/hub-api/internal/domain/star"
	"github.com/assethub/hub-api/internal/domain/user"
	"github.com/assethub/hub-api/internal/middleware"
	"github.com/assethub/hub-api/internal/pkg/database"
	"github.com/assethub/hub-api/internal/pkg/logger"
	"github.com/assethub/hub-api/internal/pkg/ratelimit"
	pkgresponse "github.com/assethub/hub-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting AssetHub API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	if err := database.Migrate(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	anonLimiter := ratelimit.New(redis, "anon_install", time.Hour)

	// ---------- Repositories ----------
	coinRepo := coin.NewRepository(db)
	userRepo := user.NewRepository(db)
	assetRepo := asset.NewRepository(db)
	starRepo := star.NewRepository(db)
	installRepo := install.NewRepository(db)
	inviteRepo := invite.NewRepository(db)
	commentRepo := comment.NewRepository(db)
	issueRepo := issue.NewRepository(db)

	// ---------- Services ----------
	coinService := coin.NewService(coinRepo)
	userService := user.NewService(userRepo, coinService)
	assetService := asset.NewService(assetRepo, coinService)
	starService := star.NewService(starRepo)
	installService := install.NewService(installRepo, starRepo, coinService,
		cfg.AnonInstallReward, cfg.AnonInstallRewardHourlyCap, anonLimiter)
	inviteService := invite.NewService(inviteRepo, coinService, cfg.InviteBatchSize)
	commentService := comment.NewService(commentRepo, coinService)
	issueService := issue.NewService(issueRepo, coinService)

	// ---------- Handlers ----------
	coinHandler := coin.NewHandler(coinService)
	userHandler := user.NewHandler(userService)
	assetHandler := asset.NewHandler(assetService)
	starHandler := star.NewHandler(starService)
	installHandler := install.NewHandler(installService)
	inviteHandler := invite.NewHandler(inviteService)
	commentHandler := comment.NewHandler(commentService)
	issueHandler := issue.NewHandler(issueService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(middleware.Identity)
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/register", userHandler.Register)
		r.Get("/users/{id}", userHandler.GetByID)
		r.Mount("/users/{id}/coins", coinHandler.Routes())

		r.Route("/assets", func(r chi.Router) {
			r.Get("/{id}", assetHandler.GetByID)
			r.Get("/{id}/comments", commentHandler.ListByAsset)
			r.Get("/{id}/issues", issueHandler.ListByAsset)
			r.Post("/{id}/download", installHandler.Download)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/", assetHandler.Publish)
				r.Put("/{id}/github-stars", assetHandler.SyncStars)
				r.Get("/{id}/star", starHandler.GetStatus)
				r.Post("/{id}/star", starHandler.Star)
				r.Delete("/{id}/star", starHandler.Unstar)
				r.Post("/{id}/comments", commentHandler.Create)
				r.Post("/{id}/issues", issueHandler.Create)
			})
		})

		r.Route("/issues", func(r chi.Router) {
			r.Get("/{issueID}", issueHandler.GetByID)
			r.With(middleware.RequireUser).Patch("/{issueID}/status", issueHandler.SetStatus)
		})

		r.Route("/invites", func(r chi.Router) {
			r.Get("/validate/{code}", inviteHandler.Validate)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/activate", inviteHandler.Activate)
				r.Get("/mine", inviteHandler.Mine)
				r.Get("/status", inviteHandler.Status)
			})
		})

		r.Route("/me", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/stars", starHandler.ListStarred)
			r.Get("/installs", installHandler.ListInstalls)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

