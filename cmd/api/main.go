package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/campusgate/campusgate-go/internal/config"
	"github.com/campusgate/campusgate-go/internal/dataset"
	"github.com/campusgate/campusgate-go/internal/handler"
	"github.com/campusgate/campusgate-go/internal/logger"
	"github.com/campusgate/campusgate-go/internal/middleware"
	"github.com/campusgate/campusgate-go/internal/repository"
	"github.com/campusgate/campusgate-go/internal/service"
	"github.com/campusgate/campusgate-go/internal/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("development")
		bootLog.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.New(cfg.Env)

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTTTL)

	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	searchService := service.NewSearchService(dataset.NewClient(cfg.DatasetURL), log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	searchHandler := handler.NewSearchHandler(searchService)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
		})

		r.Post("/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokenService, userRepo))

			r.Get("/users/search/name", searchHandler.HandleSearchByName)
			r.Get("/search/nim", searchHandler.HandleSearchByNIM)
			r.Get("/search/ymd", searchHandler.HandleSearchByYMD)

			r.Get("/users/{id}", userHandler.HandleGetUser)
			r.Put("/users/{id}", userHandler.HandleUpdateUser)
			r.Delete("/users/{id}", userHandler.HandleDeleteUser)
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
