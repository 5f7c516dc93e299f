package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/weekwise/weekwise/internal/config"
	"github.com/weekwise/weekwise/internal/db"
	"github.com/weekwise/weekwise/internal/repository"
	"github.com/weekwise/weekwise/internal/service"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	UserService    *service.UserService
	EmailService   *service.EmailService
	ReviewService  *service.ReviewService
	ContentService *service.ContentService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	reviewRepository := repository.NewReviewRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ResendAudienceID,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		tokenRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
		cfg.TokenLoginCodeExpiry,
	)
	userService := service.NewUserService(userRepository, emailService)
	reviewService := service.NewReviewService(reviewRepository)

	contentService := service.NewContentService(cfg.ContentPath)
	err = contentService.LoadPages()
	if err != nil {
		return nil, fmt.Errorf("failed to load content pages: %v", err)
	}

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		UserService:    userService,
		EmailService:   emailService,
		ReviewService:  reviewService,
		ContentService: contentService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
