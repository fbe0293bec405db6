package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/cache"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/handler"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/ical"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/middleware"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/registrar"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/repository/postgres"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/schedule"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// termDates reads the active term's calendar window from the
// environment, falling back to a fall-semester default.
func termDates() ical.Term {
	start, err := time.Parse("2006-01-02", os.Getenv("TERM_START"))
	if err != nil {
		start = time.Date(time.Now().Year(), time.September, 1, 0, 0, 0, 0, time.UTC)
	}
	end, err := time.Parse("2006-01-02", os.Getenv("TERM_END"))
	if err != nil {
		end = start.AddDate(0, 4, 0)
	}
	return ical.Term{Start: start, End: end}
}

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		logger.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	ctx := context.Background()
	storage, err := postgres.NewConnection(ctx, connString)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	if err := storage.Migrate(ctx); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if os.Getenv("SEED_DB") == "true" {
		term, _ := strconv.Atoi(os.Getenv("SEED_TERM"))
		if term == 0 {
			term = 1262
		}
		if err := storage.Seed(ctx, term, logger); err != nil {
			logger.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb = redis.NewClient(opts)
	} else {
		logger.Warn("REDIS_URL not set, catalog served without cache")
	}

	catalog := cache.NewCatalog(rdb, storage, logger)
	aggregator := schedule.NewAggregator(storage, logger)
	updater := registrar.NewUpdater(registrar.NewClient(os.Getenv("API_ACCESS_TOKEN")), storage, logger)

	authMiddleware := middleware.JWTAuth()
	handler.SetupCourseRoutes(e, storage, catalog)
	handler.SetupUserRoutes(e, storage, authMiddleware)
	handler.SetupScheduleRoutes(e, storage, aggregator, termDates(), authMiddleware)
	handler.SetupEventRoutes(e, storage, authMiddleware)
	handler.SetupAdminRoutes(e, storage, updater, catalog, authMiddleware)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
