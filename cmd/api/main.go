package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/nology-tech/employee-creator-go/internal/config"
	"github.com/nology-tech/employee-creator-go/internal/domain/employee"
	"github.com/nology-tech/employee-creator-go/internal/fixtures"
	appHTTP "github.com/nology-tech/employee-creator-go/internal/handler/http"
	"github.com/nology-tech/employee-creator-go/internal/pkg/database"
	"github.com/nology-tech/employee-creator-go/internal/pkg/imagegen"
	"github.com/nology-tech/employee-creator-go/internal/pkg/sse"
	"github.com/nology-tech/employee-creator-go/internal/pkg/uploader"
	"github.com/nology-tech/employee-creator-go/internal/repository/postgresql"
	avatarService "github.com/nology-tech/employee-creator-go/internal/service/avatar"
	dashboardService "github.com/nology-tech/employee-creator-go/internal/service/dashboard"
	employeeService "github.com/nology-tech/employee-creator-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "employee-creator"),
		slog.String("env", cfg.App.Env),
	)

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	hub := sse.NewHub()

	recency := employee.RecencyWindows{
		NewWindow:      cfg.Recency.NewWindow,
		UpdatedWindow:  cfg.Recency.UpdatedWindow,
		MeaningfulEdit: cfg.Recency.MeaningfulEdit,
	}
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, hub, logger, recency)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	avatarSvc := avatarService.NewAvatarService(
		imagegen.NewClient(cfg.Images.GeneratorBaseURL),
		uploader.NewCloudinaryUploader(cfg.Images.CloudName, cfg.Images.UploadPreset),
		logger,
	)

	if cfg.App.Env == "development" {
		// Seed in one transaction so a partial roster never survives a
		// failed startup.
		seeder := fixtures.NewSeeder(employeeRepo, logger)
		err := postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return seeder.SeedEmployees(postgresql.ContextWithTx(ctx, tx))
		})
		if err != nil {
			log.Fatal("Failed to seed database: ", err)
		}
	}

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, cfg.Pagination)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	avatarHandler := appHTTP.NewAvatarHandler(avatarSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(cfg, employeeHandler, dashboardHandler, avatarHandler, eventsHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", port))
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
