package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rickyyue315/reallocation-api/internal/application/auth"
	apptransfer "github.com/rickyyue315/reallocation-api/internal/application/transfer"
	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalyzeUC  *apptransfer.AnalyzeUseCase
	EstimateUC *apptransfer.EstimateUseCase
	RunsUC     *apptransfer.RunQueryUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Transfers (protegido; análisis y estimación para admin y planner)
	transfers := protected.Group("/transfers", RequireRole(entity.RoleAdmin, entity.RolePlanner))
	transferHandler := NewTransferHandler(deps.AnalyzeUC, deps.EstimateUC, deps.RunsUC)
	transfers.Post("/analyze", transferHandler.Analyze)
	transfers.Post("/estimate", transferHandler.Estimate)
	transfers.Get("/runs", transferHandler.ListRuns)
	transfers.Get("/runs/:id", transferHandler.GetRun)
	transfers.Get("/runs/:id/export", transferHandler.ExportRun)
	transfers.Get("/runs/:id/report", transferHandler.ReportRun)
}
