package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/Kritika0027/IDCC/app/api"
	"github.com/Kritika0027/IDCC/ingest"
	"github.com/Kritika0027/IDCC/store"
	"github.com/gofiber/fiber/v2"
)

var config = fiber.Config{
	ErrorHandler: api.ErrorHandler,
}

type Server struct {
	listenAddr string
	logger     *slog.Logger
}

func NewServer(addr string) *Server {
	return &Server{
		listenAddr: addr,
		logger:     slog.Default(),
	}
}

func (s *Server) Stop() {
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	ctx := context.Background()
	port, _ := strconv.Atoi(os.Getenv("PG_PORT"))
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("PG_HOST"), port, os.Getenv("PG_USER"), os.Getenv("PG_PASS"), os.Getenv("PG_DB_NAME"))
	pool, err := store.NewPostgresStore(ctx, connStr)
	if err != nil {
		log.Fatal("error to connect to Postgres database ", err)
		return
	}

	if err := pool.Init(ctx); err != nil {
		log.Fatal("error to create tables ", err)
		return
	}

	var (
		app                   = fiber.New(config)
		checkHandler          = api.NewCheckHandler()
		requirementHandler    = api.NewRequirementHandler(pool)
		subRequirementHandler = api.NewSubRequirementHandler(pool)
		checklistHandler      = api.NewChecklistHandler(pool)
		tagHandler            = api.NewTagHandler(pool)
		uploadHandler         = api.NewUploadHandler(pool, ingest.ConfigFromEnv())
		analyticsHandler      = api.NewAnalyticsHandler(pool)

		check = app.Group("/check")
		apiv1 = app.Group("/api/v1")
	)

	check.Get("/healthy", checkHandler.HandleHealthy)

	apiv1.Post("/requirements", requirementHandler.HandleCreateRequirement)
	apiv1.Get("/requirements", requirementHandler.HandleGetRequirements)
	apiv1.Get("/requirements/:id", requirementHandler.HandleGetRequirement)
	apiv1.Put("/requirements/:id", requirementHandler.HandleUpdateRequirement)
	apiv1.Delete("/requirements/:id", requirementHandler.HandleDeleteRequirement)

	apiv1.Post("/requirements/:id/sub-requirements", subRequirementHandler.HandleCreateSubRequirement)
	apiv1.Get("/requirements/:id/sub-requirements", subRequirementHandler.HandleGetSubRequirements)
	apiv1.Get("/sub-requirements/:id", subRequirementHandler.HandleGetSubRequirement)
	apiv1.Put("/sub-requirements/:id", subRequirementHandler.HandleUpdateSubRequirement)
	apiv1.Delete("/sub-requirements/:id", subRequirementHandler.HandleDeleteSubRequirement)

	apiv1.Post("/requirements/:id/checklist", checklistHandler.HandleCreateChecklistItem)
	apiv1.Get("/requirements/:id/checklist", checklistHandler.HandleGetChecklistItems)
	apiv1.Post("/sub-requirements/:id/checklist", checklistHandler.HandleCreateChecklistItemForSubRequirement)
	apiv1.Get("/sub-requirements/:id/checklist", checklistHandler.HandleGetChecklistItemsForSubRequirement)
	apiv1.Put("/checklist/:id", checklistHandler.HandleUpdateChecklistItem)
	apiv1.Delete("/checklist/:id", checklistHandler.HandleDeleteChecklistItem)

	apiv1.Post("/tags", tagHandler.HandleCreateTag)
	apiv1.Get("/tags", tagHandler.HandleGetTags)
	apiv1.Delete("/tags/:id", tagHandler.HandleDeleteTag)
	apiv1.Post("/requirements/:id/tags/:tagID", tagHandler.HandleLinkTag)
	apiv1.Delete("/requirements/:id/tags/:tagID", tagHandler.HandleUnlinkTag)

	apiv1.Post("/uploads/document", uploadHandler.HandleUploadDocument)
	apiv1.Post("/uploads/image", uploadHandler.HandleUploadImage)
	apiv1.Get("/requirements/:id/attachments", uploadHandler.HandleGetAttachments)

	apiv1.Get("/analytics/summary", analyticsHandler.HandleSummary)
	apiv1.Get("/analytics/suggestions/:id", analyticsHandler.HandleSuggestions)
	apiv1.Post("/analytics/validate/:id", analyticsHandler.HandleValidate)

	err = app.Listen(s.listenAddr)
	if err != nil {
		s.logger.Error("error to start server", "error", err.Error())
		return
	}
}
