package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mondaynail/salon-api/internal/audit"
	"github.com/mondaynail/salon-api/internal/config"
	"github.com/mondaynail/salon-api/internal/handlers"
	infraRepo "github.com/mondaynail/salon-api/internal/infra/repository"
	"github.com/mondaynail/salon-api/internal/media"
	"github.com/mondaynail/salon-api/internal/middleware"
	"github.com/mondaynail/salon-api/internal/ratelimit"
	"github.com/mondaynail/salon-api/internal/session"
	ucTicket "github.com/mondaynail/salon-api/internal/usecase/ticket"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	redisClient *redis.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	ticketRepo := infraRepo.NewWorkTicketGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	loginLimiter := ratelimit.NewLoginLimiter(redisClient, 10, 15*time.Minute, log)

	signer := media.NewCloudinarySigner(cfg.Cloudinary)
	store := media.NewS3Store(cfg.S3)
	compressor := media.NewCompressor()

	// ======================================================
	// USE CASES — WORK TICKETS
	// ======================================================
	createTicketUC := ucTicket.NewCreateWorkTicket(
		ticketRepo,
		auditDispatcher,
		cfg.Salon.Timezone,
	)

	updateTicketUC := ucTicket.NewUpdateWorkTicket(
		ticketRepo,
		auditDispatcher,
		cfg.Salon.Timezone,
	)

	deleteTicketUC := ucTicket.NewDeleteWorkTicket(
		ticketRepo,
		auditDispatcher,
	)

	listTicketsUC := ucTicket.NewListWorkTickets(ticketRepo)
	getTicketUC := ucTicket.NewGetWorkTicket(ticketRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, log, loginLimiter, auditDispatcher)
	employeeHandler := handlers.NewEmployeeHandler(db, log)

	ticketHandler := handlers.NewWorkTicketHandler(
		createTicketUC,
		updateTicketUC,
		deleteTicketUC,
		listTicketsUC,
		getTicketUC,
		log,
	)

	reportHandler := handlers.NewReportHandler(listTicketsUC, cfg.Salon.Timezone, log)

	mediaHandler := handlers.NewMediaHandler(
		signer,
		store,
		compressor,
		cfg.Cloudinary.UploadFolder,
		log,
	)

	// ======================================================
	// PAGE GUARD
	// ======================================================
	// Redirects unauthenticated traffic on /admin/** and /employee/**
	// to the login page; API routes are handled by RequireRole below.
	r.Use(middleware.SessionGuard(cfg))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/check", authHandler.Check)

		// ------------------------------
		// MEDIA
		// ------------------------------
		anySession := api.Group("/")
		anySession.Use(middleware.RequireRole(cfg, session.RoleEmployee, session.RoleAdmin))
		{
			anySession.POST("/cloudinary/signature", mediaHandler.Signature)
			anySession.POST("/uploads", mediaHandler.Upload)

			anySession.GET("/employees", employeeHandler.List)

			// ------------------------------
			// WORK TICKETS
			// ------------------------------
			anySession.GET("/work-tickets", ticketHandler.List)
			anySession.GET("/work-tickets/:id", ticketHandler.Get)
			anySession.POST("/work-tickets", ticketHandler.Create)
		}

		adminOnly := api.Group("/")
		adminOnly.Use(middleware.RequireRole(cfg, session.RoleAdmin))
		{
			adminOnly.PATCH("/work-tickets/:id", ticketHandler.Update)
			adminOnly.DELETE("/work-tickets/:id", ticketHandler.Delete)

			// ------------------------------
			// REPORTS
			// ------------------------------
			adminOnly.GET("/reports/dashboard", reportHandler.Dashboard)
			adminOnly.GET("/reports/statistics", reportHandler.Statistics)
			adminOnly.GET("/reports/daily", reportHandler.Daily)
		}
	}
}
