package server

import (
	"context"
	"net/http"
	"time"

	"gymdash/internal/auth"
	"gymdash/internal/cache"
	"gymdash/internal/class"
	"gymdash/internal/config"
	"gymdash/internal/dashboard"
	"gymdash/internal/location"
	"gymdash/internal/membership"
	"gymdash/internal/payment"
	"gymdash/internal/staff"
	"gymdash/internal/user"
	"gymdash/internal/visit"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, summaryCache *cache.Cache) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userHandler := user.NewHandler(db, cfg.JWTSecret)
	dashboardHandler := dashboard.NewHandler(db, cfg, summaryCache)
	classHandler := class.NewHandler(db, cfg)
	paymentHandler := payment.NewHandler(db, cfg)
	membershipHandler := membership.NewHandler(db)
	staffHandler := staff.NewHandler(db, cfg)
	locationHandler := location.NewHandler(db)
	visitHandler := visit.NewHandler(db)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	public := router.Group("/auth")
	{
		public.POST("/login", userHandler.Login)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.Me)
		protected.GET("/dashboard/summary", dashboardHandler.GetSummary)
		protected.GET("/dashboard/activity", dashboardHandler.GetActivity)
		protected.GET("/classes/today", classHandler.ListToday)
		protected.GET("/revenue/trends", paymentHandler.Trends)
		protected.GET("/memberships/expiring", membershipHandler.Expiring)
		protected.GET("/staff/coverage", staffHandler.Coverage)
		protected.GET("/locations", locationHandler.List)
		protected.GET("/locations/:locationID", locationHandler.Get)
		protected.POST("/visits/check-in", visitHandler.CheckIn)
		protected.POST("/visits/:visitID/check-out", visitHandler.CheckOut)
		protected.POST("/visits/:visitID/attendance", visitHandler.RecordAttendance)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.POST("/users", userHandler.Register)
		admin.POST("/locations", locationHandler.Create)
		admin.POST("/classes", classHandler.CreateClass)
		admin.POST("/staff/shifts", staffHandler.CreateShift)
	}

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests before returning.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
