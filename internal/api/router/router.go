package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CauehCraft/AgendaAberta/config"
	"github.com/CauehCraft/AgendaAberta/internal/api/handler"
	"github.com/CauehCraft/AgendaAberta/internal/api/middleware"
	"github.com/CauehCraft/AgendaAberta/internal/model"
	"github.com/CauehCraft/AgendaAberta/pkg/jwt"
	"github.com/CauehCraft/AgendaAberta/pkg/redis"
)

// Setup inicializa e devolve o motor de rotas do Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Verificação de saúde ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Autenticação (sem token)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Agenda pública (sem token)
		public := v1.Group("/public")
		{
			public.GET("/slots", h.Public.ListSlots)
			public.GET("/slots.ics", h.Public.Calendar)
		}

		// Rotas autenticadas
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.DELETE("/auth/me", h.Auth.DeleteMe)

			// Disciplinas: leitura para todos, escrita para professor/monitor
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.List)
				subjects.GET("/:id", h.Subject.Get)
				subjects.POST("", middleware.RoleAuth(model.RoleProfessor, model.RoleMonitor), h.Subject.Create)
				subjects.PUT("/:id", middleware.RoleAuth(model.RoleProfessor, model.RoleMonitor), h.Subject.Update)
				subjects.DELETE("/:id", middleware.RoleAuth(model.RoleProfessor, model.RoleMonitor), h.Subject.Delete)
			}

			// Horários: escrita restrita a professor/monitor (posse no Service)
			slots := authorized.Group("/slots")
			{
				slots.GET("", h.Slot.ListMine)
				slots.GET("/:id", h.Slot.Get)
				slots.POST("", middleware.RoleAuth(model.RoleProfessor, model.RoleMonitor), h.Slot.Create)
				slots.PUT("/:id", middleware.RoleAuth(model.RoleProfessor, model.RoleMonitor), h.Slot.Update)
				slots.DELETE("/:id", middleware.RoleAuth(model.RoleProfessor, model.RoleMonitor), h.Slot.Delete)
			}

			// Agendamentos: criação restrita a alunos (acesso fino no Service)
			bookings := authorized.Group("/bookings")
			{
				bookings.GET("", h.Booking.List)
				bookings.GET("/:id", h.Booking.Get)
				bookings.POST("", middleware.RoleAuth(model.RoleAluno), h.Booking.Create)
				bookings.PUT("/:id", h.Booking.Update)
				bookings.DELETE("/:id", middleware.RoleAuth(model.RoleAluno), h.Booking.Delete)
			}

			// Exportação
			export := authorized.Group("/export")
			{
				export.GET("/slots", middleware.RoleAuth(model.RoleProfessor, model.RoleMonitor), h.Export.ExportSlots)
			}
		}
	}

	return r
}
