package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/api/handlers"
	"github.com/dediamond1/mechanic/internal/api/middleware"
	"github.com/dediamond1/mechanic/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)

	v1 := router.Group("/api/v1")

	// Public auth surface. Everything else requires a bearer token.
	v1.POST("/auth/register", server.Register)
	v1.POST("/auth/login", server.Login)
	v1.POST("/auth/forgot-password", server.ForgotPassword)
	v1.POST("/auth/reset-password", server.ResetPassword)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuth([]byte(cfg.Security.JWTSecret)))

	authed.GET("/auth/me", server.GetCurrentUser)

	authed.GET("/customers", server.ListCustomers)
	authed.POST("/customers", server.CreateCustomer)
	authed.GET("/customers/:id", server.GetCustomer)
	authed.PUT("/customers/:id", server.UpdateCustomer)
	authed.DELETE("/customers/:id", server.DeleteCustomer)
	authed.GET("/customers/:id/vehicles", server.ListCustomerVehicles)

	authed.GET("/vehicles", server.ListVehicles)
	authed.POST("/vehicles", server.CreateVehicle)
	authed.GET("/vehicles/:id", server.GetVehicle)
	authed.PUT("/vehicles/:id", server.UpdateVehicle)
	authed.DELETE("/vehicles/:id", server.DeleteVehicle)
	authed.GET("/vehicles/:id/appointments", server.ListVehicleAppointments)
	authed.GET("/vehicles/:id/issues", server.ListVehicleIssues)
	authed.GET("/vehicles/:id/service-records", server.ListVehicleServiceRecords)

	authed.GET("/employees", server.ListEmployees)
	authed.POST("/employees", server.CreateEmployee)
	authed.GET("/employees/:id", server.GetEmployee)
	authed.PUT("/employees/:id", server.UpdateEmployee)
	authed.DELETE("/employees/:id", server.DeleteEmployee)
	authed.GET("/employees/:id/appointments", server.ListEmployeeAppointments)

	authed.GET("/services", server.ListServices)
	authed.POST("/services", server.CreateService)
	authed.GET("/services/:id", server.GetService)
	authed.PUT("/services/:id", server.UpdateService)
	authed.DELETE("/services/:id", server.DeleteService)

	authed.GET("/parts", server.ListParts)
	authed.POST("/parts", server.CreatePart)
	authed.GET("/parts/:id", server.GetPart)
	authed.PUT("/parts/:id", server.UpdatePart)
	authed.DELETE("/parts/:id", server.DeletePart)
	authed.POST("/parts/:id/adjust", server.AdjustPartQuantity)

	authed.GET("/issues", server.ListIssues)
	authed.POST("/issues", server.CreateIssue)
	authed.GET("/issues/:id", server.GetIssue)
	authed.PUT("/issues/:id", server.UpdateIssue)
	authed.POST("/issues/:id/resolve", server.ResolveIssue)
	authed.DELETE("/issues/:id", server.DeleteIssue)

	authed.GET("/service-records", server.ListServiceRecords)
	authed.POST("/service-records", server.CreateServiceRecord)
	authed.GET("/service-records/:id", server.GetServiceRecord)
	authed.PUT("/service-records/:id", server.UpdateServiceRecord)
	authed.POST("/service-records/:id/complete", server.CompleteServiceRecord)
	authed.DELETE("/service-records/:id", server.DeleteServiceRecord)

	authed.GET("/appointments", server.ListAppointments)
	authed.POST("/appointments", server.CreateAppointment)
	authed.GET("/appointments/:id", server.GetAppointment)
	authed.PATCH("/appointments/:id/status", server.UpdateAppointmentStatus)
	authed.POST("/appointments/:id/notes", server.AppendAppointmentNote)
	authed.DELETE("/appointments/:id", server.DeleteAppointment)

	authed.GET("/notifications", server.ListNotifications)
	authed.GET("/notifications/unread-count", server.GetUnreadCount)
	authed.POST("/notifications/:id/read", server.MarkNotificationRead)
	authed.POST("/notifications/read-all", server.MarkAllNotificationsRead)

	return router
}

// buildCORSConfig translates server config into a CORS policy. Wildcard
// origins are honored only behind the explicit unsafe flag, and a
// wildcard policy never keeps credentials.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsCfg.AllowCredentials = cfg.Server.AllowCredentials

	if cfg.Server.UnsafeAllowAllOrigins {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
		corsCfg.AllowOrigins = nil
		return corsCfg
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "" || origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
