// Package handlers implements the HTTP surface of the shop API.
//
// Handlers bind and translate; business rules live in service and
// usecase. Errors flow out as AppError values so every endpoint speaks
// the same JSON error dialect.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/internal/api/middleware"
	"github.com/dediamond1/mechanic/internal/notification"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/pkg/worker"
	"github.com/dediamond1/mechanic/internal/service"
	"github.com/dediamond1/mechanic/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client          *ent.Client
	pool            *pgxpool.Pool
	jwtCfg          middleware.JWTConfig
	customers       *service.CustomerService
	vehicles        *service.VehicleService
	employees       *service.EmployeeService
	catalog         *service.CatalogService
	parts           *service.PartService
	issues          *service.IssueService
	serviceRecords  *service.ServiceRecordService
	appointments    *service.AppointmentService
	scheduleUC      *usecase.ScheduleAppointmentUseCase
	statusUC        *usecase.UpdateAppointmentStatusUseCase
	deleteVehicleUC *usecase.DeleteVehicleUseCase
	reportIssueUC   *usecase.ReportIssueUseCase
	auth            *service.AuthService
	riverClient     *river.Client[pgx.Tx]
	pools           *worker.Pools
	notifier        *notification.Triggers
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient       *ent.Client
	Pool            *pgxpool.Pool
	JWTCfg          middleware.JWTConfig
	Customers       *service.CustomerService
	Vehicles        *service.VehicleService
	Employees       *service.EmployeeService
	Catalog         *service.CatalogService
	Parts           *service.PartService
	Issues          *service.IssueService
	ServiceRecords  *service.ServiceRecordService
	Appointments    *service.AppointmentService
	ScheduleUC      *usecase.ScheduleAppointmentUseCase
	StatusUC        *usecase.UpdateAppointmentStatusUseCase
	DeleteVehicleUC *usecase.DeleteVehicleUseCase
	ReportIssueUC   *usecase.ReportIssueUseCase
	Auth            *service.AuthService
	RiverClient     *river.Client[pgx.Tx]
	Pools           *worker.Pools
	Notifier        *notification.Triggers
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:          deps.EntClient,
		pool:            deps.Pool,
		jwtCfg:          deps.JWTCfg,
		customers:       deps.Customers,
		vehicles:        deps.Vehicles,
		employees:       deps.Employees,
		catalog:         deps.Catalog,
		parts:           deps.Parts,
		issues:          deps.Issues,
		serviceRecords:  deps.ServiceRecords,
		appointments:    deps.Appointments,
		scheduleUC:      deps.ScheduleUC,
		statusUC:        deps.StatusUC,
		deleteVehicleUC: deps.DeleteVehicleUC,
		reportIssueUC:   deps.ReportIssueUC,
		auth:            deps.Auth,
		riverClient:     deps.RiverClient,
		pools:           deps.Pools,
		notifier:        deps.Notifier,
	}
}

// respondError renders err with the shared error JSON shape. AppErrors
// carry their own status; anything else is a 500 with the detail kept
// out of the response body.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if len(appErr.FieldErrors) > 0 {
			body["field_errors"] = appErr.FieldErrors
		}
		if len(appErr.Params) > 0 {
			body["params"] = appErr.Params
		}
		c.JSON(appErr.HTTPStatus, body)
		return
	}

	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
		zap.Error(err))
	c.JSON(500, gin.H{
		"code":    "INTERNAL_ERROR",
		"message": "An internal error occurred",
	})
}

// bindJSON decodes the request body, translating malformed JSON into
// the shared error shape.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid request body"))
		return false
	}
	return true
}
