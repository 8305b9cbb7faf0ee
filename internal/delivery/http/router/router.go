// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	StaffHandler      *handler.StaffHandler
	AttendanceHandler *handler.AttendanceHandler
	AdminHandler      *handler.AdminHandler
	AvatarHandler     *handler.AvatarHandler
	DepartmentHandler *handler.DepartmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	staffHandler      *handler.StaffHandler
	attendanceHandler *handler.AttendanceHandler
	adminHandler      *handler.AdminHandler
	avatarHandler     *handler.AvatarHandler
	departmentHandler *handler.DepartmentHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		staffHandler:      params.StaffHandler,
		attendanceHandler: params.AttendanceHandler,
		adminHandler:      params.AdminHandler,
		avatarHandler:     params.AvatarHandler,
		departmentHandler: params.DepartmentHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public identity routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)
	e.POST("/forget_password", r.authHandler.ForgetPassword)
	e.POST("/send_code", r.authHandler.SendCode)

	// The profile lookup is the only protected route outside a group
	e.GET("/info", r.authHandler.Info, r.authMiddleware.Authenticate)

	// Staff routes require authentication; role and ownership checks run
	// inside the use cases because they depend on the target record
	staffGroup := e.Group("/staff")
	staffGroup.Use(r.authMiddleware.Authenticate)
	{
		staffGroup.POST("/info_list", r.staffHandler.InfoList)
		staffGroup.POST("/info/:id", r.staffHandler.Info)
		staffGroup.POST("/add", r.staffHandler.Add)
		staffGroup.PUT("/update/:id", r.staffHandler.Update)
		staffGroup.DELETE("/delete/:id", r.staffHandler.Delete)
		staffGroup.POST("/assessment", r.staffHandler.AddAssessment)
		staffGroup.GET("/assessment/:id", r.staffHandler.Assessments)
	}

	attendanceGroup := e.Group("/attendance")
	attendanceGroup.Use(r.authMiddleware.Authenticate)
	{
		attendanceGroup.GET("/attendanceTable", r.attendanceHandler.Table)
		attendanceGroup.POST("/check_in", r.attendanceHandler.CheckIn)
	}

	// Admin routes require authentication and the Admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/analyze_staff", r.adminHandler.AnalyzeStaff)
	}

	avatarGroup := e.Group("/avatar")
	avatarGroup.Use(r.authMiddleware.Authenticate)
	{
		avatarGroup.POST("/upload", r.avatarHandler.Upload)
		avatarGroup.POST("/:employeeId", r.avatarHandler.UploadFor)
	}

	departmentGroup := e.Group("/department")
	departmentGroup.Use(r.authMiddleware.Authenticate)
	{
		departmentGroup.GET("/list", r.departmentHandler.List)
		departmentGroup.GET("/level_list", r.departmentHandler.Levels)
	}
}
