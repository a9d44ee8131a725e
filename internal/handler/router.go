package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"anchor-gateway/internal/handler/api"
	"anchor-gateway/internal/handler/middleware"
	"anchor-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, tableBookingHandler *api.TableBookingHandler, agentHandler *api.AgentHandler, submitHandler *api.SubmitHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, tableBookingHandler, agentHandler, submitHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, tableBookingHandler *api.TableBookingHandler, agentHandler *api.AgentHandler, submitHandler *api.SubmitHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookingGroup := apiGroup.Group("/booking")
		{
			addRoutes(bookingGroup, []route{
				{Method: http.MethodPost, Path: "/agent", Handler: agentHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/agent", Handler: agentHandler.CheckAvailability},
				{Method: http.MethodPost, Path: "/submit", Handler: submitHandler.Submit},
			})
		}

		tableBookings := apiGroup.Group("/table-bookings")
		{
			addRoutes(tableBookings, []route{
				{Method: http.MethodPost, Path: "/create", Handler: tableBookingHandler.Create},
				{Method: http.MethodGet, Path: "/availability", Handler: tableBookingHandler.Availability},
				{Method: http.MethodGet, Path: "/menu/sunday-lunch", Handler: tableBookingHandler.SundayLunchMenu},
				{Method: http.MethodGet, Path: "/:reference", Handler: tableBookingHandler.Get},
				{Method: http.MethodDelete, Path: "/:reference", Handler: tableBookingHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
