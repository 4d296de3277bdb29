// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"voyager/internal/http/handlers"
	"voyager/internal/http/middleware"
)

func NewRouter(plannerSvc handlers.TripPlanner, log zerolog.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logging(log))
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept"},
	}))

	planHandler := handlers.NewPlanHandler(plannerSvc)
	engine.POST("/api/plan_travel", planHandler.PlanTravel)

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return engine
}
