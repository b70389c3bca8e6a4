package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"oasis-backend/config"
	"oasis-backend/controllers"
	"oasis-backend/middleware"
)

// Controllers groups the handlers the router wires.
type Controllers struct {
	Cabins       *controllers.CabinController
	Settings     *controllers.SettingsController
	Selections   *controllers.SelectionController
	Reservations *controllers.ReservationController
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter builds the engine with middleware and every API route.
func SetupRouter(cfg config.AppConfig, log *zap.Logger, h Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	r.Use(cors.New(corsConfig(cfg.CorsOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		cabins := api.Group("/cabins")
		{
			cabins.GET("", h.Cabins.GetCabins)
			cabins.GET("/:id", h.Cabins.GetCabin)
			cabins.GET("/:id/booked-dates", h.Cabins.GetBookedDates)
			cabins.POST("/:id/selections", h.Selections.OpenSelection)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.UpdateSettings)
		}

		selections := api.Group("/selections")
		{
			selections.GET("/:id", h.Selections.GetSelection)
			selections.PUT("/:id/range", h.Selections.SetRange)
			selections.DELETE("/:id/range", h.Selections.ClearRange)
			selections.DELETE("/:id", h.Selections.CloseSelection)
			selections.POST("/:id/reservation", h.Reservations.CreateReservation)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("/:id", h.Reservations.GetReservation)
			reservations.DELETE("/:id", h.Reservations.DeleteReservation)
			reservations.GET("/:id/confirmation", h.Reservations.GetConfirmationPDF)
		}
	}

	return r
}
