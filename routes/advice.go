package routes

import (
	"net/http"

	"advicerater/controllers"
	"advicerater/services"
	"advicerater/websocket"

	"github.com/gin-gonic/gin"
)

// SetupAdviceRoutes registers the form, JSON API and socket endpoints
func SetupAdviceRoutes(router gin.IRouter, advice *services.AdviceService) {
	ac := controllers.NewAdviceController(advice)

	router.GET("/", ac.ShowForm)
	router.POST("/credential", ac.SaveCredentialForm)
	router.POST("/rate", ac.RateForm)

	api := router.Group("/api")
	{
		api.GET("/session", ac.GetSession)
		api.POST("/credential", ac.SaveCredential)
		api.POST("/rate", ac.Rate)
	}

	router.GET("/ws/rate", websocket.RatingHandler(advice))
}

// HealthHandler reports liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
