package controllers

import (
	"net/http"

	"nutritrack/middlewares"
	"nutritrack/models"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	Alerts *services.AlertBus
}

func NewAlertController(alerts *services.AlertBus) *AlertController {
	return &AlertController{Alerts: alerts}
}

// GET /api/alerts
func (ac *AlertController) List(c *gin.Context) {
	alerts, err := ac.Alerts.List(c.Request.Context(), middlewares.UserID(c))
	if err != nil {
		respondError(c, "list alerts", err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
}
