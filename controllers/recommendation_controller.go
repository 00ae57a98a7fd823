package controllers

import (
	"net/http"

	"nutritrack/models"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Meals *services.MealService
}

func NewRecommendationController(meals *services.MealService) *RecommendationController {
	return &RecommendationController{Meals: meals}
}

// GET /api/recommend_next_meal?user_id=&date=
func (rc *RecommendationController) RecommendNextMeal(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	rec, err := rc.Meals.RecommendNextMeal(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, "recommend next meal", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /api/progress/:user_id
func (rc *RecommendationController) Progress(c *gin.Context) {
	userID := c.Param("user_id")
	hist, err := rc.Meals.ProgressHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "progress history", err)
		return
	}
	if hist == nil {
		hist = []models.DailyProgress{}
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "progress": hist, "count": len(hist)})
}
