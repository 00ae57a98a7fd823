package controllers

import (
	"log"
	"net/http"

	"nutritrack/middlewares"
	"nutritrack/models"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
	Users *services.UserService
}

func NewMealController(meals *services.MealService, users *services.UserService) *MealController {
	return &MealController{Meals: meals, Users: users}
}

type logMealRequest struct {
	FoodItems string `json:"food_items"`
	Date      string `json:"date"`
	UserID    string `json:"user_id"`
}

// POST /api/log_meal
// A valid bearer token wins over user_id in the body.
func (mc *MealController) LogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	ctx := c.Request.Context()

	userID := middlewares.UserID(c)
	if userID != "" && mc.Users != nil {
		_, err := mc.Users.SyncProfile(ctx, services.Identity{
			UID:     userID,
			Email:   c.GetString(middlewares.CtxEmail),
			Name:    c.GetString(middlewares.CtxName),
			Picture: c.GetString(middlewares.CtxPicture),
		})
		if err != nil {
			log.Printf("log meal: syncing profile %s: %v", userID, err)
		}
	}
	if userID == "" {
		userID = req.UserID
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required or a valid token must be provided"})
		return
	}

	meal, err := mc.Meals.LogMeal(ctx, userID, req.Date, req.FoodItems)
	if err != nil {
		respondError(c, "log meal", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal logged successfully",
		"meal_id": meal.ID,
		"data":    meal,
	})
}

// GET /api/meals/:user_id?date=
func (mc *MealController) ListMeals(c *gin.Context) {
	meals, err := mc.Meals.ListMeals(c.Request.Context(), c.Param("user_id"), c.Query("date"))
	if err != nil {
		respondError(c, "list meals", err)
		return
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals, "count": len(meals)})
}

// GET /api/summary/:user_id?date=
func (mc *MealController) Summary(c *gin.Context) {
	total, date, err := mc.Meals.DailySummary(c.Request.Context(), c.Param("user_id"), c.Query("date"))
	if err != nil {
		respondError(c, "daily summary", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": total, "date": date})
}

// GET /api/nutrition_summary?user_id=&date=
func (mc *MealController) NutritionSummary(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	total, date, err := mc.Meals.NutritionSummary(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, "nutrition summary", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "date": date, "summary": total})
}
