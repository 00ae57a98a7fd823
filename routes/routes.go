package routes

import (
	"time"

	"nutritrack/controllers"
	"nutritrack/middlewares"
	"nutritrack/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps is everything the router needs. Hub may be nil to disable /api/realtime.
type Deps struct {
	Meals  *services.MealService
	Users  *services.UserService
	Alerts *services.AlertBus
	Hub    *services.RealtimeHub

	JWTSecret       string
	CORSOrigins     []string
	DatabaseEnabled bool
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: len(d.CORSOrigins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(d.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = d.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", controllers.Health(d.DatabaseEnabled))

	authCtl := controllers.NewAuthController(d.Users, d.JWTSecret)
	mealCtl := controllers.NewMealController(d.Meals, d.Users)
	recCtl := controllers.NewRecommendationController(d.Meals)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/verify", authCtl.Verify)
		auth.GET("/user/:uid", authCtl.GetUser)
		auth.PUT("/user/:uid/goals", authCtl.UpdateGoals)

		api.POST("/log_meal", middlewares.OptionalAuth(d.JWTSecret), mealCtl.LogMeal)
		api.GET("/meals/:user_id", mealCtl.ListMeals)
		api.GET("/summary/:user_id", mealCtl.Summary)
		api.GET("/nutrition_summary", mealCtl.NutritionSummary)
		api.GET("/recommend_next_meal", recCtl.RecommendNextMeal)
		api.GET("/progress/:user_id", recCtl.Progress)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(d.JWTSecret))
	{
		if d.Alerts != nil {
			protected.GET("/alerts", controllers.NewAlertController(d.Alerts).List)
		}
		if d.Hub != nil {
			protected.GET("/realtime", controllers.NewRealtimeController(d.Hub).Stream)
		}
	}

	return r
}
