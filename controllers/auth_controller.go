package controllers

import (
	"net/http"

	"nutritrack/models"
	"nutritrack/services"
	"nutritrack/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users  *services.UserService
	Secret string
}

func NewAuthController(users *services.UserService, secret string) *AuthController {
	return &AuthController{Users: users, Secret: secret}
}

// POST /api/auth/verify
func (ac *AuthController) Verify(c *gin.Context) {
	var body struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	claims, err := utils.ParseJWT(ac.Secret, body.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	user, err := ac.Users.SyncProfile(c.Request.Context(), services.Identity{
		UID:     claims.UID(),
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	})
	if err != nil {
		respondError(c, "verify token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Token verified successfully",
		"user":    user,
	})
}

// GET /api/auth/user/:uid
func (ac *AuthController) GetUser(c *gin.Context) {
	user, err := ac.Users.GetProfile(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type goalsRequest struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
	Sugar    *float64 `json:"sugar"`
}

// PUT /api/auth/user/:uid/goals
func (ac *AuthController) UpdateGoals(c *gin.Context) {
	var req goalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	fields := []struct {
		name string
		v    *float64
	}{
		{"calories", req.Calories}, {"protein", req.Protein}, {"carbs", req.Carbs},
		{"fat", req.Fat}, {"fiber", req.Fiber}, {"sugar", req.Sugar},
	}
	values := map[string]float64{}
	for _, f := range fields {
		if f.v == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + f.name})
			return
		}
		if *f.v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Goal must not be negative: " + f.name})
			return
		}
		values[f.name] = *f.v
	}

	goals := models.FromMap(values)
	if _, err := ac.Users.UpdateGoals(c.Request.Context(), c.Param("uid"), goals); err != nil {
		respondError(c, "update goals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Nutrition goals updated successfully",
		"goals":   goals,
	})
}
