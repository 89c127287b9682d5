package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"psycare-backend/internal/models"
	"psycare-backend/pkg/utils"
)

// Login checks credentials and issues the JWT the protected routes expect.
// Wrong email and wrong password get the same answer on purpose.
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid login data", err.Error())
		return
	}

	user, err := users.FindOne(c.Request.Context(), bson.M{"email": input.Email})
	if err != nil || !utils.CheckPassword(input.Password, user.Password) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Incorrect email or password", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
