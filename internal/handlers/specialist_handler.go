package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"psycare-backend/internal/models"
	"psycare-backend/pkg/utils"
)

// loadSpecialist resolves the :id path param to a record the caller may act
// on, answering the 404 or 403 itself. The token subject is the linked user
// account id, not the record id, so ownership goes through the user link and
// cannot be gated on the path param alone.
func loadSpecialist(c *gin.Context) (*models.Specialist, bool) {
	specialist, err := specialists.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.AbortWithError(c, err)
		return nil, false
	}
	if !callerOwnsSpecialist(c, specialist) {
		utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
		return nil, false
	}
	return specialist, true
}

// callerOwnsSpecialist reports whether the caller may act on the record:
// admins always, anyone else only when the record links to their account.
func callerOwnsSpecialist(c *gin.Context, s *models.Specialist) bool {
	if c.GetString("role") == models.RoleAdmin {
		return true
	}
	return !s.UserID.IsZero() && s.UserID.Hex() == c.GetString("userID")
}

// ListSpecialists returns one page of specialists, newest first.
func ListSpecialists(c *gin.Context) {
	var query models.ListSpecialistsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid query parameters", err.Error())
		return
	}

	records, err := specialists.List(c.Request.Context(), query.Filter(), query.Page, query.PerPage)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	views := make([]models.SpecialistView, 0, len(records))
	for i := range records {
		views = append(views, records[i].Public())
	}
	utils.APIResponse(c, http.StatusOK, true, "Specialist list", views)
}

// CreateSpecialist is the specialist sign-up: it creates the login account
// first, then the specialist record linked to it. If the specialist insert
// hits a duplicate key, the fresh account is rolled back so a retry with a
// corrected crp does not collide on email.
func CreateSpecialist(c *gin.Context) {
	var input models.CreateSpecialistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid specialist data", err.Error())
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	ctx := c.Request.Context()

	user := input.NewUser(hash)
	if err := users.Create(ctx, user); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	specialist := input.NewSpecialist(user.ID)
	if err := specialists.Create(ctx, specialist); err != nil {
		_ = users.Delete(ctx, user.ID)
		utils.AbortWithError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Specialist created", specialist.Public())
}

// GetSpecialist returns one specialist's public view.
func GetSpecialist(c *gin.Context) {
	specialist, ok := loadSpecialist(c)
	if !ok {
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Specialist data", specialist.Public())
}

// SpecialistProfile returns the record linked to the caller's account.
func SpecialistProfile(c *gin.Context) {
	userID, err := bson.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		utils.AbortWithError(c, utils.NotFound("Specialist does not exist"))
		return
	}

	specialist, err := specialists.FindOne(c.Request.Context(), bson.M{"userid": userID})
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Specialist profile", specialist.Public())
}

// ReplaceSpecialist overwrites the whole record. The role only changes if
// the existing record already belongs to an admin.
func ReplaceSpecialist(c *gin.Context) {
	specialist, ok := loadSpecialist(c)
	if !ok {
		return
	}

	var input models.ReplaceSpecialistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid specialist data", err.Error())
		return
	}

	models.MaskRole(specialist.Role, &input)

	updated, err := specialists.Replace(c.Request.Context(), specialist.ID, input.Replacement(specialist))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Specialist replaced", updated.Public())
}

// UpdateSpecialist merges the provided fields into the record.
func UpdateSpecialist(c *gin.Context) {
	specialist, ok := loadSpecialist(c)
	if !ok {
		return
	}

	var input models.UpdateSpecialistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid specialist data", err.Error())
		return
	}

	models.MaskRole(specialist.Role, &input)

	updated, err := specialists.Update(c.Request.Context(), specialist.ID, input.SetFields())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Specialist updated", updated.Public())
}

// DeleteSpecialist removes the record permanently. The linked user account is
// left alone; it is a weak reference, nothing cascades.
func DeleteSpecialist(c *gin.Context) {
	specialist, ok := loadSpecialist(c)
	if !ok {
		return
	}

	if err := specialists.Delete(c.Request.Context(), specialist.ID); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
