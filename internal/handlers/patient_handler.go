package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"psycare-backend/internal/models"
	"psycare-backend/pkg/utils"
)

// loadPatient resolves the :id path param to a record, answering the 404
// itself. Malformed ids resolve to the same 404.
func loadPatient(c *gin.Context) (*models.Patient, bool) {
	patient, err := patients.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.AbortWithError(c, err)
		return nil, false
	}
	return patient, true
}

// ListPatients returns one page of patients, newest first.
func ListPatients(c *gin.Context) {
	var query models.ListPatientsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid query parameters", err.Error())
		return
	}

	records, err := patients.List(c.Request.Context(), query.Filter(), query.Page, query.PerPage)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	views := make([]models.PatientView, 0, len(records))
	for i := range records {
		views = append(views, records[i].Public())
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient list", views)
}

// CreatePatient stores a new patient record.
func CreatePatient(c *gin.Context) {
	var input models.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient data", err.Error())
		return
	}

	patient := input.NewPatient()
	if err := patients.Create(c.Request.Context(), patient); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Patient created", patient.Public())
}

// GetPatient returns one patient's public view.
func GetPatient(c *gin.Context) {
	patient, ok := loadPatient(c)
	if !ok {
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient data", patient.Public())
}

// PatientProfile returns the caller's own record.
func PatientProfile(c *gin.Context) {
	patient, err := patients.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient profile", patient.Public())
}

// ReplacePatient overwrites the whole record. The role only changes if the
// existing record already belongs to an admin.
func ReplacePatient(c *gin.Context) {
	patient, ok := loadPatient(c)
	if !ok {
		return
	}

	var input models.ReplacePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient data", err.Error())
		return
	}

	models.MaskRole(patient.Role, &input)

	updated, err := patients.Replace(c.Request.Context(), patient.ID, input.Replacement(patient))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient replaced", updated.Public())
}

// UpdatePatient merges the provided fields into the record. Same role rule
// as replace.
func UpdatePatient(c *gin.Context) {
	patient, ok := loadPatient(c)
	if !ok {
		return
	}

	var input models.UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient data", err.Error())
		return
	}

	models.MaskRole(patient.Role, &input)

	updated, err := patients.Update(c.Request.Context(), patient.ID, input.SetFields())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient updated", updated.Public())
}

// DeletePatient removes the record permanently.
func DeletePatient(c *gin.Context) {
	patient, ok := loadPatient(c)
	if !ok {
		return
	}

	if err := patients.Delete(c.Request.Context(), patient.ID); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
