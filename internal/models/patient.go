package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Genders a patient record accepts. The last one doubles as the default.
var Genders = []string{"masculino", "feminino", "nao_binario", "nao_informado"}

const genderDefault = "nao_informado"

// Patient is one stored patient document.
type Patient struct {
	ID           bson.ObjectID `bson:"_id" json:"id"`
	SpecialistID bson.ObjectID `bson:"specialistid" json:"specialistid"`
	Email        string        `bson:"email,omitempty" json:"email,omitempty"`
	Name         string        `bson:"name,omitempty" json:"name,omitempty"`
	CPF          string        `bson:"cpf" json:"cpf"`
	Gender       string        `bson:"gender" json:"gender"`
	Birthday     string        `bson:"birthday" json:"birthday"` // YYYY-MM-DD
	Address      string        `bson:"address" json:"address"`
	City         string        `bson:"city" json:"city"`
	State        string        `bson:"state" json:"state"`
	Phone        string        `bson:"phone" json:"phone"`
	Role         string        `bson:"role" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt" json:"-"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"-"`
}

// PatientView is the whitelisted projection sent to clients. Optional fields
// stay out of the payload when empty, internal fields are not here at all.
type PatientView struct {
	ID           string `json:"id"`
	SpecialistID string `json:"specialistid"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	CPF          string `json:"cpf"`
	Gender       string `json:"gender"`
	Birthday     string `json:"birthday"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
}

// Public projects the record to its external view.
func (p *Patient) Public() PatientView {
	return PatientView{
		ID:           p.ID.Hex(),
		SpecialistID: p.SpecialistID.Hex(),
		Name:         p.Name,
		Email:        p.Email,
		CPF:          p.CPF,
		Gender:       p.Gender,
		Birthday:     p.Birthday,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		Phone:        p.Phone,
	}
}

// CreatePatientInput is the POST /patients body.
type CreatePatientInput struct {
	SpecialistID string `json:"specialistid" binding:"required,len=24,hexadecimal"`
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name" binding:"required,max=128"`
	CPF          string `json:"cpf" binding:"required,max=16"`
	Birthday     string `json:"birthday" binding:"required,len=10"`
	Phone        string `json:"phone" binding:"required,max=16"`
	Address      string `json:"address" binding:"required,max=128"`
	City         string `json:"city" binding:"required,max=56"`
	State        string `json:"state" binding:"required,max=56"`
	Gender       string `json:"gender" binding:"omitempty,oneof=masculino feminino nao_binario nao_informado"`
}

// NewPatient builds a fresh record with a system-assigned id and timestamps.
func (in *CreatePatientInput) NewPatient() *Patient {
	specialistID, _ := bson.ObjectIDFromHex(in.SpecialistID) // format checked by binding
	gender := in.Gender
	if gender == "" {
		gender = genderDefault
	}
	now := time.Now().UTC()
	return &Patient{
		ID:           bson.NewObjectID(),
		SpecialistID: specialistID,
		Email:        in.Email,
		Name:         in.Name,
		CPF:          in.CPF,
		Gender:       gender,
		Birthday:     in.Birthday,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Phone:        in.Phone,
		Role:         RolePatient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ReplacePatientInput is the PUT body: the full mutable field set.
type ReplacePatientInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=128"`
	CPF      string `json:"cpf" binding:"required,max=16"`
	Birthday string `json:"birthday" binding:"required,len=10"`
	Phone    string `json:"phone" binding:"required,max=16"`
	Address  string `json:"address" binding:"required,max=128"`
	City     string `json:"city" binding:"required,max=56"`
	State    string `json:"state" binding:"required,max=56"`
	Gender   string `json:"gender" binding:"omitempty,oneof=masculino feminino nao_binario nao_informado"`
	Role     string `json:"role" binding:"omitempty,oneof=patient admin"`
}

func (in *ReplacePatientInput) dropRole() { in.Role = "" }

// Replacement overwrites every mutable field, keeping identity, the owning
// specialist, creation time and (unless the role survived MaskRole) the
// current role.
func (in *ReplacePatientInput) Replacement(current *Patient) *Patient {
	role := current.Role
	if in.Role != "" {
		role = in.Role
	}
	gender := in.Gender
	if gender == "" {
		gender = genderDefault
	}
	return &Patient{
		ID:           current.ID,
		SpecialistID: current.SpecialistID,
		Email:        in.Email,
		Name:         in.Name,
		CPF:          in.CPF,
		Gender:       gender,
		Birthday:     in.Birthday,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Phone:        in.Phone,
		Role:         role,
		CreatedAt:    current.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}
}

// UpdatePatientInput is the PATCH body: only provided fields get merged.
type UpdatePatientInput struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name" binding:"omitempty,max=128"`
	CPF      *string `json:"cpf" binding:"omitempty,max=16"`
	Birthday *string `json:"birthday" binding:"omitempty,len=10"`
	Phone    *string `json:"phone" binding:"omitempty,max=16"`
	Address  *string `json:"address" binding:"omitempty,max=128"`
	City     *string `json:"city" binding:"omitempty,max=56"`
	State    *string `json:"state" binding:"omitempty,max=56"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=masculino feminino nao_binario nao_informado"`
	Role     *string `json:"role" binding:"omitempty,oneof=patient admin"`
}

func (in *UpdatePatientInput) dropRole() { in.Role = nil }

// SetFields lists the provided fields for a $set merge.
func (in *UpdatePatientInput) SetFields() bson.M {
	set := bson.M{}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.CPF != nil {
		set["cpf"] = *in.CPF
	}
	if in.Birthday != nil {
		set["birthday"] = *in.Birthday
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.Address != nil {
		set["address"] = *in.Address
	}
	if in.City != nil {
		set["city"] = *in.City
	}
	if in.State != nil {
		set["state"] = *in.State
	}
	if in.Gender != nil {
		set["gender"] = *in.Gender
	}
	if in.Role != nil {
		set["role"] = *in.Role
	}
	return set
}

// ListPatientsQuery is the GET /patients query string. The perPage cap lives
// here in the binding, not in the store.
type ListPatientsQuery struct {
	Page     int64   `form:"page" binding:"omitempty,min=1"`
	PerPage  int64   `form:"perPage" binding:"omitempty,min=1,max=100"`
	CPF      *string `form:"cpf"`
	Gender   *string `form:"gender" binding:"omitempty,oneof=masculino feminino nao_binario nao_informado"`
	Birthday *string `form:"birthday"`
}

// Filter keeps only the filters that were actually provided. An absent filter
// must not exclude records that have no value for that field.
func (q *ListPatientsQuery) Filter() bson.M {
	filter := bson.M{}
	if q.CPF != nil {
		filter["cpf"] = *q.CPF
	}
	if q.Gender != nil {
		filter["gender"] = *q.Gender
	}
	if q.Birthday != nil {
		filter["birthday"] = *q.Birthday
	}
	return filter
}
