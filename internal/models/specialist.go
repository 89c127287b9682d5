package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Specialist is one stored specialist document. The record only carries the
// professional data; name, email and credentials live on the linked User.
type Specialist struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	UserID    bson.ObjectID `bson:"userid,omitempty" json:"userid"`
	CRP       string        `bson:"crp" json:"crp"`
	Approach  string        `bson:"approach" json:"approach"`
	Phone     string        `bson:"phone" json:"phone"`
	Role      string        `bson:"role" json:"-"`
	CreatedAt time.Time     `bson:"createdAt" json:"-"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"-"`
}

// SpecialistView is the whitelisted projection sent to clients.
type SpecialistView struct {
	ID       string `json:"id"`
	UserID   string `json:"userid,omitempty"`
	CRP      string `json:"crp"`
	Approach string `json:"approach"`
	Phone    string `json:"phone"`
}

// Public projects the record to its external view.
func (s *Specialist) Public() SpecialistView {
	view := SpecialistView{
		ID:       s.ID.Hex(),
		CRP:      s.CRP,
		Approach: s.Approach,
		Phone:    s.Phone,
	}
	if !s.UserID.IsZero() {
		view.UserID = s.UserID.Hex()
	}
	return view
}

// CreateSpecialistInput is the POST /specialists body. This is the sign-up
// flow, so it also carries the account fields for the linked user.
type CreateSpecialistInput struct {
	Name            string `json:"name" binding:"required,max=128"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmpassword" binding:"required,eqfield=Password"`
	CRP             string `json:"crp" binding:"required,max=56"`
	Approach        string `json:"approach" binding:"required,max=256"`
	Phone           string `json:"phone" binding:"required,max=16"`
}

// NewSpecialist builds the specialist record linked to an already-created
// user account.
func (in *CreateSpecialistInput) NewSpecialist(userID bson.ObjectID) *Specialist {
	now := time.Now().UTC()
	return &Specialist{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		CRP:       in.CRP,
		Approach:  in.Approach,
		Phone:     in.Phone,
		Role:      RoleSpecialist,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewUser builds the account record for the sign-up. New accounts always get
// the specialist role; admins are promoted by an admin, never self-made.
func (in *CreateSpecialistInput) NewUser(passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        bson.NewObjectID(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  passwordHash,
		Role:      RoleSpecialist,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReplaceSpecialistInput is the PUT body: the full mutable field set.
type ReplaceSpecialistInput struct {
	CRP      string `json:"crp" binding:"required,max=56"`
	Approach string `json:"approach" binding:"required,max=256"`
	Phone    string `json:"phone" binding:"required,max=16"`
	Role     string `json:"role" binding:"omitempty,oneof=specialist admin"`
}

func (in *ReplaceSpecialistInput) dropRole() { in.Role = "" }

// Replacement overwrites the mutable fields, keeping identity, the linked
// user, creation time and (unless the role survived MaskRole) the current
// role.
func (in *ReplaceSpecialistInput) Replacement(current *Specialist) *Specialist {
	role := current.Role
	if in.Role != "" {
		role = in.Role
	}
	return &Specialist{
		ID:        current.ID,
		UserID:    current.UserID,
		CRP:       in.CRP,
		Approach:  in.Approach,
		Phone:     in.Phone,
		Role:      role,
		CreatedAt: current.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
}

// UpdateSpecialistInput is the PATCH body: only provided fields get merged.
type UpdateSpecialistInput struct {
	CRP      *string `json:"crp" binding:"omitempty,max=56"`
	Approach *string `json:"approach" binding:"omitempty,max=256"`
	Phone    *string `json:"phone" binding:"omitempty,max=16"`
	Role     *string `json:"role" binding:"omitempty,oneof=specialist admin"`
}

func (in *UpdateSpecialistInput) dropRole() { in.Role = nil }

// SetFields lists the provided fields for a $set merge.
func (in *UpdateSpecialistInput) SetFields() bson.M {
	set := bson.M{}
	if in.CRP != nil {
		set["crp"] = *in.CRP
	}
	if in.Approach != nil {
		set["approach"] = *in.Approach
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.Role != nil {
		set["role"] = *in.Role
	}
	return set
}

// ListSpecialistsQuery is the GET /specialists query string.
type ListSpecialistsQuery struct {
	Page     int64   `form:"page" binding:"omitempty,min=1"`
	PerPage  int64   `form:"perPage" binding:"omitempty,min=1,max=100"`
	CRP      *string `form:"crp"`
	Approach *string `form:"approach"`
	Phone    *string `form:"phone"`
}

// Filter keeps only the filters that were actually provided.
func (q *ListSpecialistsQuery) Filter() bson.M {
	filter := bson.M{}
	if q.CRP != nil {
		filter["crp"] = *q.CRP
	}
	if q.Approach != nil {
		filter["approach"] = *q.Approach
	}
	if q.Phone != nil {
		filter["phone"] = *q.Phone
	}
	return filter
}
