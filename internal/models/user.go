package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account that can log in. The password hash never leaves the
// server, json:"-" keeps it out of every response.
type User struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"` // bcrypt hash
	Role      string        `bson:"role" json:"role"`
	CreatedAt time.Time     `bson:"createdAt" json:"-"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"-"`
}

// LoginInput is the POST /auth/login body.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
