package handlers

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"psycare-backend/internal/models"
	"psycare-backend/internal/store"
)

// One store per resource, all backed by the same generic implementation.
// The field lists are the duplicate-key translation priority per resource and
// mirror the unique indexes config.ensureIndexes creates; email is unique on
// users only.
var (
	patients    *store.Store[models.Patient]
	specialists *store.Store[models.Specialist]
	users       *store.Store[models.User]
)

// Init wires the stores to the connected database. Call once at boot, after
// config.ConnectDB.
func Init(db *mongo.Database) {
	patients = store.New[models.Patient](db, "patients", "Patient", "cpf")
	specialists = store.New[models.Specialist](db, "specialists", "Specialist", "crp")
	users = store.New[models.User](db, "users", "User", "email")
}
