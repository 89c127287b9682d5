package config

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DB is the shared database handle, set once by ConnectDB at boot.
var DB *mongo.Database

// ConnectDB opens the Mongo connection and prepares the collections.
func ConnectDB() {
	uri := Getenv("MONGO_URI", "mongodb://localhost:27017")

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("mongo unreachable")
	}

	DB = client.Database(Getenv("MONGO_DB", "psycare"))

	if err := ensureIndexes(ctx, DB); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	log.Info().Str("db", DB.Name()).Msg("database connected")
}

// ensureIndexes creates the unique indexes the duplicate-key contract
// relies on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := map[string]string{
		"patients":    "cpf",
		"specialists": "crp",
		"users":       "email",
	}

	for collection, field := range unique {
		_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Getenv reads an env var with a fallback.
func Getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
