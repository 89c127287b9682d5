package store

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"psycare-backend/pkg/utils"
)

// Translate converts a storage duplicate-key error into the structured 409
// the API exposes. Anything else passes through untouched.
func (s *Store[T]) Translate(err error) error {
	if field, ok := DuplicateField(err, s.unique); ok {
		return utils.Conflict(field)
	}
	return err
}

// DuplicateField reports which unique field a duplicate-key error names.
// Priority order matters: email is checked before the resource's own unique
// field, and a message naming no known index falls back to the last field
// listed. Non-duplicate errors, including partial or odd error shapes, report
// false.
func DuplicateField(err error, unique []string) (string, bool) {
	if err == nil || len(unique) == 0 || !mongo.IsDuplicateKeyError(err) {
		return "", false
	}
	msg := err.Error()
	for _, field := range unique {
		if strings.Contains(msg, "index: "+field) {
			return field, true
		}
	}
	return unique[len(unique)-1], true
}
