package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID converts a hex id from a URL or token. A malformed id can never
// match a stored document, so it is reported as not found.
func ParseID(resource, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, &NotFoundError{Resource: resource, ID: hex}
	}
	return id, nil
}
