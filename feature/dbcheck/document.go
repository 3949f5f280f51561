package dbcheck

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProbeDocument is the throwaway record written during the round trip.
type ProbeDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Timestamp time.Time          `bson:"timestamp"`
}

// NewProbeDocument builds a document with a fresh ObjectID.
// A zero ts defaults to the current UTC time.
func NewProbeDocument(name string, ts time.Time) ProbeDocument {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return ProbeDocument{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Timestamp: ts,
	}
}
