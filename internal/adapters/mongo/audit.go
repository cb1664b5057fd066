package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hotelops/booking-ledger/internal/audit"
	"github.com/hotelops/booking-ledger/internal/observability"
)

// AuditSink stores ledger audit events in an append-only collection.
type AuditSink struct {
	coll    *mongo.Collection
	logger  observability.Logger
	timeout time.Duration
}

func NewAuditSink(db *mongo.Database, logger observability.Logger) *AuditSink {
	return &AuditSink{
		coll:    db.Collection("audit_logs"),
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

type auditDoc struct {
	ID        uuid.UUID `bson:"_id"`
	Action    string    `bson:"action"`
	Level     string    `bson:"level"`
	Timestamp time.Time `bson:"timestamp"`
	Data      bson.M    `bson:"data"`
}

func (s *AuditSink) Record(event audit.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	doc := auditDoc{
		ID:        uuid.New(),
		Action:    event.Action,
		Level:     event.Level,
		Timestamp: event.Time,
		Data:      bson.M(event.Fields),
	}
	_, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		s.logger.Error("failed to insert audit log", err)
		return err
	}
	return nil
}
