package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor runs a group of repository calls as one unit. Repositories join
// the unit through the context passed to fn.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// Atomic reports whether a failed fn rolls back the writes it made.
	Atomic() bool
}

// MongoTransactor uses client sessions. It requires a replica set.
type MongoTransactor struct {
	client *mongo.Client
}

func NewMongoTransactor(client *mongo.Client) *MongoTransactor {
	return &MongoTransactor{client: client}
}

func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (t *MongoTransactor) Atomic() bool { return true }

// DirectTransactor runs fn without a transaction, for standalone servers.
// Callers must compensate partial writes themselves.
type DirectTransactor struct{}

func (DirectTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (DirectTransactor) Atomic() bool { return false }

// NewTransactor picks the implementation for the deployment.
func NewTransactor(client *mongo.Client, transactions bool) Transactor {
	if transactions {
		return NewMongoTransactor(client)
	}
	return DirectTransactor{}
}
