package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crisis-supply-api-server/internal/request"
)

const mongoOpTimeout = 10 * time.Second

// MongoStore keeps the request list as one document under a fixed key,
// mirroring the single-entry layout of FileStore.
type MongoStore struct {
	Collection *mongo.Collection
	Key        string // document _id, e.g. "unified_requests"
}

type stateDocument struct {
	ID       string            `bson:"_id"`
	Requests []request.Request `bson:"requests"`
}

func (m *MongoStore) Load() ([]request.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	var doc stateDocument
	err := m.Collection.FindOne(ctx, bson.M{"_id": m.Key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load request state: %w", err)
	}
	return doc.Requests, nil
}

func (m *MongoStore) Save(requests []request.Request) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	doc := stateDocument{ID: m.Key, Requests: requests}
	_, err := m.Collection.ReplaceOne(ctx, bson.M{"_id": m.Key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save request state: %w", err)
	}
	return nil
}
