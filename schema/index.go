package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexBloodRequestCollection())
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"user_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexBloodRequestCollection() error {
	// listing and the expiry sweep both lead with status
	if err := m.createIndex(BloodRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "required_by", Value: 1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(BloodRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "urgency", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(BloodRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requester_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(BloodRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"responses.donor_id": 1,
		},
	})
}
