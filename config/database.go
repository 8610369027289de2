package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "event-checkin-db"
var AttendeeCollection string = "attendees"
var ScanHistoryCollection string = "scan_history"
var PhotoBucketName string = "attendee_photos"

func MongoConnect() {

	mongoURI := os.Getenv("MONGOSTRING")

	if mongoURI == "" {
		log.Fatal("MONGOSTRING is not set in env. Remote operations cannot work without it")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB client is not initialized. Call MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func GetGridFSBucket() (*gridfs.Bucket, error) {
	if MongoConn == nil {
		log.Fatal("MongoDB client is not initialized. Call MongoConnect() first")
	}
	return gridfs.NewBucket(
		MongoConn.Database(DBName),
		options.GridFSBucket().SetName(PhotoBucketName),
	)
}

// InitDatabase creates the indexes the scan flow depends on.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	historyIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "attendee_id", Value: 1}, {Key: "scanned_at", Value: -1}}},
		{Keys: bson.D{{Key: "scanned_at", Value: -1}}},
	}

	_, err := GetCollection(ScanHistoryCollection).Indexes().CreateMany(ctx, historyIndexes)
	if err != nil {
		log.Printf("Warning: failed to create scan_history indexes: %v", err)
	}
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnect from MongoDB")
	}
}
