package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	surveysCollection   = "surveys"
	responsesCollection = "responses"
	usersCollection     = "users"
)

var (
	client     *mongo.Client
	db         *mongo.Database
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	SurveyCollection   *mongo.Collection
	ResponseCollection *mongo.Collection
	UserCollection     *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB(uri, dbName string) error {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if connectErr != nil {
			connectErr = fmt.Errorf("connect mongodb: %w", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			connectErr = fmt.Errorf("ping mongodb: %w", connectErr)
			return
		}

		db = client.Database(dbName)
		SurveyCollection = db.Collection(surveysCollection)
		ResponseCollection = db.Collection(responsesCollection)
		UserCollection = db.Collection(usersCollection)

		log.Printf("✅ MongoDB connected successfully db=%s", dbName)
	})
	return connectErr
}

// DisconnectMongoDB ปิดการเชื่อมต่อ
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
