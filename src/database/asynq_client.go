package database

import (
	"log"
	"time"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq builds the job queue client for uri and stores it in AsynqClient.
// Call it after Redis answered a ping; an empty uri leaves the queue off.
func InitAsynq(uri string) *asynq.Client {
	if uri == "" {
		log.Println("⚠️ Redis not available. Purge jobs will run inline.")
		AsynqClient = nil
		return nil
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: uri, DialTimeout: 5 * time.Second})
	log.Printf("✅ Asynq client ready (%s)", uri)
	return AsynqClient
}
