package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseDeleter is implemented by database.ResponseStore.
type ResponseDeleter interface {
	DeleteResponsesBySurvey(ctx context.Context, surveyID primitive.ObjectID) (int64, error)
}

// HandlePurgeResponsesTask deletes every response of a deleted survey.
func HandlePurgeResponsesTask(deleter ResponseDeleter) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload PurgeResponsesPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		id, err := primitive.ObjectIDFromHex(payload.SurveyID)
		if err != nil {
			return fmt.Errorf("invalid survey id %q: %w", payload.SurveyID, asynq.SkipRetry)
		}

		n, err := deleter.DeleteResponsesBySurvey(ctx, id)
		if err != nil {
			log.Printf("[jobs] purge responses survey=%s failed: %v", id.Hex(), err)
			return err
		}
		log.Printf("[jobs] purged %d responses survey=%s", n, id.Hex())
		return nil
	}
}

// NewServeMux ลงทะเบียน Handler ทั้งหมดของ worker
func NewServeMux(deleter ResponseDeleter) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePurgeResponses, HandlePurgeResponsesTask(deleter))
	return mux
}

// StartWorker runs the asynq server in the background. Call Shutdown on the
// returned server before exiting.
func StartWorker(redisAddr string, deleter ResponseDeleter) (*asynq.Server, error) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 2},
	)
	if err := srv.Start(NewServeMux(deleter)); err != nil {
		return nil, fmt.Errorf("start worker: %w", err)
	}
	log.Println("✅ Asynq worker started")
	return srv, nil
}
