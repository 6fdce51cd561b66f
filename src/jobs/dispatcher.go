package jobs

import (
	"context"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enqueuer is the part of *asynq.Client the dispatcher uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher purges responses of deleted surveys. With a queue the work is
// enqueued; without one (no Redis) it runs inline.
type Dispatcher struct {
	queue   Enqueuer
	deleter ResponseDeleter
}

// NewDispatcher accepts a nil queue.
func NewDispatcher(queue Enqueuer, deleter ResponseDeleter) *Dispatcher {
	return &Dispatcher{queue: queue, deleter: deleter}
}

func (d *Dispatcher) PurgeResponses(ctx context.Context, surveyID primitive.ObjectID) error {
	if d.queue != nil {
		task, err := NewPurgeResponsesTask(surveyID.Hex())
		if err != nil {
			return err
		}
		info, err := d.queue.EnqueueContext(ctx, task, asynq.MaxRetry(5))
		if err == nil {
			log.Printf("[jobs] enqueued %s task=%s survey=%s", TypePurgeResponses, info.ID, surveyID.Hex())
			return nil
		}
		log.Printf("⚠️ enqueue %s failed, purging inline: %v", TypePurgeResponses, err)
	}

	n, err := d.deleter.DeleteResponsesBySurvey(ctx, surveyID)
	if err != nil {
		return err
	}
	log.Printf("[jobs] purged %d responses inline survey=%s", n, surveyID.Hex())
	return nil
}
