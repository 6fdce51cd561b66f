package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockDeleter struct{ mock.Mock }

func (m *mockDeleter) DeleteResponsesBySurvey(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockQueue struct{ mock.Mock }

func (m *mockQueue) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if v, ok := args.Get(0).(*asynq.TaskInfo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestPurgeResponsesTask(t *testing.T) {
	id := primitive.NewObjectID()

	task, err := NewPurgeResponsesTask(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, TypePurgeResponses, task.Type())

	var payload PurgeResponsesPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, id.Hex(), payload.SurveyID)
}

func TestHandlePurgeResponsesTask(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("TestDeletes", func(t *testing.T) {
		d := new(mockDeleter)
		d.On("DeleteResponsesBySurvey", ctx, id).Return(int64(4), nil)
		task, _ := NewPurgeResponsesTask(id.Hex())

		assert.NoError(t, HandlePurgeResponsesTask(d)(ctx, task))
		d.AssertExpectations(t)
	})

	t.Run("TestDeleteErrorRetries", func(t *testing.T) {
		d := new(mockDeleter)
		d.On("DeleteResponsesBySurvey", ctx, id).Return(int64(0), errors.New("mongo down"))
		task, _ := NewPurgeResponsesTask(id.Hex())

		err := HandlePurgeResponsesTask(d)(ctx, task)
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("TestBadPayloadSkipsRetry", func(t *testing.T) {
		d := new(mockDeleter)
		for _, payload := range [][]byte{[]byte("{"), []byte(`{"survey_id":"nope"}`)} {
			err := HandlePurgeResponsesTask(d)(ctx, asynq.NewTask(TypePurgeResponses, payload))
			assert.ErrorIs(t, err, asynq.SkipRetry)
		}
		d.AssertNotCalled(t, "DeleteResponsesBySurvey", mock.Anything, mock.Anything)
	})
}

func TestDispatcher(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	isPurge := mock.MatchedBy(func(task *asynq.Task) bool { return task.Type() == TypePurgeResponses })

	t.Run("TestEnqueues", func(t *testing.T) {
		q, d := new(mockQueue), new(mockDeleter)
		q.On("EnqueueContext", ctx, isPurge).Return(&asynq.TaskInfo{ID: "t1"}, nil)

		require.NoError(t, NewDispatcher(q, d).PurgeResponses(ctx, id))
		q.AssertExpectations(t)
		d.AssertNotCalled(t, "DeleteResponsesBySurvey", mock.Anything, mock.Anything)
	})

	t.Run("TestEnqueueFailureRunsInline", func(t *testing.T) {
		q, d := new(mockQueue), new(mockDeleter)
		q.On("EnqueueContext", ctx, isPurge).Return(nil, errors.New("redis down"))
		d.On("DeleteResponsesBySurvey", ctx, id).Return(int64(2), nil)

		require.NoError(t, NewDispatcher(q, d).PurgeResponses(ctx, id))
		d.AssertExpectations(t)
	})

	t.Run("TestNoQueueRunsInline", func(t *testing.T) {
		d := new(mockDeleter)
		d.On("DeleteResponsesBySurvey", ctx, id).Return(int64(0), nil)

		require.NoError(t, NewDispatcher(nil, d).PurgeResponses(ctx, id))
		d.AssertExpectations(t)
	})
}
