package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypePurgeResponses = "survey:purge-responses"

type PurgeResponsesPayload struct {
	SurveyID string `json:"survey_id"`
}

func NewPurgeResponsesTask(surveyID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeResponsesPayload{SurveyID: surveyID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurgeResponses, payload), nil
}
