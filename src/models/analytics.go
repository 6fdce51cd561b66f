package models

// SurveySummary ผลสรุปของแบบสอบถามสำหรับเจ้าของ
type SurveySummary struct {
	SurveyID       string            `json:"surveyId"`
	Title          string            `json:"title"`
	TotalResponses int               `json:"totalResponses"`
	Questions      []QuestionSummary `json:"questions"`
}

// QuestionSummary carries exactly one of Text, Choice or Scale, matching Type.
type QuestionSummary struct {
	QuestionID string         `json:"questionId"`
	Type       QuestionType   `json:"type"`
	Title      string         `json:"title"`
	Answered   int            `json:"answered"`
	Text       *TextSummary   `json:"text,omitempty"`
	Choice     *ChoiceSummary `json:"choice,omitempty"`
	Scale      *ScaleSummary  `json:"scale,omitempty"`
}

type TextSummary struct {
	Values []string `json:"values"`
}

// ChoiceSummary counts in option declaration order.
type ChoiceSummary struct {
	Counts []OptionCount `json:"counts"`
}

type OptionCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

// ScaleSummary nil Average/Min/Max means no numeric answers.
type ScaleSummary struct {
	Average      *float64      `json:"average"`
	Min          *float64      `json:"min"`
	Max          *float64      `json:"max"`
	Distribution []ScaleBucket `json:"distribution"`
}

type ScaleBucket struct {
	Value int `json:"value"`
	Count int `json:"count"`
}
