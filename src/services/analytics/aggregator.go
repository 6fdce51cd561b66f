package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"survey-backend/src/models"
)

// Aggregate summarizes every response of a survey, question by question in
// survey order. Responses are walked in submission order, so text answers
// come out chronologically and the result does not depend on the order the
// slice was given in.
//
// Choice questions count declared options only; votes for labels that are
// no longer options are ignored. When a label is declared twice the first
// entry receives the vote. Scale questions accept numbers and numeric
// strings; anything else is left out of average, min, max and distribution.
func Aggregate(survey *models.Survey, responses []models.Response) models.SurveySummary {
	acc := make([]*questionAcc, len(survey.Questions))
	index := make(map[string]int, len(survey.Questions))
	for i, q := range survey.Questions {
		acc[i] = newQuestionAcc(q)
		index[q.ID] = i
	}

	for _, r := range inSubmissionOrder(responses) {
		counted := make(map[int]bool, len(r.Answers))
		for _, a := range r.Answers {
			i, ok := index[a.QuestionID]
			if !ok || counted[i] {
				continue
			}
			if acc[i].add(a.Value) {
				counted[i] = true
			}
		}
	}

	out := models.SurveySummary{
		SurveyID:       survey.ID.Hex(),
		Title:          survey.Title,
		TotalResponses: len(responses),
		Questions:      make([]models.QuestionSummary, 0, len(acc)),
	}
	for _, a := range acc {
		out.Questions = append(out.Questions, a.summary())
	}
	return out
}

func inSubmissionOrder(responses []models.Response) []models.Response {
	sorted := append([]models.Response(nil), responses...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.SubmittedAt.Equal(b.SubmittedAt) {
			return a.SubmittedAt.Before(b.SubmittedAt)
		}
		return a.ID.Hex() < b.ID.Hex()
	})
	return sorted
}

type questionAcc struct {
	q        models.Question
	answered int

	texts []string

	counts []int

	lo, hi   int
	buckets  []int
	n        int
	sum      float64
	min, max float64
}

func newQuestionAcc(q models.Question) *questionAcc {
	a := &questionAcc{q: q}
	switch {
	case q.Type.IsText():
		a.texts = []string{}
	case q.Type.IsChoice():
		a.counts = make([]int, len(q.Options))
	case q.Type == models.Scale:
		a.lo, a.hi = q.Bounds()
		// stored surveys may predate the span limit; no distribution then
		if models.ScaleSpanOK(a.lo, a.hi) {
			a.buckets = make([]int, a.hi-a.lo+1)
		}
	}
	return a
}

// add folds one answer in and reports whether it contributed.
func (a *questionAcc) add(v models.AnswerValue) bool {
	switch a.q.Type {
	case models.ShortText, models.LongText:
		if v.Kind != models.TextValue || v.IsEmpty() {
			return false
		}
		a.texts = append(a.texts, v.Text)
	case models.SingleChoice:
		if v.Kind != models.TextValue || !a.vote(v.Text) {
			return false
		}
	case models.MultiChoice:
		if v.Kind != models.ChoicesValue {
			return false
		}
		hit := false
		for _, c := range v.Choices {
			if a.vote(c) {
				hit = true
			}
		}
		if !hit {
			return false
		}
	case models.Scale:
		n, ok := numeric(v)
		if !ok {
			return false
		}
		a.addNumber(n)
	default:
		return false
	}
	a.answered++
	return true
}

func (a *questionAcc) vote(label string) bool {
	for i, o := range a.q.Options {
		if o == label {
			a.counts[i]++
			return true
		}
	}
	return false
}

func (a *questionAcc) addNumber(n float64) {
	if a.n == 0 || n < a.min {
		a.min = n
	}
	if a.n == 0 || n > a.max {
		a.max = n
	}
	a.n++
	a.sum += n
	if n != math.Trunc(n) || n < float64(a.lo) || n > float64(a.hi) {
		return
	}
	if i := int(n) - a.lo; i >= 0 && i < len(a.buckets) {
		a.buckets[i]++
	}
}

func (a *questionAcc) summary() models.QuestionSummary {
	s := models.QuestionSummary{
		QuestionID: a.q.ID,
		Type:       a.q.Type,
		Title:      a.q.Title,
		Answered:   a.answered,
	}
	switch {
	case a.q.Type.IsText():
		s.Text = &models.TextSummary{Values: a.texts}
	case a.q.Type.IsChoice():
		counts := make([]models.OptionCount, len(a.q.Options))
		for i, o := range a.q.Options {
			counts[i] = models.OptionCount{Option: o, Count: a.counts[i]}
		}
		s.Choice = &models.ChoiceSummary{Counts: counts}
	case a.q.Type == models.Scale:
		dist := make([]models.ScaleBucket, len(a.buckets))
		for i, c := range a.buckets {
			dist[i] = models.ScaleBucket{Value: a.lo + i, Count: c}
		}
		scale := &models.ScaleSummary{Distribution: dist}
		if a.n > 0 {
			avg := math.Round(a.sum/float64(a.n)*100) / 100
			lo, hi := a.min, a.max
			scale.Average, scale.Min, scale.Max = &avg, &lo, &hi
		}
		s.Scale = scale
	}
	return s
}

// numeric accepts numbers and strings holding a finite number.
func numeric(v models.AnswerValue) (float64, bool) {
	var n float64
	switch v.Kind {
	case models.NumberValue:
		n = v.Number
	case models.TextValue:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
