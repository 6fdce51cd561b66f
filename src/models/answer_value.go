package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ValueKind tags which member of AnswerValue is set.
type ValueKind int

const (
	NoValue ValueKind = iota
	TextValue
	ChoicesValue
	NumberValue
	// UnsupportedValue marks payloads that are none of the above
	// (objects, booleans, mixed arrays).
	UnsupportedValue
)

func (k ValueKind) String() string {
	switch k {
	case NoValue:
		return "empty"
	case TextValue:
		return "text"
	case ChoicesValue:
		return "list"
	case NumberValue:
		return "number"
	}
	return "unsupported"
}

// AnswerValue is a string, a list of strings or a number. On the wire and in
// Mongo it keeps the plain shape; Kind says which one was received.
type AnswerValue struct {
	Kind    ValueKind
	Text    string
	Choices []string
	Number  float64
}

func Text(s string) AnswerValue { return AnswerValue{Kind: TextValue, Text: s} }
func Choices(opts ...string) AnswerValue { return AnswerValue{Kind: ChoicesValue, Choices: opts} }
func Number(n float64) AnswerValue { return AnswerValue{Kind: NumberValue, Number: n} }

// IsEmpty reports whether the value counts as "not answered".
func (v AnswerValue) IsEmpty() bool {
	switch v.Kind {
	case NoValue:
		return true
	case TextValue:
		return strings.TrimSpace(v.Text) == ""
	case ChoicesValue:
		return len(v.Choices) == 0
	}
	return false
}

func (v AnswerValue) plain() interface{} {
	switch v.Kind {
	case TextValue:
		return v.Text
	case ChoicesValue:
		if v.Choices == nil {
			return []string{}
		}
		return v.Choices
	case NumberValue:
		return v.Number
	}
	return nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Kind == UnsupportedValue {
		return nil, fmt.Errorf("answer value: cannot encode %s value", v.Kind)
	}
	return json.Marshal(v.plain())
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = fromPlain(raw)
	return nil
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if v.Kind == UnsupportedValue {
		return 0, nil, fmt.Errorf("answer value: cannot encode %s value", v.Kind)
	}
	if v.Kind == NoValue {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(v.plain())
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*v = AnswerValue{}
	case bsontype.String:
		*v = Text(rv.StringValue())
	case bsontype.Double:
		*v = Number(rv.Double())
	case bsontype.Int32:
		*v = Number(float64(rv.Int32()))
	case bsontype.Int64:
		*v = Number(float64(rv.Int64()))
	case bsontype.Array:
		var items []interface{}
		if err := rv.Unmarshal(&items); err != nil {
			return err
		}
		*v = fromPlain(items)
	default:
		*v = AnswerValue{Kind: UnsupportedValue}
	}
	return nil
}

func fromPlain(raw interface{}) AnswerValue {
	switch x := raw.(type) {
	case nil:
		return AnswerValue{}
	case string:
		return Text(x)
	case float64:
		return Number(x)
	case []interface{}:
		opts := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return AnswerValue{Kind: UnsupportedValue}
			}
			opts = append(opts, s)
		}
		return Choices(opts...)
	}
	return AnswerValue{Kind: UnsupportedValue}
}
