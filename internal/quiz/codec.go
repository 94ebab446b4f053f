package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// questionJSON is the wire envelope of a question.
type questionJSON struct {
	ID      string          `json:"id"`
	Text    string          `json:"text"`
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalJSON encodes the question as {id, text, kind, payload}.
func (q Question) MarshalJSON() ([]byte, error) {
	var payload any = struct{}{}
	switch p := q.Payload.(type) {
	case nil:
	case UnsupportedPayload:
		if len(p.Raw) > 0 {
			payload = json.RawMessage(p.Raw)
		}
	default:
		payload = p
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload of %q: %w", q.ID, err)
	}
	return json.Marshal(questionJSON{
		ID:      q.ID,
		Text:    q.Text,
		Kind:    q.Kind,
		Payload: raw,
	})
}

// UnmarshalJSON decodes the envelope and picks the payload variant from
// the declared kind. Unknown kinds decode to UnsupportedPayload.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	payload, err := DecodePayload(w.Kind, w.Payload)
	if err != nil {
		return fmt.Errorf("question %q: %w", w.ID, err)
	}
	*q = Question{ID: w.ID, Text: w.Text, Kind: w.Kind, Payload: payload}
	return nil
}

// DecodePayload decodes raw into the payload variant for kind.
func DecodePayload(kind Kind, raw json.RawMessage) (Payload, error) {
	switch kind {
	case KindSingleChoice:
		var p SingleChoicePayload
		return p, decodeInto(raw, &p)
	case KindMultiChoice:
		var p MultiChoicePayload
		return p, decodeInto(raw, &p)
	case KindTrueFalse:
		var p TrueFalsePayload
		return p, decodeInto(raw, &p)
	case KindTextCompletion:
		var p TextCompletionPayload
		return p, decodeInto(raw, &p)
	case KindOrdering:
		var p OrderingPayload
		return p, decodeInto(raw, &p)
	case KindAssociation:
		var p AssociationPayload
		return p, decodeInto(raw, &p)
	default:
		return UnsupportedPayload{DeclaredKind: kind, Raw: bytes.Clone(raw)}, nil
	}
}

func decodeInto(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// responseJSON is the wire form of a response.
type responseJSON struct {
	QuestionID string          `json:"questionId"`
	Value      json.RawMessage `json:"value"`
}

// MarshalJSON encodes the response as {questionId, value}.
func (r Response) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(EncodeValue(r.Value))
	if err != nil {
		return nil, err
	}
	return json.Marshal(responseJSON{QuestionID: r.QuestionID, Value: raw})
}

// EncodeValue returns the plain JSON-friendly form of v: a string for
// single and text values, a list for set and sequence values, an object
// for mappings.
func EncodeValue(v Value) any {
	switch v := v.(type) {
	case SingleValue:
		return v.ID
	case SetValue:
		return nonNil(v.IDs)
	case TextValue:
		return v.Text
	case SequenceValue:
		return nonNil(v.IDs)
	case MappingValue:
		if v.Placements == nil {
			return map[string]string{}
		}
		return v.Placements
	}
	return nil
}

// DecodeValue decodes a raw value using the shape implied by kind.
func DecodeValue(kind Kind, raw json.RawMessage) (Value, error) {
	switch kind {
	case KindSingleChoice, KindTrueFalse:
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, fmt.Errorf("decode %s value: %w", kind, err)
		}
		return SingleValue{ID: id}, nil
	case KindMultiChoice:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, fmt.Errorf("decode %s value: %w", kind, err)
		}
		return SetValue{IDs: ids}, nil
	case KindTextCompletion:
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("decode %s value: %w", kind, err)
		}
		return TextValue{Text: text}, nil
	case KindOrdering:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, fmt.Errorf("decode %s value: %w", kind, err)
		}
		return SequenceValue{IDs: ids}, nil
	case KindAssociation:
		var placements map[string]string
		if err := json.Unmarshal(raw, &placements); err != nil {
			return nil, fmt.Errorf("decode %s value: %w", kind, err)
		}
		return MappingValue{Placements: placements}, nil
	}
	return nil, &UnsupportedKindError{Kind: kind}
}

// DecodeResponse decodes a {questionId, value} document for a question of
// the given kind.
func DecodeResponse(kind Kind, data []byte) (Response, error) {
	var w responseJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return Response{}, err
	}
	v, err := DecodeValue(kind, w.Value)
	if err != nil {
		return Response{}, fmt.Errorf("response for %q: %w", w.QuestionID, err)
	}
	return Response{QuestionID: w.QuestionID, Value: v}, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
