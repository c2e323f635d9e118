package tutor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNullReply = errors.New("reply is JSON null")

// Validator checks the shape of a decoded reply.
type Validator interface {
	Struct(s any) error
}

// Reply is a normalized provider reply.
// Value holds every field of T that decoded. Raw holds the accepted reply
// itself and is what gets encoded, so fields of an unexpected type or name
// reach HTTP clients unchanged. A fallback has no Raw.
type Reply[T any] struct {
	Value T
	Raw   json.RawMessage
}

func (r Reply[T]) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	return json.Marshal(r.Value)
}

// Normalize decodes a raw provider reply.
// Whenever callErr is set or the reply is not JSON, fallback is returned
// together with the reason. The reason is meant for logs only.
// A nil v accepts any JSON reply, keeping the fields that match T in Value
// even when others have a different type. A non-nil v also rejects type
// mismatches and anything v rejects.
func Normalize[T any](raw string, callErr error, fallback T, v Validator) (Reply[T], error) {
	fallbackReply := Reply[T]{Value: fallback}
	if callErr != nil {
		return fallbackReply, callErr
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, []byte(raw)); err != nil {
		return fallbackReply, fmt.Errorf("json.Compact(%s) > %w", raw, err)
	}
	if bytes.Equal(compacted.Bytes(), []byte("null")) {
		return fallbackReply, errNullReply
	}

	var decoded T
	if err := json.Unmarshal(compacted.Bytes(), &decoded); err != nil {
		var typeErr *json.UnmarshalTypeError
		if v != nil || !errors.As(err, &typeErr) {
			return fallbackReply, fmt.Errorf("json.Unmarshal(%s) > %w", raw, err)
		}
	}

	if v != nil {
		if err := v.Struct(decoded); err != nil {
			return fallbackReply, fmt.Errorf("unexpected reply shape: %w", err)
		}
	}
	return Reply[T]{Value: decoded, Raw: compacted.Bytes()}, nil
}
