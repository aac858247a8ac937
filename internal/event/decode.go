package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process payloads are already T;
// payloads that came through JSON (redis, dead-letter replay) are converted.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
