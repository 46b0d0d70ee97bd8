package event

import "encoding/json"

// DecodePayload returns input as T, converting through JSON when the payload
// arrived serialized instead of as the original struct
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
