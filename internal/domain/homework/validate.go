package homework

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseResponse decodes and shape-checks a raw API payload. Validation is
// strict and fails closed: the remote API is the only untrusted input in
// the system, so any deviation from the two expected fields is rejected
// rather than coerced.
func ParseResponse(body []byte) (*Response, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseNotObject, err)
	}

	rawHomeworks, ok := root["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: field is absent", ErrHomeworksNotList)
	}
	if string(bytes.TrimSpace(rawHomeworks)) == "null" {
		return nil, fmt.Errorf("%w: field is null", ErrHomeworksNotList)
	}
	var homeworks []Homework
	if err := json.Unmarshal(rawHomeworks, &homeworks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHomeworksNotList, err)
	}

	var currentDate int64
	if err := json.Unmarshal(root["current_date"], &currentDate); err != nil {
		return nil, fmt.Errorf("invalid current_date field: %v", err)
	}

	return &Response{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

// CheckResponse applies the no-change rule: an empty homeworks list means
// nothing happened since the last poll, a benign condition rather than a
// fault. On success the list is returned unchanged.
func CheckResponse(resp *Response) ([]Homework, error) {
	if len(resp.Homeworks) == 0 {
		return nil, ErrNoStatusChange
	}
	return resp.Homeworks, nil
}
