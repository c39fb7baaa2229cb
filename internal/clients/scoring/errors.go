package scoring

import (
	"encoding/json"
	"fmt"
)

// genericFailureMessage is shown when an error payload matches neither
// documented shape.
const genericFailureMessage = "Analysis failed"

// ConnectivityError means the scoring service could not be reached at all:
// transport failure, DNS, or client-side timeout. Retrying later may help.
type ConnectivityError struct {
	Endpoint string
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("scoring service unreachable (%s): %v", e.Endpoint, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// ServiceError means the scoring service responded with a structured failure.
// Detail is extracted from the payload and is safe to show verbatim.
type ServiceError struct {
	Endpoint   string
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("scoring service error (%s, status %d): %s", e.Endpoint, e.StatusCode, e.Detail)
}

// DataError means the scoring service claimed success but the payload failed
// basic shape expectations. Surfaced with a generic message rather than the
// raw payload.
type DataError struct {
	Endpoint string
	Reason   string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("scoring service returned unusable data (%s): %s", e.Endpoint, e.Reason)
}

// errorPayload models the two documented error body shapes:
// {"detail": "msg"} and {"detail": [{"msg": "..."}]}.
type errorPayload struct {
	Detail json.RawMessage `json:"detail"`
}

// extractDetail pulls a single display string out of an error body,
// defaulting to a generic message when neither shape matches.
func extractDetail(body []byte) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return genericFailureMessage
	}

	var asString string
	if err := json.Unmarshal(payload.Detail, &asString); err == nil && asString != "" {
		return asString
	}

	var asList []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &asList); err == nil && len(asList) > 0 && asList[0].Msg != "" {
		return asList[0].Msg
	}

	return genericFailureMessage
}
