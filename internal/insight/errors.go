package insight

import "errors"

var (
	// ErrNoCredential indicates no API key was supplied.
	ErrNoCredential = errors.New("ai api key not configured")

	// ErrUpstream indicates the AI service could not be reached or rejected the call.
	ErrUpstream = errors.New("ai service request failed")

	// ErrInvalidResponse indicates the AI service answered with an unusable body.
	ErrInvalidResponse = errors.New("invalid ai response")

	// ErrBusy indicates a summary is already being generated.
	ErrBusy = errors.New("analysis already in progress")
)

// Messages substituted for the insight text. Callers show these verbatim.
const (
	MsgMissingKey = "Please configure your API key to get AI insights."
	MsgFailed     = "Unable to generate insights right now. Please try again later."
	MsgBusy       = "An analysis is already running. Please wait for it to finish."
)
