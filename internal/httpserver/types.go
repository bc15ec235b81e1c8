package httpserver

import "roa-expert-system/internal/model"

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse is the body of a successful /ask or direct-route call.
// Articles is present only when the news handler populated auxiliary
// data for the run.
type AskResponse struct {
	Response  string           `json:"response"`
	TimeTaken string           `json:"time_taken"`
	Articles  []model.Headline `json:"articles,omitempty"`
}

// ErrorResponse is the body of a failed /ask call.
type ErrorResponse struct {
	Error string `json:"error"`
}
