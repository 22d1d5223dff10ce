// Package handlers implements the HTTP operations of the vinyl discovery API.
// Typed operations are registered on a huma.API; the liveness, readiness and
// RSS routes are plain echo handlers.
package handlers

// ErrorResponse is the standard error response body for echo routes.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
