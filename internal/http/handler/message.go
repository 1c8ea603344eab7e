package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the envelope for errors and plain confirmations.
type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
