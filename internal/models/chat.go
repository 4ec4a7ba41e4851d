package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
	Blind   bool   `json:"blind"`
}

// ChatResponse is the reply from the assistant. Reply is never empty.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// BlindProcessRequest asks for an arbitrary text to be run through blind mode.
type BlindProcessRequest struct {
	Text string `json:"text"`
}

type BlindProcessResponse struct {
	BlindText string `json:"blindText"`
}
