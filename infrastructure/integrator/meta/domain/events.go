package metadomain

// EventsResponse é a resposta do POST /<pixel_id>/events
type EventsResponse struct {
	EventsReceived int      `json:"events_received"`
	Messages       []string `json:"messages"`
	FBTraceID      string   `json:"fbtrace_id"`
}
