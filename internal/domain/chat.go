package domain

// Chatbot replies.
const (
	MessageFound    = "Aquí tienes algunas mediciones relacionadas."
	MessageNotFound = "No encontré mediciones con esa calificación."
)

// ChatResponse is the chatbot answer: a status line plus the matches.
type ChatResponse struct {
	Respuesta  string        `json:"respuesta"`
	Mediciones []Measurement `json:"mediciones"`
}

// NewChatResponse picks the status line for a result set.
func NewChatResponse(matches []Measurement) ChatResponse {
	if matches == nil {
		matches = []Measurement{}
	}
	msg := MessageNotFound
	if len(matches) > 0 {
		msg = MessageFound
	}
	return ChatResponse{Respuesta: msg, Mediciones: matches}
}
