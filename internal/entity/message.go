package entity

const (
	MessageTypeState = "state"
	MessageTypeError = "error"
	MessageTypeStats = "stats"
)

// Message is an outbound envelope.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type PlayerStats struct {
	Wins   int64 `json:"wins"`
	Losses int64 `json:"losses"`
}

type Stats struct {
	TotalGamesPlayed int64                  `json:"totalGamesPlayed"`
	PlayerStats      map[string]PlayerStats `json:"playerStats"`
}

func NewStateMessage(snapshot *Snapshot) *Message {
	return &Message{Type: MessageTypeState, Payload: snapshot}
}

func NewErrorMessage(text string) *Message {
	return &Message{Type: MessageTypeError, Payload: ErrorPayload{Message: text}}
}

func NewStatsMessage(stats *Stats) *Message {
	return &Message{Type: MessageTypeStats, Payload: stats}
}
