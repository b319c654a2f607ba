package domain

// Role tags one side of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a conversation's history. Turns are
// immutable once appended; their order is the conversation timeline.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
