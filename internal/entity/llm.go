package entity

// Role is the author of a prompt message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PromptMessage is a single rendered prompt entry.
type PromptMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is passed verbatim to an LLM connector.
type CompletionRequest struct {
	Messages []PromptMessage
	// JSONMode asks the provider to only ever emit a JSON object.
	JSONMode bool
}

// SystemPrompt returns the concatenated content of all system messages.
func (r *CompletionRequest) SystemPrompt() string {
	var out string
	for _, m := range r.Messages {
		if m.Role != RoleSystem {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += m.Content
	}
	return out
}

// UserPrompt returns the concatenated content of all non-system messages.
func (r *CompletionRequest) UserPrompt() string {
	var out string
	for _, m := range r.Messages {
		if m.Role == RoleSystem {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += m.Content
	}
	return out
}
