package history

import (
	"chat-warden/internal/llm"
)

// Log is the append-only transcript of one conversation session. It is
// seeded with the system persona, owned by a single goroutine, and
// discarded when the session ends.
type Log struct {
	messages []llm.Message
}

func New(systemPrompt string) *Log {
	return &Log{messages: []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}}
}

func (l *Log) AppendUser(content string) {
	l.append(llm.Message{Role: llm.RoleUser, Content: content})
}

func (l *Log) AppendAssistant(content string) {
	l.append(llm.Message{Role: llm.RoleAssistant, Content: content})
}

func (l *Log) append(msg llm.Message) {
	l.messages = append(l.messages, msg)
}

// Messages returns a copy; mutating the result does not affect the log.
func (l *Log) Messages() []llm.Message {
	out := make([]llm.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *Log) Len() int {
	return len(l.messages)
}
