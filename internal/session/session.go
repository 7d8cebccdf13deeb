// Package session drives the turn-by-turn conversation loop: read one user
// message, gate it, ask the completion service, gate the reply, display it.
package session

import (
	"context"
	"fmt"
	"strings"

	"chat-warden/internal/escalation"
	"chat-warden/internal/history"
	"chat-warden/internal/llm"
	"chat-warden/internal/moderation"
)

// BlockedPlaceholder replaces a flagged assistant reply in the transcript.
// The placeholder keeps the turn count accurate without letting blocked
// content leak into later completion requests.
const BlockedPlaceholder = "[Blocked content]"

const (
	blockedInputNotice  = "Assistant: [User content flagged by moderation. Not processed.]"
	blockedOutputNotice = "Assistant: [Model output flagged by moderation. Not displayed.]"
)

// Gate decides whether a text payload may pass.
type Gate interface {
	Check(ctx context.Context, text string) moderation.Verdict
}

// Recorder escalates flagged content. Its outcome never aborts the session.
type Recorder interface {
	Record(offendingText string) escalation.Outcome
}

type Session struct {
	console  Console
	gate     Gate
	client   llm.Client
	recorder Recorder
	history  *history.Log
}

func New(console Console, gate Gate, client llm.Client, recorder Recorder, systemPrompt string) *Session {
	return &Session{
		console:  console,
		gate:     gate,
		client:   client,
		recorder: recorder,
		history:  history.New(systemPrompt),
	}
}

// History exposes the transcript for inspection; the session stays its only
// writer.
func (s *Session) History() *history.Log {
	return s.history
}

// Run loops until the user exits, input ends, or the completion service
// fails. A completion failure is the only error path: moderation failures
// fail open and escalation failures are logged inside the recorder.
func (s *Session) Run(ctx context.Context) error {
	s.console.Print("\n=== Moderated Chatbot (user and model output are both checked) ===\n")
	s.console.Print("Type 'exit' or 'quit' to end the session.\n\n")

	for {
		s.console.Print("User: ")
		input, err := s.console.ReadLine()
		if err != nil {
			// End of input behaves like an explicit exit
			s.console.Print("Assistant: Goodbye!\n")
			return nil
		}
		if isExit(input) {
			s.console.Print("Assistant: Goodbye!\n")
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		if err := s.runTurn(ctx, input); err != nil {
			s.console.Print(fmt.Sprintf("Error: %v\n", err))
			return err
		}
	}
}

// runTurn handles one user message through either a block or a displayed
// reply. Only a completion-service failure is returned as an error.
func (s *Session) runTurn(ctx context.Context, input string) error {
	if s.gate.Check(ctx, input).Flagged {
		s.console.Print(blockedInputNotice + "\n")
		s.recorder.Record(input)
		return nil
	}
	s.history.AppendUser(input)

	resp, err := s.client.Generate(ctx, s.history.Messages())
	if err != nil {
		return fmt.Errorf("completion failed: %w", err)
	}
	reply := resp.Content

	if s.gate.Check(ctx, reply).Flagged {
		s.console.Print(blockedOutputNotice + "\n")
		s.history.AppendAssistant(BlockedPlaceholder)
		s.recorder.Record(reply)
		return nil
	}

	s.history.AppendAssistant(reply)
	s.console.Print(fmt.Sprintf("Assistant: %s\n\n", reply))
	return nil
}

func isExit(input string) bool {
	return strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit")
}
