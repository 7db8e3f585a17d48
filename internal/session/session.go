// Package session implements the conversational session: one in-memory
// conversation bound to a model endpoint and an immutable tool registry.
//
// A session accepts one turn at a time. Each turn runs the model ↔ tool
// iteration loop under a hard deadline; tool failures degrade into text the
// model can reason over, and only endpoint-level faults or the deadline end
// a turn early. History is committed only when a turn completes, so a failed
// turn leaves the conversation state exactly as it was.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/geonet-ai/geonet/internal/schema"
	"github.com/geonet-ai/geonet/internal/shared/llmutils"
	"github.com/geonet-ai/geonet/internal/tools"
)

// Settings holds per-session model parameters.
type Settings struct {
	Model        string
	MaxTokens    int
	Temperature  float64
	MaxToolIter  int
	MemoryWindow int
}

// exhaustedReply is returned when the model keeps requesting tools past the
// iteration bound without producing a final answer.
const exhaustedReply = "I've reached the maximum number of tool iterations without a final answer."

// Session wraps one ongoing conversation.
type Session struct {
	provider   schema.LLMProvider
	registry   *tools.Registry
	dispatcher *tools.Dispatcher
	system     string
	settings   Settings

	busy    atomic.Bool // at most one in-flight turn
	mu      sync.Mutex  // guards history
	history schema.Messages
}

// New creates a session over the given endpoint with an immutable registry
// and system instruction.
func New(provider schema.LLMProvider, registry *tools.Registry, systemInstruction string, settings Settings) *Session {
	if settings.Model == "" {
		settings.Model = provider.DefaultModel()
	}
	if settings.MaxToolIter <= 0 {
		settings.MaxToolIter = 10
	}
	return &Session{
		provider:   provider,
		registry:   registry,
		dispatcher: tools.NewDispatcher(registry),
		system:     systemInstruction,
		settings:   settings,
		history:    schema.NewMessages(),
	}
}

// Converse runs one conversational turn and returns the final reply.
//
// The timeout is a hard ceiling on the whole turn, covering every model call
// and tool lookup; on expiry Converse returns TimeoutError and abandons the
// in-flight operation via context cancellation. Concurrent calls are
// rejected with ErrTurnInProgress rather than interleaved.
func (s *Session) Converse(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return "", ErrTurnInProgress
	}
	defer s.busy.Store(false)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reply, err := s.runTurn(ctx, s.snapshot(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{Timeout: timeout}
		}
		return "", err
	}

	s.commit(prompt, reply)
	return reply, nil
}

// runTurn drives the model ↔ tool loop over a working copy of the
// conversation. It never mutates s.history.
func (s *Session) runTurn(ctx context.Context, conversation schema.Messages) (string, error) {
	defs := s.registry.Definitions()
	opts := schema.NewChatOptions(s.settings.Model, s.settings.MaxTokens, s.settings.Temperature)

	for i := 0; i < s.settings.MaxToolIter; i++ {
		resp, err := s.provider.Chat(ctx, conversation, defs, opts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			return "", &FaultError{Err: err}
		}

		if !resp.HasToolCalls() {
			content := ""
			if resp.Content != nil {
				content = *resp.Content
			}
			return llmutils.StripThink(content), nil
		}

		var toolCalls []schema.ToolCall
		for _, tc := range resp.ToolCalls {
			toolCalls = append(toolCalls, schema.ToolCall{ID: tc.Id, Name: tc.Name, Arguments: tc.Arguments})
		}
		conversation.AddAssistant(resp.Content, toolCalls)

		// Dispatch sequentially, in the order the model issued the calls;
		// each result is fed back before the next model iteration.
		for _, tc := range resp.ToolCalls {
			slog.Info("Tool call", "name", tc.Name, "hint", llmutils.ToolHint([]schema.ToolCallRequest{tc}))

			result, err := s.dispatcher.Dispatch(ctx, schema.InvocationRequest{
				ToolName:     tc.Name,
				RawArguments: tc.Arguments,
			})
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return "", ctxErr
				}
				// Degrade to text: the model decides how to recover.
				slog.Warn("Tool failed", "name", tc.Name, "err", err)
				result = "Error: " + err.Error()
			}
			conversation.AddToolResult(tc.Id, tc.Name, result)
		}
	}

	return exhaustedReply, nil
}

// snapshot builds the working conversation for one turn: system instruction,
// the windowed history, then the new user prompt.
func (s *Session) snapshot(prompt string) schema.Messages {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation := schema.NewMessages()
	if s.system != "" {
		conversation.AddSystem(s.system)
	}

	msgs := s.history.Messages
	if w := s.settings.MemoryWindow; w > 0 && len(msgs) > w {
		msgs = msgs[len(msgs)-w:]
	}
	conversation.Messages = append(conversation.Messages, msgs...)

	conversation.AddUser(prompt)
	return conversation
}

// commit records a completed turn in the durable history.
func (s *Session) commit(prompt, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.AddUser(prompt)
	r := reply
	s.history.AddAssistant(&r, nil)
}

// History returns a copy of the committed conversation history.
func (s *Session) History() schema.Messages {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Clone()
}

// Reset clears the conversation history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = schema.NewMessages()
}
