// Package session drives the strict request/response loop: wait for the
// wake phrase, capture one utterance, classify, dispatch, return to waiting.
// Only one session runs at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

var exitWords = map[string]struct{}{
	"exit": {}, "quit": {}, "goodbye": {}, "bye": {}, "stop": {},
}

// Service owns the main loop.
type Service struct {
	Config     domain.Config
	Listener   ports.Listener
	Speaker    ports.Speaker
	Classifier ports.Classifier
	Dispatcher ports.Dispatcher
	Logger     ports.Logger
}

// Run blocks until the user asks to exit or ctx is cancelled. Both end the
// loop cleanly; cancellation is honored at the top of the loop and inside
// either blocking wait.
func (s *Service) Run(ctx context.Context) error {
	wake := strings.ToLower(s.Config.Assistant.WakeWord)
	s.say(fmt.Sprintf("Hello! I am %s, your voice assistant. Say '%s' to activate me.",
		s.Config.Assistant.Name, wake))

	for {
		if err := ctx.Err(); err != nil {
			s.Logger.Info("session loop interrupted", nil)
			return nil
		}

		heard, err := s.Listener.Listen(ctx,
			seconds(s.Config.Listening.WakeTimeoutSeconds),
			seconds(s.Config.Listening.WakePhraseSeconds))
		if err != nil {
			if stopListening(err) {
				return nil
			}
			s.Logger.Warn("wake listen failed", map[string]interface{}{"error": err.Error()})
			continue
		}
		if heard == "" || !strings.Contains(strings.ToLower(heard), wake) {
			continue
		}

		if done := s.handleCommand(ctx); done {
			return nil
		}
	}
}

// handleCommand runs one activated session. It returns true when the loop
// should end.
func (s *Service) handleCommand(ctx context.Context) bool {
	id := uuid.NewString()
	s.say("Yes, I'm listening. How can I help you?")

	command, err := s.Listener.Listen(ctx,
		seconds(s.Config.Listening.CommandTimeoutSeconds),
		seconds(s.Config.Listening.CommandPhraseSeconds))
	if err != nil {
		if stopListening(err) {
			return true
		}
		s.Logger.Warn("command listen failed", map[string]interface{}{"session": id, "error": err.Error()})
		return false
	}
	if command == "" {
		s.say("I didn't catch that. Could you please repeat?")
		return false
	}

	if _, ok := exitWords[strings.TrimSpace(strings.ToLower(command))]; ok {
		s.say("Goodbye! Have a great day!")
		return true
	}

	s.Logger.Info("processing command", map[string]interface{}{"session": id, "command": command})
	result := s.Classifier.Classify(ctx, command)
	ok := s.Dispatcher.Dispatch(ctx, result, command)
	s.Logger.Info("session finished", map[string]interface{}{
		"session": id,
		"intent":  string(result.Intent),
		"action":  result.Action,
		"success": ok,
	})
	return false
}

func (s *Service) say(text string) {
	if err := s.Speaker.Say(text); err != nil {
		s.Logger.Warn("speech output failed", map[string]interface{}{"error": err.Error()})
	}
}

// stopListening reports whether the listener error means the loop should
// shut down rather than retry.
func stopListening(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
