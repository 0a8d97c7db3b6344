package voice

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/jmajeed/juno/internal/ports"
)

// CommandSpeaker voices text through a speech synthesis command (espeak on
// Linux, say on macOS). Availability is probed once at construction.
type CommandSpeaker struct {
	binary string
}

// NewCommandSpeaker locates a speech command. The second return is false
// when none is installed; callers should fall back to an EchoSpeaker.
func NewCommandSpeaker() (*CommandSpeaker, bool) {
	candidates := []string{"espeak-ng", "espeak"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"say"}
	}
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return &CommandSpeaker{binary: path}, true
		}
	}
	return nil, false
}

// Say implements ports.Speaker.
func (s *CommandSpeaker) Say(text string) error {
	if text == "" {
		return nil
	}
	if err := exec.Command(s.binary, text).Run(); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}

// EchoSpeaker prints messages instead of voicing them. It is the default
// for one-shot commands and the fallback when no speech command exists.
type EchoSpeaker struct {
	W io.Writer
}

// Say implements ports.Speaker.
func (s EchoSpeaker) Say(text string) error {
	_, err := fmt.Fprintln(s.W, text)
	return err
}

var _ ports.Speaker = (*CommandSpeaker)(nil)
var _ ports.Speaker = EchoSpeaker{}
