package main

import (
	"os/exec"
	"strings"
	"sync"
)

// execSpeaker shells out to a text-to-speech command (espeak, say, spd-say).
// One utterance runs at a time; Stop kills the current one. A kill is a
// normal interruption, not a speaker failure, so Speak reports nil for it.
type execSpeaker struct {
	command string
	args    []string

	mu     sync.Mutex
	cmd    *exec.Cmd
	killed bool
}

func newExecSpeaker(command string) (*execSpeaker, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, exec.ErrNotFound
	}
	if _, err := exec.LookPath(parts[0]); err != nil {
		return nil, err
	}
	return &execSpeaker{command: parts[0], args: parts[1:]}, nil
}

func (s *execSpeaker) Speak(text string) error {
	s.mu.Lock()
	cmd := exec.Command(s.command, append(s.args, text)...)
	if err := cmd.Start(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cmd = cmd
	s.killed = false
	s.mu.Unlock()

	err := cmd.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == cmd {
		s.cmd = nil
	}
	if s.killed {
		return nil
	}
	return err
}

func (s *execSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd != nil && s.cmd.Process != nil {
		s.killed = true
		_ = s.cmd.Process.Kill()
	}
}
