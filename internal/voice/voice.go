// Package voice dispatches spoken coaching cues through an injected Speaker.
// A small two-state arbiter (idle/speaking) decides whether a cue plays:
// high-priority cues interrupt whatever is playing, normal-priority cues are
// dropped while something else is speaking.
package voice

import (
	"math/rand"
	"strconv"
	"sync"
)

// Priority of a spoken cue.
type Priority int

const (
	Normal Priority = iota
	High
)

// Speaker produces audio for a line of text. Speak blocks until the line has
// finished playing (or fails); Stop cancels any in-flight line.
type Speaker interface {
	Speak(text string) error
	Stop()
}

// Coach arbitrates cue dispatch. Speech runs on its own goroutine so the
// session timer never waits on audio; everything else in this package is
// guarded by the mutex.
type Coach struct {
	mu        sync.Mutex
	speaker   Speaker
	enabled   bool
	supported bool
	speaking  bool
	// gen identifies the utterance that owns the speaking flag. A goroutine
	// whose line was interrupted or cancelled finishes with a stale gen and
	// must leave the arbiter state alone.
	gen uint64
}

// New creates a Coach around the given speaker. A nil speaker yields a coach
// that is permanently unsupported and silently drops every cue.
func New(speaker Speaker) *Coach {
	return &Coach{
		speaker:   speaker,
		enabled:   true,
		supported: speaker != nil,
	}
}

// Say dispatches one line at the given priority. Errors from the speaker are
// recovered locally: the coach flips to unsupported and goes silent.
func (c *Coach) Say(text string, priority Priority) {
	c.mu.Lock()
	if !c.supported || !c.enabled {
		c.mu.Unlock()
		return
	}
	if c.speaking {
		if priority == Normal {
			c.mu.Unlock()
			return
		}
		c.speaker.Stop()
	}
	c.gen++
	id := c.gen
	c.speaking = true
	c.mu.Unlock()

	go func() {
		err := c.speaker.Speak(text)
		c.mu.Lock()
		if id == c.gen {
			c.speaking = false
			if err != nil {
				c.supported = false
			}
		}
		c.mu.Unlock()
	}()
}

// Stop cancels any in-flight speech immediately.
func (c *Coach) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.supported {
		return
	}
	c.speaker.Stop()
	c.speaking = false
	c.gen++
}

// Toggle flips the enabled flag and returns the new value. Disabling stops
// any in-flight speech.
func (c *Coach) Toggle() bool {
	c.mu.Lock()
	enabled := !c.enabled
	c.enabled = enabled
	stop := !enabled && c.speaking && c.supported
	if stop {
		c.speaker.Stop()
		c.speaking = false
		c.gen++
	}
	c.mu.Unlock()
	return enabled
}

// Enabled reports whether cue dispatch is on.
func (c *Coach) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Supported reports whether the speaker is still usable.
func (c *Coach) Supported() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.supported
}

// Speaking reports whether a line is currently playing.
func (c *Coach) Speaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

// Workout cue helpers, mirroring what the session engine needs.

func (c *Coach) StartWorkout() {
	c.Say("Let's begin your workout! Remember to maintain proper form throughout.", High)
}

func (c *Coach) StartExercise(name string) {
	c.Say("Starting "+name+". Focus on your form!", High)
}

func (c *Coach) Countdown(seconds int) {
	if seconds >= 1 && seconds <= 3 {
		c.Say(strconv.Itoa(seconds), High)
	}
}

func (c *Coach) Rest(seconds int) {
	c.Say("Take a "+strconv.Itoa(seconds)+" second rest. Stay hydrated!", High)
}

func (c *Coach) Halfway() {
	c.Say("You're halfway through! Keep pushing!", Normal)
}

func (c *Coach) NextExercise(name string) {
	c.Say("Next up: "+name+". Get ready!", High)
}

func (c *Coach) WorkoutComplete() {
	c.Say("Excellent work! You've completed your workout. Great job today!", High)
}

var encouragements = []string{
	"Great form! Keep it up!",
	"You're doing amazing!",
	"Stay strong! Push through!",
	"Perfect execution!",
	"Feel that burn! You've got this!",
}

func (c *Coach) Encouragement() {
	c.Say(encouragements[rand.Intn(len(encouragements))], Normal)
}
