package generator

import "time"

// CallEvent describes one backend invocation, successful or not.
type CallEvent struct {
	Provider    string
	Model       string
	PromptChars int
	// Response is nil when the call failed before producing one.
	Response  *Response
	Err       error
	Duration  time.Duration
	StartedAt time.Time
}

// Observer receives a notification after every backend call. The
// session implements this to keep its rolling debug log and last-raw-
// response snapshot current.
type Observer interface {
	OnGenerate(event CallEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event CallEvent)

// OnGenerate implements Observer.
func (f ObserverFunc) OnGenerate(event CallEvent) {
	f(event)
}

// notify dispatches an event to the configured observer, if any.
func (c Config) notify(event CallEvent) {
	if c.Observer != nil {
		c.Observer.OnGenerate(event)
	}
}
