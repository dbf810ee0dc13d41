package notify

import (
	"log"
	"sync"
	"time"

	"simpletimer/internal/core/timekeeper"
)

// DefaultMessage is shown when a countdown finishes.
const DefaultMessage = "Timer done!"

// Notice is a single user-visible message.
type Notice struct {
	Title   string
	Message string
	At      time.Time
}

// Sink delivers a notice. Implementations must not block.
type Sink interface {
	Notify(notice Notice) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(notice Notice) error

// Notify implements Sink.
func (fn SinkFunc) Notify(notice Notice) error {
	return fn(notice)
}

// Notifier fans a "countdown complete" notice out to every sink.
type Notifier struct {
	mu      sync.Mutex
	title   string
	message string
	sinks   []Sink
}

// New creates a notifier with the given title and message.
func New(title, message string, sinks ...Sink) *Notifier {
	if message == "" {
		message = DefaultMessage
	}
	return &Notifier{
		title:   title,
		message: message,
		sinks:   append([]Sink(nil), sinks...),
	}
}

// Add registers another sink.
func (notifier *Notifier) Add(sink Sink) {
	if sink == nil {
		return
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.sinks = append(notifier.sinks, sink)
}

// SetMessage replaces the notice text.
func (notifier *Notifier) SetMessage(message string) {
	if message == "" {
		message = DefaultMessage
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.message = message
}

// Notify delivers one notice. A failing sink does not stop the others.
func (notifier *Notifier) Notify(at time.Time) Notice {
	notifier.mu.Lock()
	notice := Notice{Title: notifier.title, Message: notifier.message, At: at}
	sinks := append([]Sink(nil), notifier.sinks...)
	notifier.mu.Unlock()

	for _, sink := range sinks {
		if err := sink.Notify(notice); err != nil {
			log.Printf("notify: %v", err)
		}
	}
	return notice
}

// Watch notifies once per completed countdown until events is closed.
// Sinks run off the watch loop so a slow sink never stalls the channel.
func (notifier *Notifier) Watch(events <-chan timekeeper.Event) {
	var pending sync.WaitGroup
	for event := range events {
		if event.Type == timekeeper.EventComplete && event.Snapshot.Mode == timekeeper.ModeTimer {
			pending.Add(1)
			go func(at time.Time) {
				defer pending.Done()
				notifier.Notify(at)
			}(event.At)
		}
	}
	pending.Wait()
}
