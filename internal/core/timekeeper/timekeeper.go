package timekeeper

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"simpletimer/internal/core/model"
	"simpletimer/internal/logging"
)

// ErrUnknownMode indicates a mode other than timer or stopwatch.
var ErrUnknownMode = errors.New("unknown mode")

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Scheduler    Scheduler
}

type job struct {
	generation uint64
	cancel     func()
}

// TimeKeeper owns the widget state: mode, run state, input duration and counter.
// Every transition reconciles the scheduled jobs before it returns, so at most one
// tick job and one expiry job are ever live.
type TimeKeeper struct {
	mu         sync.Mutex
	options    Config
	mode       Mode
	runState   RunState
	input      Duration
	counter    int
	tickJob    *job
	expiryJob  *job
	generation uint64
	events     []chan Event
	closed     bool
}

// New creates a paused TimeKeeper with the provided configuration.
func New(config model.KeeperConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = config.TickInterval
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler{}
	}

	mode := Mode(config.DefaultMode)
	if !mode.Valid() {
		mode = ModeTimer
	}

	keeper := &TimeKeeper{
		options:  options,
		mode:     mode,
		runState: RunStatePaused,
		input: Duration{
			Hours:   config.Preset.Hours,
			Minutes: config.Preset.Minutes,
			Seconds: config.Preset.Seconds,
		}.Clamped(),
	}
	if mode == ModeTimer {
		keeper.counter = keeper.input.TotalSeconds()
	}

	keeper.mu.Lock()
	keeper.reconcileLocked()
	keeper.mu.Unlock()
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Toggle flips between paused and running.
// It reports false when nothing changed, e.g. a timer with no duration.
func (keeper *TimeKeeper) Toggle() bool {
	keeper.mu.Lock()
	running := keeper.runState == RunStateRunning
	keeper.mu.Unlock()

	if running {
		return keeper.Pause()
	}
	return keeper.Start()
}

// Start begins ticking. A timer with a zero duration cannot be started.
func (keeper *TimeKeeper) Start() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.runState == RunStateRunning {
		return false
	}
	if !keeper.snapshotLocked().StartEnabled() {
		logging.Debugf("timekeeper: start ignored, nothing to count down")
		return false
	}

	keeper.runState = RunStateRunning
	keeper.reconcileLocked()
	keeper.emitLocked(EventStateChange)
	return true
}

// Pause freezes the counter.
func (keeper *TimeKeeper) Pause() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.runState == RunStatePaused {
		return false
	}

	keeper.runState = RunStatePaused
	keeper.reconcileLocked()
	keeper.emitLocked(EventStateChange)
	return true
}

// Reset pauses and clears both the counter and the input duration.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	keeper.runState = RunStatePaused
	keeper.counter = 0
	keeper.input = Duration{}
	keeper.reconcileLocked()
	keeper.emitLocked(EventStateChange)
}

// SetMode switches between timer and stopwatch. The keeper is paused and the
// counter restarts from the full duration (timer) or from zero (stopwatch).
func (keeper *TimeKeeper) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return nil
	}

	keeper.mode = mode
	keeper.runState = RunStatePaused
	if mode == ModeTimer {
		keeper.counter = keeper.input.TotalSeconds()
	} else {
		keeper.counter = 0
	}
	keeper.reconcileLocked()
	keeper.emitLocked(EventStateChange)
	logging.Debugf("timekeeper: mode=%s counter=%d", mode, keeper.counter)
	return nil
}

// SetHours updates the hours field. Edits are ignored while running.
func (keeper *TimeKeeper) SetHours(hours int) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	input := keeper.input
	input.Hours = hours
	return keeper.setInputLocked(input)
}

// SetMinutes updates the minutes field. Edits are ignored while running.
func (keeper *TimeKeeper) SetMinutes(minutes int) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	input := keeper.input
	input.Minutes = minutes
	return keeper.setInputLocked(input)
}

// SetSeconds updates the seconds field. Edits are ignored while running.
func (keeper *TimeKeeper) SetSeconds(seconds int) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	input := keeper.input
	input.Seconds = seconds
	return keeper.setInputLocked(input)
}

// SetInput replaces all three duration fields at once.
func (keeper *TimeKeeper) SetInput(input Duration) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.setInputLocked(input)
}

// Close cancels all scheduled work and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.reconcileLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) setInputLocked(input Duration) bool {
	if keeper.closed || keeper.runState == RunStateRunning {
		return false
	}

	keeper.input = input.Clamped()
	if keeper.mode == ModeTimer {
		keeper.counter = keeper.input.TotalSeconds()
	}
	keeper.reconcileLocked()
	keeper.emitLocked(EventInput)
	return true
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.tickJob == nil || keeper.tickJob.generation != generation {
		return
	}

	switch keeper.mode {
	case ModeTimer:
		if keeper.counter == 0 {
			break
		}
		keeper.counter--
		keeper.emitLocked(EventTick)
		if keeper.counter == 0 {
			logging.Debugf("timekeeper: countdown complete")
			keeper.emitLocked(EventComplete)
		}
	case ModeStopwatch:
		keeper.counter++
		keeper.emitLocked(EventTick)
	}
	keeper.reconcileLocked()
}

// expire rearms a finished countdown: it pauses and restores the full duration.
func (keeper *TimeKeeper) expire(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.expiryJob == nil || keeper.expiryJob.generation != generation {
		return
	}

	total := keeper.input.TotalSeconds()
	changed := keeper.runState != RunStatePaused || keeper.counter != total
	keeper.runState = RunStatePaused
	keeper.counter = total
	keeper.reconcileLocked()
	if changed {
		keeper.emitLocked(EventStateChange)
	}
}

func (keeper *TimeKeeper) reconcileLocked() {
	wantTick := !keeper.closed &&
		keeper.runState == RunStateRunning &&
		(keeper.mode == ModeStopwatch || keeper.counter > 0)
	// A zero-length timer would rearm to zero, so it is not polled.
	wantExpiry := !keeper.closed &&
		keeper.mode == ModeTimer &&
		keeper.counter == 0 &&
		keeper.input.TotalSeconds() > 0

	keeper.tickJob = keeper.syncJobLocked(keeper.tickJob, wantTick, keeper.tick)
	keeper.expiryJob = keeper.syncJobLocked(keeper.expiryJob, wantExpiry, keeper.expire)
}

func (keeper *TimeKeeper) syncJobLocked(current *job, want bool, run func(uint64)) *job {
	if want == (current != nil) {
		return current
	}
	if current != nil {
		current.cancel()
		return nil
	}

	keeper.generation++
	generation := keeper.generation
	cancel := keeper.options.Scheduler.Every(keeper.options.TickInterval, func() {
		run(generation)
	})
	return &job{generation: generation, cancel: cancel}
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:     keeper.mode,
		RunState: keeper.runState,
		Input:    keeper.input,
		Counter:  keeper.counter,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(),
		At:       time.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
