package timekeeper

import (
	"log"
	"sync"
	"time"

	"aurafocus/internal/core/model"
)

// Notifier shows completion notifications on behalf of the engine.
type Notifier interface {
	Notify(notification Notification) error
}

// StateSaver persists the restart-surviving part of the engine state.
type StateSaver interface {
	SaveState(state model.PersistedState) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	// TickInterval is one time unit; every tick counts as one second of countdown.
	TickInterval time.Duration
	// CompletionDelay is the pause between reaching zero and advancing to the next session.
	CompletionDelay time.Duration
	Scheduler       Scheduler
}

// TimeKeeper is the pomodoro session state machine.
type TimeKeeper struct {
	mu sync.Mutex
	// persistMu orders saves so the last write always carries the latest state.
	persistMu sync.Mutex
	options   Config
	config    model.TimerConfig
	phase     Phase
	session   model.SessionType
	remaining int
	total     int
	completed int

	// tick is non-nil exactly while phase is PhaseRunning.
	tick       Handle
	tickGen    uint64
	advance    Handle
	advanceGen uint64

	notifier Notifier
	saver    StateSaver
	events   []chan Event
	closed   bool
}

type effects struct {
	notification *Notification
	persist      bool
}

// New creates an idle TimeKeeper on the Focus session from persisted state.
func New(state model.PersistedState, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.CompletionDelay <= 0 {
		options.CompletionDelay = options.TickInterval
	}
	if options.Scheduler == nil {
		options.Scheduler = RealTime
	}
	state = state.Sanitize()

	keeper := &TimeKeeper{
		options:   options,
		config:    state.Config,
		phase:     PhaseIdle,
		session:   model.SessionFocus,
		completed: state.CompletedFocusSessions,
	}
	keeper.resetDurationsLocked()
	return keeper
}

// SetNotifier injects the notification sink.
func (keeper *TimeKeeper) SetNotifier(notifier Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// SetStore injects the persistence sink.
func (keeper *TimeKeeper) SetStore(saver StateSaver) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.saver = saver
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

// Start runs the countdown. It is a no-op while running or completed.
func (keeper *TimeKeeper) Start() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.startLocked()
	return keeper.snapshotLocked()
}

// Pause freezes a running countdown.
func (keeper *TimeKeeper) Pause() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.pauseLocked()
	return keeper.snapshotLocked()
}

// Toggle pauses a running countdown and starts any other.
func (keeper *TimeKeeper) Toggle() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.phase == PhaseRunning {
		keeper.pauseLocked()
	} else {
		keeper.startLocked()
	}
	return keeper.snapshotLocked()
}

// Reset returns the current session to its full configured duration.
func (keeper *TimeKeeper) Reset() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.stopTickLocked()
	keeper.cancelAdvanceLocked()
	keeper.resetDurationsLocked()
	keeper.phase = PhaseIdle
	keeper.emitLocked(EventStateChange)
	return keeper.snapshotLocked()
}

// SwitchToSession makes session current and idle.
func (keeper *TimeKeeper) SwitchToSession(session model.SessionType) Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if session.Valid() {
		keeper.switchLocked(session)
	}
	return keeper.snapshotLocked()
}

// Tick advances the countdown by one time unit.
func (keeper *TimeKeeper) Tick() Snapshot {
	keeper.mu.Lock()
	fx := keeper.tickLocked()
	snapshot := keeper.snapshotLocked()
	keeper.mu.Unlock()

	keeper.apply(fx)
	return snapshot
}

// UpdateConfig merges patch into the config. Out-of-range fields are ignored.
func (keeper *TimeKeeper) UpdateConfig(patch model.ConfigPatch) Snapshot {
	keeper.mu.Lock()
	previousDuration := keeper.config.DurationSeconds(keeper.session)
	merged, _ := keeper.config.Merge(patch)
	changed := merged != keeper.config
	keeper.config = merged

	var fx effects
	if changed {
		if keeper.phase == PhaseIdle && merged.DurationSeconds(keeper.session) != previousDuration {
			keeper.resetDurationsLocked()
		}
		keeper.emitLocked(EventConfigChange)
		fx.persist = true
	}
	snapshot := keeper.snapshotLocked()
	keeper.mu.Unlock()

	keeper.apply(fx)
	return snapshot
}

// SetSoundEnabled toggles completion notifications.
func (keeper *TimeKeeper) SetSoundEnabled(enabled bool) Snapshot {
	return keeper.UpdateConfig(model.ConfigPatch{SoundEnabled: &enabled})
}

// SetSoundVolume sets the notification volume in [0,100].
func (keeper *TimeKeeper) SetSoundVolume(volume int) Snapshot {
	return keeper.UpdateConfig(model.ConfigPatch{SoundVolume: &volume})
}

// Close cancels scheduled work and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	if keeper.phase == PhaseRunning {
		keeper.phase = PhasePaused
	}
	keeper.stopTickLocked()
	keeper.cancelAdvanceLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) startLocked() {
	if keeper.closed || keeper.phase == PhaseRunning || keeper.phase == PhaseCompleted {
		return
	}
	keeper.stopTickLocked()
	gen := keeper.tickGen
	keeper.tick = keeper.options.Scheduler.Every(keeper.options.TickInterval, func() {
		keeper.onTick(gen)
	})
	keeper.phase = PhaseRunning
	keeper.emitLocked(EventStateChange)
}

func (keeper *TimeKeeper) pauseLocked() {
	if keeper.phase != PhaseRunning {
		return
	}
	keeper.stopTickLocked()
	keeper.phase = PhasePaused
	keeper.emitLocked(EventStateChange)
}

func (keeper *TimeKeeper) switchLocked(session model.SessionType) {
	keeper.stopTickLocked()
	keeper.cancelAdvanceLocked()
	keeper.session = session
	keeper.resetDurationsLocked()
	keeper.phase = PhaseIdle
	keeper.emitLocked(EventStateChange)
}

func (keeper *TimeKeeper) onTick(gen uint64) {
	keeper.mu.Lock()
	if gen != keeper.tickGen || keeper.tick == nil {
		// Delivered after its handle was cancelled.
		keeper.mu.Unlock()
		return
	}
	fx := keeper.tickLocked()
	keeper.mu.Unlock()

	keeper.apply(fx)
}

func (keeper *TimeKeeper) tickLocked() effects {
	if keeper.phase != PhaseRunning {
		return effects{}
	}
	if keeper.remaining <= 1 {
		return keeper.completeLocked()
	}
	keeper.remaining--
	keeper.emitLocked(EventProgress)
	return effects{}
}

func (keeper *TimeKeeper) completeLocked() effects {
	keeper.stopTickLocked()
	keeper.phase = PhaseCompleted
	keeper.remaining = 0
	if keeper.session == model.SessionFocus {
		keeper.completed++
	}

	fx := effects{persist: true}
	if keeper.config.SoundEnabled {
		notification := NotificationFor(keeper.session)
		fx.notification = &notification
	}
	keeper.emitLocked(EventSessionComplete)

	keeper.cancelAdvanceLocked()
	gen := keeper.advanceGen
	keeper.advance = keeper.options.Scheduler.After(keeper.options.CompletionDelay, func() {
		keeper.onAdvance(gen)
	})
	return fx
}

func (keeper *TimeKeeper) onAdvance(gen uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if gen != keeper.advanceGen || keeper.phase != PhaseCompleted {
		return
	}
	keeper.advance = nil
	keeper.switchLocked(keeper.nextSessionLocked())
}

// nextSessionLocked applies the long-break cadence to the finished session.
func (keeper *TimeKeeper) nextSessionLocked() model.SessionType {
	if keeper.session != model.SessionFocus {
		return model.SessionFocus
	}
	every := keeper.config.SessionsUntilLongBreak
	if keeper.completed > 0 && every > 0 && keeper.completed%every == 0 {
		return model.SessionLongBreak
	}
	return model.SessionShortBreak
}

func (keeper *TimeKeeper) stopTickLocked() {
	if keeper.tick != nil {
		keeper.tick.Stop()
		keeper.tick = nil
	}
	keeper.tickGen++
}

func (keeper *TimeKeeper) cancelAdvanceLocked() {
	if keeper.advance != nil {
		keeper.advance.Stop()
		keeper.advance = nil
	}
	keeper.advanceGen++
}

func (keeper *TimeKeeper) resetDurationsLocked() {
	keeper.total = keeper.config.DurationSeconds(keeper.session)
	keeper.remaining = keeper.total
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:                  keeper.phase,
		Session:                keeper.session,
		RemainingSeconds:       keeper.remaining,
		TotalSeconds:           keeper.total,
		CompletedFocusSessions: keeper.completed,
		Config:                 keeper.config,
	}
}

// apply runs collaborator side effects outside the lock.
func (keeper *TimeKeeper) apply(fx effects) {
	if fx.notification != nil {
		keeper.mu.Lock()
		notifier := keeper.notifier
		keeper.mu.Unlock()
		if notifier != nil {
			if err := notifier.Notify(*fx.notification); err != nil {
				log.Printf("timekeeper: notify: %v", err)
			}
		}
	}
	if fx.persist {
		keeper.persist()
	}
}

// persist reads the state only after acquiring persistMu, so a save that
// waited behind a slower one writes the newer state.
func (keeper *TimeKeeper) persist() {
	keeper.persistMu.Lock()
	defer keeper.persistMu.Unlock()

	keeper.mu.Lock()
	saver := keeper.saver
	state := model.PersistedState{Config: keeper.config, CompletedFocusSessions: keeper.completed}
	keeper.mu.Unlock()

	if saver == nil {
		return
	}
	if err := saver.SaveState(state); err != nil {
		log.Printf("timekeeper: save state: %v", err)
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
