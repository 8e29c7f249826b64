package sim

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/history"
)

// Controller drives one chart through Manual and Auto modes.
//
// Every pass (regenerate, project, record) runs under mu, so readers never see
// a half-updated chart. The repeating timer is owned exclusively by the
// controller: it is created on entering Auto and released on leaving Auto or
// on Close. timerMu serialises that lifecycle separately from mu, so stopping
// the timer can wait for an in-flight pass to finish.
type Controller struct {
	cfg    Config
	chart  Chart
	clock  clockwork.Clock
	logger *log.Logger
	idFunc func() string

	mu      sync.RWMutex
	rng     *rand.Rand
	history *history.Buffer
	mode    Mode
	seq     uint64
	closed  bool

	timerMu sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
	running atomic.Int32

	events        chan Update
	droppedEvents atomic.Int64

	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the real clock, typically with a clockwork.FakeClock in tests.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger; the chart name is attached to every record.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDFunc replaces the history entry identifier generator.
func WithIDFunc(f func() string) Option {
	return func(c *Controller) {
		c.idFunc = f
	}
}

// NewController wraps chart in a controller that starts in Manual mode.
// The chart is projected once so geometry is available immediately.
func NewController(chart Chart, cfg Config, opts ...Option) *Controller {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = def.HistorySize
	}
	if cfg.Threshold < 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = def.EventBuffer
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		cfg:    cfg,
		chart:  chart,
		clock:  clockwork.NewRealClock(),
		logger: log.Default(),
		rng:    rand.New(rand.NewSource(seed)),
		mode:   ModeManual,
		events: make(chan Update, cfg.EventBuffer),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("chart", cfg.Name)

	hopts := []history.Option{history.WithThreshold(cfg.Threshold)}
	if c.idFunc != nil {
		hopts = append(hopts, history.WithIDFunc(c.idFunc))
	}
	c.history = history.NewBuffer(cfg.HistorySize, hopts...)

	c.mu.Lock()
	c.chart.Project()
	c.mu.Unlock()

	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// SetMode transitions to m. Entering Auto runs one pass immediately and then
// schedules a repeating pass; leaving Auto cancels it. Requesting the current
// mode, or any mode after Close, does nothing.
func (c *Controller) SetMode(m Mode) {
	c.timerMu.Lock()
	defer c.timerMu.Unlock()

	c.mu.Lock()
	if c.closed || c.mode == m {
		c.mu.Unlock()
		return
	}
	from := c.mode
	c.mode = m
	c.mu.Unlock()

	// cleanup first, then decide whether to schedule
	c.stopTimer()
	c.logger.Info("mode changed", "from", from, "to", m)

	if m == ModeAuto {
		c.pass(SourceModeChange, nil)
		c.startTimer()
	}
}

// Randomize runs one manual regeneration pass.
func (c *Controller) Randomize() {
	c.pass(SourceRandomize, nil)
}

// Apply runs edit under the controller lock and, if it reports a change,
// re-projects and records history exactly as a regeneration pass would.
// It returns false when edit rejected the change or the controller is closed.
func (c *Controller) Apply(edit func() bool) bool {
	if edit == nil {
		return false
	}
	_, ok := c.pass(SourceEdit, edit)
	return ok
}

// pass is the single pipeline shared by ticks, manual randomization and edits:
// data update, projection (including label placement), history record, publish.
func (c *Controller) pass(src Source, edit func() bool) (Update, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Update{}, false
	}

	if edit == nil {
		c.chart.Regenerate(c.rng)
	} else if !edit() {
		return Update{}, false
	}

	pt := c.chart.Project()
	_, recorded := c.history.Record(pt)
	c.seq++

	ev := Update{
		Chart:    c.cfg.Name,
		Seq:      c.seq,
		Mode:     c.mode,
		Source:   src,
		Point:    pt,
		Recorded: recorded,
	}
	c.logger.Debug("pass",
		"seq", ev.Seq,
		"source", src,
		"x", geom.FormatFloat(pt.X),
		"y", geom.FormatFloat(pt.Y),
		"recorded", recorded,
	)
	c.emit(ev)
	return ev, true
}

// emit is called with mu held.
func (c *Controller) emit(ev Update) {
	if c.cfg.DropEvents {
		select {
		case c.events <- ev:
		default:
			if n := c.droppedEvents.Add(1); n == 1 || n%100 == 0 {
				c.logger.Warn("update channel full, dropping", "dropped", n)
			}
		}
		return
	}
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// startTimer is called with timerMu held.
func (c *Controller) startTimer() {
	stop := make(chan struct{})
	ticker := c.clock.NewTicker(c.cfg.Interval)
	c.stop = stop
	c.running.Add(1)
	c.wg.Add(1)
	go c.run(ticker, stop)
}

// stopTimer is called with timerMu held. It returns once the tick loop has
// exited; a pass already in flight completes first.
func (c *Controller) stopTimer() {
	if c.stop == nil {
		return
	}
	close(c.stop)
	c.stop = nil
	c.wg.Wait()
}

func (c *Controller) run(ticker clockwork.Ticker, stop <-chan struct{}) {
	defer c.wg.Done()
	defer c.running.Add(-1)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			// a tick that raced with cancellation must not run
			select {
			case <-stop:
				return
			default:
			}
			c.pass(SourceTick, nil)
		}
	}
}

// Read runs fn while holding the read lock, giving it a consistent view of the
// chart together with the trail recorded by the same pass.
func (c *Controller) Read(fn func(trail []history.Entry)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.history.Entries())
}

// History returns the trail, oldest first.
func (c *Controller) History() []history.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.history.Entries()
}

// ClearHistory empties the trail.
func (c *Controller) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history.Clear()
}

// Seq returns the number of completed passes.
func (c *Controller) Seq() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seq
}

// Running returns the number of live repeating actions (0 or 1).
func (c *Controller) Running() int {
	return int(c.running.Load())
}

// Updates returns the update channel. It is closed by Close.
func (c *Controller) Updates() <-chan Update {
	return c.events
}

// DroppedEvents returns the count of dropped updates.
func (c *Controller) DroppedEvents() int64 {
	return c.droppedEvents.Load()
}

// Name returns the configured chart name.
func (c *Controller) Name() string {
	return c.cfg.Name
}

// Interval returns the Auto mode period.
func (c *Controller) Interval() time.Duration {
	return c.cfg.Interval
}

// Close cancels any outstanding repeating pass and releases the controller.
// No pass runs after Close returns. Safe to call more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.done)

		c.timerMu.Lock()
		defer c.timerMu.Unlock()
		c.stopTimer()

		c.mu.Lock()
		c.closed = true
		close(c.events)
		c.mu.Unlock()

		c.logger.Debug("closed")
	})
}
