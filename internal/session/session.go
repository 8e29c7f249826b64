package session

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/zappabad/livecharts/internal/chart"
	"github.com/zappabad/livecharts/internal/sim"
)

// Session owns the three charts and manages their lifecycle.
type Session struct {
	Quadrant *chart.Quadrant
	Area     *chart.Area
	Radar    *chart.Radar

	cfg      Config
	activity *Activity

	updates chan sim.Update
	dropped atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates the charts from cfg. opts are applied to every chart's
// controller. Each chart starts in its configured mode.
func New(cfg Config, opts ...sim.Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.UpdateBuffer <= 0 {
		cfg.UpdateBuffer = DefaultConfig().UpdateBuffer
	}

	s := &Session{
		cfg:      cfg,
		activity: NewActivity(cfg.ActivityCapacity),
		updates:  make(chan sim.Update, cfg.UpdateBuffer),
		closed:   make(chan struct{}),
	}

	var err error
	if s.Quadrant, err = chart.NewQuadrant(cfg.Quadrant, opts...); err != nil {
		return nil, fmt.Errorf("quadrant: %w", err)
	}
	if s.Area, err = chart.NewArea(cfg.Area, opts...); err != nil {
		s.Quadrant.Close()
		return nil, fmt.Errorf("area: %w", err)
	}
	if s.Radar, err = chart.NewRadar(cfg.Radar, opts...); err != nil {
		s.Area.Close()
		s.Quadrant.Close()
		return nil, fmt.Errorf("radar: %w", err)
	}

	for _, c := range s.Charts() {
		s.wg.Add(1)
		go s.runListener(c.Updates())
	}
	return s, nil
}

func (s *Session) runListener(events <-chan sim.Update) {
	defer s.wg.Done()

	for {
		select {
		case <-s.closed:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.activity.Add(ev)
			select {
			case s.updates <- ev:
			default:
				s.dropped.Add(1)
			}
		}
	}
}

// Charts returns the charts in navigation order: quadrant, area, radar.
func (s *Session) Charts() []chart.Chart {
	return []chart.Chart{s.Quadrant, s.Area, s.Radar}
}

// Chart returns the chart of kind k, or nil.
func (s *Session) Chart(k chart.Kind) chart.Chart {
	for _, c := range s.Charts() {
		if c.Kind() == k {
			return c
		}
	}
	return nil
}

// Updates returns every chart's updates merged into one channel. It is
// closed by Close.
func (s *Session) Updates() <-chan sim.Update {
	return s.updates
}

// DroppedUpdates returns how many merged updates were dropped because the
// consumer fell behind.
func (s *Session) DroppedUpdates() int64 {
	return s.dropped.Load()
}

// Activity returns the recent update log.
func (s *Session) Activity() *Activity {
	return s.activity
}

// SetMode applies m to every chart.
func (s *Session) SetMode(m sim.Mode) {
	for _, c := range s.Charts() {
		c.SetMode(m)
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// Close shuts down the charts in reverse navigation order, then the listeners.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		charts := s.Charts()
		for i := len(charts) - 1; i >= 0; i-- {
			charts[i].Close()
		}
		close(s.closed)
		s.wg.Wait()
		close(s.updates)
	})
}
