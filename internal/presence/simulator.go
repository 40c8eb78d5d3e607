// Package presence simulates the ambient "people breathing with you"
// counter. The number is random jitter around a baseline, not a count of
// real connected users; there is no network in this program.
package presence

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stillwave.dev/internal/config"
)

// CountMsg carries an updated simulated presence count.
type CountMsg struct {
	Count int
}

// Simulator drifts a fake presence count and pushes updates into the
// program loop.
type Simulator struct {
	program  *tea.Program
	baseline int
	jitter   int
	count    int
	cancel   context.CancelFunc
}

// NewSimulator creates a simulator centered on baseline with the given
// jitter amplitude.
func NewSimulator(baseline, jitter int) *Simulator {
	if baseline <= 0 {
		baseline = config.PresenceBaseline
	}
	return &Simulator{
		baseline: baseline,
		jitter:   jitter,
		count:    baseline,
	}
}

// Start begins emitting CountMsg updates. Must be called before p.Run().
func (s *Simulator) Start(p *tea.Program) {
	s.program = p

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
}

func (s *Simulator) loop(ctx context.Context) {
	ticker := time.NewTicker(config.PresenceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.step()
			if s.program != nil {
				s.program.Send(CountMsg{Count: s.count})
			}
		}
	}
}

// step random-walks the count, pulled gently back toward the baseline so it
// wanders without running away.
func (s *Simulator) step() {
	drift := rand.Intn(2*s.jitter+1) - s.jitter
	pull := (s.baseline - s.count) / 4
	s.count += pull + drift
	if s.count < 1 {
		s.count = 1
	}
}

// Stop halts the simulator.
func (s *Simulator) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
