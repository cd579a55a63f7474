package controller

import (
	"testing"

	"github.com/automoto/charmove2d/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const dt = 0.02

var characterExtents = mgl64.Vec2{0.4, 0.8}

func newTestController(t *testing.T, w *fakeWorld, b *fakeBody, mutate ...func(*config.ControllerConfig)) *Controller {
	t.Helper()
	cfg := config.Default().WithAutoFit(characterExtents)
	for _, m := range mutate {
		m(&cfg)
	}
	c, err := New(cfg, b, w)
	require.NoError(t, err)
	return c
}

// floorWorld returns a world with a wide floor whose top is at y=0.
func floorWorld() *fakeWorld {
	w := &fakeWorld{}
	w.add(-50, -1, 100, 1)
	return w
}

type recordedEvent struct {
	Event
	tick int
}

// recorder counts ticks and records events in emission order.
type recorder struct {
	c      *Controller
	tick   int
	events []recordedEvent
}

func record(c *Controller, kinds ...EventKind) *recorder {
	r := &recorder{c: c}
	for _, k := range kinds {
		c.On(k, func(e Event) {
			r.events = append(r.events, recordedEvent{Event: e, tick: r.tick})
		})
	}
	return r
}

func ticker(c *Controller) *recorder { return &recorder{c: c} }

func (r *recorder) step(n int) {
	for range n {
		r.tick++
		r.c.Tick(dt)
	}
}

// stepUntil ticks until cond holds or limit ticks have run.
func (r *recorder) stepUntil(limit int, cond func() bool) bool {
	for range limit {
		if cond() {
			return true
		}
		r.step(1)
	}
	return cond()
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) ticksOf(kind EventKind) []int {
	var ticks []int
	for _, e := range r.events {
		if e.Kind == kind {
			ticks = append(ticks, e.tick)
		}
	}
	return ticks
}
