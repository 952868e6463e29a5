package viewer

import (
	"math"

	"github.com/Faultbox/vectorscope/internal/engine/ampmod"
	"github.com/Faultbox/vectorscope/internal/engine/params"
	"github.com/Faultbox/vectorscope/internal/engine/tracer"
	"github.com/Faultbox/vectorscope/internal/host"
)

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextSolid
	ActionPrevSolid
	ActionToggleProjection
	ActionTogglePolarity
	ActionFreqUp
	ActionFreqDown
	ActionNextWave
	ActionToggleSpin
	ActionSnapshot
	ActionClear
)

var actionNames = [...]string{
	"none", "quit", "next solid", "previous solid", "toggle projection",
	"toggle polarity", "frequency up", "frequency down", "next waveform",
	"toggle spin", "snapshot", "clear",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// DefaultSpin is used by ActionToggleSpin when no spin is configured.
var DefaultSpin = host.Automation{X: 20, Y: 30}

// Poster receives parameter changes. *host.Runner implements it.
type Poster interface {
	Post(host.Event)
	SetSpin(host.Automation)
}

// Controller turns actions into parameter events. It tracks its own copy of
// the raw values so it never reads the instance owned by the audio thread.
type Controller struct {
	out   Poster
	kind  tracer.Kind
	table *params.Table
	raw   []int16

	spin     host.Automation
	spinning bool
}

// NewController starts from the kind's defaults overlaid with initial
// (parameter name to raw value, unknown names ignored).
func NewController(out Poster, kind tracer.Kind, initial map[string]int, spin host.Automation) *Controller {
	c := &Controller{
		out:      out,
		kind:     kind,
		table:    kind.Params(),
		spin:     spin,
		spinning: !spin.IsZero(),
	}
	c.raw = c.table.Defaults()
	for name, v := range initial {
		if idx, ok := c.table.Lookup(name); ok {
			c.raw[idx], _ = c.table.Clamp(idx, v)
		}
	}
	if spin.IsZero() {
		c.spin = DefaultSpin
	}
	return c
}

// Value returns the controller's view of parameter idx.
func (c *Controller) Value(idx int) int16 {
	if idx < 0 || idx >= len(c.raw) {
		return 0
	}
	return c.raw[idx]
}

// Spinning reports whether spin automation is on.
func (c *Controller) Spinning() bool {
	return c.spinning
}

// Handle applies a parameter action and reports whether it was one.
// Quit, snapshot and clear are left to the caller.
func (c *Controller) Handle(a Action) bool {
	switch a {
	case ActionNextSolid, ActionPrevSolid:
		if c.kind != tracer.KindPolyhedra {
			return false
		}
		step := 100
		if a == ActionPrevSolid {
			step = -100
		}
		n := (int(c.raw[params.Solid])/100*100 + step + 500) % 500
		c.set(params.Solid, n)
	case ActionToggleProjection:
		c.set(params.Projection, 1-int(c.raw[params.Projection]))
	case ActionTogglePolarity:
		c.set(params.Polarity, 1-int(c.raw[params.Polarity]))
	case ActionFreqUp, ActionFreqDown:
		f := float64(c.raw[params.Frequency])
		next := int(math.Round(f * 1.1))
		if a == ActionFreqDown {
			next = int(math.Round(f / 1.1))
		}
		if next == int(f) {
			if a == ActionFreqUp {
				next++
			} else {
				next--
			}
		}
		c.set(params.Frequency, next)
	case ActionNextWave:
		if c.kind != tracer.KindCube {
			return false
		}
		c.set(params.AmpWave, (int(c.raw[params.AmpWave])+1)%int(ampmod.Sine+1))
	case ActionToggleSpin:
		c.spinning = !c.spinning
		if c.spinning {
			c.out.SetSpin(c.spin)
		} else {
			c.out.SetSpin(host.Automation{})
		}
	default:
		return false
	}
	return true
}

func (c *Controller) set(idx, raw int) {
	v, _ := c.table.Clamp(idx, raw)
	c.raw[idx] = v
	c.out.Post(host.Event{Index: idx, Raw: v})
}
