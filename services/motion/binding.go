package motion

import (
	"sync"
	"time"
)

// State is the lifecycle position of a binding
type State int

const (
	Unarmed State = iota
	Playing
	Settled
	Destroyed
)

func (s State) String() string {
	switch s {
	case Unarmed:
		return "unarmed"
	case Playing:
		return "playing"
	case Settled:
		return "settled"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// PlayEvent starts the entrance animation of one unit (the block, or one staggered child)
type PlayEvent struct {
	Target string
	Child  int
	Delay  time.Duration
	Config Config
}

// Callbacks receive playback events. A callback may unmount the trigger
// that owns its binding.
type Callbacks struct {
	OnPlay   func(PlayEvent)
	OnSettle func(target string)
}

// Binding associates a block with its playback trigger
type Binding struct {
	target string
	effect string
	cfg    Config
	sched  Scheduler
	cb     Callbacks

	// fire serialises timer callbacks so Destroy can wait out one about to start
	fire sync.Mutex

	mu      sync.Mutex
	state   State
	reg     Registration
	timers  []Timer
	gen     uint64
	rearm   bool
	plays   int
	calling bool
}

func newBinding(target, effect string, cfg Config, sched Scheduler, cb Callbacks) *Binding {
	if sched == nil {
		sched = WallClock
	}
	return &Binding{
		target: target,
		effect: effect,
		cfg:    cfg,
		sched:  sched,
		cb:     cb,
	}
}

func (b *Binding) Target() string { return b.target }
func (b *Binding) Effect() string { return b.effect }
func (b *Binding) Config() Config { return b.cfg }

// State returns the current lifecycle state
func (b *Binding) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Plays counts how many times the threshold crossing started playback
func (b *Binding) Plays() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.plays
}

// arm registers the binding with the observer
func (b *Binding) arm(obs Observer) error {
	reg, err := obs.Register(b.target, b.cfg.Start, b.onVisibility)
	if err != nil {
		return err
	}

	b.mu.Lock()
	if b.state == Destroyed {
		b.mu.Unlock()
		reg.Unregister()
		return ErrDestroyed
	}
	// a one-shot binding may already have settled and released its slot
	if b.cfg.Once && b.state == Settled {
		b.mu.Unlock()
		reg.Unregister()
		return nil
	}
	b.reg = reg
	b.mu.Unlock()
	return nil
}

func (b *Binding) onVisibility(v Visibility) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case Unarmed:
		if v == Entered {
			b.play()
		}
	case Playing:
		if !b.cfg.Once {
			b.rearm = v == Exited
		}
	case Settled:
		if v == Exited && !b.cfg.Once {
			b.state = Unarmed
		}
	}
}

// play schedules every unit and the settle point; b.mu is held
func (b *Binding) play() {
	b.state = Playing
	b.rearm = false
	b.plays++
	b.gen++
	gen := b.gen

	units := b.cfg.units()
	b.timers = make([]Timer, 0, units+1)
	for i := 0; i < units; i++ {
		ev := PlayEvent{
			Target: b.target,
			Child:  i,
			Delay:  b.cfg.Delay + time.Duration(i)*b.cfg.Stagger,
			Config: b.cfg,
		}
		b.timers = append(b.timers, b.sched.AfterFunc(ev.Delay, func() {
			b.deliver(gen, ev)
		}))
	}
	b.timers = append(b.timers, b.sched.AfterFunc(b.cfg.Total(), func() {
		b.settle(gen)
	}))
}

func (b *Binding) deliver(gen uint64, ev PlayEvent) {
	b.fire.Lock()
	defer b.fire.Unlock()

	b.mu.Lock()
	live := b.state == Playing && b.gen == gen && b.cb.OnPlay != nil
	b.calling = live
	b.mu.Unlock()

	if live {
		b.call(func() { b.cb.OnPlay(ev) })
	}
}

// call runs a callback dispatched under b.calling
func (b *Binding) call(fn func()) {
	defer func() {
		b.mu.Lock()
		b.calling = false
		b.mu.Unlock()
	}()
	fn()
}

func (b *Binding) settle(gen uint64) {
	b.fire.Lock()
	defer b.fire.Unlock()

	b.mu.Lock()
	if b.state != Playing || b.gen != gen {
		b.mu.Unlock()
		return
	}
	b.state = Settled
	b.timers = nil

	var release Registration
	switch {
	case b.cfg.Once:
		release, b.reg = b.reg, nil
	case b.rearm:
		b.state = Unarmed
		b.rearm = false
	}
	b.mu.Unlock()

	if release != nil {
		release.Unregister()
	}

	b.mu.Lock()
	notify := b.state != Destroyed && b.cb.OnSettle != nil
	b.calling = notify
	b.mu.Unlock()
	if notify {
		b.call(func() { b.cb.OnSettle(b.target) })
	}
}

// Destroy tears the binding down from any state. No callback is dispatched
// after it returns. One already dispatched, possibly the caller itself, is
// not waited for.
func (b *Binding) Destroy() {
	b.mu.Lock()
	if b.state == Destroyed {
		b.mu.Unlock()
		return
	}
	b.state = Destroyed
	timers := b.timers
	reg := b.reg
	calling := b.calling
	b.timers, b.reg = nil, nil
	b.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
	if reg != nil {
		reg.Unregister()
	}

	if calling {
		return
	}
	// wait for a timer that took fire before the state flipped
	b.fire.Lock()
	b.fire.Unlock()
}
