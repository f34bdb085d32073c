package motion

import (
	"fmt"
	"sync"
)

type bindingSpec struct {
	target string
	effect string
	cfg    Config
}

// Trigger owns the bindings of one page section
type Trigger struct {
	name  string
	sched Scheduler
	cb    Callbacks

	mu       sync.Mutex
	specs    []bindingSpec
	bindings []*Binding
	mounted  bool
}

// TriggerOption configures a Trigger
type TriggerOption func(*Trigger)

func WithScheduler(s Scheduler) TriggerOption {
	return func(t *Trigger) { t.sched = s }
}

func WithCallbacks(cb Callbacks) TriggerOption {
	return func(t *Trigger) { t.cb = cb }
}

// NewTrigger creates an empty trigger for a section. Init must have run.
func NewTrigger(name string, opts ...TriggerOption) (*Trigger, error) {
	if !Initialized() {
		return nil, ErrNotInitialized
	}
	t := &Trigger{name: name, sched: WallClock}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MustTrigger is NewTrigger for section definitions built at startup
func MustTrigger(name string, opts ...TriggerOption) *Trigger {
	t, err := NewTrigger(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Trigger) Name() string { return t.name }

// Bind registers a block with an effect; bindings mount in the order they were bound
func (t *Trigger) Bind(target, effect string, opts ...Option) error {
	cfg, err := Effect(effect)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s %s: %w", t.name, target, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mounted {
		return ErrMounted
	}
	t.specs = append(t.specs, bindingSpec{target: target, effect: effect, cfg: cfg})
	return nil
}

// MustBind is Bind for static section definitions
func (t *Trigger) MustBind(target, effect string, opts ...Option) *Trigger {
	if err := t.Bind(target, effect, opts...); err != nil {
		panic(err)
	}
	return t
}

// Mount arms every binding against the observer. If one fails the ones
// already armed are destroyed and the trigger stays unmounted.
func (t *Trigger) Mount(obs Observer) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mounted {
		return ErrMounted
	}

	bindings := make([]*Binding, 0, len(t.specs))
	for _, spec := range t.specs {
		b := newBinding(spec.target, spec.effect, spec.cfg, t.sched, t.cb)
		if err := b.arm(obs); err != nil {
			b.Destroy()
			for _, armed := range bindings {
				armed.Destroy()
			}
			return fmt.Errorf("mount %s: %w", t.name, err)
		}
		bindings = append(bindings, b)
	}

	t.bindings = bindings
	t.mounted = true
	return nil
}

// Unmount destroys every binding created by Mount
func (t *Trigger) Unmount() {
	t.mu.Lock()
	bindings := t.bindings
	t.bindings = nil
	t.mounted = false
	t.mu.Unlock()

	for _, b := range bindings {
		b.Destroy()
	}
}

// Mounted reports whether the trigger currently owns live bindings
func (t *Trigger) Mounted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mounted
}

// Bindings returns the live bindings in registration order
func (t *Trigger) Bindings() []*Binding {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Binding(nil), t.bindings...)
}
