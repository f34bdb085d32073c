package motion

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Visibility is a threshold crossing reported by an Observer
type Visibility int

const (
	// Entered fires when the block's top reaches the threshold line
	Entered Visibility = iota + 1
	// Exited fires when the block is scrolled back above the threshold line
	Exited
)

func (v Visibility) String() string {
	switch v {
	case Entered:
		return "entered"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Registration cancels one Observer registration. Unregister is idempotent.
type Registration interface {
	Unregister()
}

// Observer reports threshold crossings of page blocks
type Observer interface {
	// Register calls fn on every crossing of target through threshold
	// (percent of the viewport from the top). Implementations report
	// Entered immediately when the target is already past the line.
	Register(target string, threshold float64, fn func(Visibility)) (Registration, error)
}

var ErrUnknownTarget = errors.New("motion: target has no layout")

// ViewportObserver is an Observer driven by block offsets and a scroll
// position instead of a rendering engine.
type ViewportObserver struct {
	mu       sync.Mutex
	viewport float64
	scroll   float64
	tops     map[string]float64
	entries  map[int]*viewportEntry
	nextID   int
}

type viewportEntry struct {
	id        int
	target    string
	threshold float64
	fn        func(Visibility)
	inside    bool
}

type viewportRegistration struct {
	o  *ViewportObserver
	id int
}

func (r viewportRegistration) Unregister() {
	r.o.mu.Lock()
	delete(r.o.entries, r.id)
	r.o.mu.Unlock()
}

// NewViewportObserver creates an observer for a viewport of the given height
func NewViewportObserver(viewportHeight float64) *ViewportObserver {
	return &ViewportObserver{
		viewport: viewportHeight,
		tops:     make(map[string]float64),
		entries:  make(map[int]*viewportEntry),
	}
}

// Place records the document offset of a block's top edge
func (o *ViewportObserver) Place(target string, top float64) {
	o.mu.Lock()
	o.tops[target] = top
	o.mu.Unlock()
}

func (o *ViewportObserver) Register(target string, threshold float64, fn func(Visibility)) (Registration, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: nil callback for %s", target)
	}

	o.mu.Lock()
	top, ok := o.tops[target]
	if !ok {
		o.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	o.nextID++
	entry := &viewportEntry{
		id:        o.nextID,
		target:    target,
		threshold: threshold,
		fn:        fn,
	}
	entry.inside = o.crossed(top, threshold)
	o.entries[entry.id] = entry
	o.mu.Unlock()

	if entry.inside {
		o.fire([]crossing{{entry: entry, vis: Entered}})
	}
	return viewportRegistration{o: o, id: entry.id}, nil
}

// ScrollTo moves the viewport and reports crossings in registration order
func (o *ViewportObserver) ScrollTo(offset float64) {
	o.mu.Lock()
	o.scroll = offset
	var changed []crossing
	for _, entry := range o.sortedEntries() {
		inside := o.crossed(o.tops[entry.target], entry.threshold)
		if inside == entry.inside {
			continue
		}
		entry.inside = inside
		vis := Exited
		if inside {
			vis = Entered
		}
		changed = append(changed, crossing{entry: entry, vis: vis})
	}
	o.mu.Unlock()

	o.fire(changed)
}

// Registered returns the number of live registrations
func (o *ViewportObserver) Registered() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.entries)
}

type crossing struct {
	entry *viewportEntry
	vis   Visibility
}

// fire runs callbacks without holding the lock, skipping entries unregistered meanwhile
func (o *ViewportObserver) fire(crossings []crossing) {
	for _, c := range crossings {
		o.mu.Lock()
		_, live := o.entries[c.entry.id]
		o.mu.Unlock()
		if live {
			c.entry.fn(c.vis)
		}
	}
}

func (o *ViewportObserver) crossed(top, threshold float64) bool {
	return top-o.scroll <= o.viewport*threshold/100
}

func (o *ViewportObserver) sortedEntries() []*viewportEntry {
	out := make([]*viewportEntry, 0, len(o.entries))
	for _, e := range o.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
