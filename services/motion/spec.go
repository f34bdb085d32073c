package motion

import "encoding/json"

// Spec is the browser-facing description of one binding, read by static/js/motion.js
type Spec struct {
	Target        string  `json:"target"`
	Effect        string  `json:"effect"`
	Start         float64 `json:"start"`
	Duration      int64   `json:"duration"`
	Delay         int64   `json:"delay,omitempty"`
	Ease          string  `json:"ease"`
	Once          bool    `json:"once"`
	Y             float64 `json:"y"`
	Stagger       int64   `json:"stagger,omitempty"`
	ChildSelector string  `json:"childSelector,omitempty"`
}

// Manifest is everything one section's script needs to wire its bindings
type Manifest struct {
	Section  string `json:"section"`
	Bindings []Spec `json:"bindings"`
}

// Manifest describes the bound (not necessarily mounted) blocks in registration order
func (t *Trigger) Manifest() Manifest {
	t.mu.Lock()
	defer t.mu.Unlock()

	m := Manifest{Section: t.name, Bindings: make([]Spec, 0, len(t.specs))}
	for _, s := range t.specs {
		m.Bindings = append(m.Bindings, Spec{
			Target:        s.target,
			Effect:        s.effect,
			Start:         s.cfg.Start,
			Duration:      s.cfg.Duration.Milliseconds(),
			Delay:         s.cfg.Delay.Milliseconds(),
			Ease:          s.cfg.Ease,
			Once:          s.cfg.Once,
			Y:             s.cfg.YOffset,
			Stagger:       s.cfg.Stagger.Milliseconds(),
			ChildSelector: s.cfg.ChildSelector,
		})
	}
	return m
}

// JSON encodes the manifest for a data script tag
func (m Manifest) JSON() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
