// Package motion binds scroll-triggered entrance animations to page blocks.
//
// Effects are registered once per process with Init. A Trigger groups the
// bindings of one page section: it mounts them against an Observer in
// registration order and destroys all of them on Unmount. The same bindings
// are serialised into the page so static/js/motion.js can play them.
package motion

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotInitialized = errors.New("motion: effects not initialized, call motion.Init first")
	ErrUnknownEffect  = errors.New("motion: unknown effect")
	ErrInvalidConfig  = errors.New("motion: invalid binding config")
	ErrDestroyed      = errors.New("motion: binding destroyed")
	ErrMounted        = errors.New("motion: trigger already mounted")
)

// Built-in effect names
const (
	FadeUpOnScroll        = "fadeUpOnScroll"
	StaggerFadeUpOnScroll = "staggerFadeUpOnScroll"
)

// ScrollPlugin is the plugin every effect depends on
const ScrollPlugin = "ScrollTrigger"

type registry struct {
	mu          sync.RWMutex
	initialized bool
	plugins     []string
	effects     map[string]Config
}

var effects = &registry{}

// Init registers the scroll plugin and the built-in effects. It must run once
// before any Trigger is created; later calls are no-ops and return false.
func Init() bool {
	return effects.init()
}

// Initialized reports whether Init has run
func Initialized() bool {
	effects.mu.RLock()
	defer effects.mu.RUnlock()
	return effects.initialized
}

// RegisterEffect adds or replaces a named effect with its default config
func RegisterEffect(name string, defaults Config) error {
	if name == "" {
		return fmt.Errorf("%w: empty effect name", ErrInvalidConfig)
	}
	if err := defaults.Validate(); err != nil {
		return err
	}

	effects.mu.Lock()
	defer effects.mu.Unlock()
	if !effects.initialized {
		return ErrNotInitialized
	}
	effects.effects[name] = defaults
	return nil
}

// Effect returns the default config of a registered effect
func Effect(name string) (Config, error) {
	effects.mu.RLock()
	defer effects.mu.RUnlock()
	if !effects.initialized {
		return Config{}, ErrNotInitialized
	}
	cfg, ok := effects.effects[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}
	return cfg, nil
}

// Effects lists registered effect names in alphabetical order
func Effects() []string {
	effects.mu.RLock()
	defer effects.mu.RUnlock()
	names := make([]string, 0, len(effects.effects))
	for name := range effects.effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plugins lists the registered plugins
func Plugins() []string {
	effects.mu.RLock()
	defer effects.mu.RUnlock()
	return append([]string(nil), effects.plugins...)
}

func (r *registry) init() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		return false
	}

	r.plugins = []string{ScrollPlugin}
	r.effects = map[string]Config{
		// Plays when the block top reaches 80% of the viewport, reverses when scrolled back above it
		FadeUpOnScroll: {
			Start:    80,
			Duration: 800 * time.Millisecond,
			Ease:     "power2.out",
			YOffset:  30,
		},
		// Plays once, sequencing direct children of the form
		StaggerFadeUpOnScroll: {
			Start:         85,
			Duration:      500 * time.Millisecond,
			Ease:          "sine.out",
			YOffset:       40,
			Once:          true,
			Stagger:       150 * time.Millisecond,
			ChildSelector: "form > *",
		},
	}
	r.initialized = true
	return true
}

func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initialized = false
	r.plugins = nil
	r.effects = nil
}
