package motion

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viewport = 1000

func newFixture(t *testing.T) (*ViewportObserver, *manualScheduler, *recorder) {
	t.Helper()
	setup(t)
	return NewViewportObserver(viewport), &manualScheduler{}, &recorder{}
}

func TestBindingReplaysOnReentry(t *testing.T) {
	obs, sched, rec := newFixture(t)
	obs.Place("#heading", 1200)

	trig := MustTrigger("case-studies", WithScheduler(sched), WithCallbacks(rec.callbacks()))
	trig.MustBind("#heading", FadeUpOnScroll)
	require.NoError(t, trig.Mount(obs))
	defer trig.Unmount()

	b := trig.Bindings()[0]
	assert.Equal(t, Unarmed, b.State())

	// 1200 - 500 = 700 is above the 80% line
	obs.ScrollTo(500)
	assert.Equal(t, Playing, b.State())
	sched.Advance(0)
	assert.Equal(t, 1, rec.playCount())

	sched.Advance(800 * time.Millisecond)
	assert.Equal(t, Settled, b.State())
	assert.Equal(t, 1, rec.settleCount())

	obs.ScrollTo(0)
	assert.Equal(t, Unarmed, b.State())

	obs.ScrollTo(500)
	assert.Equal(t, Playing, b.State())
	sched.Advance(time.Second)
	assert.Equal(t, 2, b.Plays())
	assert.Equal(t, 2, rec.playCount())
	assert.Equal(t, Settled, b.State())
}

func TestBindingExitWhilePlayingRearms(t *testing.T) {
	obs, sched, rec := newFixture(t)
	obs.Place("#heading", 1200)

	trig := MustTrigger("hero", WithScheduler(sched), WithCallbacks(rec.callbacks()))
	trig.MustBind("#heading", FadeUpOnScroll)
	require.NoError(t, trig.Mount(obs))
	defer trig.Unmount()
	b := trig.Bindings()[0]

	obs.ScrollTo(500)
	obs.ScrollTo(0)
	assert.Equal(t, Playing, b.State(), "exit does not interrupt playback")

	sched.Advance(time.Second)
	assert.Equal(t, Unarmed, b.State())
	assert.Equal(t, 1, rec.settleCount())
}

func TestStaggeredBindingPlaysOnce(t *testing.T) {
	obs, sched, rec := newFixture(t)
	obs.Place("#contact-form", 0)

	trig := MustTrigger("contact", WithScheduler(sched), WithCallbacks(rec.callbacks()))
	trig.MustBind("#contact-form", StaggerFadeUpOnScroll, WithChildren(4))
	require.NoError(t, trig.Mount(obs))
	defer trig.Unmount()
	b := trig.Bindings()[0]

	// already past the line at mount
	assert.Equal(t, Playing, b.State())

	sched.Advance(0)
	assert.Equal(t, 1, rec.playCount())
	sched.Advance(150 * time.Millisecond)
	assert.Equal(t, 2, rec.playCount())
	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, 4, rec.playCount())

	rec.mu.Lock()
	for i, ev := range rec.plays {
		assert.Equal(t, i, ev.Child)
		assert.Equal(t, time.Duration(i)*150*time.Millisecond, ev.Delay)
	}
	rec.mu.Unlock()

	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, Settled, b.State())
	assert.Equal(t, 0, obs.Registered(), "one-shot binding releases its observer slot")

	obs.ScrollTo(5000)
	obs.ScrollTo(-5000)
	obs.ScrollTo(5000)
	sched.Advance(10 * time.Second)
	assert.Equal(t, 4, rec.playCount())
	assert.Equal(t, 1, b.Plays())
}

func TestMountFollowsRegistrationOrder(t *testing.T) {
	obs, sched, rec := newFixture(t)
	obs.Place("#content", 0)
	obs.Place("#image", 0)
	obs.Place("#badge", 0)

	trig := MustTrigger("capability-0", WithScheduler(sched), WithCallbacks(rec.callbacks()))
	trig.MustBind("#content", FadeUpOnScroll, WithStart(90)).
		MustBind("#image", FadeUpOnScroll, WithStart(90)).
		MustBind("#badge", FadeUpOnScroll, WithStart(90))
	require.NoError(t, trig.Mount(obs))
	defer trig.Unmount()

	sched.Advance(0)
	assert.Equal(t, []string{"#content", "#image", "#badge"}, rec.playTargets())
}

func TestDelayShiftsPlayback(t *testing.T) {
	obs, sched, rec := newFixture(t)
	obs.Place("#image", 0)

	trig := MustTrigger("capability-1", WithScheduler(sched), WithCallbacks(rec.callbacks()))
	trig.MustBind("#image", FadeUpOnScroll, WithDelay(200*time.Millisecond))
	require.NoError(t, trig.Mount(obs))
	defer trig.Unmount()

	sched.Advance(199 * time.Millisecond)
	assert.Equal(t, 0, rec.playCount())
	sched.Advance(time.Millisecond)
	assert.Equal(t, 1, rec.playCount())
}

func TestUnmountStopsPlayback(t *testing.T) {
	t.Run("While unarmed", func(t *testing.T) {
		obs, sched, rec := newFixture(t)
		obs.Place("#heading", 2000)

		trig := MustTrigger("process", WithScheduler(sched), WithCallbacks(rec.callbacks()))
		trig.MustBind("#heading", FadeUpOnScroll)
		require.NoError(t, trig.Mount(obs))
		b := trig.Bindings()[0]

		trig.Unmount()
		assert.Equal(t, Destroyed, b.State())
		assert.Equal(t, 0, obs.Registered())
		assert.False(t, trig.Mounted())

		obs.ScrollTo(2000)
		sched.Advance(10 * time.Second)
		assert.Equal(t, 0, rec.playCount())
		assert.Equal(t, 0, rec.settleCount())
	})

	t.Run("While playing", func(t *testing.T) {
		obs, sched, rec := newFixture(t)
		obs.Place("#contact-form", 0)

		trig := MustTrigger("contact", WithScheduler(sched), WithCallbacks(rec.callbacks()))
		trig.MustBind("#contact-form", StaggerFadeUpOnScroll, WithChildren(5))
		require.NoError(t, trig.Mount(obs))
		b := trig.Bindings()[0]

		sched.Advance(0)
		assert.Equal(t, 1, rec.playCount())

		trig.Unmount()
		assert.Equal(t, Destroyed, b.State())

		sched.Advance(10 * time.Second)
		obs.ScrollTo(100)
		assert.Equal(t, 1, rec.playCount())
		assert.Equal(t, 0, rec.settleCount())
	})

	t.Run("Wall clock", func(t *testing.T) {
		setup(t)
		obs := NewViewportObserver(viewport)
		obs.Place("#heading", 0)
		rec := &recorder{}

		trig := MustTrigger("hero", WithCallbacks(rec.callbacks()))
		trig.MustBind("#heading", FadeUpOnScroll,
			WithDelay(20*time.Millisecond), WithDuration(20*time.Millisecond))
		require.NoError(t, trig.Mount(obs))
		trig.Unmount()

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, 0, rec.playCount())
		assert.Equal(t, 0, rec.settleCount())
	})

	t.Run("Destroy is idempotent", func(t *testing.T) {
		obs, sched, rec := newFixture(t)
		obs.Place("#heading", 0)

		trig := MustTrigger("hero", WithScheduler(sched), WithCallbacks(rec.callbacks()))
		trig.MustBind("#heading", FadeUpOnScroll)
		require.NoError(t, trig.Mount(obs))
		b := trig.Bindings()[0]

		b.Destroy()
		b.Destroy()
		trig.Unmount()
		assert.Equal(t, Destroyed, b.State())
	})
}

func TestCallbackMayUnmountOwnTrigger(t *testing.T) {
	finishes := func(t *testing.T, fn func()) {
		t.Helper()
		done := make(chan struct{})
		go func() {
			defer close(done)
			fn()
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("unmount from a callback did not return")
		}
	}

	t.Run("From OnSettle", func(t *testing.T) {
		obs, sched, _ := newFixture(t)
		obs.Place("#heading", 0)

		var trig *Trigger
		settles := 0
		trig = MustTrigger("hero", WithScheduler(sched), WithCallbacks(Callbacks{
			OnSettle: func(string) {
				settles++
				trig.Unmount()
			},
		}))
		trig.MustBind("#heading", FadeUpOnScroll)
		require.NoError(t, trig.Mount(obs))
		b := trig.Bindings()[0]

		finishes(t, func() { sched.Advance(time.Second) })
		assert.Equal(t, 1, settles)
		assert.Equal(t, Destroyed, b.State())
		assert.False(t, trig.Mounted())
		assert.Equal(t, 0, obs.Registered())
	})

	t.Run("From OnPlay", func(t *testing.T) {
		obs, sched, _ := newFixture(t)
		obs.Place("#contact-form", 0)

		var trig *Trigger
		plays := 0
		trig = MustTrigger("contact", WithScheduler(sched), WithCallbacks(Callbacks{
			OnPlay: func(PlayEvent) {
				plays++
				trig.Unmount()
			},
		}))
		trig.MustBind("#contact-form", StaggerFadeUpOnScroll, WithChildren(3))
		require.NoError(t, trig.Mount(obs))

		finishes(t, func() { sched.Advance(10 * time.Second) })
		assert.Equal(t, 1, plays, "later children are cancelled")
		assert.False(t, trig.Mounted())
	})
}

func TestMountErrors(t *testing.T) {
	t.Run("Rolls back on unknown target", func(t *testing.T) {
		obs, sched, rec := newFixture(t)
		obs.Place("#heading", 0)

		trig := MustTrigger("contact", WithScheduler(sched), WithCallbacks(rec.callbacks()))
		trig.MustBind("#heading", FadeUpOnScroll).MustBind("#missing", FadeUpOnScroll)

		err := trig.Mount(obs)
		assert.ErrorIs(t, err, ErrUnknownTarget)
		assert.False(t, trig.Mounted())
		assert.Equal(t, 0, obs.Registered())

		// the first binding entered on registration; its play must not fire
		sched.Advance(time.Second)
		assert.Equal(t, 0, rec.playCount())
	})

	t.Run("Double mount and late bind", func(t *testing.T) {
		obs, sched, _ := newFixture(t)
		obs.Place("#heading", 2000)

		trig := MustTrigger("hero", WithScheduler(sched))
		trig.MustBind("#heading", FadeUpOnScroll)
		require.NoError(t, trig.Mount(obs))
		defer trig.Unmount()

		assert.ErrorIs(t, trig.Mount(obs), ErrMounted)
		assert.ErrorIs(t, trig.Bind("#other", FadeUpOnScroll), ErrMounted)
	})

	t.Run("Remount after unmount", func(t *testing.T) {
		obs, sched, rec := newFixture(t)
		obs.Place("#heading", 0)

		trig := MustTrigger("hero", WithScheduler(sched), WithCallbacks(rec.callbacks()))
		trig.MustBind("#heading", FadeUpOnScroll)
		require.NoError(t, trig.Mount(obs))
		trig.Unmount()
		require.NoError(t, trig.Mount(obs))
		defer trig.Unmount()

		sched.Advance(0)
		assert.Equal(t, 1, rec.playCount())
	})

	t.Run("Unknown effect", func(t *testing.T) {
		setup(t)
		trig := MustTrigger("hero")
		assert.ErrorIs(t, trig.Bind("#x", "wobble"), ErrUnknownEffect)
		assert.ErrorIs(t, trig.Bind("#x", FadeUpOnScroll, WithStart(-1)), ErrInvalidConfig)
	})
}

func TestManifest(t *testing.T) {
	setup(t)

	trig := MustTrigger("contact")
	trig.MustBind("#contact-heading", FadeUpOnScroll).
		MustBind("#contact-form", StaggerFadeUpOnScroll, WithChildren(5))

	want := Manifest{
		Section: "contact",
		Bindings: []Spec{
			{Target: "#contact-heading", Effect: FadeUpOnScroll, Start: 80, Duration: 800, Ease: "power2.out", Y: 30},
			{Target: "#contact-form", Effect: StaggerFadeUpOnScroll, Start: 85, Duration: 500, Ease: "sine.out", Once: true, Y: 40, Stagger: 150, ChildSelector: "form > *"},
		},
	}
	if diff := cmp.Diff(want, trig.Manifest()); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}

	js, err := trig.Manifest().JSON()
	require.NoError(t, err)
	assert.Contains(t, js, `"section":"contact"`)
	assert.Contains(t, js, `"stagger":150`)
}

func TestViewportObserver(t *testing.T) {
	obs := NewViewportObserver(viewport)
	obs.Place("#a", 900)

	var got []Visibility
	reg, err := obs.Register("#a", 80, func(v Visibility) { got = append(got, v) })
	require.NoError(t, err)
	assert.Empty(t, got)

	obs.ScrollTo(100)
	obs.ScrollTo(150)
	obs.ScrollTo(50)
	assert.Equal(t, []Visibility{Entered, Exited}, got)

	reg.Unregister()
	reg.Unregister()
	obs.ScrollTo(500)
	assert.Len(t, got, 2)

	_, err = obs.Register("#a", 80, nil)
	assert.Error(t, err)
	assert.Equal(t, "entered", Entered.String())
}
