package rotation

import (
	"sync"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/util"
)

// State describes what a carousel is doing with its eligible set.
type State string

const (
	// StateIdle means no banner is eligible and nothing renders.
	StateIdle State = "Idle"
	// StateSingle means exactly one banner is shown, with no rotation.
	StateSingle State = "Single"
	// StateRotating means the index advances on a timer and on navigation.
	StateRotating State = "Rotating"
)

// DefaultInterval is the automatic advance period.
const DefaultInterval = 5 * time.Second

// Eligible computes the displayable banner subset for a placement and market:
// Active banners matching the placement, narrowed to those targeting the
// country; when none target it, the default-flagged slides stand in. A banner
// with no countries is only ever reachable through its isDefault flag.
func Eligible(banners []models.Banner, placement models.BannerPlacement, country models.CountryCode) []models.Banner {
	var active []models.Banner
	for _, b := range banners {
		if b.Status == models.StatusActive && b.Placement == placement {
			active = append(active, b)
		}
	}

	var targeted []models.Banner
	for _, b := range active {
		if b.VisibleIn(country) {
			targeted = append(targeted, b)
		}
	}
	if len(targeted) > 0 {
		return targeted
	}

	var defaults []models.Banner
	for _, b := range active {
		if b.IsDefault {
			defaults = append(defaults, b)
		}
	}
	return defaults
}

// Carousel advances through an eligible banner set. The timer is a single-shot
// that is rescheduled after each firing, never a ticker, so a slow advance can
// not stack callbacks. Manual navigation restarts the countdown from zero.
type Carousel struct {
	mu       sync.Mutex
	interval time.Duration
	eligible []models.Banner
	index    int
	timer    *time.Timer
	stopped  bool
}

// NewCarousel creates a stopped-clock carousel; SetBanners arms it.
func NewCarousel(interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Carousel{interval: interval}
}

// SetBanners recomputes eligibility for a new input set. The index resets to
// the start of the new set and the countdown is torn down and, when two or
// more banners are eligible, started fresh.
func (c *Carousel) SetBanners(banners []models.Banner, placement models.BannerPlacement, country models.CountryCode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}

	c.eligible = Eligible(banners, placement, country)
	c.index = 0
	c.rescheduleLocked()
	util.CarouselRefreshesTotal.Inc()
}

// Next advances to the following banner, wrapping after the last.
func (c *Carousel) Next() {
	c.manual(func(index, count int) int {
		return (index + 1) % count
	})
}

// Prev steps back to the previous banner, wrapping before the first.
func (c *Carousel) Prev() {
	c.manual(func(index, count int) int {
		return (index + count - 1) % count
	})
}

// GoTo jumps to an explicit index; out-of-range values are ignored.
func (c *Carousel) GoTo(index int) {
	c.manual(func(_, count int) int {
		if index < 0 || index >= count {
			return -1
		}
		return index
	})
}

func (c *Carousel) manual(step func(index, count int) int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || len(c.eligible) < 2 {
		return
	}

	next := step(c.index, len(c.eligible))
	if next < 0 {
		return
	}

	c.index = next
	c.rescheduleLocked()
	util.RotationAdvancesTotal.WithLabelValues("manual").Inc()
}

// advance is the timer callback. A callback that fires after Stop or after the
// eligible set shrank is a no-op; it must never act on stale inputs.
func (c *Carousel) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || len(c.eligible) < 2 {
		return
	}

	c.index = (c.index + 1) % len(c.eligible)
	c.rescheduleLocked()
	util.RotationAdvancesTotal.WithLabelValues("timer").Inc()
}

func (c *Carousel) rescheduleLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if len(c.eligible) > 1 {
		c.timer = time.AfterFunc(c.interval, c.advance)
	}
}

// State reports the current rotation state.
func (c *Carousel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Carousel) stateLocked() State {
	switch len(c.eligible) {
	case 0:
		return StateIdle
	case 1:
		return StateSingle
	default:
		return StateRotating
	}
}

// Current returns the displayed banner; ok is false in the Idle state.
func (c *Carousel) Current() (models.Banner, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.eligible) == 0 {
		return models.Banner{}, false
	}
	return c.eligible[c.index], true
}

// Index returns the current rotation position.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Snapshot returns banner, index, count and state as one consistent read.
func (c *Carousel) Snapshot() (models.Banner, int, int, State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.eligible) == 0 {
		return models.Banner{}, 0, 0, StateIdle
	}
	return c.eligible[c.index], c.index, len(c.eligible), c.stateLocked()
}

// Stop cancels the timer permanently; rotation position is ephemeral and is
// simply discarded.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
