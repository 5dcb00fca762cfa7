package cart

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RekhaKadam/sonna-s-cafe/models"
)

// AnimationDuration is how long the add-to-cart flag stays raised.
const AnimationDuration = 600 * time.Millisecond

// Candidate is an add-to-cart request. Quantity is implicit: every add
// contributes exactly one unit.
type Candidate struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ImageRef      string  `json:"image_ref"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

// Cart owns the session's line items. Lines merge by case-insensitive
// name, keep insertion order, and disappear the moment their quantity
// would reach zero. Every operation is a no-op on ids it does not know.
type Cart struct {
	mu        sync.Mutex
	items     []models.CartItem
	newID     func() string
	animating bool
	animTimer *time.Timer
	animDelay time.Duration
}

// Option customises a Cart at construction time.
type Option func(*Cart)

// WithIDGenerator replaces the line-id generator. Tests use this to get
// deterministic ids.
func WithIDGenerator(f func() string) Option {
	return func(c *Cart) { c.newID = f }
}

// WithAnimationDuration shortens the animation window in tests.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *Cart) { c.animDelay = d }
}

// New creates an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{
		newID:     uuid.NewString,
		animDelay: AnimationDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem merges the candidate into an existing line with the same name
// (case-insensitive) or appends a fresh line with quantity 1. Either way
// the add animation is triggered.
func (c *Cart) AddItem(cand Candidate) {
	c.mu.Lock()
	merged := false
	for i := range c.items {
		if strings.EqualFold(c.items[i].Name, cand.Name) {
			c.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, models.CartItem{
			ID:            c.newID(),
			Name:          cand.Name,
			Price:         cand.Price,
			Quantity:      1,
			ImageRef:      cand.ImageRef,
			LoyaltyPoints: cand.LoyaltyPoints,
		})
	}
	c.mu.Unlock()

	c.TriggerAnimation()
}

// RemoveLine deletes the line unconditionally. Unknown ids are a no-op.
func (c *Cart) RemoveLine(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(lineID)
}

func (c *Cart) removeLocked(lineID string) {
	for i := range c.items {
		if c.items[i].ID == lineID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity exactly. Anything at or below
// zero removes the line instead — quantity never observably reaches 0.
func (c *Cart) SetQuantity(lineID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		c.removeLocked(lineID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == lineID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// AddAddon attaches the addon to the line. Duplicate addon ids and
// unknown line ids are no-ops.
func (c *Cart) AddAddon(lineID string, addon models.Addon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == lineID {
			if !c.items[i].HasAddon(addon.ID) {
				c.items[i].Addons = append(c.items[i].Addons, addon)
			}
			return
		}
	}
}

// RemoveAddon detaches the addon from the line. Absent addon ids and
// unknown line ids are no-ops.
func (c *Cart) RemoveAddon(lineID, addonID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID != lineID {
			continue
		}
		for j := range c.items[i].Addons {
			if c.items[i].Addons[j].ID == addonID {
				c.items[i].Addons = append(c.items[i].Addons[:j], c.items[i].Addons[j+1:]...)
				return
			}
		}
		return
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums (unit price + addon prices) × quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// TotalLoyaltyPoints sums points × quantity over all lines. Addons never
// contribute points.
func (c *Cart) TotalLoyaltyPoints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.LoyaltyPoints * item.Quantity
	}
	return total
}

// Snapshot returns deep copies of the lines in insertion order. Callers
// render from the copy, so a later cart mutation can never retroactively
// change numbers they already showed.
func (c *Cart) Snapshot() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	for i, item := range c.items {
		out[i] = item
		if len(item.Addons) > 0 {
			out[i].Addons = append([]models.Addon(nil), item.Addons...)
		}
	}
	return out
}

// TriggerAnimation raises the animation flag and schedules it to drop
// after the animation window. Re-triggering restarts the window.
func (c *Cart) TriggerAnimation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animating = true
	if c.animTimer != nil {
		c.animTimer.Stop()
	}
	c.animTimer = time.AfterFunc(c.animDelay, func() {
		c.mu.Lock()
		c.animating = false
		c.mu.Unlock()
	})
}

// IsAnimating reports whether the add animation is currently active.
func (c *Cart) IsAnimating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animating
}

// StopAnimation cancels any pending animation timer. Called on session
// teardown so the callback cannot fire into a discarded cart.
func (c *Cart) StopAnimation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.animTimer != nil {
		c.animTimer.Stop()
		c.animTimer = nil
	}
	c.animating = false
}
