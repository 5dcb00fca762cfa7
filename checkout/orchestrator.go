package checkout

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/RekhaKadam/sonna-s-cafe/cart"
	"github.com/RekhaKadam/sonna-s-cafe/models"
	"github.com/RekhaKadam/sonna-s-cafe/otp"
	"github.com/RekhaKadam/sonna-s-cafe/statemachine"
	"github.com/RekhaKadam/sonna-s-cafe/store"
)

const (
	// DefaultDeliveryFee is the flat fee charged only for delivery orders.
	DefaultDeliveryFee = 50.0
	// TaxRate is shown on the payment step. Display only — the persisted
	// order total never includes it.
	TaxRate = 0.10
	// CompletionDelay is how long the confirmation stays up before the
	// session resets on its own.
	CompletionDelay = 3 * time.Second
)

var (
	// ErrEmptyCart blocks checkout entry with nothing in the cart.
	ErrEmptyCart = errors.New("your cart is empty")
	// ErrNoPaymentMethod blocks the payment step without a selection.
	ErrNoPaymentMethod = errors.New("please select a payment method")
	// ErrInvalidOTP reports a code mismatch. The customer may retry
	// immediately; there is no attempt counter.
	ErrInvalidOTP = errors.New("invalid OTP, please try again")
)

// Identity is the verified customer for the rest of the browsing session.
// Present after an OTP login or a completed order; lets later checkouts
// skip the OTP step.
type Identity struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Orchestrator drives one session's checkout flow from cart review
// through details, payment and OTP to a finalized order. It owns the
// ephemeral checkout state and is the sole writer of orders and the
// profile.
type Orchestrator struct {
	mu sync.Mutex

	cart  *cart.Cart
	store *store.Store
	otp   *otp.Generator

	stage         statemachine.Stage
	details       Details
	paymentMethod models.PaymentMethod
	generatedOTP  string
	identity      *Identity
	lastOrder     *models.Order

	completeTimer *time.Timer
	completeDelay time.Duration
	deliveryFee   float64
	now           func() time.Time
	orderNum      func() int
}

// Option customises an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithDeliveryFee overrides the flat delivery fee.
func WithDeliveryFee(fee float64) Option {
	return func(o *Orchestrator) { o.deliveryFee = fee }
}

// WithCompletionDelay shortens the confirmation window in tests.
func WithCompletionDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.completeDelay = d }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithOrderNumber replaces the order-number draw. The draw must return a
// value in [100000, 999999].
func WithOrderNumber(f func() int) Option {
	return func(o *Orchestrator) { o.orderNum = f }
}

// New creates an orchestrator sitting at the cart stage.
func New(c *cart.Cart, s *store.Store, gen *otp.Generator, opts ...Option) *Orchestrator {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	o := &Orchestrator{
		cart:          c,
		store:         s,
		otp:           gen,
		stage:         statemachine.StageCart,
		completeDelay: CompletionDelay,
		deliveryFee:   DefaultDeliveryFee,
		now:           time.Now,
		orderNum:      func() int { return 100000 + r.Intn(900000) },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Stage returns the flow's current position.
func (o *Orchestrator) Stage() statemachine.Stage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stage
}

// Details returns the customer form as entered so far.
func (o *Orchestrator) Details() Details {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.details
}

// GeneratedOTP returns the code "sent" for this checkout. The mock
// surfaces it directly to the customer instead of dispatching it.
func (o *Orchestrator) GeneratedOTP() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.generatedOTP
}

// Subtotal is the cart total before the delivery fee.
func (o *Orchestrator) Subtotal() float64 {
	return o.cart.TotalPrice()
}

// DeliveryFee is the flat fee, charged only when delivery is selected.
func (o *Orchestrator) DeliveryFee() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deliveryFeeLocked()
}

func (o *Orchestrator) deliveryFeeLocked() float64 {
	if o.details.DeliveryMethod == models.DeliveryDelivery {
		return o.deliveryFee
	}
	return 0
}

// Tax is the payment-step display line; it never lands on the order.
func (o *Orchestrator) Tax() float64 {
	return o.cart.TotalPrice() * TaxRate
}

// FinalTotal is what the order is charged and persisted at: cart total
// plus delivery fee.
func (o *Orchestrator) FinalTotal() float64 {
	o.mu.Lock()
	fee := o.deliveryFeeLocked()
	o.mu.Unlock()
	return o.cart.TotalPrice() + fee
}

// Begin opens the checkout from cart review. Fails on an empty cart and
// pre-fills the form from the remembered customer on first entry.
func (o *Orchestrator) Begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := statemachine.CanTransition(o.stage, statemachine.StageCheckout); err != nil {
		return err
	}
	if o.cart.TotalItems() == 0 {
		return ErrEmptyCart
	}
	if o.details.Name == "" && o.details.Phone == "" {
		if cust, ok := o.store.RememberedCustomer(); ok {
			o.details.Name = cust.Name
			o.details.Phone = cust.Phone
		}
	}
	o.stage = statemachine.StageCheckout
	return nil
}

// SubmitDetails validates the customer form and moves on to payment.
// On a validation failure the flow stays at checkout and nothing is
// committed.
func (o *Orchestrator) SubmitDetails(d Details) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := statemachine.CanTransition(o.stage, statemachine.StagePayment); err != nil {
		return err
	}
	if errs := ValidateDetails(d); errs != nil {
		return errs
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = NormalizePhone(d.Phone)
	o.details = d
	o.store.RememberCustomer(d.Name, d.Phone)
	o.generatedOTP = ""
	o.stage = statemachine.StagePayment
	return nil
}

// SelectPayment records the payment method and asks for OTP
// verification. A session with a verified identity skips the OTP step
// and finalizes immediately, reusing the stored name and phone.
func (o *Orchestrator) SelectPayment(method models.PaymentMethod) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if method == "" {
		if err := statemachine.CanTransition(o.stage, statemachine.StageOtpVerification); err != nil {
			return err
		}
		return ErrNoPaymentMethod
	}
	if o.identity != nil {
		if err := statemachine.CanTransition(o.stage, statemachine.StageComplete); err != nil {
			return err
		}
		o.paymentMethod = method
		o.details.Name = o.identity.Name
		o.details.Phone = o.identity.Phone
		o.finalizeLocked()
		return nil
	}
	if err := statemachine.CanTransition(o.stage, statemachine.StageOtpVerification); err != nil {
		return err
	}
	o.paymentMethod = method
	o.generatedOTP = o.otp.Generate()
	o.stage = statemachine.StageOtpVerification
	return nil
}

// VerifyOTP compares the entered code and finalizes on a match. A
// mismatch leaves the flow at the OTP step.
func (o *Orchestrator) VerifyOTP(entered string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := statemachine.CanTransition(o.stage, statemachine.StageComplete); err != nil {
		return err
	}
	if !otp.Verify(entered, o.generatedOTP) {
		return ErrInvalidOTP
	}
	o.finalizeLocked()
	return nil
}

// finalizeLocked runs order finalization: build the order, persist it,
// accumulate the profile, verify the identity for the session and clear
// the cart. The confirmation auto-dismisses after the completion delay.
func (o *Orchestrator) finalizeLocked() {
	lines := o.cart.Snapshot()
	items := make([]models.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = models.OrderItem{Name: line.Name, Quantity: line.Quantity, Price: line.Price}
	}

	order := models.Order{
		ID:             fmt.Sprintf("ORD%d", o.orderNum()),
		Date:           o.now().Format(time.RFC3339),
		Items:          items,
		Total:          o.cart.TotalPrice() + o.deliveryFeeLocked(),
		Status:         models.StatusProcessing,
		DeliveryMethod: o.details.DeliveryMethod,
		PaymentMethod:  o.paymentMethod,
		LoyaltyPoints:  o.cart.TotalLoyaltyPoints(),
	}

	o.store.AppendOrder(order)
	o.store.RecordOrderForProfile(o.details.Name, o.details.Phone, order.LoyaltyPoints)
	o.identity = &Identity{Name: o.details.Name, Phone: o.details.Phone}
	o.lastOrder = &order
	o.cart.Clear()
	o.stage = statemachine.StageComplete

	if o.completeTimer != nil {
		o.completeTimer.Stop()
	}
	o.completeTimer = time.AfterFunc(o.completeDelay, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.stage == statemachine.StageComplete {
			o.resetLocked()
		}
	})
}

// Back steps one stage backward without discarding entered fields. The
// OTP code is cleared on re-entry to payment; backing out of cart review
// closes the flow.
func (o *Orchestrator) Back() {
	o.mu.Lock()
	defer o.mu.Unlock()
	prev, ok := statemachine.Previous(o.stage)
	if !ok {
		return
	}
	if prev == statemachine.StageClosed {
		o.closeLocked()
		return
	}
	if prev == statemachine.StagePayment {
		o.generatedOTP = ""
	}
	o.stage = prev
}

// Close cancels the flow: any pending completion timer is stopped and
// the checkout session resets. The cart is untouched — it only empties
// through finalization.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closeLocked()
}

func (o *Orchestrator) closeLocked() {
	if o.completeTimer != nil {
		o.completeTimer.Stop()
		o.completeTimer = nil
	}
	o.resetLocked()
}

// resetLocked discards the ephemeral session. The verified identity and
// the last order survive for the rest of the browsing session.
func (o *Orchestrator) resetLocked() {
	o.details = Details{}
	o.paymentMethod = ""
	o.generatedOTP = ""
	o.stage = statemachine.StageCart
}

// SetIdentity marks the session verified after an OTP login.
func (o *Orchestrator) SetIdentity(name, phone string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.identity = &Identity{Name: name, Phone: phone}
}

// Identity returns the verified customer, if any.
func (o *Orchestrator) Identity() (Identity, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.identity == nil {
		return Identity{}, false
	}
	return *o.identity, true
}

// LastOrder returns the most recently finalized order for the
// confirmation view.
func (o *Orchestrator) LastOrder() (models.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.lastOrder == nil {
		return models.Order{}, false
	}
	return *o.lastOrder, true
}
