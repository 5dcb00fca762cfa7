package checkout

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RekhaKadam/sonna-s-cafe/cart"
	"github.com/RekhaKadam/sonna-s-cafe/models"
	"github.com/RekhaKadam/sonna-s-cafe/otp"
	"github.com/RekhaKadam/sonna-s-cafe/statemachine"
	"github.com/RekhaKadam/sonna-s-cafe/store"
)

func newTestFlow(t *testing.T, opts ...Option) (*cart.Cart, *store.Store, *Orchestrator) {
	t.Helper()
	n := 0
	c := cart.New(cart.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("line-%d", n)
	}))
	s := store.New(store.NewMemoryKV())
	gen := otp.NewGeneratorWithSource(func(int) int { return 23456 }) // → "123456"
	base := []Option{
		WithOrderNumber(func() int { return 424242 }),
		WithClock(func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }),
		WithCompletionDelay(time.Hour),
	}
	return c, s, New(c, s, gen, append(base, opts...)...)
}

func validDetails() Details {
	return Details{Name: "Rekha", Phone: "9876543210", DeliveryMethod: models.DeliveryPickup}
}

func TestBegin_EmptyCartFails(t *testing.T) {
	_, _, o := newTestFlow(t)

	err := o.Begin()
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, statemachine.StageCart, o.Stage())
}

func TestSubmitDetails_PhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"98765-43210", true}, // separators stripped before the digit count
		{"98765", false},
		{"98765432101", false},
		{"abcdefghij", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			c, _, o := newTestFlow(t)
			c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
			require.NoError(t, o.Begin())

			err := o.SubmitDetails(Details{Name: "Rekha", Phone: tc.phone, DeliveryMethod: models.DeliveryDineIn})
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, statemachine.StagePayment, o.Stage())
				assert.Equal(t, "9876543210", o.Details().Phone)
			} else {
				var fields FieldErrors
				require.ErrorAs(t, err, &fields)
				assert.Contains(t, fields, "phone")
				assert.Equal(t, statemachine.StageCheckout, o.Stage())
			}
		})
	}
}

func TestSubmitDetails_AddressRequiredOnlyForDelivery(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())

	err := o.SubmitDetails(Details{Name: "Rekha", Phone: "9876543210", DeliveryMethod: models.DeliveryDelivery})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "address")
	assert.Equal(t, statemachine.StageCheckout, o.Stage())

	err = o.SubmitDetails(Details{
		Name: "Rekha", Phone: "9876543210",
		DeliveryMethod: models.DeliveryDelivery, Address: "12 Lake Road",
	})
	assert.NoError(t, err)
}

func TestSubmitDetails_BlankNameFails(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())

	err := o.SubmitDetails(Details{Name: "   ", Phone: "9876543210", DeliveryMethod: models.DeliveryDineIn})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "name")
}

func TestDeliveryFee_Gating(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Khao Suey", Price: 280})
	require.NoError(t, o.Begin())

	require.NoError(t, o.SubmitDetails(Details{Name: "Rekha", Phone: "9876543210", DeliveryMethod: models.DeliveryDineIn}))
	assert.Equal(t, 0.0, o.DeliveryFee())
	assert.Equal(t, 280.0, o.FinalTotal())

	o.Back()
	require.NoError(t, o.SubmitDetails(Details{
		Name: "Rekha", Phone: "9876543210",
		DeliveryMethod: models.DeliveryDelivery, Address: "12 Lake Road",
	}))
	assert.Equal(t, 50.0, o.DeliveryFee())
	assert.Equal(t, 330.0, o.FinalTotal())
}

func TestSelectPayment_RequiresMethod(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))

	err := o.SelectPayment("")
	assert.ErrorIs(t, err, ErrNoPaymentMethod)
	assert.Equal(t, statemachine.StagePayment, o.Stage())
}

func TestVerifyOTP_MismatchStaysPut(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentCOD))
	require.Equal(t, statemachine.StageOtpVerification, o.Stage())

	err := o.VerifyOTP("000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
	assert.Equal(t, statemachine.StageOtpVerification, o.Stage())

	// immediately re-triable, no lockout
	assert.NoError(t, o.VerifyOTP(o.GeneratedOTP()))
}

func TestEndToEnd_OrderAndProfile(t *testing.T) {
	c, s, o := newTestFlow(t)

	c.AddItem(cart.Candidate{Name: "Item A", Price: 100, LoyaltyPoints: 5})
	c.AddItem(cart.Candidate{Name: "Item A", Price: 100, LoyaltyPoints: 5})
	c.AddItem(cart.Candidate{Name: "Item B", Price: 50})

	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentCOD))
	require.NoError(t, o.VerifyOTP("123456"))

	require.Equal(t, statemachine.StageComplete, o.Stage())

	orders := s.Orders()
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, "ORD424242", order.ID)
	assert.Equal(t, 250.0, order.Total)
	assert.Equal(t, 10, order.LoyaltyPoints)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, models.DeliveryPickup, order.DeliveryMethod)
	assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
	require.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderItem{Name: "Item A", Quantity: 2, Price: 100}, order.Items[0])
	assert.Equal(t, models.OrderItem{Name: "Item B", Quantity: 1, Price: 50}, order.Items[1])

	profile, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, 1, profile.Orders)
	assert.Equal(t, 10, profile.LoyaltyPoints)

	assert.Zero(t, c.TotalItems(), "cart empties on finalization")

	last, ok := o.LastOrder()
	require.True(t, ok)
	assert.Equal(t, order.ID, last.ID)
}

func TestIdentityShortcut_SkipsOTP(t *testing.T) {
	c, s, o := newTestFlow(t)
	o.SetIdentity("Rekha", "9876543210")

	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140, LoyaltyPoints: 4})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentUPI))

	assert.Equal(t, statemachine.StageComplete, o.Stage())
	assert.Empty(t, o.GeneratedOTP())
	require.Len(t, s.Orders(), 1)
}

func TestSecondOrder_SkipsOTPAndAccumulates(t *testing.T) {
	c, s, o := newTestFlow(t)

	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140, LoyaltyPoints: 4})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentCOD))
	require.NoError(t, o.VerifyOTP("123456"))

	o.Close()

	c.AddItem(cart.Candidate{Name: "Sliders", Price: 185, LoyaltyPoints: 6})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentCOD))

	// first order verified the identity, so no OTP step this time
	assert.Equal(t, statemachine.StageComplete, o.Stage())

	require.Len(t, s.Orders(), 2)
	profile, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, 2, profile.Orders)
	assert.Equal(t, 10, profile.LoyaltyPoints)
}

func TestBack_KeepsFieldsAndClearsOTP(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentCOD))
	require.NotEmpty(t, o.GeneratedOTP())

	o.Back()
	assert.Equal(t, statemachine.StagePayment, o.Stage())
	assert.Empty(t, o.GeneratedOTP(), "OTP clears on re-entry to payment")

	o.Back()
	assert.Equal(t, statemachine.StageCheckout, o.Stage())
	assert.Equal(t, "Rekha", o.Details().Name, "entered fields survive back-navigation")

	o.Back()
	assert.Equal(t, statemachine.StageCart, o.Stage())
}

func TestBack_OutOfCartClosesFlow(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))

	o.Back()
	o.Back()
	require.Equal(t, statemachine.StageCart, o.Stage())

	o.Back() // out of the drawer entirely
	assert.Equal(t, statemachine.StageCart, o.Stage())
	assert.Empty(t, o.Details().Name, "session resets on close")
	assert.Equal(t, 1, c.TotalItems(), "cart untouched by close")
}

func TestClose_LeavesCartUntouched(t *testing.T) {
	c, _, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))

	o.Close()
	assert.Equal(t, statemachine.StageCart, o.Stage())
	assert.Equal(t, 1, c.TotalItems())
}

func TestCompletionTimer_ResetsSession(t *testing.T) {
	c, _, o := newTestFlow(t, WithCompletionDelay(20*time.Millisecond))
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentCOD))
	require.NoError(t, o.VerifyOTP("123456"))
	require.Equal(t, statemachine.StageComplete, o.Stage())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, statemachine.StageCart, o.Stage())
	assert.Empty(t, o.Details().Name)
}

func TestClose_CancelsCompletionTimer(t *testing.T) {
	c, _, o := newTestFlow(t, WithCompletionDelay(30*time.Millisecond))
	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))
	require.NoError(t, o.SelectPayment(models.PaymentCOD))
	require.NoError(t, o.VerifyOTP("123456"))

	o.Close()
	require.Equal(t, statemachine.StageCart, o.Stage())

	// a new checkout opened before the old timer would have fired must
	// not be torn down by it
	c.AddItem(cart.Candidate{Name: "Sliders", Price: 185})
	require.NoError(t, o.Begin())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, statemachine.StageCheckout, o.Stage())
}

func TestBegin_PrefillsRememberedCustomer(t *testing.T) {
	c, s, o := newTestFlow(t)
	s.RememberCustomer("Rekha", "9876543210")

	c.AddItem(cart.Candidate{Name: "Mojito", Price: 140})
	require.NoError(t, o.Begin())

	d := o.Details()
	assert.Equal(t, "Rekha", d.Name)
	assert.Equal(t, "9876543210", d.Phone)
}

func TestTax_IsDisplayOnly(t *testing.T) {
	c, s, o := newTestFlow(t)
	c.AddItem(cart.Candidate{Name: "Khao Suey", Price: 280})
	require.NoError(t, o.Begin())
	require.NoError(t, o.SubmitDetails(validDetails()))

	assert.Equal(t, 28.0, o.Tax())

	require.NoError(t, o.SelectPayment(models.PaymentCOD))
	require.NoError(t, o.VerifyOTP("123456"))

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, 280.0, orders[0].Total, "tax never lands on the order")
}

func TestMergeInvariant_DistinctNamesEqualsLines(t *testing.T) {
	c, _, _ := newTestFlow(t)

	names := []string{"a", "B", "A", "b", "c", "A", "C", "a"}
	for _, n := range names {
		c.AddItem(cart.Candidate{Name: n, Price: 10})
	}

	assert.Len(t, c.Snapshot(), 3)
	assert.Equal(t, len(names), c.TotalItems())
}
