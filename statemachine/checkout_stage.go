package statemachine

import "errors"

// Stage represents the checkout flow's position
type Stage string

const (
	StageCart            Stage = "cart"
	StageCheckout        Stage = "checkout"
	StagePayment         Stage = "payment"
	StageOtpVerification Stage = "otp_verification"
	StageComplete        Stage = "complete"
	StageClosed          Stage = "closed"
)

// Transition defines a valid forward stage change
type Transition struct {
	From Stage
	To   Stage
}

// validTransitions is the authoritative flow definition
var validTransitions = []Transition{
	// Customer opens checkout from a non-empty cart
	{From: StageCart, To: StageCheckout},
	// Valid customer details move on to payment selection
	{From: StageCheckout, To: StagePayment},
	// A chosen payment method asks for OTP verification
	{From: StagePayment, To: StageOtpVerification},
	// A session that already verified its identity skips the OTP step
	{From: StagePayment, To: StageComplete},
	// Correct OTP finalizes the order
	{From: StageOtpVerification, To: StageComplete},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From Stage
	To   Stage
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// previousStage drives back-navigation: one step backward per gesture,
// with the cart stage falling out to closed.
var previousStage = map[Stage]Stage{
	StageOtpVerification: StagePayment,
	StagePayment:         StageCheckout,
	StageCheckout:        StageCart,
	StageCart:            StageClosed,
}

// ValidTransitionsFrom returns all valid next stages from a given stage
func ValidTransitionsFrom(stage Stage) []Stage {
	var nexts []Stage
	for _, t := range validTransitions {
		if t.From == stage {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether the flow may move between two stages
func CanTransition(from, to Stage) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// Previous returns the stage one step backward. The second result is
// false for stages with no backward step (complete, closed).
func Previous(stage Stage) (Stage, bool) {
	prev, ok := previousStage[stage]
	return prev, ok
}

func describeValidFrom(stage Stage) string {
	nexts := ValidTransitionsFrom(stage)
	if len(nexts) == 0 {
		return "none (terminal stage)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full flow definition for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
