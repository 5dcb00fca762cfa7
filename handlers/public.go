package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/statemachine"
)

// GetStateMachineInfo documents the checkout flow
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	out := make([]gin.H, len(transitions))
	for i, t := range transitions {
		out[i] = gin.H{"from": t.From, "to": t.To}
	}
	c.JSON(http.StatusOK, gin.H{
		"stages": []statemachine.Stage{
			statemachine.StageCart,
			statemachine.StageCheckout,
			statemachine.StagePayment,
			statemachine.StageOtpVerification,
			statemachine.StageComplete,
			statemachine.StageClosed,
		},
		"transitions": out,
		"notes": gin.H{
			"back_navigation": "one stage backward per gesture; the OTP code clears on re-entry to payment",
			"otp_skip":        "a session with a verified identity goes straight from payment to complete",
		},
	})
}
