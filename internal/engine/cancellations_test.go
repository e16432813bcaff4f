package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kegworth-pc/raffle-tickets/internal/engine"
)

func refund(paymentID, amount string) engine.Entry {
	return engine.Entry{
		PaymentID:  paymentID,
		GrossSales: decimal.RequireFromString(amount),
	}
}

func TestCancellationSetMarksNegativeSales(t *testing.T) {
	s := engine.NewCancellationSet()

	s.Observe(refund("P1", "10.00"))
	assert.False(t, s.Cancelled("P1"))

	s.Observe(refund("P1", "-10.00"))
	assert.True(t, s.Cancelled("P1"))
	assert.False(t, s.Cancelled("P2"))
	assert.Equal(t, 1, s.Len())
}

func TestCancellationSetIgnoresEmptyPaymentID(t *testing.T) {
	s := engine.NewCancellationSet()

	s.Observe(refund("", "-5.00"))

	assert.False(t, s.Cancelled(""))
	assert.Equal(t, 0, s.Len())
}

func TestCancellationSetZeroSalesIsNotARefund(t *testing.T) {
	s := engine.NewCancellationSet()

	s.Observe(engine.Entry{PaymentID: "P1"})

	assert.False(t, s.Cancelled("P1"))
}
