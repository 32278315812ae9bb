package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{PaymentPending, PaymentPaid, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentPending, PaymentExpired, true},
		{PaymentPending, PaymentCancelled, true},
		{PaymentPending, PaymentRefunded, false},
		{PaymentPaid, PaymentRefunded, true},
		{PaymentPaid, PaymentPending, false},
		{PaymentPaid, PaymentFailed, false},
		{PaymentFailed, PaymentPaid, false},
		{PaymentExpired, PaymentPending, false},
		{PaymentCancelled, PaymentPaid, false},
		{PaymentRefunded, PaymentPaid, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminalPaymentStatus(t *testing.T) {
	assert.False(t, IsTerminalPaymentStatus(PaymentPending))
	assert.False(t, IsTerminalPaymentStatus(PaymentPaid))

	for _, status := range []string{PaymentFailed, PaymentExpired, PaymentCancelled, PaymentRefunded} {
		assert.True(t, IsTerminalPaymentStatus(status), status)
	}
}
