package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDescription(t *testing.T) {
	assert.Equal(t, "Order 42 - gift", SanitizeDescription("Order #42 - gift!"))
	assert.Equal(t, "", SanitizeDescription("სათამაშო"))
	assert.Equal(t, "plain", SanitizeDescription("plain"))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1500), MinorUnits(15))
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(700), MinorUnits(6.999))
	assert.Equal(t, int64(0), MinorUnits(0))
}

func TestBuildCheckoutRequest(t *testing.T) {
	req, err := BuildCheckoutRequest(CheckoutParams{
		OrderID:           "ord-1",
		MerchantID:        "1396424",
		Description:       "Demo order",
		Amount:            15,
		ServerCallbackURL: "https://shop.example/api/payment/callback",
		ResponseURL:       "https://shop.example/thanks",
	}, "test")
	require.NoError(t, err)

	assert.Equal(t, "1500", req.Request["amount"])
	assert.Equal(t, "GEL", req.Request["currency"])
	assert.Equal(t, "Demo order", req.Request["order_desc"])
	// Same inputs as the fixed gateway vector.
	assert.Equal(t, "af747c7aaa109666f8b72bb84ce61e7f22a8f221", req.Request["signature"])
}

func TestBuildCheckoutRequestSignatureCoversSentFields(t *testing.T) {
	req, err := BuildCheckoutRequest(CheckoutParams{
		OrderID:    "ord-2",
		MerchantID: "m",
		Amount:     3.5,
	}, "sk")
	require.NoError(t, err)

	ok, err := VerifySignature(req.Request, "sk")
	require.NoError(t, err)
	assert.True(t, ok)
}
