package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureFixedVector(t *testing.T) {
	// sha1("secret|1|2")
	sig, err := Signature(map[string]string{"a": "1", "b": "2"}, "secret")
	require.NoError(t, err)
	assert.Equal(t, "c03ff68332a1acc4916364aac1dbdfc713f98515", sig)
}

func TestSignatureKeyOrderIrrelevant(t *testing.T) {
	first, err := Signature(map[string]string{"b": "2", "a": "1"}, "secret")
	require.NoError(t, err)
	second, err := Signature(map[string]string{"a": "1", "b": "2"}, "secret")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSignatureIgnoresEmptyValues(t *testing.T) {
	with, err := Signature(map[string]string{"a": "1", "b": "2", "c": ""}, "secret")
	require.NoError(t, err)
	without, err := Signature(map[string]string{"a": "1", "b": "2"}, "secret")
	require.NoError(t, err)
	assert.Equal(t, without, with)
}

func TestSignatureExcludesSignatureField(t *testing.T) {
	with, err := Signature(map[string]string{"a": "1", "b": "2", "signature": "deadbeef"}, "secret")
	require.NoError(t, err)
	without, err := Signature(map[string]string{"a": "1", "b": "2"}, "secret")
	require.NoError(t, err)
	assert.Equal(t, without, with)
}

func TestSignatureNoEligibleParams(t *testing.T) {
	_, err := Signature(map[string]string{"signature": "x", "empty": ""}, "secret")
	assert.ErrorIs(t, err, ErrNoSignatureInput)

	_, err = Signature(nil, "secret")
	assert.ErrorIs(t, err, ErrNoSignatureInput)
}

func TestSignatureGatewayVector(t *testing.T) {
	// sha1("test|1500|GEL|1396424|Demo order|ord-1|https://shop.example/thanks|https://shop.example/api/payment/callback")
	params := map[string]string{
		"order_id":            "ord-1",
		"merchant_id":         "1396424",
		"order_desc":          "Demo order",
		"amount":              "1500",
		"currency":            "GEL",
		"response_url":        "https://shop.example/thanks",
		"server_callback_url": "https://shop.example/api/payment/callback",
	}

	sig, err := Signature(params, "test")
	require.NoError(t, err)
	assert.Equal(t, "af747c7aaa109666f8b72bb84ce61e7f22a8f221", sig)
}

func TestVerifySignature(t *testing.T) {
	params := map[string]string{"order_id": "ord-1", "amount": "700"}
	sig, err := Signature(params, "sk")
	require.NoError(t, err)
	// The signature is recomputed on verify, so only consistency matters.
	params["signature"] = sig

	ok, err := VerifySignature(params, "sk")
	require.NoError(t, err)
	assert.True(t, ok)

	params["signature"] = "0000000000000000000000000000000000000000"
	ok, err = VerifySignature(params, "sk")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifySignatureMissing(t *testing.T) {
	ok, err := VerifySignature(map[string]string{"order_id": "ord-1"}, "sk")
	require.NoError(t, err)
	assert.False(t, ok)
}
