package payment

import (
	"math"
	"regexp"
	"strconv"
)

const Currency = "GEL"

var descSanitizer = regexp.MustCompile(`[^a-zA-Z0-9 -]`)

// CheckoutParams is everything the merchant supplies for one payment
// initiation. Amount is in major currency units.
type CheckoutParams struct {
	OrderID           string
	MerchantID        string
	Description       string
	Amount            float64
	ServerCallbackURL string
	ResponseURL       string
}

// CheckoutRequest is the JSON body posted to the gateway.
type CheckoutRequest struct {
	Request map[string]string `json:"request"`
}

// SanitizeDescription strips everything the gateway does not accept in
// order_desc, leaving only letters, digits, spaces and hyphens.
func SanitizeDescription(desc string) string {
	return descSanitizer.ReplaceAllString(desc, "")
}

// MinorUnits converts a major-unit amount to the gateway's integer minor
// units (amount times 100, rounded).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// BuildCheckoutRequest assembles and signs the payment-initiation body.
func BuildCheckoutRequest(p CheckoutParams, secretKey string) (CheckoutRequest, error) {
	params := map[string]string{
		"order_id":            p.OrderID,
		"merchant_id":         p.MerchantID,
		"order_desc":          SanitizeDescription(p.Description),
		"amount":              strconv.FormatInt(MinorUnits(p.Amount), 10),
		"currency":            Currency,
		"server_callback_url": p.ServerCallbackURL,
		"response_url":        p.ResponseURL,
	}

	signature, err := Signature(params, secretKey)
	if err != nil {
		return CheckoutRequest{}, err
	}
	params[signatureField] = signature

	return CheckoutRequest{Request: params}, nil
}
