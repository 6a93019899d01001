// Package payment builds and signs requests for the hosted checkout gateway.
//
// The signature format is the gateway's wire contract: any drift in key
// filtering, sort order or the separator makes the gateway reject the
// request, so the canonicalization lives in one place and is covered by
// fixed test vectors.
package payment

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
)

const signatureField = "signature"

var ErrNoSignatureInput = errors.New("no parameters eligible for signing")

// Signature computes the gateway request signature: take every parameter
// except the signature field itself whose value is non-empty, sort the keys
// in ASCII order, join the secret key followed by the values with "|", and
// return the lowercase hex SHA-1 of that string.
func Signature(params map[string]string, secretKey string) (string, error) {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == signatureField || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", ErrNoSignatureInput
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	parts = append(parts, secretKey)
	for _, k := range keys {
		parts = append(parts, params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:]), nil
}

// VerifySignature recomputes the signature over the received parameters and
// compares it against the one the gateway sent.
func VerifySignature(params map[string]string, secretKey string) (bool, error) {
	received, ok := params[signatureField]
	if !ok || received == "" {
		return false, nil
	}
	expected, err := Signature(params, secretKey)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(received))) == 1, nil
}
