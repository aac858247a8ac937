// Package signature signs and verifies HMAC-SHA256 request parameters shared
// with the token ledger and randomness oracle.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
)

// ParamSignature is the query/body parameter carrying the signature
const ParamSignature = "signature"

// Sign concatenates parameter values in key order and returns the hex HMAC.
// The signature parameter itself is never signed.
func Sign(secret string, v url.Values) string {
	keys := make([]string, 0, len(v))
	for k := range v {
		if k == ParamSignature {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := make([]byte, 0, 256)
	for _, k := range keys {
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = append(buf, v.Get(k)...)
		buf = append(buf, '&')
	}

	m := hmac.New(sha256.New, []byte(secret))
	m.Write(buf)
	return hex.EncodeToString(m.Sum(nil))
}

// Verify reports whether sig is the signature of v under secret, in constant time
func Verify(secret string, v url.Values, sig string) bool {
	if secret == "" || sig == "" {
		return false
	}
	want, err := hex.DecodeString(Sign(secret, v))
	if err != nil {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	return hmac.Equal(want, got)
}
