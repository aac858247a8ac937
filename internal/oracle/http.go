package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/signature"
)

// HTTPClient submits randomness requests to a remote oracle service. The
// oracle answers later by POSTing a signed callback to callbackURL.
type HTTPClient struct {
	id          string
	endpoint    string
	secret      string
	callbackURL string
	http        *http.Client
}

// NewHTTPClient creates a remote oracle client
func NewHTTPClient(id, endpoint, secret, callbackURL string) *HTTPClient {
	return &HTTPClient{
		id:          id,
		endpoint:    endpoint,
		secret:      secret,
		callbackURL: callbackURL,
		http:        &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

func (c *HTTPClient) ID() string { return c.id }

func (c *HTTPClient) RequestRandomness(ctx context.Context, correlationID uuid.UUID) (Handle, error) {
	values := url.Values{}
	values.Set(ParamRequestID, correlationID.String())
	values.Set(ParamCallbackURL, c.callbackURL)
	values.Set(signature.ParamSignature, signature.Sign(c.secret, values))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("%w: status %d", domain.ErrOracleUnavailable, resp.StatusCode)
	}

	var body struct {
		Handle string `json:"handle"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}
	return Handle(body.Handle), nil
}

// CallbackValues is the form body of an oracle callback
func CallbackValues(requestID uuid.UUID, randomValue *big.Int) url.Values {
	v := url.Values{}
	v.Set(ParamRequestID, requestID.String())
	v.Set(ParamRandomValue, randomValue.String())
	return v
}

// signedCallbackValues binds the claimed oracle identity to the body
func signedCallbackValues(oracleID string, requestID uuid.UUID, randomValue *big.Int) url.Values {
	v := CallbackValues(requestID, randomValue)
	v.Set(ParamOracleID, oracleID)
	return v
}

// SignCallback produces the X-Oracle-Signature header value for a callback
// sent with X-Oracle-ID set to oracleID
func SignCallback(secret, oracleID string, requestID uuid.UUID, randomValue *big.Int) string {
	return signature.Sign(secret, signedCallbackValues(oracleID, requestID, randomValue))
}

// VerifyCallback checks a callback signature against the claimed oracle identity
func VerifyCallback(secret, oracleID string, requestID uuid.UUID, randomValue *big.Int, sig string) bool {
	return signature.Verify(secret, signedCallbackValues(oracleID, requestID, randomValue), sig)
}
