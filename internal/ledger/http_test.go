package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/signature"
)

func newGateway(t *testing.T, secret string, handle func(q map[string]string) response) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if !signature.Verify(secret, q, q.Get(signature.ParamSignature)) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(response{Status: "error", Message: "bad signature"})
			return
		}
		flat := map[string]string{}
		for k := range q {
			flat[k] = q.Get(k)
		}
		_ = json.NewEncoder(w).Encode(handle(flat))
	}))
}

func TestHTTPClient_Reads(t *testing.T) {
	srv := newGateway(t, "s3cret", func(q map[string]string) response {
		switch q["action"] {
		case ActionBalance:
			return response{Status: StatusOK, Amount: 42}
		case ActionAllowance:
			assert.Equal(t, "pool", q["spender"])
			return response{Status: StatusOK, Amount: 7}
		}
		return response{Status: "error"}
	})
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "s3cret", "pool")
	bal, err := c.BalanceOf(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), bal)

	allowance, err := c.AllowanceOf(context.Background(), "alice", "pool")
	require.NoError(t, err)
	assert.Equal(t, int64(7), allowance)
}

func TestHTTPClient_TransferRejected(t *testing.T) {
	srv := newGateway(t, "s3cret", func(q map[string]string) response {
		assert.Equal(t, "pool", q["from"])
		assert.Equal(t, "20", q["amount"])
		return response{Status: "error", Message: "pool empty"}
	})
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "s3cret", "pool")
	err := c.Push(context.Background(), "alice", 20, "req-1")
	assert.ErrorIs(t, err, domain.ErrTransferRejected)
	assert.Contains(t, err.Error(), "pool empty")
}

func TestHTTPClient_WrongSecret(t *testing.T) {
	srv := newGateway(t, "s3cret", func(q map[string]string) response {
		return response{Status: StatusOK}
	})
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "wrong", "pool")
	assert.ErrorIs(t, c.Pull(context.Background(), "alice", 10, "r"), domain.ErrTransferRejected)
}

func TestHTTPClient_SlowReplyIsUnconfirmed(t *testing.T) {
	var applied atomic.Int32
	srv := newGateway(t, "s3cret", func(q map[string]string) response {
		applied.Add(1)
		time.Sleep(300 * time.Millisecond)
		return response{Status: StatusOK}
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	c := NewHTTPClient(srv.URL, "s3cret", "pool")
	err := c.Push(ctx, "alice", 20, "req-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLedgerUnconfirmed)
	assert.NotErrorIs(t, err, domain.ErrTransferRejected, "the ledger applied it")
	assert.Equal(t, int32(1), applied.Load())
}

func TestHTTPClient_GatewayErrorIsUnconfirmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "s3cret", "pool")
	err := c.Push(context.Background(), "alice", 20, "req-1")
	assert.ErrorIs(t, err, domain.ErrLedgerUnconfirmed)
	assert.NotErrorIs(t, err, domain.ErrTransferRejected)
}
