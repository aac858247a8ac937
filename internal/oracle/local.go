package oracle

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// LocalOracle is an in-process oracle. Each word is Keccak-256 of an ed25519
// signature over the request id, so anyone with the public key can check it
// was not chosen after the fact.
type LocalOracle struct {
	id    string
	key   ed25519.PrivateKey
	delay time.Duration

	mu       sync.Mutex
	callback Callback
	timers   map[uuid.UUID]*time.Timer
	closed   bool
	wg       sync.WaitGroup
}

// NewLocalOracle creates an oracle that delivers each word after delay.
// A nil key generates a fresh one.
func NewLocalOracle(id string, key ed25519.PrivateKey, delay time.Duration) (*LocalOracle, error) {
	if key == nil {
		var err error
		if _, key, err = ed25519.GenerateKey(rand.Reader); err != nil {
			return nil, fmt.Errorf("failed to generate oracle key: %w", err)
		}
	}
	return &LocalOracle{
		id:     id,
		key:    key,
		delay:  delay,
		timers: make(map[uuid.UUID]*time.Timer),
	}, nil
}

func (o *LocalOracle) ID() string { return o.id }

// PublicKey verifies proofs produced by this oracle
func (o *LocalOracle) PublicKey() ed25519.PublicKey {
	return o.key.Public().(ed25519.PublicKey)
}

// Bind sets the delivery target. Must be called before the first request.
func (o *LocalOracle) Bind(cb Callback) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.callback = cb
}

// RequestRandomness schedules delivery on a timer, so the callback always runs
// on another goroutine after this returns.
func (o *LocalOracle) RequestRandomness(ctx context.Context, correlationID uuid.UUID) (Handle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return "", ErrOracleStopped
	}
	if o.callback == nil {
		return "", ErrNoCallback
	}
	if _, ok := o.timers[correlationID]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateRequest, correlationID)
	}

	word, proof := Derive(o.key, correlationID)
	handle := Handle(hex.EncodeToString(proof[:HandleBytes]))

	logger.FromContext(ctx).Debug(LogMsgRandomnessRequested,
		"spin_id", correlationID, "handle", handle, "delay", o.delay)

	o.timers[correlationID] = time.AfterFunc(o.delay, func() {
		o.deliver(correlationID, word)
	})

	return handle, nil
}

func (o *LocalOracle) deliver(id uuid.UUID, word *big.Int) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	delete(o.timers, id)
	cb := o.callback
	o.wg.Add(1)
	o.mu.Unlock()
	defer o.wg.Done()

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)
	if err := cb(ctx, o.id, id, word); err != nil {
		log.Warn(LogMsgDeliveryRejected, "spin_id", id, "error", err)
		return
	}
	log.Debug(LogMsgDelivered, "spin_id", id)
}

// Pending returns the number of scheduled, undelivered words
func (o *LocalOracle) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.timers)
}

// Shutdown cancels undelivered words and waits for in-flight callbacks
func (o *LocalOracle) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	for id, timer := range o.timers {
		timer.Stop()
		log.Info(LogMsgDeliveryCancelled, "spin_id", id)
	}
	o.timers = make(map[uuid.UUID]*time.Timer)
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

// Derive returns the random word for id and the signature it was hashed from
func Derive(key ed25519.PrivateKey, id uuid.UUID) (*big.Int, []byte) {
	proof := ed25519.Sign(key, id[:])
	return wordFromProof(proof), proof
}

// VerifyWord checks that word was derived for id by the holder of pub
func VerifyWord(pub ed25519.PublicKey, id uuid.UUID, word *big.Int, proof []byte) bool {
	if !ed25519.Verify(pub, id[:], proof) {
		return false
	}
	return wordFromProof(proof).Cmp(word) == 0
}

func wordFromProof(proof []byte) *big.Int {
	h := sha3.NewLegacyKeccak256()
	h.Write(proof)
	return new(big.Int).SetBytes(h.Sum(nil))
}
