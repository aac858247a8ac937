package spin

import (
	"context"
	"math/big"
	"testing"

	"github.com/osse101/BrandishSpin_Go/internal/database/memory"
	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/stats"
)

type nopPublisher struct{}

func (nopPublisher) PublishWithRetry(context.Context, event.Event) {}

func newBenchService(b *testing.B) (Service, *manualOracle) {
	b.Helper()
	store := memory.NewStore()
	l := ledger.NewMemoryLedger(testCustody)
	o := &manualOracle{id: testOracleID}

	svc, err := NewService(store, stats.NewService(store), l, o, nopPublisher{}, testConfig)
	if err != nil {
		b.Fatal(err)
	}

	funds := int64(b.N+1) * testConfig.Cost
	l.Mint(testCustody, int64(b.N+1)*testConfig.WinPayout())
	l.Mint(testPlayer, funds)
	l.Approve(testPlayer, testCustody, funds)
	return svc, o
}

func BenchmarkCreateRequest(b *testing.B) {
	svc, _ := newBenchService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.CreateRequest(ctx, testPlayer); err != nil {
			b.Fatalf("CreateRequest failed: %v", err)
		}
	}
}

// BenchmarkCreateAndFulfill covers one full spin, alternating wins and losses.
func BenchmarkCreateAndFulfill(b *testing.B) {
	svc, _ := newBenchService(b)
	ctx := context.Background()
	win, loss := big.NewInt(250), big.NewInt(750)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req, err := svc.CreateRequest(ctx, testPlayer)
		if err != nil {
			b.Fatalf("CreateRequest failed: %v", err)
		}
		value := loss
		if i%2 == 0 {
			value = win
		}
		if err := svc.OnRandomnessReady(ctx, testOracleID, req.ID, value); err != nil {
			b.Fatalf("OnRandomnessReady failed: %v", err)
		}
	}
}
