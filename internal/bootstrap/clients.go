package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/BrandishSpin_Go/internal/config"
	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/oracle"
)

// InitializeLedger returns the token ledger client. The in-memory ledger is
// returned as well so development setups can mint and approve.
func InitializeLedger(cfg *config.Config) (ledger.Client, *ledger.MemoryLedger, error) {
	switch cfg.LedgerBackend {
	case BackendMemory:
		l := ledger.NewMemoryLedger(cfg.CustodyAccount)
		l.Mint(cfg.CustodyAccount, DevPoolFunding)
		slog.Info(LogMsgDevPoolFunded,
			"account", cfg.CustodyAccount,
			"amount", ledger.FormatAmount(DevPoolFunding, cfg.TokenDecimals)+" "+cfg.TokenSymbol)
		slog.Info(LogMsgLedgerReady, "backend", BackendMemory)
		return l, l, nil

	case BackendHTTP:
		slog.Info(LogMsgLedgerReady, "backend", BackendHTTP, "url", cfg.LedgerURL)
		return ledger.NewHTTPClient(cfg.LedgerURL, cfg.LedgerSecret, cfg.CustodyAccount), nil, nil
	}

	return nil, nil, fmt.Errorf("%s: ledger %q", ErrMsgUnknownBackend, cfg.LedgerBackend)
}

// InitializeOracle returns the randomness oracle client. A local oracle is
// returned as well; it must be bound to the spin service before use.
func InitializeOracle(cfg *config.Config) (oracle.Client, *oracle.LocalOracle, error) {
	switch cfg.OracleBackend {
	case BackendLocal:
		local, err := oracle.NewLocalOracle(cfg.OracleID, nil, cfg.OracleDeliveryDelay)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateOracle, err)
		}
		slog.Info(LogMsgOracleReady, "backend", BackendLocal, "id", cfg.OracleID, "delay", cfg.OracleDeliveryDelay)
		return local, local, nil

	case BackendHTTP:
		slog.Info(LogMsgOracleReady, "backend", BackendHTTP, "id", cfg.OracleID, "url", cfg.OracleURL)
		return oracle.NewHTTPClient(cfg.OracleID, cfg.OracleURL, cfg.OracleSecret, cfg.OracleCallbackURL), nil, nil
	}

	return nil, nil, fmt.Errorf("%s: oracle %q", ErrMsgUnknownBackend, cfg.OracleBackend)
}
