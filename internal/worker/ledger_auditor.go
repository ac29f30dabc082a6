package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// LedgerFacade exposes the subset of application functionality required by the auditor.
type LedgerFacade interface {
	LedgerAuditBatch(ctx context.Context, afterID int64, limit int) ([]int64, error)
	ReconcileLedger(ctx context.Context, userID int64) (*model.LedgerReport, error)
}

// LedgerAuditor sweeps user wallets in the background and re-derives every
// balance from its transaction history, logging any drift. It never mutates
// state.
type LedgerAuditor struct {
	facade       LedgerFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	cursor int64

	jobs   chan int64
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewLedgerAuditor constructs the audit worker pool.
func NewLedgerAuditor(facade LedgerFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *LedgerAuditor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &LedgerAuditor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan int64, batchSize*workers),
	}
}

// Start launches background processing.
func (a *LedgerAuditor) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	for i := 0; i < a.workers; i++ {
		a.wg.Add(1)
		go a.worker(runCtx)
	}

	a.wg.Add(1)
	go a.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (a *LedgerAuditor) Stop() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.mu.Unlock()

	a.wg.Wait()
}

func (a *LedgerAuditor) dispatch(ctx context.Context) {
	defer a.wg.Done()
	defer close(a.jobs)
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.fetchAndDispatch(ctx)
		}
	}
}

func (a *LedgerAuditor) fetchAndDispatch(ctx context.Context) {
	ids, err := a.facade.LedgerAuditBatch(ctx, a.cursor, a.batchSize)
	if err != nil {
		a.logger.Error("fetch users for ledger audit failed", slog.String("error", err.Error()))
		return
	}
	if len(ids) == 0 {
		// Wrap around and start the sweep over.
		a.cursor = 0
		return
	}
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return
		case a.jobs <- id:
			a.cursor = id
		}
	}
}

func (a *LedgerAuditor) worker(ctx context.Context) {
	defer a.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case userID, ok := <-a.jobs:
			if !ok {
				return
			}
			a.auditUser(ctx, userID)
		}
	}
}

func (a *LedgerAuditor) auditUser(ctx context.Context, userID int64) {
	report, err := a.facade.ReconcileLedger(ctx, userID)
	if err != nil {
		a.logger.Error("ledger reconciliation failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return
	}

	if !report.Consistent() {
		a.logger.Warn("wallet balance drifted from ledger",
			slog.Int64("user_id", userID),
			slog.String("balance", report.Balance.String()),
			slog.String("ledger_sum", report.LedgerSum.String()),
			slog.String("drift", report.Drift.String()),
		)
	}
}
