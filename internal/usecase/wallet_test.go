package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	testhelpers "github.com/soleshop/soleshop/internal/test"
)

func TestWalletUseCaseDeposit(t *testing.T) {
	wallets := testhelpers.NewWalletRepositoryStub()
	uc := NewWalletUseCase(wallets, &testhelpers.TransactionRepositoryStub{}, testhelpers.NewUserRepositoryStub())

	ctx := context.Background()
	newBalance, tx, err := uc.Deposit(ctx, 1, decimal.NewFromInt(250))
	if err != nil {
		t.Fatalf("deposit returned error: %v", err)
	}
	if !newBalance.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("unexpected balance %s", newBalance)
	}
	if tx.Type != model.TransactionTypeDeposit {
		t.Fatalf("expected deposit ledger entry, got %s", tx.Type)
	}

	if _, _, err := uc.Deposit(ctx, 1, decimal.Zero); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount for zero, got %v", err)
	}
	if _, _, err := uc.Deposit(ctx, 1, decimal.NewFromInt(-10)); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount for negative, got %v", err)
	}
	if len(wallets.Ledger) != 1 {
		t.Fatalf("rejected deposits must not write ledger entries, have %d", len(wallets.Ledger))
	}
}

func TestWalletUseCaseReconcile(t *testing.T) {
	wallets := testhelpers.NewWalletRepositoryStub()
	uc := NewWalletUseCase(wallets, &testhelpers.TransactionRepositoryStub{}, testhelpers.NewUserRepositoryStub())

	ctx := context.Background()
	if _, _, err := uc.Deposit(ctx, 1, decimal.NewFromInt(500)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	report, err := uc.Reconcile(ctx, 1)
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if !report.Consistent() {
		t.Fatalf("expected consistent ledger, drift %s", report.Drift)
	}

	// A balance edit outside the ledger shows up as drift.
	wallets.Balances[1] = decimal.NewFromInt(700)
	report, err = uc.Reconcile(ctx, 1)
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if report.Consistent() {
		t.Fatalf("expected drift to be detected")
	}
	if !report.Drift.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected drift 200, got %s", report.Drift)
	}
}

func TestWalletUseCaseAuditBatch(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewWalletUseCase(testhelpers.NewWalletRepositoryStub(), &testhelpers.TransactionRepositoryStub{}, users)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := users.Create(ctx, "u", testhelpers.RandomEmail(), "hash", model.RoleUser, decimal.Zero); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	ids, err := uc.AuditBatch(ctx, 1, 10)
	if err != nil {
		t.Fatalf("audit batch failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 3 {
		t.Fatalf("unexpected batch %v", ids)
	}
}

func TestWalletUseCaseHistory(t *testing.T) {
	txRepo := &testhelpers.TransactionRepositoryStub{Items: []model.Transaction{
		{ID: 1, UserID: 1, Type: model.TransactionTypeDeposit, Amount: decimal.NewFromInt(100)},
		{ID: 2, UserID: 2, Type: model.TransactionTypePayment, Amount: decimal.NewFromInt(50)},
	}}
	uc := NewWalletUseCase(testhelpers.NewWalletRepositoryStub(), txRepo, testhelpers.NewUserRepositoryStub())

	history, err := uc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 || history[0].UserID != 1 {
		t.Fatalf("expected only the caller's entries, got %+v", history)
	}
}
