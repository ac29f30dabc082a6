package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users      map[string]*model.User
	ByID       map[int64]*model.User
	Next       int64
	Err        error
	IDsAfterFn func(context.Context, int64, int) ([]int64, error)
}

// NewUserRepositoryStub constructs a stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers a user unless one already exists or the stub has an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.Role, welcomeCredit decimal.Decimal) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           s.Next,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Balance:      welcomeCredit,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches a user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateName renames a stored user.
func (s *UserRepositoryStub) UpdateName(ctx context.Context, id int64, name string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.Name = name
	return user, nil
}

// List returns all stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		out = append(out, *u)
	}
	return out, nil
}

// Count returns the number of stored users.
func (s *UserRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.ByID)), nil
}

// IDsAfter returns stored identifiers greater than afterID, ascending.
func (s *UserRepositoryStub) IDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	if s.IDsAfterFn != nil {
		return s.IDsAfterFn(ctx, afterID, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]int64, 0, limit)
	for id := afterID + 1; len(ids) < limit; id++ {
		if _, ok := s.ByID[id]; !ok {
			if id > s.Next {
				break
			}
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ProductRepositoryStub stores catalog entries in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs a stub catalog with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Create stores a product assigning the next identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Products == nil {
		s.Products = make(map[int64]*model.Product)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *product
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches a product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, *p)
	}
	return out, nil
}

// OrderRepositoryStub simulates atomic order placement against an in-memory
// wallet. The default Place resolves prices from Catalog, then checks and
// debits Balances under a mutex the way the storage layer does under row locks.
type OrderRepositoryStub struct {
	PlaceFn     func(context.Context, int64, []repository.OrderLineInput, model.Address) (*model.Order, decimal.Decimal, error)
	GetByIDFn   func(context.Context, int64) (*model.Order, error)
	SetStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	Catalog  *ProductRepositoryStub
	Balances map[int64]decimal.Decimal
	Orders   []model.Order
	Next     int64

	mu sync.Mutex
}

// NewOrderRepositoryStub constructs a stub wired to the given catalog.
func NewOrderRepositoryStub(catalog *ProductRepositoryStub) *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Catalog:  catalog,
		Balances: make(map[int64]decimal.Decimal),
		Next:     1,
	}
}

// Place prices the items and performs a locked check-and-debit.
func (s *OrderRepositoryStub) Place(ctx context.Context, userID int64, items []repository.OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, items, address)
	}

	total := decimal.Zero
	lines := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		product, err := s.Catalog.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		lines = append(lines, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.Balances[userID]
	if balance.LessThan(total) {
		return nil, decimal.Zero, &domainErrors.InsufficientBalanceError{Required: total, Available: balance}
	}
	newBalance := balance.Sub(total)
	s.Balances[userID] = newBalance

	if s.Next == 0 {
		s.Next = 1
	}
	order := model.Order{
		ID:            s.Next,
		UserID:        userID,
		Items:         lines,
		TotalAmount:   total,
		PaymentStatus: model.PaymentStatusCompleted,
		Status:        model.OrderStatusConfirmed,
		Shipping:      address,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	s.Next++
	s.Orders = append(s.Orders, order)
	return &order, newBalance, nil
}

// GetByID returns a stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns stored orders owned by the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// ListRecent returns the newest stored orders up to limit.
func (s *OrderRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := len(s.Orders) - limit
	if start < 0 {
		start = 0
	}
	out := make([]model.Order, 0, limit)
	for i := len(s.Orders) - 1; i >= start; i-- {
		out = append(out, s.Orders[i])
	}
	return out, nil
}

// SetStatus transitions a stored order, refunding on cancellation.
func (s *OrderRepositoryStub) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID != orderID {
			continue
		}
		if !model.CanTransition(s.Orders[i].Status, status) {
			return nil, domainErrors.ErrInvalidTransition
		}
		if status == model.OrderStatusCancelled && model.RefundOnCancel(s.Orders[i].Status) {
			s.Balances[s.Orders[i].UserID] = s.Balances[s.Orders[i].UserID].Add(s.Orders[i].TotalAmount)
			s.Orders[i].PaymentStatus = model.PaymentStatusRefunded
		}
		s.Orders[i].Status = status
		s.Orders[i].UpdatedAt = time.Now()
		order := s.Orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Stats counts non-cancelled orders and sums their totals.
func (s *OrderRepositoryStub) Stats(ctx context.Context) (int64, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	revenue := decimal.Zero
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusCancelled {
			continue
		}
		count++
		revenue = revenue.Add(o.TotalAmount)
	}
	return count, revenue, nil
}

// WalletRepositoryStub lets tests control wallet mutations.
type WalletRepositoryStub struct {
	DepositFn    func(context.Context, int64, decimal.Decimal) (decimal.Decimal, *model.Transaction, error)
	SetBalanceFn func(context.Context, int64, decimal.Decimal) (*model.User, error)
	ReconcileFn  func(context.Context, int64) (*model.LedgerReport, error)

	Balances map[int64]decimal.Decimal
	Ledger   []model.Transaction
	Err      error
}

// NewWalletRepositoryStub constructs a stub wallet with initialized maps.
func NewWalletRepositoryStub() *WalletRepositoryStub {
	return &WalletRepositoryStub{Balances: make(map[int64]decimal.Decimal)}
}

// Deposit credits the in-memory balance and records a ledger entry.
func (s *WalletRepositoryStub) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error) {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, userID, amount)
	}
	if s.Err != nil {
		return decimal.Zero, nil, s.Err
	}
	newBalance := s.Balances[userID].Add(amount)
	s.Balances[userID] = newBalance
	tx := model.Transaction{
		ID:          int64(len(s.Ledger) + 1),
		UserID:      userID,
		Type:        model.TransactionTypeDeposit,
		Amount:      amount,
		Status:      model.TransactionStatusCompleted,
		Description: "deposit of " + amount.String(),
		CreatedAt:   time.Now(),
	}
	s.Ledger = append(s.Ledger, tx)
	return newBalance, &tx, nil
}

// SetBalance overrides the stored balance, recording the signed delta.
func (s *WalletRepositoryStub) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error) {
	if s.SetBalanceFn != nil {
		return s.SetBalanceFn(ctx, userID, balance)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	delta := balance.Sub(s.Balances[userID])
	s.Balances[userID] = balance
	s.Ledger = append(s.Ledger, model.Transaction{
		ID:          int64(len(s.Ledger) + 1),
		UserID:      userID,
		Type:        model.TransactionTypeDeposit,
		Amount:      delta,
		Status:      model.TransactionStatusCompleted,
		Description: "balance adjusted by administrator",
		CreatedAt:   time.Now(),
	})
	return &model.User{ID: userID, Balance: balance}, nil
}

// Reconcile recomputes the balance from the recorded ledger.
func (s *WalletRepositoryStub) Reconcile(ctx context.Context, userID int64) (*model.LedgerReport, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	sum := decimal.Zero
	for _, tx := range s.Ledger {
		if tx.UserID != userID {
			continue
		}
		sum = sum.Add(tx.Signed())
	}
	balance := s.Balances[userID]
	return &model.LedgerReport{
		UserID:    userID,
		Balance:   balance,
		LedgerSum: sum,
		Drift:     balance.Sub(sum),
	}, nil
}

// TransactionRepositoryStub stores ledger history for tests.
type TransactionRepositoryStub struct {
	ListFn func(context.Context, int64) ([]model.Transaction, error)
	Items  []model.Transaction
}

// ListByUser returns configured transactions for the user.
func (s *TransactionRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	out := make([]model.Transaction, 0)
	for _, tx := range s.Items {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}
