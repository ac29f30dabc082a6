package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool used by the storage. Tests substitute a
// pgxmock pool through it.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type walletRepository struct {
	storage *Storage
}

type transactionRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization. NUMERIC columns map to
// shopspring decimals via the pgx type registry.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Wallets() repository.WalletRepository {
	return &walletRepository{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            balance NUMERIC NOT NULL DEFAULT 0 CHECK (balance >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            brand TEXT NOT NULL,
            price NUMERIC NOT NULL,
            category TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            in_stock BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            total_amount NUMERIC NOT NULL,
            payment_status TEXT NOT NULL,
            order_status TEXT NOT NULL,
            street TEXT NOT NULL,
            city TEXT NOT NULL,
            state TEXT NOT NULL DEFAULT '',
            zip_code TEXT NOT NULL DEFAULT '',
            country TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            name TEXT NOT NULL,
            unit_price NUMERIC NOT NULL,
            size DOUBLE PRECISION NOT NULL,
            color TEXT NOT NULL DEFAULT '',
            quantity INTEGER NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS transactions (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            amount NUMERIC NOT NULL,
            order_id BIGINT REFERENCES orders(id),
            status TEXT NOT NULL DEFAULT 'completed',
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

const userColumns = `id, name, email, password_hash, role, balance, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Balance, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, role model.Role, welcomeCredit decimal.Decimal) (*model.User, error) {
	u := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Balance:      welcomeCredit,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertUser = `INSERT INTO users (name, email, password_hash, role, balance)
                            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertUser, name, email, passwordHash, role, welcomeCredit).Scan(&u.ID, &u.CreatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		if welcomeCredit.IsPositive() {
			const insertCredit = `INSERT INTO transactions (user_id, type, amount, status, description)
                                  VALUES ($1, $2, $3, $4, $5)`
			if _, err := tx.Exec(ctx, insertCredit, u.ID, model.TransactionTypeDeposit, welcomeCredit, model.TransactionStatusCompleted, "welcome credit"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) UpdateName(ctx context.Context, id int64, name string) (*model.User, error) {
	query := `UPDATE users SET name=$1 WHERE id=$2 RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, name, id))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Balance, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) IDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	const query = `SELECT id FROM users WHERE id > $1 ORDER BY id LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, brand, price, category, description, in_stock, created_at`

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, brand, price, category, description, in_stock)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	created := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Brand, product.Price, product.Category, product.Description, product.InStock,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Brand, &p.Price, &p.Category, &p.Description, &p.InStock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Price, &p.Category, &p.Description, &p.InStock, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, total_amount, payment_status, order_status,
                      street, city, state, zip_code, country, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.PaymentStatus, &o.Status,
		&o.Shipping.Street, &o.Shipping.City, &o.Shipping.State, &o.Shipping.ZipCode, &o.Shipping.Country,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func loadOrderItems(ctx context.Context, q querier, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT product_id, name, unit_price, size, color, quantity
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UnitPrice, &it.Size, &it.Color, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Place runs the whole placement flow inside one transaction with the buyer's
// row locked, so two concurrent placements against the same wallet serialize
// and the loser observes the already-debited balance.
func (r *orderRepository) Place(ctx context.Context, userID int64, items []repository.OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error) {
	var (
		order      model.Order
		newBalance decimal.Decimal
	)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		lines := make([]model.OrderItem, 0, len(items))
		total := decimal.Zero
		for _, in := range items {
			const productQuery = `SELECT name, price FROM products WHERE id=$1`
			var (
				name  string
				price decimal.Decimal
			)
			if err := tx.QueryRow(ctx, productQuery, in.ProductID).Scan(&name, &price); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			lines = append(lines, model.OrderItem{
				ProductID: in.ProductID,
				Name:      name,
				UnitPrice: price,
				Size:      in.Size,
				Color:     in.Color,
				Quantity:  in.Quantity,
			})
			total = total.Add(price.Mul(decimal.NewFromInt(int64(in.Quantity))))
		}

		const balanceQuery = `SELECT balance FROM users WHERE id=$1 FOR UPDATE`
		var balance decimal.Decimal
		if err := tx.QueryRow(ctx, balanceQuery, userID).Scan(&balance); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if balance.LessThan(total) {
			return &domainErrors.InsufficientBalanceError{Required: total, Available: balance}
		}

		const insertOrder = `INSERT INTO orders (user_id, total_amount, payment_status, order_status,
                                 street, city, state, zip_code, country)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                             RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, userID, total,
			model.PaymentStatusCompleted, model.OrderStatusConfirmed,
			address.Street, address.City, address.State, address.ZipCode, address.Country,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, unit_price, size, color, quantity)
                            VALUES ($1, $2, $3, $4, $5, $6, $7)`
		for _, it := range lines {
			if _, err := tx.Exec(ctx, insertItem, order.ID, it.ProductID, it.Name, it.UnitPrice, it.Size, it.Color, it.Quantity); err != nil {
				return err
			}
		}

		newBalance = balance.Sub(total)
		const debit = `UPDATE users SET balance=$1 WHERE id=$2`
		if _, err := tx.Exec(ctx, debit, newBalance, userID); err != nil {
			return err
		}

		const insertPayment = `INSERT INTO transactions (user_id, type, amount, order_id, status, description)
                               VALUES ($1, $2, $3, $4, $5, $6)`
		description := fmt.Sprintf("payment for order #%d", order.ID)
		if _, err := tx.Exec(ctx, insertPayment, userID, model.TransactionTypePayment, total, order.ID, model.TransactionStatusCompleted, description); err != nil {
			return err
		}

		order.UserID = userID
		order.Items = lines
		order.TotalAmount = total
		order.PaymentStatus = model.PaymentStatusCompleted
		order.Status = model.OrderStatusConfirmed
		order.Shipping = address
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &order, newBalance, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if order.Items, err = loadOrderItems(ctx, r.storage.pool, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.PaymentStatus, &o.Status,
			&o.Shipping.Street, &o.Shipping.City, &o.Shipping.State, &o.Shipping.ZipCode, &o.Shipping.Country,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := loadOrderItems(ctx, r.storage.pool, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	return r.listOrders(ctx, query, limit)
}

// SetStatus validates the transition against the status machine and applies
// refund-on-cancel together with the status write in one transaction.
func (r *orderRepository) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, query, orderID))
		if err != nil {
			return err
		}

		if !model.CanTransition(order.Status, status) {
			return domainErrors.ErrInvalidTransition
		}

		payment := order.PaymentStatus
		if status == model.OrderStatusCancelled && model.RefundOnCancel(order.Status) {
			const refund = `UPDATE users SET balance = balance + $1 WHERE id=$2`
			if _, err := tx.Exec(ctx, refund, order.TotalAmount, order.UserID); err != nil {
				return err
			}

			const insertRefund = `INSERT INTO transactions (user_id, type, amount, order_id, status, description)
                                  VALUES ($1, $2, $3, $4, $5, $6)`
			description := fmt.Sprintf("refund for cancelled order #%d", order.ID)
			if _, err := tx.Exec(ctx, insertRefund, order.UserID, model.TransactionTypeDeposit, order.TotalAmount, order.ID, model.TransactionStatusCompleted, description); err != nil {
				return err
			}
			payment = model.PaymentStatusRefunded
		}

		const update = `UPDATE orders SET order_status=$1, payment_status=$2, updated_at=NOW() WHERE id=$3 RETURNING updated_at`
		if err := tx.QueryRow(ctx, update, status, payment, order.ID).Scan(&order.UpdatedAt); err != nil {
			return err
		}
		order.Status = status
		order.PaymentStatus = payment

		if order.Items, err = loadOrderItems(ctx, tx, order.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Stats(ctx context.Context) (int64, decimal.Decimal, error) {
	const query = `SELECT COUNT(*),
                          COALESCE(SUM(total_amount) FILTER (WHERE order_status <> 'cancelled'), 0)
                   FROM orders`
	var (
		count   int64
		revenue decimal.Decimal
	)
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&count, &revenue); err != nil {
		return 0, decimal.Zero, err
	}
	return count, revenue, nil
}

// --- WalletRepository implementation ---

func (r *walletRepository) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error) {
	var (
		newBalance decimal.Decimal
		entry      model.Transaction
	)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const credit = `UPDATE users SET balance = balance + $1 WHERE id=$2 RETURNING balance`
		if err := tx.QueryRow(ctx, credit, amount, userID).Scan(&newBalance); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const insert = `INSERT INTO transactions (user_id, type, amount, status, description)
                        VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
		description := fmt.Sprintf("deposit of %s", amount)
		if err := tx.QueryRow(ctx, insert, userID, model.TransactionTypeDeposit, amount, model.TransactionStatusCompleted, description).Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return err
		}
		entry.UserID = userID
		entry.Type = model.TransactionTypeDeposit
		entry.Amount = amount
		entry.Status = model.TransactionStatusCompleted
		entry.Description = description
		return nil
	})
	if err != nil {
		return decimal.Zero, nil, err
	}
	return newBalance, &entry, nil
}

// SetBalance reads the old balance under lock and logs delta = new - old
// before mutating, so the ledger entry reflects the actual adjustment.
func (r *walletRepository) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error) {
	var user *model.User
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + userColumns + ` FROM users WHERE id=$1 FOR UPDATE`
		var err error
		user, err = scanUser(tx.QueryRow(ctx, query, userID))
		if err != nil {
			return err
		}

		delta := balance.Sub(user.Balance)

		const update = `UPDATE users SET balance=$1 WHERE id=$2`
		if _, err := tx.Exec(ctx, update, balance, userID); err != nil {
			return err
		}

		const insert = `INSERT INTO transactions (user_id, type, amount, status, description)
                        VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insert, userID, model.TransactionTypeDeposit, delta, model.TransactionStatusCompleted, "balance adjusted by administrator"); err != nil {
			return err
		}

		user.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *walletRepository) Reconcile(ctx context.Context, userID int64) (*model.LedgerReport, error) {
	const balanceQuery = `SELECT balance FROM users WHERE id=$1`
	var balance decimal.Decimal
	if err := r.storage.pool.QueryRow(ctx, balanceQuery, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const sumQuery = `SELECT COALESCE(SUM(CASE WHEN type='deposit' THEN amount ELSE -amount END), 0)
                      FROM transactions WHERE user_id=$1 AND status='completed'`
	var sum decimal.Decimal
	if err := r.storage.pool.QueryRow(ctx, sumQuery, userID).Scan(&sum); err != nil {
		return nil, err
	}

	return &model.LedgerReport{
		UserID:    userID,
		Balance:   balance,
		LedgerSum: sum,
		Drift:     balance.Sub(sum),
	}, nil
}

// --- TransactionRepository implementation ---

func (r *transactionRepository) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	const query = `SELECT id, user_id, type, amount, order_id, status, description, created_at
                   FROM transactions WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.OrderID, &t.Status, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
