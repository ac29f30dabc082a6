package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
	"github.com/soleshop/soleshop/internal/server/http/dto"
	"github.com/soleshop/soleshop/internal/server/http/middleware"
	testhelpers "github.com/soleshop/soleshop/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asCustomer(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, string(model.RoleUser))
	}
}

func asAdmin(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, string(model.RoleAdmin))
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCurrentIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.UserIDContextKey, int64(7))
	c.Set(middleware.UserRoleContextKey, string(model.RoleAdmin))

	identity := CurrentIdentity(c)
	if identity.UserID != 7 || identity.Role != model.RoleAdmin {
		t.Fatalf("unexpected identity %+v", identity)
	}

	c.Set(middleware.UserRoleContextKey, "somebody")
	if CurrentIdentity(c).Role != model.RoleUser {
		t.Fatalf("unknown roles must collapse to customer")
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password"})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}

	var parsed dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.Token != "token" || parsed.User.Email != "alice@example.com" {
		t.Fatalf("unexpected payload %+v", parsed)
	}
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrAlreadyExists
	}})
	body, _ := json.Marshal(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password"})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestAuthHandlerRegisterInvalidPayload(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(ctx context.Context, email, password string) (*model.User, string, error) {
		if email != "alice@example.com" || password != "password" {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return &model.User{ID: 1, Email: email}, "session-token", nil
	}})

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "password"})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", resp.Header().Get("Authorization"))
	}

	body, _ = json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	resp = performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestUserHandlerProfile(t *testing.T) {
	handler := NewUserHandler(testhelpers.AuthFacadeStub{ProfileFn: func(ctx context.Context, userID int64) (*model.User, error) {
		return &model.User{ID: userID, Name: "Alice", Balance: decimal.NewFromInt(1000)}, nil
	}}, testhelpers.OrderFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/profile", handler.Profile, asCustomer(3), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var parsed dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.ID != 3 || parsed.Name != "Alice" {
		t.Fatalf("unexpected profile %+v", parsed)
	}
}

func TestUserHandlerStats(t *testing.T) {
	handler := NewUserHandler(testhelpers.AuthFacadeStub{}, testhelpers.OrderFacadeStub{UserStatsFn: func(ctx context.Context, userID int64) (*model.UserStats, error) {
		return &model.UserStats{TotalOrders: 4, TotalSpent: decimal.NewFromInt(620)}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/stats", handler.Stats, asCustomer(3), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var parsed dto.UserStatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.TotalOrders != 4 || !parsed.TotalSpent.Equal(decimal.NewFromInt(620)) {
		t.Fatalf("unexpected stats %+v", parsed)
	}
}

func TestOrderHandlerPlace(t *testing.T) {
	placeBody, _ := json.Marshal(dto.PlaceOrderRequest{
		Items:           []dto.OrderItemRequest{{ProductID: 1, Size: 42, Color: "black", Quantity: 2}},
		ShippingAddress: dto.AddressPayload{Street: "1 Main St", City: "Springfield"},
	})

	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, caller model.Identity, items []repository.OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error) {
		if caller.UserID != 5 {
			t.Fatalf("unexpected caller %+v", caller)
		}
		if len(items) != 1 || items[0].Quantity != 2 {
			t.Fatalf("unexpected items %+v", items)
		}
		if address.Street != "1 Main St" {
			t.Fatalf("unexpected address %+v", address)
		}
		return &model.Order{ID: 9, UserID: caller.UserID, TotalAmount: decimal.NewFromInt(300), Status: model.OrderStatusConfirmed}, decimal.NewFromInt(700), nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders", handler.Place, asCustomer(5), placeBody, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var parsed dto.PlaceOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.Order.ID != 9 || !parsed.NewBalance.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("unexpected payload %+v", parsed)
	}
}

func TestOrderHandlerPlaceInsufficientBalance(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, model.Identity, []repository.OrderLineInput, model.Address) (*model.Order, decimal.Decimal, error) {
		return nil, decimal.Zero, &domainErrors.InsufficientBalanceError{
			Required:  decimal.NewFromInt(300),
			Available: decimal.NewFromInt(120),
		}
	}})

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		Items:           []dto.OrderItemRequest{{ProductID: 1, Quantity: 2}},
		ShippingAddress: dto.AddressPayload{Street: "1 Main St", City: "Springfield"},
	})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Place, asCustomer(5), body, jsonHeaders)
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", resp.Code)
	}
	var parsed dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.Required == nil || !parsed.Required.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected required amount in body, got %+v", parsed)
	}
	if parsed.Available == nil || !parsed.Available.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected available amount in body, got %+v", parsed)
	}
}

func TestOrderHandlerPlaceValidationErrors(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, model.Identity, []repository.OrderLineInput, model.Address) (*model.Order, decimal.Decimal, error) {
		return nil, decimal.Zero, domainErrors.ErrEmptyOrder
	}})
	body, _ := json.Marshal(dto.PlaceOrderRequest{})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Place, asCustomer(5), body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, caller model.Identity, orderID int64) (*model.Order, error) {
		if caller.UserID != 5 {
			return nil, domainErrors.ErrForbidden
		}
		return &model.Order{ID: orderID, UserID: caller.UserID}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id", handler.Get, asCustomer(5), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unparsable id, got %d", resp.Code)
	}

	router := gin.New()
	router.GET("/orders/:id", func(c *gin.Context) {
		asCustomer(5)(c)
		handler.Get(c)
	})
	req := httptest.NewRequest(http.MethodGet, "/orders/12", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	strangerRouter := gin.New()
	strangerRouter.GET("/orders/:id", func(c *gin.Context) {
		asCustomer(6)(c)
		handler.Get(c)
	})
	w = httptest.NewRecorder()
	strangerRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/12", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

func TestWalletHandlerDeposit(t *testing.T) {
	handler := NewWalletHandler(testhelpers.WalletFacadeStub{DepositFn: func(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error) {
		return decimal.NewFromInt(1250), &model.Transaction{ID: 2, UserID: userID, Type: model.TransactionTypeDeposit, Amount: amount}, nil
	}})

	body, _ := json.Marshal(dto.DepositRequest{Amount: decimal.NewFromInt(250)})
	resp := performRequest(t, http.MethodPost, "/deposit", handler.Deposit, asCustomer(1), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var parsed dto.DepositResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !parsed.NewBalance.Equal(decimal.NewFromInt(1250)) || parsed.Transaction.ID != 2 {
		t.Fatalf("unexpected payload %+v", parsed)
	}
}

func TestWalletHandlerDepositRejectsNonPositive(t *testing.T) {
	handler := NewWalletHandler(testhelpers.WalletFacadeStub{DepositFn: func(context.Context, int64, decimal.Decimal) (decimal.Decimal, *model.Transaction, error) {
		return decimal.Zero, nil, domainErrors.ErrInvalidAmount
	}})
	body, _ := json.Marshal(dto.DepositRequest{Amount: decimal.Zero})
	resp := performRequest(t, http.MethodPost, "/deposit", handler.Deposit, asCustomer(1), body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestWalletHandlerTransactions(t *testing.T) {
	handler := NewWalletHandler(testhelpers.WalletFacadeStub{TransactionsFn: func(ctx context.Context, userID int64) ([]model.Transaction, error) {
		return []model.Transaction{
			{ID: 2, UserID: userID, Type: model.TransactionTypePayment, Amount: decimal.NewFromInt(150)},
			{ID: 1, UserID: userID, Type: model.TransactionTypeDeposit, Amount: decimal.NewFromInt(1000)},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/transactions", handler.Transactions, asCustomer(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var parsed []dto.TransactionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(parsed) != 2 || parsed[0].Type != "payment" {
		t.Fatalf("unexpected payload %+v", parsed)
	}
}

func TestProductHandlerCreate(t *testing.T) {
	handler := NewProductHandler(testhelpers.CatalogFacadeStub{})
	body, _ := json.Marshal(dto.CreateProductRequest{Name: "court classic", Brand: "strider", Price: decimal.NewFromInt(90), InStock: true})
	resp := performRequest(t, http.MethodPost, "/products", handler.Create, asAdmin(1), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	invalid := NewProductHandler(testhelpers.CatalogFacadeStub{AddProductFn: func(context.Context, *model.Product) (*model.Product, error) {
		return nil, domainErrors.ErrInvalidProduct
	}})
	resp = performRequest(t, http.MethodPost, "/products", invalid.Create, asAdmin(1), body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestProductHandlerList(t *testing.T) {
	handler := NewProductHandler(testhelpers.CatalogFacadeStub{ProductsFn: func(context.Context) ([]model.Product, error) {
		return []model.Product{{ID: 1, Name: "runner"}, {ID: 2, Name: "boot"}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/products", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var parsed []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected two products, got %d", len(parsed))
	}
}

func TestAdminHandlerSetStatus(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{SetOrderStatusFn: func(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
		if status != model.OrderStatusShipped {
			return nil, domainErrors.ErrInvalidTransition
		}
		return &model.Order{ID: orderID, Status: status}, nil
	}}, testhelpers.WalletFacadeStub{})

	router := gin.New()
	router.PUT("/orders/:id", func(c *gin.Context) {
		asAdmin(1)(c)
		handler.SetStatus(c)
	})

	body, _ := json.Marshal(dto.SetStatusRequest{OrderStatus: "shipped"})
	req := httptest.NewRequest(http.MethodPut, "/orders/4", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body, _ = json.Marshal(dto.SetStatusRequest{OrderStatus: "cancelled"})
	req = httptest.NewRequest(http.MethodPut, "/orders/4", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for invalid transition, got %d", w.Code)
	}
}

func TestAdminHandlerSetBalance(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{SetUserBalanceFn: func(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error) {
		return &model.User{ID: userID, Balance: balance}, nil
	}}, testhelpers.WalletFacadeStub{})

	router := gin.New()
	router.PUT("/users/:id/balance", func(c *gin.Context) {
		asAdmin(1)(c)
		handler.SetBalance(c)
	})

	body, _ := json.Marshal(dto.SetBalanceRequest{Balance: decimal.NewFromInt(500)})
	req := httptest.NewRequest(http.MethodPut, "/users/3/balance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var parsed dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.ID != 3 || !parsed.Balance.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected payload %+v", parsed)
	}
}

func TestAdminHandlerLedger(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{}, testhelpers.WalletFacadeStub{ReconcileFn: func(ctx context.Context, userID int64) (*model.LedgerReport, error) {
		return &model.LedgerReport{
			UserID:    userID,
			Balance:   decimal.NewFromInt(700),
			LedgerSum: decimal.NewFromInt(500),
			Drift:     decimal.NewFromInt(200),
		}, nil
	}})

	router := gin.New()
	router.GET("/users/:id/ledger", func(c *gin.Context) {
		asAdmin(1)(c)
		handler.Ledger(c)
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/3/ledger", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var parsed dto.LedgerReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.Consistent {
		t.Fatalf("expected drift to be reported, got %+v", parsed)
	}
}

func TestAdminHandlerStats(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{StoreStatsFn: func(context.Context) (*model.StoreStats, error) {
		return &model.StoreStats{TotalUsers: 3, TotalOrders: 5, TotalRevenue: decimal.NewFromInt(1500)}, nil
	}}, testhelpers.WalletFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/stats", handler.Stats, asAdmin(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var parsed dto.StoreStatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if parsed.TotalUsers != 3 || parsed.TotalOrders != 5 {
		t.Fatalf("unexpected payload %+v", parsed)
	}
}

func TestWriteDomainErrorFallback(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeDomainError(c, errors.New("boom"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}
