package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	authH "github.com/fekuna/omnipos-warehouse-service/internal/auth/handler"
	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	dashH "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/handler"
	dashRepo "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/repository"
	dashUC "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/usecase"
	expH "github.com/fekuna/omnipos-warehouse-service/internal/expense/handler"
	expRepo "github.com/fekuna/omnipos-warehouse-service/internal/expense/repository"
	expUC "github.com/fekuna/omnipos-warehouse-service/internal/expense/usecase"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	notifyH "github.com/fekuna/omnipos-warehouse-service/internal/notify/handler"
	orderH "github.com/fekuna/omnipos-warehouse-service/internal/order/handler"
	orderRepo "github.com/fekuna/omnipos-warehouse-service/internal/order/repository"
	orderUC "github.com/fekuna/omnipos-warehouse-service/internal/order/usecase"
	payH "github.com/fekuna/omnipos-warehouse-service/internal/payment/handler"
	payRepo "github.com/fekuna/omnipos-warehouse-service/internal/payment/repository"
	payUC "github.com/fekuna/omnipos-warehouse-service/internal/payment/usecase"
	prodH "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	prodRepo "github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	prodUC "github.com/fekuna/omnipos-warehouse-service/internal/product/usecase"
	"github.com/fekuna/omnipos-warehouse-service/internal/seed"
	"github.com/fekuna/omnipos-warehouse-service/internal/session"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	userH "github.com/fekuna/omnipos-warehouse-service/internal/user/handler"
	userRepo "github.com/fekuna/omnipos-warehouse-service/internal/user/repository"
	userUC "github.com/fekuna/omnipos-warehouse-service/internal/user/usecase"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewNop()

	snap, err := seed.Default(bcrypt.MinCost)
	require.NoError(t, err)

	feed := notify.NewFeed(50)
	st := store.New(log, store.WithNotifier(feed))
	st.Load(snap)

	authService := auth.NewService(st, session.NewMemoryStore(), feed, auth.Config{SecretKey: []byte("test")}, log)
	authorizer, err := authz.New()
	require.NoError(t, err)
	mw := middleware.NewMiddleware(authService, authorizer, log)

	srv := NewServer(Config{}, mw, authH.NewAuthHandler(authService, log), []RouteRegistrar{
		prodH.NewProductHandler(prodUC.NewProductUseCase(prodRepo.NewMemoryRepository(st), log), log),
		orderH.NewOrderHandler(orderUC.NewOrderUseCase(orderRepo.NewMemoryRepository(st), log), log),
		payH.NewPaymentHandler(payUC.NewPaymentUseCase(payRepo.NewMemoryRepository(st), log), log),
		expH.NewExpenseHandler(expUC.NewExpenseUseCase(expRepo.NewMemoryRepository(st), log), log),
		userH.NewUserHandler(userUC.NewUserUseCase(userRepo.NewMemoryRepository(st), log), log),
		dashH.NewDashboardHandler(dashUC.NewDashboardUseCase(dashRepo.NewMemoryRepository(st), log), log),
		notifyH.NewNotificationHandler(feed),
	}, log)
	return srv.Router()
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func login(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": "password"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[struct {
		Token string `json:"token"`
	}](t, rec).Token
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "jane@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	token := login(t, h, "jane@example.com")

	rec = do(t, h, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane Smith", decode[map[string]any](t, rec)["name"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec = do(t, h, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderAndPaymentFlow(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "bob@example.com")

	rec := do(t, h, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"customer_name":  "Dana",
		"customer_email": "dana@example.com",
		"items":          []map[string]any{{"product_id": "3", "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[struct {
		ID          string `json:"id"`
		UserID      string `json:"user_id"`
		Status      string `json:"status"`
		TotalAmount string `json:"total_amount"`
	}](t, rec)
	assert.Equal(t, "3", order.UserID)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "99.98", order.TotalAmount)

	rec = do(t, h, http.MethodGet, "/api/v1/products/3", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 98, decode[map[string]any](t, rec)["quantity"])

	rec = do(t, h, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"customer_name":  "Dana",
		"customer_email": "dana@example.com",
		"items":          []map[string]any{{"product_id": "2", "quantity": 31}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Some items exceed available inventory.")

	rec = do(t, h, http.MethodGet, "/api/v1/payments/balance/"+order.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "99.98", decode[map[string]any](t, rec)["suggested_amount"])

	rec = do(t, h, http.MethodPost, "/api/v1/payments", token, map[string]any{
		"order_id": order.ID, "amount": "100", "method": "cash",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "$99.98")

	rec = do(t, h, http.MethodPost, "/api/v1/payments", token, map[string]any{
		"order_id": order.ID, "amount": "99.98", "method": "cash",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "completed", decode[map[string]any](t, rec)["status"])

	rec = do(t, h, http.MethodGet, "/api/v1/payments/eligible-orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"id":"`+order.ID+`"`)

	rec = do(t, h, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", token, map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/v1/orders/missing/status", token, map[string]any{"status": "shipped"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardReflectsMutations(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "john@example.com")

	type dashboard struct {
		Stats struct {
			TotalProducts    int    `json:"total_products"`
			LowStockProducts int    `json:"low_stock_products"`
			TotalOrders      int    `json:"total_orders"`
			PendingOrders    int    `json:"pending_orders"`
			MonthlyRevenue   string `json:"monthly_revenue"`
			MonthlyExpenses  string `json:"monthly_expenses"`
		} `json:"stats"`
		NetProfit    string `json:"net_profit"`
		RecentOrders []any  `json:"recent_orders"`
	}

	rec := do(t, h, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	before := decode[dashboard](t, rec)
	assert.Equal(t, 6, before.Stats.TotalProducts)
	assert.Equal(t, 2, before.Stats.LowStockProducts)
	assert.Equal(t, 3, before.Stats.TotalOrders)
	assert.Equal(t, 1, before.Stats.PendingOrders)
	assert.Equal(t, "249.98", before.Stats.MonthlyRevenue)
	assert.Equal(t, "7600", before.Stats.MonthlyExpenses)
	assert.Len(t, before.RecentOrders, 3)

	rec = do(t, h, http.MethodPost, "/api/v1/expenses", token, map[string]any{
		"description": "Pallets", "amount": "400", "category": "equipment", "date": "2024-05-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/dashboard", token, nil)
	after := decode[dashboard](t, rec)
	assert.Equal(t, "8000", after.Stats.MonthlyExpenses)
	assert.Equal(t, "-7750.02", after.NetProfit)
}

func TestAuthorization(t *testing.T) {
	h := newTestRouter(t)
	staff := login(t, h, "bob@example.com")

	rec := do(t, h, http.MethodGet, "/api/v1/users?q=jane", staff, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}](t, rec)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "manager", page.Items[0]["role"])

	rec = do(t, h, http.MethodGet, "/api/v1/notifications", staff, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back, Bob Johnson!")
}

func TestProductCRUD(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "jane@example.com")

	rec := do(t, h, http.MethodPost, "/api/v1/products", token, map[string]any{
		"name": "Monitor Arm", "price": "59.00", "quantity": 12, "category": "Accessories",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode[map[string]any](t, rec)["id"].(string)

	rec = do(t, h, http.MethodPatch, "/api/v1/products/"+id, token, map[string]any{"quantity": 80})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 80, decode[map[string]any](t, rec)["quantity"])

	rec = do(t, h, http.MethodGet, "/api/v1/products?category=accessories&sort_by=price", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode[map[string]any](t, rec)["total"])

	rec = do(t, h, http.MethodPost, "/api/v1/products", token, map[string]any{"name": "Bad", "unknown": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/products/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/products/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
