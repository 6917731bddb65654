package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"trasua/internal/auth"
	"trasua/internal/domain"
	"trasua/internal/repository"
	"trasua/internal/service"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	store := repository.NewMemoryStore()
	seedTestData(t, store)
	tokens := auth.NewManager("test-secret")
	return NewServer("/v1/",
		service.NewCatalogService(store),
		service.NewCartService(store, store),
		service.NewOrderService(store, store, store),
		service.NewRevenueService(store),
		service.NewAuthService(store, tokens),
	)
}

func seedTestData(t *testing.T, store *repository.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	tea := domain.MilkTea{Name: "Trà sữa truyền thống", BasePrice: 25000, IsActive: true}
	if err := store.CreateMilkTea(ctx, &tea); err != nil {
		t.Fatal(err)
	}
	hidden := domain.MilkTea{Name: "Ẩn", BasePrice: 10000, IsActive: false}
	if err := store.CreateMilkTea(ctx, &hidden); err != nil {
		t.Fatal(err)
	}
	topping := domain.Topping{Name: "Trân châu đen", Price: 5000, IsActive: true, Sellable: true}
	if err := store.CreateTopping(ctx, &topping); err != nil {
		t.Fatal(err)
	}
	size := domain.Size{Name: "M", Price: 2000}
	if err := store.CreateSize(ctx, &size); err != nil {
		t.Fatal(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("banhang123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	u := domain.User{Email: "banhang@trasua.vn", Name: "Nhân viên", PasswordHash: string(hash)}
	if err := store.CreateUser(ctx, &u); err != nil {
		t.Fatal(err)
	}
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if envelope.Status != "success" {
		t.Fatalf("status %q: %s", envelope.Status, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func login(t *testing.T, s *Server) string {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/v1/login", "", map[string]any{
		"email": "banhang@trasua.vn", "password": "banhang123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login code %v: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeData(t, w, &resp)
	if resp.AccessToken == "" {
		t.Fatal("no access token")
	}
	return resp.AccessToken
}

func TestCatalogListing(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodGet, "/v1/products?fqnull=deleted_at", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list code %v", w.Code)
	}
	var teas []domain.MilkTea
	decodeData(t, w, &teas)
	if len(teas) != 2 {
		t.Fatalf("unfiltered teas = %d", len(teas))
	}

	w = doJSON(t, s, http.MethodGet, "/v1/products?fq=is_active:1", "", nil)
	teas = nil
	decodeData(t, w, &teas)
	if len(teas) != 1 || teas[0].Name != "Trà sữa truyền thống" {
		t.Fatalf("active teas = %+v", teas)
	}

	for _, path := range []string{"/v1/toppings?fq=is_active:1,sellable:1", "/v1/sweetness_levels", "/v1/ice_levels", "/v1/sizes"} {
		if w := doJSON(t, s, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
			t.Fatalf("%s code %v", path, w.Code)
		}
	}
}

func TestCartRequiresAuth(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/v1/cart_items", "", map[string]any{"product_id": 1, "quantity": 1})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: %v", w.Code)
	}
	w = doJSON(t, s, http.MethodPost, "/v1/cart_items", "not-a-token", map[string]any{"product_id": 1, "quantity": 1})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: %v", w.Code)
	}
}

func TestCartFlow(t *testing.T) {
	s := setupServer(t)
	token := login(t, s)

	// add a drink
	w := doJSON(t, s, http.MethodPost, "/v1/cart_items", token, map[string]any{
		"product_id": 1, "quantity": 2, "sweetness_id": "4", "ice_id": "3", "size_id": "1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create code %v: %s", w.Code, w.Body.String())
	}
	var item domain.CartItem
	decodeData(t, w, &item)
	if item.ProductPrice != 25000 || item.SizePrice != 2000 {
		t.Fatalf("snapshot = %+v", item)
	}

	// attach a topping
	w = doJSON(t, s, http.MethodPost, "/v1/cart_item_toppings", token, map[string]any{
		"cart_item_id": item.ID, "topping_id": 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("attach code %v: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodGet, "/v1/cart_items", "", nil)
	var cart []domain.CartItem
	decodeData(t, w, &cart)
	if len(cart) != 1 || len(cart[0].Toppings) != 1 {
		t.Fatalf("cart = %+v", cart)
	}

	// remove
	w = doJSON(t, s, http.MethodDelete, "/v1/cart_items/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete code %v", w.Code)
	}
	w = doJSON(t, s, http.MethodDelete, "/v1/cart_items/1", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("double delete code %v", w.Code)
	}
}

func TestCartItemErrors(t *testing.T) {
	s := setupServer(t)
	token := login(t, s)

	// unknown product
	w := doJSON(t, s, http.MethodPost, "/v1/cart_items", token, map[string]any{"product_id": 999, "quantity": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown product: %v", w.Code)
	}
	// inactive product
	w = doJSON(t, s, http.MethodPost, "/v1/cart_items", token, map[string]any{"product_id": 2, "quantity": 1})
	if w.Code != http.StatusConflict {
		t.Fatalf("inactive product: %v", w.Code)
	}
	// zero quantity
	w = doJSON(t, s, http.MethodPost, "/v1/cart_items", token, map[string]any{"product_id": 1, "quantity": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero quantity: %v", w.Code)
	}
	// invalid id
	w = doJSON(t, s, http.MethodDelete, "/v1/cart_items/abc", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: %v", w.Code)
	}
}

func TestOrderFlow(t *testing.T) {
	s := setupServer(t)
	token := login(t, s)

	w := doJSON(t, s, http.MethodPost, "/v1/orders", token, map[string]any{
		"payment_method_id": 1, "total_amount": 30000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order %v: %s", w.Code, w.Body.String())
	}
	var o domain.Order
	decodeData(t, w, &o)
	if o.ReceiptCode == "" {
		t.Fatal("no receipt code")
	}

	w = doJSON(t, s, http.MethodPost, "/v1/order_items", token, map[string]any{
		"order_id": o.ID, "product_name": "Trà sữa truyền thống", "quantity": 1, "unit_price": 25000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("order item %v: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodPut, "/v1/orders/1", token, map[string]any{"is_completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("toggle %v", w.Code)
	}
	decodeData(t, w, &o)
	if !o.IsCompleted {
		t.Fatalf("order = %+v", o)
	}

	w = doJSON(t, s, http.MethodGet, "/v1/orders/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get order %v", w.Code)
	}
	w = doJSON(t, s, http.MethodGet, "/v1/orders", "", nil)
	var list []domain.Order
	decodeData(t, w, &list)
	if len(list) != 1 || len(list[0].Items) != 1 {
		t.Fatalf("orders = %+v", list)
	}

	w = doJSON(t, s, http.MethodPut, "/v1/orders/999", token, map[string]any{"is_completed": true})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown order %v", w.Code)
	}
}

func TestRevenuesEndpoint(t *testing.T) {
	s := setupServer(t)
	token := login(t, s)

	_ = doJSON(t, s, http.MethodPost, "/v1/orders", token, map[string]any{
		"payment_method_id": 1, "total_amount": 30000, "order_time": "2025-03-01T09:00:00Z",
	})
	_ = doJSON(t, s, http.MethodPost, "/v1/orders", token, map[string]any{
		"payment_method_id": 2, "total_amount": 50000, "order_time": "2025-03-02T10:00:00Z",
	})

	w := doJSON(t, s, http.MethodGet, "/v1/revenues?startDate=2025-03-01&endDate=2025-03-31&type=day&scope=revenue", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("revenues %v: %s", w.Code, w.Body.String())
	}
	var report service.RevenueReport
	decodeData(t, w, &report)
	if report.TotalOrders != 2 || report.TotalRevenue != "80000" {
		t.Fatalf("report = %+v", report)
	}
	if len(report.Rows) != 2 || report.Rows[0].Date != "2025-03-01" {
		t.Fatalf("rows = %+v", report.Rows)
	}

	w = doJSON(t, s, http.MethodGet, "/v1/revenues?startDate=bad&endDate=2025-03-31&type=day&scope=revenue", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date %v", w.Code)
	}
	w = doJSON(t, s, http.MethodGet, "/v1/revenues?startDate=2025-03-01&endDate=2025-03-31&type=week&scope=revenue", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad type %v", w.Code)
	}
}

func TestAuthEndpoints(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/v1/login", "", map[string]any{
		"email": "banhang@trasua.vn", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password %v", w.Code)
	}

	token := login(t, s)
	w = doJSON(t, s, http.MethodGet, "/v1/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me %v", w.Code)
	}
	var user domain.User
	decodeData(t, w, &user)
	if user.Email != "banhang@trasua.vn" {
		t.Fatalf("me = %+v", user)
	}

	// rotate the pair
	w = doJSON(t, s, http.MethodPost, "/v1/login", "", map[string]any{
		"email": "banhang@trasua.vn", "password": "banhang123",
	})
	var pair auth.TokenPair
	decodeData(t, w, &pair)
	w = doJSON(t, s, http.MethodPost, "/v1/token", "", map[string]any{
		"email": "banhang@trasua.vn", "refreshToken": pair.RefreshToken,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("token %v: %s", w.Code, w.Body.String())
	}
	var rotated auth.TokenPair
	decodeData(t, w, &rotated)
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Fatalf("rotated = %+v", rotated)
	}
}

func TestSessionCookie(t *testing.T) {
	s := setupServer(t)

	sg := auth.EncodeSession("banhang@trasua.vn", "some-refresh-token")
	expires := time.Now().Add(time.Hour).UnixMilli()
	w := doJSON(t, s, http.MethodPut, "/api/cookie", "", map[string]any{"expires": expires, "sg": sg})
	if w.Code != http.StatusOK {
		t.Fatalf("put cookie %v: %s", w.Code, w.Body.String())
	}
	found := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "_sg" && ck.Value == sg && ck.HttpOnly {
			found = true
		}
	}
	if !found {
		t.Fatalf("cookie not set: %v", w.Result().Cookies())
	}

	// malformed payload is rejected
	w = doJSON(t, s, http.MethodPut, "/api/cookie", "", map[string]any{"expires": expires, "sg": "%%%"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad sg %v", w.Code)
	}

	w = doJSON(t, s, http.MethodDelete, "/api/cookie", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete cookie %v", w.Code)
	}
	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "_sg" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("cookie not cleared: %v", w.Result().Cookies())
	}
}
