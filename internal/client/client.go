// Package client is the typed REST client for the POS backend, plus the
// checkout session state machine the register screen runs on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trasua/internal/auth"
	"trasua/internal/domain"
	"trasua/internal/service"
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the backend at baseURL under the given API prefix.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		prefix:  "/v1",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the Bearer token used on mutating calls.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
		Error  string          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 300 || envelope.Status != "success" {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
	if out != nil {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Catalog

func (c *Client) ListProducts(ctx context.Context, activeOnly bool) ([]domain.MilkTea, error) {
	path := c.prefix + "/products?fqnull=deleted_at"
	if activeOnly {
		path += "&fq=" + url.QueryEscape("is_active:1")
	}
	var out []domain.MilkTea
	return out, c.get(ctx, path, &out)
}

func (c *Client) ListToppings(ctx context.Context, activeSellableOnly bool) ([]domain.Topping, error) {
	path := c.prefix + "/toppings?fqnull=deleted_at"
	if activeSellableOnly {
		path += "&fq=" + url.QueryEscape("is_active:1,sellable:1")
	}
	var out []domain.Topping
	return out, c.get(ctx, path, &out)
}

func (c *Client) ListSweetnessLevels(ctx context.Context) ([]domain.SweetnessLevel, error) {
	var out []domain.SweetnessLevel
	return out, c.get(ctx, c.prefix+"/sweetness_levels", &out)
}

func (c *Client) ListIceLevels(ctx context.Context) ([]domain.IceLevel, error) {
	var out []domain.IceLevel
	return out, c.get(ctx, c.prefix+"/ice_levels", &out)
}

func (c *Client) ListSizes(ctx context.Context) ([]domain.Size, error) {
	var out []domain.Size
	return out, c.get(ctx, c.prefix+"/sizes", &out)
}

// Cart

// CartItemInput mirrors POST cart_items.
type CartItemInput struct {
	ItemType    string `json:"item_type"`
	ProductID   int64  `json:"product_id,omitempty"`
	ToppingID   int64  `json:"topping_id,omitempty"`
	Quantity    int64  `json:"quantity"`
	SweetnessID string `json:"sweetness_id,omitempty"`
	IceID       string `json:"ice_id,omitempty"`
	SizeID      string `json:"size_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

func (c *Client) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	return out, c.get(ctx, c.prefix+"/cart_items", &out)
}

func (c *Client) CreateCartItem(ctx context.Context, in CartItemInput) (*domain.CartItem, error) {
	var out domain.CartItem
	if err := c.do(ctx, http.MethodPost, c.prefix+"/cart_items", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AttachCartItemTopping(ctx context.Context, cartItemID, toppingID int64) error {
	body := map[string]int64{"cart_item_id": cartItemID, "topping_id": toppingID}
	return c.do(ctx, http.MethodPost, c.prefix+"/cart_item_toppings", body, nil)
}

func (c *Client) DeleteCartItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/cart_items/%d", c.prefix, id), nil, nil)
}

// Orders

// OrderInput mirrors POST orders.
type OrderInput struct {
	PaymentMethodID int64     `json:"payment_method_id"`
	OrderTime       time.Time `json:"order_time"`
	TotalAmount     int64     `json:"total_amount"`
	DiscountAmount  int64     `json:"discount_amount"`
}

// OrderItemInput mirrors POST order_items.
type OrderItemInput struct {
	OrderID     int64            `json:"order_id"`
	ProductID   int64            `json:"product_id,omitempty"`
	ProductName string           `json:"product_name"`
	SizeID      string           `json:"size_id,omitempty"`
	SweetnessID string           `json:"sweetness_id,omitempty"`
	IceID       string           `json:"ice_id,omitempty"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   int64            `json:"unit_price"`
	Notes       string           `json:"notes,omitempty"`
	Toppings    []domain.Topping `json:"toppings,omitempty"`
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	return out, c.get(ctx, c.prefix+"/orders", &out)
}

func (c *Client) CreateOrder(ctx context.Context, in OrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, c.prefix+"/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrderItem(ctx context.Context, in OrderItemInput) (*domain.OrderItem, error) {
	var out domain.OrderItem
	if err := c.do(ctx, http.MethodPost, c.prefix+"/order_items", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderCompleted(ctx context.Context, id int64, completed bool) (*domain.Order, error) {
	body := map[string]bool{"is_completed": completed}
	var out domain.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/orders/%d", c.prefix, id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Revenues

func (c *Client) Revenues(ctx context.Context, startDate, endDate, groupBy, scope string) (*service.RevenueReport, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	q.Set("type", groupBy)
	q.Set("scope", scope)
	var out service.RevenueReport
	if err := c.get(ctx, c.prefix+"/revenues?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Auth

// LoginResult is the login payload: token pair plus the operator account.
type LoginResult struct {
	auth.TokenPair
	User *domain.User `json:"user"`
}

// Login authenticates and installs the access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, c.prefix+"/login", body, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out, nil
}

// RefreshToken rotates the pair and installs the new access token.
func (c *Client) RefreshToken(ctx context.Context, email, refreshToken string) (*auth.TokenPair, error) {
	body := map[string]string{"email": email, "refreshToken": refreshToken}
	var out auth.TokenPair
	if err := c.do(ctx, http.MethodPost, c.prefix+"/token", body, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.get(ctx, c.prefix+"/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
