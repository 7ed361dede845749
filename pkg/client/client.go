// Package client is a typed HTTP client for the food-ordering API. It is the
// surface the conversational tool bridge calls: every method maps to one
// backend route under /api/v1/order.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type MenuItem struct {
	ItemID    uint    `json:"item_id"`
	ItemName  string  `json:"item_name"`
	ItemPrice float64 `json:"item_price"`
}

type CartEntry struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

type CartItem struct {
	CartID   uint   `json:"cart_id"`
	Username string `json:"username"`
	ItemID   uint   `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	OrderID  uint   `json:"order_id"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

type OrderLine struct {
	OrderID  uint `json:"order_id"`
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

type OrderWithItems struct {
	Order Order       `json:"order"`
	Items []OrderLine `json:"items"`
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) GetMenu() ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(http.MethodGet, "/menu", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetCart(username string) ([]CartItem, error) {
	var items []CartItem
	if err := c.do(http.MethodGet, "/cartitems", userQuery(username), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToCart(username string, entries []CartEntry) ([]CartItem, error) {
	var items []CartItem
	if err := c.do(http.MethodPost, "/cartitems", userQuery(username), entries, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateCart overwrites one cart line's quantity. A zero quantity removes the
// line; the returned item is nil in that case.
func (c *Client) UpdateCart(username string, entry CartEntry) (*CartItem, error) {
	var item CartItem
	if err := c.do(http.MethodPut, "/cartitems", userQuery(username), entry, &item); err != nil {
		return nil, err
	}
	if item.CartID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (c *Client) ClearCart(username string) error {
	return c.do(http.MethodDelete, "/cartitems", userQuery(username), nil, nil)
}

func (c *Client) DeleteCartItem(username string, itemID uint) error {
	q := userQuery(username)
	q.Set("item_id", strconv.FormatUint(uint64(itemID), 10))
	return c.do(http.MethodDelete, "/cartitem", q, nil, nil)
}

func (c *Client) CreateOrderFromCart(username string) (*OrderWithItems, error) {
	var result OrderWithItems
	if err := c.do(http.MethodPost, "/orders_cart", userQuery(username), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MostRecentOrder returns nil without error when the user has never ordered.
func (c *Client) MostRecentOrder(username string) (*Order, error) {
	var order Order
	if err := c.do(http.MethodGet, "/orders", userQuery(username), nil, &order); err != nil {
		return nil, err
	}
	if order.OrderID == 0 {
		return nil, nil
	}
	return &order, nil
}

func userQuery(username string) url.Values {
	q := url.Values{}
	q.Set("username", username)
	return q
}

func (c *Client) do(method, path string, query url.Values, payload, out interface{}) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		json.Unmarshal(respBody, &errResp)
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
