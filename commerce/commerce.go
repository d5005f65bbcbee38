// Package commerce provides a typed Go client for the Route e-commerce REST API.
//
// All state lives server-side: products, carts, wishlists, addresses and
// orders are owned by the remote API and fetched per call. The client only
// shapes requests and decodes responses.
package commerce

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the public commerce API endpoint.
	DefaultBaseURL = "https://ecommerce.routemisr.com/api/v1"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// TokenSource supplies the persisted bearer token for authenticated calls.
// The token is re-read on every request, so a logout between two calls is
// observed by the second call without any coordination.
type TokenSource interface {
	// Token returns the raw bearer token and whether one is present.
	Token() (string, bool)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() (string, bool) { return string(s), s != "" }

// Client is the commerce API client.
//
// Use NewClient with a TokenSource to create a client:
//
//	client := commerce.NewClient(keyring)
//	products, err := client.Products.List(ctx)
type Client struct {
	tokens     TokenSource
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// Services
	Auth      *AuthService
	Products  *ProductsService
	Cart      *CartService
	Wishlist  *WishlistService
	Addresses *AddressesService
	Orders    *OrdersService
	Users     *UsersService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a structured logger for request-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new commerce API client.
//
// tokens supplies the bearer token for authenticated endpoints; pass
// commerce.StaticToken("") for a client that only uses public endpoints.
func NewClient(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		tokens:  tokens,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Products = &ProductsService{client: c}
	c.Cart = &CartService{client: c}
	c.Wishlist = &WishlistService{client: c}
	c.Addresses = &AddressesService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Users = &UsersService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
