package commerce

// Category is a product category reference.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Brand is a product brand reference.
type Brand struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product is an immutable catalog snapshot. The client never mutates
// products locally.
type Product struct {
	ID                 string   `json:"_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"`
	PriceAfterDiscount float64  `json:"priceAfterDiscount,omitempty"`
	ImageCover         string   `json:"imageCover"`
	Images             []string `json:"images,omitempty"`
	Category           Category `json:"category"`
	Brand              *Brand   `json:"brand,omitempty"`
	RatingsAverage     float64  `json:"ratingsAverage"`
	RatingsQuantity    int      `json:"ratingsQuantity"`
}

// CartItem is one line of a cart snapshot.
type CartItem struct {
	Product  Product `json:"product"`
	Price    float64 `json:"price"`
	Quantity int     `json:"count"`
}

// CartSnapshot is the server's authoritative cart state. Every mutating
// call replaces the whole snapshot; the client never recomputes totals.
type CartSnapshot struct {
	CartID     string
	Items      []CartItem
	ItemCount  int
	TotalPrice float64
}

// Address is a saved shipping address.
type Address struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Details string `json:"details"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// Complete reports whether every user-facing field is populated.
// Historical records can be partially filled; those are hidden from
// selection but still counted.
func (a Address) Complete() bool {
	return a.Name != "" && a.Details != "" && a.City != "" && a.Phone != ""
}

// ShippingAddress is the address payload sent to the checkout endpoint.
type ShippingAddress struct {
	Details string `json:"details"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}

// OrderItem is one line of a past order.
type OrderItem struct {
	Product  Product `json:"product"`
	Price    float64 `json:"price"`
	Quantity int     `json:"count"`
}

// Order is a read-only projection of a past checkout.
type Order struct {
	ID                string          `json:"_id"`
	CreatedAt         string          `json:"createdAt"`
	TotalOrderPrice   float64         `json:"totalOrderPrice"`
	IsPaid            bool            `json:"isPaid"`
	IsDelivered       bool            `json:"isDelivered"`
	PaymentMethodType string          `json:"paymentMethodType"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	Items             []OrderItem     `json:"cartItems"`
}

// User is the commerce API's user record. Saved addresses ride along on
// the profile fetch.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
}

// API response wrappers

type productsResponse struct {
	Results int       `json:"results"`
	Data    []Product `json:"data"`
}

type productResponse struct {
	Data Product `json:"data"`
}

type cartResponse struct {
	Status         string `json:"status"`
	NumOfCartItems int    `json:"numOfCartItems"`
	CartID         string `json:"cartId"`
	Data           struct {
		ID             string     `json:"_id"`
		Products       []CartItem `json:"products"`
		TotalCartPrice float64    `json:"totalCartPrice"`
	} `json:"data"`
}

// toSnapshot converts the wire shape into a CartSnapshot. The cart id can
// appear either at the top level or inside data depending on the endpoint.
func (r *cartResponse) toSnapshot() *CartSnapshot {
	cartID := r.CartID
	if cartID == "" {
		cartID = r.Data.ID
	}
	return &CartSnapshot{
		CartID:     cartID,
		Items:      r.Data.Products,
		ItemCount:  r.NumOfCartItems,
		TotalPrice: r.Data.TotalCartPrice,
	}
}

type wishlistResponse struct {
	Status string    `json:"status"`
	Count  int       `json:"count"`
	Data   []Product `json:"data"`
}

type addressesResponse struct {
	Status  string    `json:"status"`
	Results int       `json:"results"`
	Data    []Address `json:"data"`
}

type userResponse struct {
	Data User `json:"data"`
}

type authResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

type checkoutResponse struct {
	Status  string `json:"status"`
	Session struct {
		URL string `json:"url"`
	} `json:"session"`
}

type messageResponse struct {
	Message string `json:"message"`
}
