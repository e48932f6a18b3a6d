package domain

// CartItemColor describes the color dimension of a cart line, when the
// underlying variant has one.
type CartItemColor struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	HexCode string `json:"hexCode"`
}

// CartItemSize describes the size dimension of a cart line.
type CartItemSize struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CartItem is one line of a cart joined with its variant and product data.
// Price is the effective unit price (sale price when lower, else list price);
// CompareAt carries the original price only when it differs.
type CartItem struct {
	ID        string         `json:"id"`
	VariantID string         `json:"variantId"`
	ProductID string         `json:"productId"`
	Name      string         `json:"name"`
	Color     *CartItemColor `json:"color"`
	Size      *CartItemSize  `json:"size"`
	Price     float64        `json:"price"`
	CompareAt *float64       `json:"compareAt,omitempty"`
	Quantity  int32          `json:"quantity"`
	ImageURL  string         `json:"imageUrl"`
}

// Cart is the full cart snapshot returned after every read or mutation.
// All monetary fields are rounded to two decimal places.
type Cart struct {
	CartID            string     `json:"cartId"`
	Items             []CartItem `json:"items"`
	Subtotal          float64    `json:"subtotal"`
	EstimatedShipping float64    `json:"estimatedShipping"`
	Total             float64    `json:"total"`
	ItemCount         int        `json:"itemCount"`
}

// ActiveCart identifies the cart bound to the current session owner.
type ActiveCart struct {
	CartID string
	Owner  Identity
}
