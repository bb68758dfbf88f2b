package backend

import "time"

// Wire shapes follow the backend's field naming (`_id`, `prix`,
// `adresse`) so nothing here needs translation layers.

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"prix"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Upload is an image attached to a product create/update.
type Upload struct {
	Filename string
	Content  []byte
}

// ProductForm is the multipart payload for admin product create/update.
type ProductForm struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Image       *Upload
}

// OrderDraft is the body of a checkout submission.
type OrderDraft struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Address    string      `json:"adresse"`
	City       string      `json:"city"`
	Products   []DraftItem `json:"products"`
	TotalPrice float64     `json:"totalPrice"`
}

type DraftItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderProduct is one line of a placed order. The backend populates
// productId with the product document; deleted products come back null.
type OrderProduct struct {
	Product  *OrderProductRef `json:"productId"`
	Quantity int              `json:"quantity"`
}

type OrderProductRef struct {
	Name string `json:"name"`
}

type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Order struct {
	ID         string         `json:"_id"`
	Customer   *OrderCustomer `json:"clientId"`
	Products   []OrderProduct `json:"products"`
	TotalPrice float64        `json:"totalPrice"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type ContactForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"object"`
	Description string `json:"description"`
}

type ContactMessage struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Subject     string    `json:"object"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ContactReply struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type AdminProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token string        `json:"token"`
	Admin *AdminProfile `json:"admin"`
}

type Stats struct {
	TotalProducts  int            `json:"totalProducts"`
	TotalClients   int            `json:"totalClients"`
	TotalOrders    int            `json:"totalOrders"`
	TotalSales     float64        `json:"totalSales"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
}
