package order

type Status string

// Status is authoritative only from the backend; the client never
// assigns one locally. An empty status reads as "processing".
const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusConfirmed      Status = "CONFIRMED"
	StatusCancelled      Status = "CANCELLED"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "CASH"
	MethodPayPal PaymentMethod = "PAYPAL"
)

// OrderItem is a point-in-time copy taken at checkout, not a live
// product reference.
type OrderItem struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type Order struct {
	ID              uint          `json:"id"`
	UserID          uint          `json:"userId"`
	UserFirstName   string        `json:"userFirstName"`
	UserLastName    string        `json:"userLastName"`
	UserEmail       string        `json:"userEmail"`
	Items           []OrderItem   `json:"items"`
	TotalPrice      float64       `json:"totalPrice"`
	ShippingAddress string        `json:"shippingAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	OrderDate       string        `json:"orderDate"`
	Status          Status        `json:"status,omitempty"`
}
