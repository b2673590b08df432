package shipx

// SenderRecord is the provider's echo of the sender; its ID doubles as the
// dispatch point identifier for pickup orders.
type SenderRecord struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

type Shipment struct {
	ID             int64        `json:"id"`
	Status         string       `json:"status"`
	TrackingNumber string       `json:"tracking_number"`
	Service        string       `json:"service"`
	Reference      string       `json:"reference"`
	Sender         SenderRecord `json:"sender"`
	CreatedAt      string       `json:"created_at"`
}

const (
	StatusCreated   = "created"
	StatusConfirmed = "confirmed"
)

type DispatchOrder struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
