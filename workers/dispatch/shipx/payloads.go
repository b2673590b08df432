package shipx

type Address struct {
	Street         string `json:"street"`
	BuildingNumber string `json:"building_number"`
	City           string `json:"city"`
	PostCode       string `json:"post_code"`
	CountryCode    string `json:"country_code"`
}

type Peer struct {
	CompanyName string  `json:"company_name,omitempty"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     Address `json:"address"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type Weight struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Parcel struct {
	Dimensions    Dimensions `json:"dimensions"`
	Weight        Weight     `json:"weight"`
	IsNonStandard bool       `json:"is_non_standard"`
}

type Insurance struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type ShipmentRequest struct {
	Receiver         Peer              `json:"receiver"`
	Sender           Peer              `json:"sender"`
	Parcels          []Parcel          `json:"parcels"`
	Insurance        *Insurance        `json:"insurance,omitempty"`
	CustomAttributes map[string]string `json:"custom_attributes,omitempty"`
	Service          string            `json:"service"`
	Reference        string            `json:"reference"`
	Comments         string            `json:"comments,omitempty"`
}

// DispatchShipment is the shipment snapshot embedded in a dispatch order request.
type DispatchShipment struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type DispatchOrderRequest struct {
	Shipments       []DispatchShipment `json:"shipments"`
	DispatchPointID int64              `json:"dispatch_point_id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Address         Address            `json:"address"`
	DispatchDate    string             `json:"dispatch_date"`
	Comment         string             `json:"comment,omitempty"`
}
