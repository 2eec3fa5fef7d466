package http

import "time"

// Request and response bodies for the JSON API. Money and weight travel as
// decimal strings to avoid float rounding on the wire.

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type RegisterAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CabinetID string `json:"cabinetId"`
	Balance   string `json:"balance"`
}

type TopUpRequest struct {
	Amount string `json:"amount"`
}

type BalanceResponse struct {
	AccountID string `json:"accountId"`
	CabinetID string `json:"cabinetId"`
	Balance   string `json:"balance"`
}

type CreateOrderRequest struct {
	TrackingID string  `json:"trackingId"`
	Weight     string  `json:"weight"`
	CabinetID  string  `json:"cabinetId"`
	CountryID  string  `json:"countryId"`
	FlightID   *string `json:"flightId,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID               string    `json:"id"`
	TrackingID       string    `json:"trackingId"`
	Weight           string    `json:"weight"`
	CabinetID        string    `json:"cabinetId"`
	Price            string    `json:"price"`
	Status           string    `json:"status"`
	IsPaid           bool      `json:"isPaid"`
	IsDeclared       bool      `json:"isDeclared"`
	CountryName      string    `json:"countryName,omitempty"`
	CountryCode      string    `json:"countryCode,omitempty"`
	FlightNumber     string    `json:"flightNumber,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	LastStatusUpdate time.Time `json:"lastStatusUpdate"`
}

type PayOrderResponse struct {
	Order   OrderResponse   `json:"order"`
	Balance BalanceResponse `json:"balance"`
}

type CreateCountryRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	Rate    string `json:"rate"`
}

type CountryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	Rate    string `json:"rate"`
}

type CreateFlightRequest struct {
	Number        string    `json:"number"`
	DepartureTime time.Time `json:"departureTime"`
}

type FlightResponse struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	DepartureTime time.Time `json:"departureTime"`
}

type CreateShopRequest struct {
	Name      string  `json:"name"`
	CountryID *string `json:"countryId,omitempty"`
}

type ShopResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryName string `json:"countryName,omitempty"`
}
