package http

import (
	"time"

	"github.com/shopspring/decimal"

	"mescolis/internal/core/application/usecases/commands"
	"mescolis/internal/core/application/usecases/queries"
	"mescolis/internal/core/domain/model/shipment"
)

// Error is the JSON error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	CompanyName       string `json:"companyName"`
	Phone             string `json:"phone"`
	AccountType       string `json:"accountType"`
	PreferredLanguage string `json:"preferredLanguage"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token       string    `json:"token"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Role        string    `json:"role"`
	AccountType string    `json:"accountType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func authResponseFrom(r *commands.AuthResponse) AuthResponse {
	return AuthResponse{
		Token:       r.Token,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Role:        r.Role,
		AccountType: r.AccountType,
		ExpiresAt:   r.ExpiresAt,
	}
}

// ProfileResponse echoes the verified token claims of the caller.
type ProfileResponse struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Role        string `json:"role"`
	AccountType string `json:"accountType"`
}

type QuoteRequest struct {
	FromPostalCode string          `json:"fromPostalCode"`
	ToPostalCode   string          `json:"toPostalCode"`
	FromCountry    string          `json:"fromCountry"`
	ToCountry      string          `json:"toCountry"`
	WeightKg       decimal.Decimal `json:"weightKg"`
	LengthCm       decimal.Decimal `json:"lengthCm"`
	WidthCm        decimal.Decimal `json:"widthCm"`
	HeightCm       decimal.Decimal `json:"heightCm"`
	ShipmentType   string          `json:"shipmentType"`
}

type QuoteResponse struct {
	CarrierName    string          `json:"carrierName"`
	ServiceName    string          `json:"serviceName"`
	Price          decimal.Decimal `json:"price"`
	ListPrice      decimal.Decimal `json:"listPrice"`
	Savings        decimal.Decimal `json:"savings"`
	EstimatedDays  int             `json:"estimatedDays"`
	CarrierLogoURL string          `json:"carrierLogoUrl"`
}

func quoteResponsesFrom(rates []queries.QuoteResponse) []QuoteResponse {
	out := make([]QuoteResponse, len(rates))
	for i, r := range rates {
		out[i] = QuoteResponse{
			CarrierName:    r.CarrierName,
			ServiceName:    r.ServiceName,
			Price:          r.Price,
			ListPrice:      r.ListPrice,
			Savings:        r.Savings,
			EstimatedDays:  r.EstimatedDays,
			CarrierLogoURL: r.CarrierLogoURL,
		}
	}
	return out
}

type AddressRequest struct {
	Street        string `json:"street"`
	Street2       string `json:"street2"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	CompanyName   string `json:"companyName"`
	ContactName   string `json:"contactName"`
	ContactPhone  string `json:"contactPhone"`
	IsResidential bool   `json:"isResidential"`
}

func (r AddressRequest) toDomain() (shipment.Address, error) {
	return shipment.NewAddress(
		r.Street,
		r.Street2,
		r.City,
		r.Province,
		r.PostalCode,
		r.Country,
		r.CompanyName,
		r.ContactName,
		r.ContactPhone,
		r.IsResidential,
	)
}

type CreateShipmentRequest struct {
	FromAddress         AddressRequest  `json:"fromAddress"`
	ToAddress           AddressRequest  `json:"toAddress"`
	ShipmentType        string          `json:"shipmentType"`
	WeightKg            decimal.Decimal `json:"weightKg"`
	LengthCm            decimal.Decimal `json:"lengthCm"`
	WidthCm             decimal.Decimal `json:"widthCm"`
	HeightCm            decimal.Decimal `json:"heightCm"`
	CarrierName         string          `json:"carrierName"`
	ServiceName         string          `json:"serviceName"`
	QuotedPrice         decimal.Decimal `json:"quotedPrice"`
	OriginLockerID      *int64          `json:"originLockerId"`
	DestinationLockerID *int64          `json:"destinationLockerId"`
}

type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type TrackingEventResponse struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
}

type ShipmentResponse struct {
	ID                int64                   `json:"id"`
	TrackingNumber    string                  `json:"trackingNumber"`
	ShipmentType      string                  `json:"shipmentType"`
	Status            string                  `json:"status"`
	CarrierName       string                  `json:"carrierName"`
	ServiceName       string                  `json:"serviceName"`
	QuotedPrice       decimal.Decimal         `json:"quotedPrice"`
	Currency          string                  `json:"currency"`
	WeightKg          decimal.Decimal         `json:"weightKg"`
	LabelURL          string                  `json:"labelUrl"`
	CreatedAt         time.Time               `json:"createdAt"`
	EstimatedDelivery *time.Time              `json:"estimatedDelivery"`
	FromAddress       AddressResponse         `json:"fromAddress"`
	ToAddress         AddressResponse         `json:"toAddress"`
	TrackingEvents    []TrackingEventResponse `json:"trackingEvents"`
}

func shipmentResponseFrom(r *queries.ShipmentResponse) ShipmentResponse {
	events := make([]TrackingEventResponse, len(r.TrackingEvents))
	for i, e := range r.TrackingEvents {
		events[i] = TrackingEventResponse{
			Status:      e.Status,
			Description: e.Description,
			Location:    e.Location,
			Timestamp:   e.Timestamp,
		}
	}
	return ShipmentResponse{
		ID:                r.ID,
		TrackingNumber:    r.TrackingNumber,
		ShipmentType:      r.ShipmentType,
		Status:            r.Status,
		CarrierName:       r.CarrierName,
		ServiceName:       r.ServiceName,
		QuotedPrice:       r.QuotedPrice,
		Currency:          r.Currency,
		WeightKg:          r.WeightKg,
		LabelURL:          r.LabelURL,
		CreatedAt:         r.CreatedAt,
		EstimatedDelivery: r.EstimatedDelivery,
		FromAddress:       addressResponseFrom(r.FromAddress),
		ToAddress:         addressResponseFrom(r.ToAddress),
		TrackingEvents:    events,
	}
}

func addressResponseFrom(a queries.AddressResponse) AddressResponse {
	return AddressResponse{
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// CreatedShipmentResponse is returned right after a label purchase, before
// the read side has anything to say about the shipment.
type CreatedShipmentResponse struct {
	ID                int64           `json:"id"`
	TrackingNumber    string          `json:"trackingNumber"`
	Status            string          `json:"status"`
	CarrierName       string          `json:"carrierName"`
	ServiceName       string          `json:"serviceName"`
	QuotedPrice       decimal.Decimal `json:"quotedPrice"`
	Currency          string          `json:"currency"`
	LabelURL          string          `json:"labelUrl"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery"`
}

func createdShipmentResponseFrom(s *shipment.Shipment) CreatedShipmentResponse {
	return CreatedShipmentResponse{
		ID:                s.ID(),
		TrackingNumber:    s.TrackingNumber(),
		Status:            s.Status().String(),
		CarrierName:       s.CarrierName(),
		ServiceName:       s.ServiceName(),
		QuotedPrice:       s.QuotedPrice(),
		Currency:          s.Currency(),
		LabelURL:          s.LabelURL(),
		CreatedAt:         s.CreatedAt(),
		EstimatedDelivery: s.EstimatedDelivery(),
	}
}

type PaginatedShipmentsResponse struct {
	Items      []ShipmentResponse `json:"items"`
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

type LockerResponse struct {
	ID                    int64   `json:"id"`
	LockerCode            string  `json:"lockerCode"`
	LocationName          string  `json:"locationName"`
	Address               string  `json:"address"`
	City                  string  `json:"city"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	Status                string  `json:"status"`
	TotalCompartments     int     `json:"totalCompartments"`
	AvailableCompartments int     `json:"availableCompartments"`
	HasPOS                bool    `json:"hasPos"`
	DistanceKm            float64 `json:"distanceKm"`
}

func lockerResponsesFrom(lockers []queries.LockerResponse) []LockerResponse {
	out := make([]LockerResponse, len(lockers))
	for i, l := range lockers {
		out[i] = LockerResponse{
			ID:                    l.ID,
			LockerCode:            l.LockerCode,
			LocationName:          l.LocationName,
			Address:               l.Address,
			City:                  l.City,
			Latitude:              l.Latitude,
			Longitude:             l.Longitude,
			Status:                l.Status,
			TotalCompartments:     l.TotalCompartments,
			AvailableCompartments: l.AvailableCompartments,
			HasPOS:                l.HasPOS,
			DistanceKm:            l.DistanceKm,
		}
	}
	return out
}

type ReserveCompartmentRequest struct {
	LockerID   int64  `json:"lockerId"`
	Size       string `json:"size"`
	HoldHours  int    `json:"holdHours"`
	ShipmentID *int64 `json:"shipmentId"`
}

type ReservationResponse struct {
	ID                int64     `json:"id"`
	LockerCode        string    `json:"lockerCode"`
	LocationName      string    `json:"locationName"`
	CompartmentNumber string    `json:"compartmentNumber"`
	Size              string    `json:"size"`
	PickupPin         string    `json:"pickupPin"`
	Status            string    `json:"status"`
	ReservedAt        time.Time `json:"reservedAt"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

type CreatePaymentIntentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PaymentType string          `json:"paymentType"`
	Description string          `json:"description"`
	ShipmentID  *int64          `json:"shipmentId"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret    string          `json:"clientSecret"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type PaymentResponse struct {
	ID              int64           `json:"id"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	PaymentType     string          `json:"paymentType"`
	CompletedAt     *time.Time      `json:"completedAt"`
}

type AdminDashboardResponse struct {
	TotalUsers               int64           `json:"totalUsers"`
	TotalBusinessUsers       int64           `json:"totalBusinessUsers"`
	TotalConsumerUsers       int64           `json:"totalConsumerUsers"`
	NewUsersThisMonth        int64           `json:"newUsersThisMonth"`
	TotalShipments           int64           `json:"totalShipments"`
	ShipmentsThisMonth       int64           `json:"shipmentsThisMonth"`
	RevenueThisMonth         decimal.Decimal `json:"revenueThisMonth"`
	TotalRevenue             decimal.Decimal `json:"totalRevenue"`
	ActiveLockers            int64           `json:"activeLockers"`
	TotalLockerTransactions  int64           `json:"totalLockerTransactions"`
	AverageLockerUtilization float64         `json:"averageLockerUtilization"`
}

type AdminUserResponse struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	CompanyName   string          `json:"companyName"`
	AccountType   string          `json:"accountType"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastLoginAt   *time.Time      `json:"lastLoginAt"`
	ShipmentCount int64           `json:"shipmentCount"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
}

type PaginatedUsersResponse struct {
	Items      []AdminUserResponse `json:"items"`
	TotalCount int64               `json:"totalCount"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
}

type ToggleUserStatusResponse struct {
	UserID   string `json:"userId"`
	IsActive bool   `json:"isActive"`
}
