package rest

import (
	"encoding/json"
	"fmt"
	"property-search-service/internal/core/domain"
	"time"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// ValidationErrorDetail описывает одно нарушенное правило валидации
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrorResponse struct {
	Error   string                  `json:"error"`
	Details []ValidationErrorDetail `json:"details"`
}

// Timestamp принимает RFC 3339 и дату-время без зоны (считается UTC)
type Timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			*t = Timestamp(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a timestamp", raw)
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// --- Запросы ---
// Все поля - указатели, чтобы отличать отсутствующее поле от нулевого значения.

type PropertyRequest struct {
	Name              *string  `json:"name" validate:"required,max=255"`
	Address           *string  `json:"address" validate:"required,max=255"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Station           *string  `json:"station" validate:"required,max=255"`
	WalkingMinutes    *int     `json:"walking_minutes" validate:"required,gte=0"`
	Rent              *int     `json:"rent" validate:"required,gte=0"`
	ManagementFee     *int     `json:"management_fee" validate:"omitempty,gte=0"`
	Deposit           *int     `json:"deposit" validate:"omitempty,gte=0"`
	KeyMoney          *int     `json:"key_money" validate:"omitempty,gte=0"`
	FloorPlan         *string  `json:"floor_plan" validate:"required,max=50"`
	SizeSqm           *float64 `json:"size_sqm" validate:"required,gte=0"`
	BuildingStructure *string  `json:"building_structure" validate:"required,max=50"`
	BuiltYear         *int     `json:"built_year" validate:"required,gte=0"`
	TotalFloors       *int     `json:"total_floors" validate:"omitempty,gte=0"`
	Floor             *int     `json:"floor" validate:"required,gte=0"`
	CornerRoom        *bool    `json:"corner_room" validate:"required"`
	Status            *string  `json:"status" validate:"required,max=20"`
	SiteURL           *string  `json:"site_url" validate:"required,max=500"`
	MainImageURL      *string  `json:"main_image_url" validate:"omitempty,max=500"`
}

func (req PropertyRequest) toInput() domain.PropertyInput {
	return domain.PropertyInput{
		Name:              *req.Name,
		Address:           *req.Address,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Station:           *req.Station,
		WalkingMinutes:    *req.WalkingMinutes,
		Rent:              *req.Rent,
		ManagementFee:     req.ManagementFee,
		Deposit:           req.Deposit,
		KeyMoney:          req.KeyMoney,
		FloorPlan:         *req.FloorPlan,
		SizeSqm:           *req.SizeSqm,
		BuildingStructure: *req.BuildingStructure,
		BuiltYear:         *req.BuiltYear,
		TotalFloors:       req.TotalFloors,
		Floor:             *req.Floor,
		CornerRoom:        *req.CornerRoom,
		Status:            *req.Status,
		SiteURL:           *req.SiteURL,
		MainImageURL:      req.MainImageURL,
	}
}

type InternetProviderRequest struct {
	PropertyID   *int64     `json:"property_id" validate:"required"`
	FletsPlan    *string    `json:"flets_plan" validate:"omitempty,max=100"`
	AuHikariPlan *string    `json:"au_hikari_plan" validate:"omitempty,max=100"`
	NuroPlan     *string    `json:"nuro_plan" validate:"omitempty,max=100"`
	JcomPlan     *string    `json:"jcom_plan" validate:"omitempty,max=100"`
	CheckedAt    *Timestamp `json:"checked_at" validate:"required"`
}

func (req InternetProviderRequest) toInput() domain.InternetProviderInput {
	return domain.InternetProviderInput{
		PropertyID:   *req.PropertyID,
		FletsPlan:    req.FletsPlan,
		AuHikariPlan: req.AuHikariPlan,
		NuroPlan:     req.NuroPlan,
		JcomPlan:     req.JcomPlan,
		CheckedAt:    req.CheckedAt.Time(),
	}
}

type BikeParkingRequest struct {
	PropertyID  *int64   `json:"property_id" validate:"required"`
	ParkingName *string  `json:"parking_name" validate:"required,max=255"`
	Address     *string  `json:"address" validate:"required,max=255"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Distance    *float64 `json:"distance" validate:"omitempty,gte=0"`
	Fee         *string  `json:"fee" validate:"omitempty,max=50"`
	ParkingURL  *string  `json:"parking_url" validate:"required,max=500"`
}

func (req BikeParkingRequest) toInput() domain.BikeParkingInput {
	return domain.BikeParkingInput{
		PropertyID:  *req.PropertyID,
		ParkingName: *req.ParkingName,
		Address:     *req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Distance:    req.Distance,
		Fee:         req.Fee,
		ParkingURL:  *req.ParkingURL,
	}
}

type NotificationRequest struct {
	PropertyID    *int64     `json:"property_id" validate:"required"`
	NotifiedAt    *Timestamp `json:"notified_at" validate:"required"`
	LineMessageID *string    `json:"line_message_id" validate:"omitempty,max=255"`
}

func (req NotificationRequest) toInput() domain.NotificationInput {
	return domain.NotificationInput{
		PropertyID:    *req.PropertyID,
		NotifiedAt:    req.NotifiedAt.Time(),
		LineMessageID: req.LineMessageID,
	}
}

// --- Ответы ---

type InternetProviderResponse struct {
	ID           int64     `json:"id"`
	PropertyID   int64     `json:"property_id"`
	FletsPlan    *string   `json:"flets_plan"`
	AuHikariPlan *string   `json:"au_hikari_plan"`
	NuroPlan     *string   `json:"nuro_plan"`
	JcomPlan     *string   `json:"jcom_plan"`
	CheckedAt    time.Time `json:"checked_at"`
}

type BikeParkingResponse struct {
	ID          int64     `json:"id"`
	PropertyID  int64     `json:"property_id"`
	ParkingName string    `json:"parking_name"`
	Address     string    `json:"address"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Distance    *float64  `json:"distance"`
	Fee         *string   `json:"fee"`
	ParkingURL  string    `json:"parking_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type NotificationResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	NotifiedAt    time.Time `json:"notified_at"`
	LineMessageID *string   `json:"line_message_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type PropertyResponse struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	Geohash           string   `json:"geohash"`
	Station           string   `json:"station"`
	WalkingMinutes    int      `json:"walking_minutes"`
	Rent              int      `json:"rent"`
	ManagementFee     *int     `json:"management_fee"`
	Deposit           *int     `json:"deposit"`
	KeyMoney          *int     `json:"key_money"`
	FloorPlan         string   `json:"floor_plan"`
	SizeSqm           float64  `json:"size_sqm"`
	BuildingStructure string   `json:"building_structure"`
	BuiltYear         int      `json:"built_year"`
	TotalFloors       *int     `json:"total_floors"`
	Floor             int      `json:"floor"`
	CornerRoom        bool     `json:"corner_room"`
	Status            string   `json:"status"`
	SiteURL           string   `json:"site_url"`
	MainImageURL      *string  `json:"main_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	InternetProvider *InternetProviderResponse `json:"internet_provider"`
	BikeParkings     []BikeParkingResponse     `json:"bike_parkings"`
	Notifications    []NotificationResponse    `json:"notifications"`
}

func toInternetProviderResponse(ip domain.InternetProvider) InternetProviderResponse {
	return InternetProviderResponse{
		ID:           ip.ID,
		PropertyID:   ip.PropertyID,
		FletsPlan:    ip.FletsPlan,
		AuHikariPlan: ip.AuHikariPlan,
		NuroPlan:     ip.NuroPlan,
		JcomPlan:     ip.JcomPlan,
		CheckedAt:    ip.CheckedAt.UTC(),
	}
}

func toBikeParkingResponse(b domain.BikeParking) BikeParkingResponse {
	return BikeParkingResponse{
		ID:          b.ID,
		PropertyID:  b.PropertyID,
		ParkingName: b.ParkingName,
		Address:     b.Address,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		Distance:    b.Distance,
		Fee:         b.Fee,
		ParkingURL:  b.ParkingURL,
		CreatedAt:   b.CreatedAt.UTC(),
	}
}

func toBikeParkingResponses(items []domain.BikeParking) []BikeParkingResponse {
	out := make([]BikeParkingResponse, len(items))
	for i, b := range items {
		out[i] = toBikeParkingResponse(b)
	}
	return out
}

func toNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		PropertyID:    n.PropertyID,
		NotifiedAt:    n.NotifiedAt.UTC(),
		LineMessageID: n.LineMessageID,
		CreatedAt:     n.CreatedAt.UTC(),
	}
}

func toNotificationResponses(items []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(items))
	for i, n := range items {
		out[i] = toNotificationResponse(n)
	}
	return out
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:                p.ID,
		Name:              p.Name,
		Address:           p.Address,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Geohash:           p.Geohash,
		Station:           p.Station,
		WalkingMinutes:    p.WalkingMinutes,
		Rent:              p.Rent,
		ManagementFee:     p.ManagementFee,
		Deposit:           p.Deposit,
		KeyMoney:          p.KeyMoney,
		FloorPlan:         p.FloorPlan,
		SizeSqm:           p.SizeSqm,
		BuildingStructure: p.BuildingStructure,
		BuiltYear:         p.BuiltYear,
		TotalFloors:       p.TotalFloors,
		Floor:             p.Floor,
		CornerRoom:        p.CornerRoom,
		Status:            p.Status,
		SiteURL:           p.SiteURL,
		MainImageURL:      p.MainImageURL,
		CreatedAt:         p.CreatedAt.UTC(),
		UpdatedAt:         p.UpdatedAt.UTC(),
		BikeParkings:      toBikeParkingResponses(p.BikeParkings),
		Notifications:     toNotificationResponses(p.Notifications),
	}
	if p.InternetProvider != nil {
		ip := toInternetProviderResponse(*p.InternetProvider)
		resp.InternetProvider = &ip
	}
	return resp
}

func toPropertyResponses(items []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(items))
	for i, p := range items {
		out[i] = toPropertyResponse(p)
	}
	return out
}
