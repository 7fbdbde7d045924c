package domain

import "time"

// BikeParking - велопарковка рядом с объектом.
type BikeParking struct {
	ID         int64
	PropertyID int64

	ParkingName string
	Address     string
	Latitude    *float64
	Longitude   *float64
	// Distance - расстояние до объекта в километрах
	Distance   *float64
	Fee        *string
	ParkingURL string

	CreatedAt time.Time
}

type BikeParkingInput struct {
	PropertyID  int64
	ParkingName string
	Address     string
	Latitude    *float64
	Longitude   *float64
	Distance    *float64
	Fee         *string
	ParkingURL  string
}

// NewBikeParking собирает новую запись, created_at = now.
func NewBikeParking(in BikeParkingInput, now time.Time) BikeParking {
	return BikeParking{CreatedAt: now}.Replaced(in)
}

// Replaced возвращает копию записи со всеми полями из in. CreatedAt сохраняется.
func (b BikeParking) Replaced(in BikeParkingInput) BikeParking {
	next := b
	next.PropertyID = in.PropertyID
	next.ParkingName = in.ParkingName
	next.Address = in.Address
	next.Latitude = roundCoordinate(in.Latitude)
	next.Longitude = roundCoordinate(in.Longitude)
	next.Distance = copyFloat(in.Distance)
	next.Fee = copyString(in.Fee)
	next.ParkingURL = in.ParkingURL
	return next
}

// Coordinates возвращает координаты парковки, если заданы обе.
func (b BikeParking) Coordinates() (lat, lon float64, ok bool) {
	if b.Latitude == nil || b.Longitude == nil {
		return 0, 0, false
	}
	return *b.Latitude, *b.Longitude, true
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
