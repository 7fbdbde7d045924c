package domain

import (
	"math"
	"time"
)

// StatusNotified - статус, который получает объект после отправки уведомления
const StatusNotified = "NOTIFIED"

// Property - объект аренды, корневой агрегат
type Property struct {
	ID int64

	Name              string
	Address           string
	Latitude          *float64
	Longitude         *float64
	Station           string
	WalkingMinutes    int
	Rent              int
	ManagementFee     *int
	Deposit           *int
	KeyMoney          *int
	FloorPlan         string
	SizeSqm           float64
	BuildingStructure string
	BuiltYear         int
	TotalFloors       *int
	Floor             int
	CornerRoom        bool
	Status            string
	SiteURL           string
	MainImageURL      *string

	// Geohash вычисляется сервером по координатам, пустой если координат нет
	Geohash string

	CreatedAt time.Time
	UpdatedAt time.Time

	InternetProvider *InternetProvider
	BikeParkings     []BikeParking
	Notifications    []Notification
}

// PropertyInput - базовые поля объекта, которые передает клиент при создании и полной замене.
type PropertyInput struct {
	Name              string
	Address           string
	Latitude          *float64
	Longitude         *float64
	Station           string
	WalkingMinutes    int
	Rent              int
	ManagementFee     *int
	Deposit           *int
	KeyMoney          *int
	FloorPlan         string
	SizeSqm           float64
	BuildingStructure string
	BuiltYear         int
	TotalFloors       *int
	Floor             int
	CornerRoom        bool
	Status            string
	SiteURL           string
	MainImageURL      *string
}

// NewProperty собирает новый объект из входных данных. created_at и updated_at
// берутся из одного значения now.
func NewProperty(in PropertyInput, now time.Time) Property {
	p := Property{
		CreatedAt:     now,
		BikeParkings:  []BikeParking{},
		Notifications: []Notification{},
	}
	return p.Replaced(in, now)
}

// Replaced возвращает копию объекта, в которой все базовые поля заменены значениями из in.
// ID и CreatedAt не меняются, UpdatedAt никогда не уменьшается.
func (p Property) Replaced(in PropertyInput, now time.Time) Property {
	next := p

	next.Name = in.Name
	next.Address = in.Address
	next.Latitude = roundCoordinate(in.Latitude)
	next.Longitude = roundCoordinate(in.Longitude)
	next.Station = in.Station
	next.WalkingMinutes = in.WalkingMinutes
	next.Rent = in.Rent
	next.ManagementFee = copyInt(in.ManagementFee)
	next.Deposit = copyInt(in.Deposit)
	next.KeyMoney = copyInt(in.KeyMoney)
	next.FloorPlan = in.FloorPlan
	next.SizeSqm = in.SizeSqm
	next.BuildingStructure = in.BuildingStructure
	next.BuiltYear = in.BuiltYear
	next.TotalFloors = copyInt(in.TotalFloors)
	next.Floor = in.Floor
	next.CornerRoom = in.CornerRoom
	next.Status = in.Status
	next.SiteURL = in.SiteURL
	next.MainImageURL = copyString(in.MainImageURL)

	// geohash зависит от координат, поэтому старое значение сбрасываем
	next.Geohash = ""

	if now.Before(p.UpdatedAt) {
		now = p.UpdatedAt
	}
	next.UpdatedAt = now

	return next
}

// Coordinates возвращает координаты объекта, если заданы обе.
func (p Property) Coordinates() (lat, lon float64, ok bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return 0, 0, false
	}
	return *p.Latitude, *p.Longitude, true
}

// PropertyFilter - параметры выборки списка объектов. nil означает "без фильтра".
type PropertyFilter struct {
	Station       *string
	MinRent       *int
	MaxRent       *int
	FloorPlan     *string
	GeohashPrefix *string

	Skip  int
	Limit int
}

const (
	DefaultListSkip  = 0
	DefaultListLimit = 100
)

// координаты хранятся с точностью 6 знаков после запятой
func roundCoordinate(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*1e6) / 1e6
	return &r
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
