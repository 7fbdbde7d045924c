package geo_adapter

import (
	"github.com/mmcloughlin/geohash"
	"github.com/tidwall/geodesic"
)

// DefaultGeohashPrecision - 9 символов, ячейка примерно 5x5 метров
const DefaultGeohashPrecision uint = 9

// Calculator считает расстояния на эллипсоиде WGS-84 (алгоритм Карни)
// и кодирует координаты в geohash.
type Calculator struct {
	precision uint
}

func NewCalculator(precision uint) *Calculator {
	if precision == 0 || precision > 12 {
		precision = DefaultGeohashPrecision
	}
	return &Calculator{precision: precision}
}

// DistanceKm возвращает геодезическое расстояние между точками в километрах.
func (c *Calculator) DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	var meters float64
	geodesic.WGS84.Inverse(lat1, lon1, lat2, lon2, &meters, nil, nil)
	return meters / 1000
}

func (c *Calculator) Geohash(lat, lon float64) string {
	return geohash.EncodeWithPrecision(lat, lon, c.precision)
}
