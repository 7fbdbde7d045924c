package port

// GeoCalculatorPort - геодезические вычисления над координатами в градусах.
type GeoCalculatorPort interface {
	// DistanceKm возвращает расстояние между двумя точками в километрах.
	DistanceKm(lat1, lon1, lat2, lon2 float64) float64
	// Geohash кодирует точку в geohash фиксированной точности.
	Geohash(lat, lon float64) string
}
