// Package geo implementa el cálculo de distancia ortodrómica usado por el
// perímetro de asistencia. Es matemática pura, sin efectos: la decisión de
// rechazar una marcación se toma arriba, en el caso de uso.
package geo

import "math"

// EarthRadiusMeters radio medio de la Tierra en metros.
const EarthRadiusMeters = 6_371_000.0

// Point es una coordenada geográfica en grados decimales.
type Point struct {
	Lat float64
	Lng float64
}

// Distance calcula la distancia en metros entre dos puntos con la fórmula
// de Haversine sobre una esfera de radio EarthRadiusMeters:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlng/2)
//	d = R · 2·atan2(√a, √(1−a))
//
// Es simétrica y devuelve 0 para puntos idénticos.
func Distance(from, to Point) float64 {
	dLat := radians(to.Lat - from.Lat)
	dLng := radians(to.Lng - from.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat + math.Cos(radians(from.Lat))*math.Cos(radians(to.Lat))*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
