package service

import (
	"math"
	"sort"

	"hospital-finder-backend/internal/models"
	"hospital-finder-backend/internal/repository"
)

// DefaultNearbyRadiusKm is used when a nearby query omits the radius
const DefaultNearbyRadiusKm = 50

const earthRadiusKm = 6371

// HospitalStore is the persistence surface the catalog queries need
type HospitalStore interface {
	GetAll() ([]models.Hospital, error)
	GetByID(id uint) (*models.Hospital, error)
	Search(f repository.SearchFilters) ([]models.Hospital, error)
	Stats() (*repository.HospitalStats, error)
	Count() (int64, error)
}

type HospitalService struct {
	hospitals HospitalStore
}

func NewHospitalService(hospitals HospitalStore) *HospitalService {
	return &HospitalService{hospitals: hospitals}
}

// ListAll returns every hospital record unfiltered. No pagination by
// design; the catalog is served whole.
func (s *HospitalService) ListAll() ([]models.Hospital, error) {
	return s.hospitals.GetAll()
}

// GetByID retrieves a single hospital
func (s *HospitalService) GetByID(id uint) (*models.Hospital, error) {
	return s.hospitals.GetByID(id)
}

// Search applies the catalog filters
func (s *HospitalService) Search(f repository.SearchFilters) ([]models.Hospital, error) {
	return s.hospitals.Search(f)
}

// Stats aggregates the hospital collection
func (s *HospitalService) Stats() (*repository.HospitalStats, error) {
	return s.hospitals.Stats()
}

// Count returns the number of hospital records
func (s *HospitalService) Count() (int64, error) {
	return s.hospitals.Count()
}

// Nearby returns all hospitals within radiusKm kilometers of the given
// point, nearest first. A non-positive radius falls back to the
// default. Great-circle distance over the stored point field.
func (s *HospitalService) Nearby(lat, lng, radiusKm float64) ([]models.Hospital, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	hospitals, err := s.hospitals.GetAll()
	if err != nil {
		return nil, err
	}

	type candidate struct {
		hospital models.Hospital
		distance float64
	}

	var within []candidate
	for _, h := range hospitals {
		d := haversineKm(lat, lng, h.Location.Latitude, h.Location.Longitude)
		if d <= radiusKm {
			within = append(within, candidate{hospital: h, distance: d})
		}
	}

	sort.Slice(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})

	result := make([]models.Hospital, len(within))
	for i, c := range within {
		result[i] = c.hospital
	}
	return result, nil
}

// haversineKm computes the great-circle distance between two points in
// kilometers
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
