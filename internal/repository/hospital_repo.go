package repository

import (
	"errors"
	"strings"

	"hospital-finder-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// SearchFilters holds the optional catalog search parameters. Empty
// string / nil fields are not applied.
type SearchFilters struct {
	State            string
	District         string
	Name             string
	Category         string
	Specialty        string
	MinAvailableBeds *int
	SearchText       string
}

// StatGroup is one bucket of a grouped count
type StatGroup struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// HospitalStats aggregates the hospital collection
type HospitalStats struct {
	TotalHospitals int64       `json:"totalHospitals"`
	TotalBeds      int64       `json:"totalBeds"`
	AvailableBeds  int64       `json:"availableBeds"`
	ByCategory     []StatGroup `json:"byCategory"`
	ByState        []StatGroup `json:"byState"`
}

// GetAll retrieves every hospital record unfiltered
func (r *HospitalRepository) GetAll() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Find(&hospitals).Error
	return hospitals, err
}

// GetByID retrieves a hospital by ID
func (r *HospitalRepository) GetByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// Create inserts a new hospital
func (r *HospitalRepository) Create(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// Count returns the number of hospital records
func (r *HospitalRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Hospital{}).Count(&n).Error
	return n, err
}

// Search applies the provided filters; with no filters set it returns
// every record
func (r *HospitalRepository) Search(f SearchFilters) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	q := r.db
	conds, args := searchClauses(f)
	if len(conds) > 0 {
		q = q.Where(strings.Join(conds, " AND "), args...)
	}
	err := q.Find(&hospitals).Error
	return hospitals, err
}

// searchClauses translates filters into SQL conditions. Text filters are
// case-insensitive substring matches; searchText is OR-ed across
// name/address/district/state/specialties and AND-ed with the rest.
func searchClauses(f SearchFilters) ([]string, []interface{}) {
	var conds []string
	var args []interface{}

	like := func(column, value string) {
		conds = append(conds, "LOWER("+column+") LIKE ?")
		args = append(args, "%"+strings.ToLower(value)+"%")
	}

	if f.State != "" {
		like("state", f.State)
	}
	if f.District != "" {
		like("district", f.District)
	}
	if f.Name != "" {
		like("name", f.Name)
	}
	if f.Category != "" {
		like("category", f.Category)
	}
	if f.Specialty != "" {
		like("specialties", f.Specialty)
	}
	if f.MinAvailableBeds != nil {
		conds = append(conds, "available_beds >= ?")
		args = append(args, *f.MinAvailableBeds)
	}
	if f.SearchText != "" {
		columns := []string{"name", "address", "district", "state", "specialties"}
		pattern := "%" + strings.ToLower(f.SearchText) + "%"
		or := make([]string, len(columns))
		for i, c := range columns {
			or[i] = "LOWER(" + c + ") LIKE ?"
			args = append(args, pattern)
		}
		conds = append(conds, "("+strings.Join(or, " OR ")+")")
	}

	return conds, args
}

// Stats aggregates counts and bed sums over the hospital collection
func (r *HospitalRepository) Stats() (*HospitalStats, error) {
	stats := &HospitalStats{}

	if err := r.db.Model(&models.Hospital{}).Count(&stats.TotalHospitals).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Hospital{}).
		Select("COALESCE(SUM(total_beds), 0)").
		Row().Scan(&stats.TotalBeds); err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Hospital{}).
		Select("COALESCE(SUM(available_beds), 0)").
		Row().Scan(&stats.AvailableBeds); err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Hospital{}).
		Select("category AS label, COUNT(*) AS count").
		Group("category").
		Scan(&stats.ByCategory).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Hospital{}).
		Select("state AS label, COUNT(*) AS count").
		Group("state").
		Order("count DESC").
		Scan(&stats.ByState).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
