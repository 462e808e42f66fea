package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"hospital-finder-backend/internal/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// HospitalCreator inserts hospital records
type HospitalCreator interface {
	Create(hospital *models.Hospital) error
}

// ImportService turns a tabular upload (spreadsheet or CSV) into
// hospital records, one per row. Rows fail independently; a bad row is
// counted and skipped, never fatal to the batch. Duplicate rows insert
// again, there is no deduplication.
type ImportService struct {
	hospitals HospitalCreator
	audit     AuditRecorder
}

func NewImportService(hospitals HospitalCreator, audit AuditRecorder) *ImportService {
	return &ImportService{
		hospitals: hospitals,
		audit:     audit,
	}
}

// ImportResult reports the outcome of one import batch
type ImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
	Total    int `json:"total"`
}

// ImportFile parses the payload and inserts one hospital per row. The
// filename extension selects the parser: .csv goes through encoding/csv,
// anything else is treated as a spreadsheet. A payload that cannot be
// parsed at all is a fatal error.
func (s *ImportService) ImportFile(filename string, data []byte) (*ImportResult, error) {
	rows, err := parseRows(filename, data)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	result := &ImportResult{Total: len(rows)}

	for _, row := range rows {
		hospital := hospitalFromRow(row)
		if err := s.hospitals.Create(hospital); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}

	details := fmt.Sprintf("Import batch %s from %q: imported %d, failed %d of %d rows",
		batchID, filename, result.Imported, result.Failed, result.Total)
	_ = s.audit.Record("hospital_import", details)

	return result, nil
}

// parseRows reads the payload into header-keyed rows
func parseRows(filename string, data []byte) ([]map[string]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return parseCSVRows(data)
	}
	return parseSheetRows(data)
}

func parseCSVRows(data []byte) ([]map[string]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return keyRowsByHeader(records), nil
}

func parseSheetRows(data []byte) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return keyRowsByHeader(records), nil
}

// keyRowsByHeader maps each data row onto the first row's column names.
// Short rows leave trailing columns empty.
func keyRowsByHeader(records [][]string) []map[string]string {
	if len(records) < 2 {
		return nil
	}
	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[strings.TrimSpace(header)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// hospitalFromRow maps one import row onto a hospital record. Field
// coercion is tolerant: malformed numbers become 0 and malformed
// coordinates become the (0,0) point.
func hospitalFromRow(row map[string]string) *models.Hospital {
	get := func(key string) string {
		return strings.TrimSpace(row[key])
	}

	name := get("Hospital_Name")
	if name == "" {
		name = "Unknown Hospital"
	}
	category := get("Hospital_Category")
	if category == "" {
		category = "General"
	}

	lng, lat := parseCoordinates(get("Location_Coordinates"))

	totalBeds := parseIntDefault(get("Total_Num_Beds"))
	availableBeds := parseIntDefault(get("Available_Beds"))
	// Clamp into [0, totalBeds] at the boundary; an unknown total (0)
	// leaves the available count as imported
	if availableBeds < 0 {
		availableBeds = 0
	}
	if totalBeds > 0 && availableBeds > totalBeds {
		availableBeds = totalBeds
	}

	return &models.Hospital{
		SrNo:           get("Sr_No"),
		Name:           name,
		Category:       category,
		Discipline:     get("Discipline_Systems_of_Medicine"),
		Address:        get("Address_Original_First_Line"),
		State:          get("State"),
		District:       get("District"),
		Pincode:        get("Pincode"),
		Telephone:      get("Telephone"),
		EmergencyNum:   get("Emergency_Num"),
		BloodbankPhone: get("Bloodbank_Phone_No"),
		Email:          get("Hospital_Primary_Email_Id"),
		Website:        get("Website"),
		Specialties:    parseList(get("Specialties")),
		Facilities:     parseList(get("Facilities")),
		Accreditation:  get("Accreditation"),
		Ayush:          get("Ayush"),
		TotalBeds:      totalBeds,
		AvailableBeds:  availableBeds,
		PrivateWards:   parseIntDefault(get("Number_Private_Wards")),
		Location: models.GeoPoint{
			Longitude: lng,
			Latitude:  lat,
		},
		LocationCoordinates: get("Location_Coordinates"),
		Dormentry:           get("Dormentry"),
	}
}

// parseCoordinates parses "lat,lng" text into a (longitude, latitude)
// point. Missing or malformed values default to 0.
func parseCoordinates(raw string) (lng, lat float64) {
	if raw == "" {
		return 0, 0
	}
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return 0, 0
	}
	lat, _ = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	return lng, lat
}

// parseList splits comma-joined text into a set, trimming and dropping
// empty entries
func parseList(raw string) models.StringList {
	if raw == "" {
		return models.StringList{}
	}
	parts := strings.Split(raw, ",")
	list := make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// parseIntDefault coerces numeric text, defaulting to 0 on failure.
// Spreadsheet cells sometimes carry floats like "120.0".
func parseIntDefault(raw string) int {
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}
