package handler

import (
	"io"
	"net/http"
	"strconv"

	"hospital-finder-backend/internal/repository"
	"hospital-finder-backend/internal/service"
	"hospital-finder-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
	importService   *service.ImportService
	defaultRadiusKm float64
}

func NewHospitalHandler(hospitalService *service.HospitalService, importService *service.ImportService, defaultRadiusKm float64) *HospitalHandler {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = service.DefaultNearbyRadiusKm
	}
	return &HospitalHandler{
		hospitalService: hospitalService,
		importService:   importService,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// GetAllHospitals returns every hospital record
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.ListAll()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals", err.Error())
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// GetNearbyHospitals returns hospitals within a radius of a point
func (h *HospitalHandler) GetNearbyHospitals(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		utils.ErrorResponse(c, http.StatusBadRequest,
			"Latitude and longitude are required",
			"Please provide lat and lng query parameters")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Validation Error", "lat must be a number")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Validation Error", "lng must be a number")
		return
	}

	radius := h.defaultRadiusKm
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if parsed, err := strconv.ParseFloat(radiusStr, 64); err == nil {
			radius = parsed
		}
	}

	hospitals, err := h.hospitalService.Nearby(lat, lng, radius)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to find nearby hospitals", err.Error())
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// SearchHospitals applies the catalog filters from query parameters
func (h *HospitalHandler) SearchHospitals(c *gin.Context) {
	filters := repository.SearchFilters{
		State:      c.Query("state"),
		District:   c.Query("district"),
		Name:       c.Query("name"),
		Category:   c.Query("category"),
		Specialty:  c.Query("specialty"),
		SearchText: c.Query("searchText"),
	}
	if minStr := c.Query("minAvailableBeds"); minStr != "" {
		min, err := strconv.Atoi(minStr)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Validation Error", "minAvailableBeds must be a number")
			return
		}
		filters.MinAvailableBeds = &min
	}

	hospitals, err := h.hospitalService.Search(filters)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// GetHospital retrieves one hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, ok := parseID(c, "Invalid hospital ID")
	if !ok {
		return
	}

	hospital, err := h.hospitalService.GetByID(id)
	if err != nil {
		respondHospitalError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, hospital)
}

// GetStats returns aggregate statistics over the hospital collection
func (h *HospitalHandler) GetStats(c *gin.Context) {
	stats, err := h.hospitalService.Stats()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UploadHospitals imports hospital records from a multipart spreadsheet
// or CSV upload
func (h *HospitalHandler) UploadHospitals(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "No file uploaded", "Attach the import file in the \"file\" form field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}

	result, err := h.importService.ImportFile(fileHeader.Filename, data)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Import completed",
		"imported": result.Imported,
		"failed":   result.Failed,
		"total":    result.Total,
	})
}
