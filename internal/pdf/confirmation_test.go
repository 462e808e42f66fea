package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmation(t *testing.T) {
	buf, err := RenderConfirmation(ConfirmationData{
		BookingID:        7,
		ConfirmationID:   "AB12CD34EF56",
		ConfirmationDate: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		PatientName:      "Asha Rao",
		PatientAge:       42,
		PatientGender:    "Female",
		ContactPhone:     "9800011122",
		EmergencyType:    "Cardiac",
		MedicalCondition: "Chest pain",
		HospitalName:     "City Hospital",
		HospitalAddress:  "12 MG Road",
		HospitalCity:     "Bengaluru",
		HospitalPhone:    "080-9999",
		HospitalEmail:    "contact@cityhospital.example",
	})
	require.NoError(t, err)
	require.NotEmpty(t, buf)
	assert.Equal(t, "%PDF", string(buf[:4]))
}

func TestRenderConfirmation_EmptyOptionalFields(t *testing.T) {
	buf, err := RenderConfirmation(ConfirmationData{
		BookingID:    1,
		PatientName:  "Asha Rao",
		HospitalName: "City Hospital",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, buf)
}
