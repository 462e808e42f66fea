package service

import (
	"strings"
	"testing"

	"hospital-finder-backend/internal/models"
	"hospital-finder-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHospitals struct {
	m map[uint]*models.Hospital
}

func (f *fakeHospitals) GetByID(id uint) (*models.Hospital, error) {
	h, ok := f.m[id]
	if !ok {
		return nil, repository.ErrHospitalNotFound
	}
	copied := *h
	return &copied, nil
}

type fakeBookings struct {
	hospitals *fakeHospitals
	m         map[uint]*models.Booking
	nextID    uint
}

func (f *fakeBookings) Create(b *models.Booking) error {
	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.m[b.ID] = &stored
	return nil
}

func (f *fakeBookings) GetByID(id uint) (*models.Booking, error) {
	b, ok := f.m[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookings) GetByIDWithHospital(id uint) (*models.Booking, error) {
	b, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	if h, ok := f.hospitals.m[b.HospitalID]; ok {
		copied := *h
		b.Hospital = &copied
	}
	return b, nil
}

func (f *fakeBookings) Confirm(b *models.Booking) (int, error) {
	h, ok := f.hospitals.m[b.HospitalID]
	if !ok || h.AvailableBeds <= 0 {
		return 0, repository.ErrNoBedsAvailable
	}
	h.AvailableBeds--
	stored := f.m[b.ID]
	stored.Status = b.Status
	stored.ConfirmationDate = b.ConfirmationDate
	return h.AvailableBeds, nil
}

func (f *fakeBookings) Cancel(b *models.Booking, restoreBed bool) error {
	stored := f.m[b.ID]
	stored.Status = b.Status
	if restoreBed {
		if h, ok := f.hospitals.m[b.HospitalID]; ok && h.AvailableBeds < h.TotalBeds {
			h.AvailableBeds++
		}
	}
	return nil
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(action, details string) error {
	f.actions = append(f.actions, action)
	return nil
}

func newBookingFixture(hospitals ...*models.Hospital) (*BookingService, *fakeBookings, *fakeHospitals, *fakeAudit) {
	fh := &fakeHospitals{m: map[uint]*models.Hospital{}}
	for _, h := range hospitals {
		fh.m[h.ID] = h
	}
	fb := &fakeBookings{hospitals: fh, m: map[uint]*models.Booking{}}
	fa := &fakeAudit{}
	return NewBookingService(fb, fh, fa), fb, fh, fa
}

func validInput(hospitalID uint) CreateBookingInput {
	return CreateBookingInput{
		HospitalID:    hospitalID,
		PatientName:   "Asha Rao",
		PatientAge:    42,
		PatientGender: models.GenderFemale,
		ContactPhone:  "9800011122",
		EmergencyType: "Cardiac",
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	_, err := svc.Create(CreateBookingInput{PatientName: "Asha Rao"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "hospitalId")
	assert.Contains(t, err.Error(), "contactPhone")
}

func TestCreateBooking_InvalidGender(t *testing.T) {
	svc, _, _, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital"})

	in := validInput(1)
	in.PatientGender = "unknown"
	_, err := svc.Create(in)
	assert.True(t, IsValidation(err))
}

func TestCreateBooking_HospitalNotFound(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	_, err := svc.Create(validInput(99))
	assert.ErrorIs(t, err, repository.ErrHospitalNotFound)
}

func TestCreateBooking_SnapshotsHospitalAndIssuesToken(t *testing.T) {
	svc, fb, _, fa := newBookingFixture(&models.Hospital{
		ID:           1,
		Name:         "City Hospital",
		Telephone:    "080-1234",
		EmergencyNum: "080-9999",
	})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, receipt.Status)
	assert.Equal(t, "City Hospital", receipt.HospitalName)
	assert.Len(t, receipt.ConfirmationToken, 32)

	stored := fb.m[receipt.ID]
	assert.Equal(t, "080-9999", stored.HospitalContact, "emergency number wins over telephone")
	assert.False(t, stored.BookingDate.IsZero())
	assert.Equal(t, []string{"booking_create"}, fa.actions)
}

func TestCreateBooking_ContactFallsBackToTelephone(t *testing.T) {
	svc, fb, _, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital", Telephone: "080-1234"})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)
	assert.Equal(t, "080-1234", fb.m[receipt.ID].HospitalContact)
}

func TestConfirmBooking_DecrementsOneBed(t *testing.T) {
	hospital := &models.Hospital{ID: 1, Name: "City Hospital", TotalBeds: 10, AvailableBeds: 3}
	svc, _, fh, _ := newBookingFixture(hospital)

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)

	booking, bedsAfter, err := svc.Confirm(receipt.ID)
	require.NoError(t, err)

	assert.Equal(t, models.BookingConfirmed, booking.Status)
	require.NotNil(t, booking.ConfirmationDate)
	assert.Equal(t, 2, bedsAfter)
	assert.Equal(t, 2, fh.m[1].AvailableBeds)
}

func TestConfirmBooking_RejectsSecondConfirm(t *testing.T) {
	svc, _, _, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital", TotalBeds: 10, AvailableBeds: 3})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)

	_, _, err = svc.Confirm(receipt.ID)
	require.NoError(t, err)

	_, _, err = svc.Confirm(receipt.ID)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestConfirmBooking_NoBedsAvailable(t *testing.T) {
	svc, _, _, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital", TotalBeds: 5, AvailableBeds: 0})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)

	_, _, err = svc.Confirm(receipt.ID)
	assert.ErrorIs(t, err, repository.ErrNoBedsAvailable)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	_, _, err := svc.Confirm(404)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

// Last-bed scenario: two bookings race for one bed. The first confirm
// takes it; re-confirming the winner conflicts and confirming the other
// booking fails on capacity.
func TestConfirmBooking_LastBedScenario(t *testing.T) {
	svc, _, fh, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital", TotalBeds: 1, AvailableBeds: 1})

	first, err := svc.Create(validInput(1))
	require.NoError(t, err)
	second, err := svc.Create(validInput(1))
	require.NoError(t, err)

	_, bedsAfter, err := svc.Confirm(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, bedsAfter)

	_, _, err = svc.Confirm(first.ID)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	_, _, err = svc.Confirm(second.ID)
	assert.ErrorIs(t, err, repository.ErrNoBedsAvailable)
	assert.Equal(t, 0, fh.m[1].AvailableBeds)
}

func TestCancelBooking_PendingDoesNotTouchBeds(t *testing.T) {
	svc, fb, fh, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital", TotalBeds: 10, AvailableBeds: 3})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)

	id, err := svc.Cancel(receipt.ID)
	require.NoError(t, err)

	assert.Equal(t, receipt.ID, id)
	assert.Equal(t, models.BookingCancelled, fb.m[id].Status)
	assert.Equal(t, 3, fh.m[1].AvailableBeds)
}

func TestCancelBooking_ConfirmedRestoresBed(t *testing.T) {
	svc, _, fh, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital", TotalBeds: 10, AvailableBeds: 3})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)
	_, _, err = svc.Confirm(receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fh.m[1].AvailableBeds)

	_, err = svc.Cancel(receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fh.m[1].AvailableBeds)
}

func TestCancelBooking_RejectsSecondCancel(t *testing.T) {
	svc, _, _, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital"})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)

	_, err = svc.Cancel(receipt.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(receipt.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestGenerateConfirmation_RequiresConfirmedStatus(t *testing.T) {
	svc, _, _, _ := newBookingFixture(&models.Hospital{ID: 1, Name: "City Hospital", TotalBeds: 5, AvailableBeds: 5})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)

	_, _, err = svc.GenerateConfirmation(receipt.ID)
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestGenerateConfirmation_ReturnsPDF(t *testing.T) {
	svc, _, _, _ := newBookingFixture(&models.Hospital{
		ID:            1,
		Name:          "City Hospital",
		Address:       "12 MG Road",
		District:      "Bengaluru",
		Telephone:     "080-1234",
		TotalBeds:     5,
		AvailableBeds: 5,
	})

	receipt, err := svc.Create(validInput(1))
	require.NoError(t, err)
	_, _, err = svc.Confirm(receipt.ID)
	require.NoError(t, err)

	buf, filename, err := svc.GenerateConfirmation(receipt.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, buf)
	assert.True(t, strings.HasPrefix(string(buf[:4]), "%PDF"))
	assert.Contains(t, filename, "booking-confirmation-")
	assert.Contains(t, filename, ".pdf")
}

func TestConfirmationID_TruncatesAndUppercases(t *testing.T) {
	assert.Equal(t, "ABCDEF012345", confirmationID("abcdef0123456789deadbeef"))
	assert.Equal(t, "ABC", confirmationID("abc"))
}
