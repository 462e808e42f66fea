package service

import (
	"fmt"
	"strings"
	"time"

	"hospital-finder-backend/internal/models"
	"hospital-finder-backend/internal/pdf"
	"hospital-finder-backend/pkg/utils"
)

// BookingStore is the persistence surface the booking lifecycle needs.
// Confirm and Cancel are transactional on the store side so the booking
// status and the hospital bed counter move together or not at all.
type BookingStore interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	GetByIDWithHospital(id uint) (*models.Booking, error)
	Confirm(booking *models.Booking) (bedsAfter int, err error)
	Cancel(booking *models.Booking, restoreBed bool) error
}

// HospitalGetter resolves hospital records by id
type HospitalGetter interface {
	GetByID(id uint) (*models.Hospital, error)
}

// AuditRecorder writes audit log entries
type AuditRecorder interface {
	Record(action string, details string) error
}

type BookingService struct {
	bookings  BookingStore
	hospitals HospitalGetter
	audit     AuditRecorder
}

func NewBookingService(bookings BookingStore, hospitals HospitalGetter, audit AuditRecorder) *BookingService {
	return &BookingService{
		bookings:  bookings,
		hospitals: hospitals,
		audit:     audit,
	}
}

// CreateBookingInput carries the fields accepted on booking creation.
// EmergencyType, MedicalCondition and ContactEmail are optional.
type CreateBookingInput struct {
	HospitalID       uint   `json:"hospitalId"`
	PatientName      string `json:"patientName"`
	PatientAge       int    `json:"patientAge"`
	PatientGender    string `json:"patientGender"`
	ContactPhone     string `json:"contactPhone"`
	ContactEmail     string `json:"contactEmail"`
	EmergencyType    string `json:"emergencyType"`
	MedicalCondition string `json:"medicalCondition"`
}

// BookingReceipt is the creation response. Full patient and medical
// detail is deliberately not echoed back.
type BookingReceipt struct {
	ID                uint   `json:"id"`
	ConfirmationToken string `json:"confirmationToken"`
	PatientName       string `json:"patientName"`
	HospitalName      string `json:"hospitalName"`
	Status            string `json:"status"`
}

// Create validates the input, snapshots the hospital's name and best
// contact number into a new pending booking and persists it
func (s *BookingService) Create(in CreateBookingInput) (*BookingReceipt, error) {
	if err := validateBookingInput(in); err != nil {
		return nil, err
	}

	hospital, err := s.hospitals.GetByID(in.HospitalID)
	if err != nil {
		return nil, err
	}

	token, err := utils.RandomToken(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate confirmation token: %w", err)
	}

	booking := &models.Booking{
		HospitalID:        in.HospitalID,
		PatientName:       in.PatientName,
		PatientAge:        in.PatientAge,
		PatientGender:     in.PatientGender,
		ContactPhone:      in.ContactPhone,
		ContactEmail:      in.ContactEmail,
		EmergencyType:     in.EmergencyType,
		MedicalCondition:  in.MedicalCondition,
		Status:            models.BookingPending,
		BookingDate:       time.Now().UTC(),
		ConfirmationToken: token,
		HospitalName:      hospital.Name,
		HospitalContact:   hospital.Contact(),
	}

	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Created booking %d for %s at hospital %d (%s)",
		booking.ID, booking.PatientName, hospital.ID, hospital.Name)
	_ = s.audit.Record("booking_create", details)

	return &BookingReceipt{
		ID:                booking.ID,
		ConfirmationToken: booking.ConfirmationToken,
		PatientName:       booking.PatientName,
		HospitalName:      booking.HospitalName,
		Status:            booking.Status,
	}, nil
}

func validateBookingInput(in CreateBookingInput) error {
	var missing []string
	if in.HospitalID == 0 {
		missing = append(missing, "hospitalId")
	}
	if in.PatientName == "" {
		missing = append(missing, "patientName")
	}
	if in.PatientAge == 0 {
		missing = append(missing, "patientAge")
	}
	if in.PatientGender == "" {
		missing = append(missing, "patientGender")
	}
	if in.ContactPhone == "" {
		missing = append(missing, "contactPhone")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Message: "All required fields must be provided: missing " + strings.Join(missing, ", "),
		}
	}
	if in.PatientAge < 0 {
		return &ValidationError{Message: "patientAge must be a positive number"}
	}
	if !models.ValidGender(in.PatientGender) {
		return &ValidationError{Message: "patientGender must be one of Male, Female, Other"}
	}
	return nil
}

// Confirm moves a pending booking to confirmed and takes one bed from
// its hospital. Both writes happen in one store transaction; when the
// conditional decrement finds no available bed the booking stays
// untouched and repository.ErrNoBedsAvailable is returned. Returns the
// confirmed booking and the hospital's bed count after the decrement.
func (s *BookingService) Confirm(id uint) (*models.Booking, int, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	if booking.Status == models.BookingConfirmed {
		return nil, 0, ErrAlreadyConfirmed
	}

	// Resolve the hospital first so a dangling reference surfaces as
	// not-found rather than a capacity failure
	if _, err := s.hospitals.GetByID(booking.HospitalID); err != nil {
		return nil, 0, err
	}

	now := time.Now().UTC()
	booking.Status = models.BookingConfirmed
	booking.ConfirmationDate = &now

	bedsAfter, err := s.bookings.Confirm(booking)
	if err != nil {
		return nil, 0, err
	}

	details := fmt.Sprintf("Confirmed booking %d at hospital %d, %d beds remaining",
		booking.ID, booking.HospitalID, bedsAfter)
	_ = s.audit.Record("booking_confirm", details)

	return booking, bedsAfter, nil
}

// Cancel moves a booking to cancelled. The prior status is captured
// before mutating so the hospital gets its bed back exactly when the
// booking was confirmed at the time of this call.
func (s *BookingService) Cancel(id uint) (uint, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return 0, err
	}
	if booking.Status == models.BookingCancelled {
		return 0, ErrAlreadyCancelled
	}

	wasConfirmed := booking.Status == models.BookingConfirmed
	booking.Status = models.BookingCancelled

	if err := s.bookings.Cancel(booking, wasConfirmed); err != nil {
		return 0, err
	}

	details := fmt.Sprintf("Cancelled booking %d (bed restored: %t)", booking.ID, wasConfirmed)
	_ = s.audit.Record("booking_cancel", details)

	return booking.ID, nil
}

// Get retrieves a booking with its hospital resolved
func (s *BookingService) Get(id uint) (*models.Booking, error) {
	return s.bookings.GetByIDWithHospital(id)
}

// GenerateConfirmation renders the confirmation form for a confirmed
// booking and returns the PDF bytes with a suggested filename
func (s *BookingService) GenerateConfirmation(id uint) ([]byte, string, error) {
	booking, err := s.bookings.GetByIDWithHospital(id)
	if err != nil {
		return nil, "", err
	}
	if booking.Status != models.BookingConfirmed {
		return nil, "", ErrNotConfirmed
	}

	hospital := booking.Hospital
	if hospital == nil {
		h, err := s.hospitals.GetByID(booking.HospitalID)
		if err != nil {
			return nil, "", err
		}
		hospital = h
	}

	var confirmedAt time.Time
	if booking.ConfirmationDate != nil {
		confirmedAt = *booking.ConfirmationDate
	}

	data := pdf.ConfirmationData{
		BookingID:        booking.ID,
		ConfirmationID:   confirmationID(booking.ConfirmationToken),
		ConfirmationDate: confirmedAt,
		PatientName:      booking.PatientName,
		PatientAge:       booking.PatientAge,
		PatientGender:    booking.PatientGender,
		ContactPhone:     booking.ContactPhone,
		ContactEmail:     booking.ContactEmail,
		EmergencyType:    booking.EmergencyType,
		MedicalCondition: booking.MedicalCondition,
		HospitalName:     hospital.Name,
		HospitalAddress:  hospital.Address,
		HospitalCity:     hospital.District,
		HospitalPhone:    hospital.Contact(),
		HospitalEmail:    hospital.Email,
	}

	buf, err := pdf.RenderConfirmation(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render confirmation form: %w", err)
	}

	filename := fmt.Sprintf("booking-confirmation-%d.pdf", booking.ID)
	return buf, filename, nil
}

// confirmationID derives the short human-readable id printed on the
// form from the booking's confirmation token
func confirmationID(token string) string {
	id := strings.ToUpper(token)
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}
