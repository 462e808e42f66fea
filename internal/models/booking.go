package models

import "time"

// Booking status values. A booking starts pending and moves exactly once
// to confirmed or cancelled; both are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Patient gender values accepted on booking creation
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Booking represents a patient's claim against one hospital's emergency
// bed inventory. Hospital name and contact are snapshotted at creation;
// the live Hospital row stays the source of truth for bed counts.
type Booking struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	HospitalID       uint       `gorm:"not null;index" json:"hospitalId"`
	Hospital         *Hospital  `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	PatientName      string     `gorm:"size:255;not null" json:"patientName"`
	PatientAge       int        `gorm:"not null" json:"patientAge"`
	PatientGender    string     `gorm:"size:20;not null" json:"patientGender"`
	ContactPhone     string     `gorm:"size:100;not null" json:"contactPhone"`
	ContactEmail     string     `gorm:"size:255" json:"contactEmail,omitempty"`
	EmergencyType    string     `gorm:"size:255" json:"emergencyType,omitempty"`
	MedicalCondition string     `gorm:"type:text" json:"medicalCondition,omitempty"`
	Status           string     `gorm:"size:20;not null;default:pending" json:"status"`
	BookingDate      time.Time  `gorm:"not null" json:"bookingDate"`
	ConfirmationDate *time.Time `json:"confirmationDate,omitempty"`
	// Opaque credential issued at creation for external verification
	ConfirmationToken string    `gorm:"size:64;uniqueIndex" json:"confirmationToken,omitempty"`
	HospitalName      string    `gorm:"size:255" json:"hospitalName,omitempty"`
	HospitalContact   string    `gorm:"size:100" json:"hospitalContact,omitempty"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}

// ValidGender reports whether g is one of the accepted gender values
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
