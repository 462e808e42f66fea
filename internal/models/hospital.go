package models

import "time"

// Hospital represents a medical facility with bed inventory and a
// geographic point used for radius searches
type Hospital struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	SrNo           string     `gorm:"size:50" json:"srNo,omitempty"`
	Name           string     `gorm:"size:255;not null;index" json:"name"`
	Category       string     `gorm:"size:100;index" json:"category,omitempty"`
	Discipline     string     `gorm:"size:255" json:"discipline,omitempty"`
	Address        string     `gorm:"type:text" json:"address,omitempty"`
	State          string     `gorm:"size:100;index" json:"state,omitempty"`
	District       string     `gorm:"size:100;index" json:"district,omitempty"`
	Pincode        string     `gorm:"size:20" json:"pincode,omitempty"`
	Telephone      string     `gorm:"size:100" json:"telephone,omitempty"`
	EmergencyNum   string     `gorm:"size:100" json:"emergencyNum,omitempty"`
	BloodbankPhone string     `gorm:"size:100" json:"bloodbankPhone,omitempty"`
	Email          string     `gorm:"size:255" json:"email,omitempty"`
	Website        string     `gorm:"size:255" json:"website,omitempty"`
	Specialties    StringList `gorm:"type:text" json:"specialties"`
	Facilities     StringList `gorm:"type:text" json:"facilities"`
	Accreditation  string     `gorm:"size:255" json:"accreditation,omitempty"`
	Ayush          string     `gorm:"size:50" json:"ayush,omitempty"`
	TotalBeds      int        `gorm:"default:0" json:"totalBeds"`
	AvailableBeds  int        `gorm:"default:0;index" json:"availableBeds"`
	PrivateWards   int        `gorm:"default:0" json:"privateWards"`
	Location       GeoPoint   `gorm:"embedded" json:"location"`
	// Raw coordinate text exactly as it appeared in the import file
	LocationCoordinates string    `gorm:"size:100" json:"locationCoordinates,omitempty"`
	Dormentry           string    `gorm:"size:50" json:"dormentry,omitempty"`
	CreatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// Contact returns the number a patient should call first: the emergency
// line when present, otherwise the general telephone
func (h *Hospital) Contact() string {
	if h.EmergencyNum != "" {
		return h.EmergencyNum
	}
	return h.Telephone
}
