// Package pdf renders the emergency bed booking confirmation form.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ConfirmationData holds everything printed on the confirmation form.
// The booking carries the patient and medical fields; the hospital
// fields come from the live hospital record resolved at render time.
type ConfirmationData struct {
	BookingID        uint
	ConfirmationID   string
	ConfirmationDate time.Time
	PatientName      string
	PatientAge       int
	PatientGender    string
	ContactPhone     string
	ContactEmail     string
	EmergencyType    string
	MedicalCondition string
	HospitalName     string
	HospitalAddress  string
	HospitalCity     string
	HospitalPhone    string
	HospitalEmail    string
}

const (
	pageMargin = 40
	lineRight  = 555
)

// RenderConfirmation produces the A4 confirmation form as PDF bytes
func RenderConfirmation(data ConfirmationData) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 28, "EMERGENCY BED BOOKING", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 14)
	doc.CellFormat(0, 18, "CONFIRMATION FORM", "", 1, "C", false, 0, "")

	rule(doc)

	section(doc, "BOOKING CONFIRMATION")
	line(doc, "Confirmation Date: "+data.ConfirmationDate.Format("2 January 2006"))
	line(doc, "Confirmation ID: "+data.ConfirmationID)
	line(doc, fmt.Sprintf("Booking ID: %d", data.BookingID))

	section(doc, "HOSPITAL INFORMATION")
	line(doc, "Hospital Name: "+data.HospitalName)
	line(doc, "Address: "+data.HospitalAddress)
	line(doc, "City/District: "+data.HospitalCity)
	line(doc, "Emergency Contact: "+data.HospitalPhone)
	line(doc, "Email: "+data.HospitalEmail)

	section(doc, "PATIENT INFORMATION")
	line(doc, "Patient Name: "+data.PatientName)
	line(doc, fmt.Sprintf("Age: %d years", data.PatientAge))
	line(doc, "Gender: "+data.PatientGender)
	line(doc, "Contact Phone: "+data.ContactPhone)
	line(doc, "Email: "+orNA(data.ContactEmail))

	section(doc, "MEDICAL INFORMATION")
	line(doc, "Emergency Type: "+data.EmergencyType)
	line(doc, "Medical Condition: "+data.MedicalCondition)

	section(doc, "IMPORTANT NOTES")
	doc.SetFont("Helvetica", "", 9)
	note(doc, "1. Please keep this confirmation for your records.")
	note(doc, "2. Contact the hospital at the above number to confirm your arrival.")
	note(doc, "3. Bring a valid ID and insurance documents if applicable.")
	note(doc, "4. In case of emergency, call the hospital emergency number immediately.")

	rule(doc)

	doc.SetFont("Helvetica", "", 8)
	doc.MultiCell(0, 11,
		"Your booking has been successfully confirmed! A bed has been reserved for you at the hospital. "+
			"Please contact the hospital at the emergency number above to confirm your arrival time.",
		"", "C", false)
	doc.Ln(6)
	doc.CellFormat(0, 11, "Generated on: "+time.Now().Format("2/1/2006, 3:04:05 pm"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rule(doc *gofpdf.Fpdf) {
	doc.Ln(10)
	y := doc.GetY()
	doc.Line(pageMargin, y, lineRight, y)
	doc.Ln(12)
}

func section(doc *gofpdf.Fpdf, title string) {
	doc.Ln(8)
	doc.SetFont("Helvetica", "BU", 12)
	doc.CellFormat(0, 16, title, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
}

func line(doc *gofpdf.Fpdf, text string) {
	doc.MultiCell(470, 13, text, "", "L", false)
}

func note(doc *gofpdf.Fpdf, text string) {
	doc.MultiCell(470, 12, text, "", "L", false)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
