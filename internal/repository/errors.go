// Package repository holds the GORM-backed data access layer. Sentinel
// errors defined here let the service and handler layers distinguish
// failure cases without string matching: not-found errors translate to
// HTTP 404, ErrNoBedsAvailable to a capacity failure on confirm.
package repository

import "errors"

// ErrHospitalNotFound is returned when a hospital id does not resolve
var ErrHospitalNotFound = errors.New("hospital not found")

// ErrBookingNotFound is returned when a booking id does not resolve
var ErrBookingNotFound = errors.New("booking not found")

// ErrNoBedsAvailable is returned when the conditional bed decrement on
// confirm matches no row, meaning available_beds was already 0
var ErrNoBedsAvailable = errors.New("no beds available")
