package models

import (
	"encoding/json"
	"fmt"
)

// GeoPoint is a longitude/latitude pair stored as two float columns.
// It marshals to and from the GeoJSON Point shape so API payloads keep
// the {"type":"Point","coordinates":[lng,lat]} layout clients expect.
type GeoPoint struct {
	Longitude float64 `gorm:"column:longitude;index"`
	Latitude  float64 `gorm:"column:latitude;index"`
}

type geoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// MarshalJSON renders the point as GeoJSON. Coordinate order is
// [longitude, latitude].
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoJSONPoint{
		Type:        "Point",
		Coordinates: []float64{p.Longitude, p.Latitude},
	})
}

// UnmarshalJSON accepts the GeoJSON Point shape
func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	var g geoJSONPoint
	if err := json.Unmarshal(data, &g); err != nil {
		return err
	}
	if len(g.Coordinates) < 2 {
		return fmt.Errorf("geo point requires [longitude, latitude], got %d values", len(g.Coordinates))
	}
	p.Longitude = g.Coordinates[0]
	p.Latitude = g.Coordinates[1]
	return nil
}
