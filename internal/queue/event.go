// Package queue defines message payloads exchanged over the message broker.
package queue

// SuccessionCreatedEvent is published when a new succession generation is
// successfully placed.  It carries enough context for downstream consumers
// to log or notify without querying the primary database.
type SuccessionCreatedEvent struct {
	PlantingID        uint64 `json:"planting_id"`
	UserID            uint64 `json:"user_id"`
	PlantID           uint64 `json:"plant_id"`
	PlantName         string `json:"plant_name"`
	BedID             uint64 `json:"bed_id"`
	BedName           string `json:"bed_name"`
	SuccessionGroupID string `json:"succession_group_id"`
	SuccessionNumber  int32  `json:"succession_number"`
	XIn               int32  `json:"x_in"`
	YIn               int32  `json:"y_in"`
	WidthIn           int32  `json:"width_in"`
	HeightIn          int32  `json:"height_in"`
	PlantedAt         string `json:"planted_at"`
	ExpectedHarvest   string `json:"expected_harvest,omitempty"`
}
