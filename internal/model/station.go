package model

import (
	"time"

	"github.com/google/uuid"
)

type StationStatus string

const (
	StationPending StationStatus = "PENDING"
	StationActive  StationStatus = "ACTIVE"
	StationRemoved StationStatus = "REMOVED"
)

// Terminal reports whether the status admits no further approval
// transition. Removed is absorbing; Active only ever moves to Removed.
func (s StationStatus) Terminal() bool {
	return s == StationActive || s == StationRemoved
}

type Station struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	PhoneNumber string        `json:"phone_number"`
	Status      StationStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// StationBoard is the lifecycle listing consumed by the stations view:
// removed stations are logically gone and appear in neither group.
type StationBoard struct {
	Pending []Station    `json:"pending"`
	Active  []Station    `json:"active"`
	Stats   StationStats `json:"stats"`
}

type StationStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Active  int `json:"active"`
}
