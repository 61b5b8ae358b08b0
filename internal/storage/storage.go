// Package storage persists assembled driver profiles.
package storage

import (
	"context"

	"github.com/rotisserie/eris"
)

// ErrNotFound is returned when no profile matches the requested driver id.
var ErrNotFound = eris.New("profile not found")

// Summary is the listing view of a stored profile.
type Summary struct {
	DriverID        string  `json:"driver_id"`
	ProfileID       string  `json:"profile_id"`
	FullName        string  `json:"full_name,omitempty"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	RiskLevel       string  `json:"risk_level"`
	RiskScore       int     `json:"risk_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	Status          string  `json:"status"`
	Filename        string  `json:"filename,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ListFilter specifies criteria for listing profiles.
type ListFilter struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Statistics aggregates the stored profile population.
type Statistics struct {
	TotalProfiles int            `json:"total_profiles"`
	ByRiskLevel   map[string]int `json:"by_risk_level"`
	ByStatus      map[string]int `json:"by_status"`
	RecentUploads int            `json:"recent_uploads_24h"`
}

// Record is a stored profile: the pruned document plus the authoritative
// status and timestamps tracked by the store.
type Record struct {
	Summary  Summary        `json:"summary"`
	Document map[string]any `json:"document"`
}

// Store defines the persistence interface for driver profiles.
type Store interface {
	Insert(ctx context.Context, summary Summary, document map[string]any) error
	GetByID(ctx context.Context, driverID string) (*Record, error)
	List(ctx context.Context, filter ListFilter) ([]Summary, error)
	Search(ctx context.Context, query string, limit int) ([]Summary, error)
	UpdateStatus(ctx context.Context, driverID, status string) error
	Statistics(ctx context.Context) (*Statistics, error)

	Migrate(ctx context.Context) error
	Close() error
}
