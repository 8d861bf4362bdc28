package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts a new meeting at the front of the collection
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)

	// Update replaces an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes a meeting
	Delete(ctx context.Context, id string) error

	// List retrieves meetings matching the filters, in collection order
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)

	// ReplaceAll atomically swaps the whole collection (import semantics)
	ReplaceAll(ctx context.Context, meetings []*entities.Meeting) error

	// Count returns the total number of meetings
	Count(ctx context.Context) (int, error)
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	// Search matches case-insensitively against title and stakeholder
	Search string
	// Status restricts to one meeting status when set
	Status *entities.MeetingStatus
}
