package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
)

// MemoryMeetingRepository is an in-process meeting store. The collection
// lives only for the lifetime of the server (persistence is out of scope);
// a slice keeps insertion order, the index map keeps lookups cheap.
type MemoryMeetingRepository struct {
	mu       sync.RWMutex
	meetings []*entities.Meeting
	index    map[string]int
}

// NewMemoryMeetingRepository creates an empty in-memory meeting store
func NewMemoryMeetingRepository() *MemoryMeetingRepository {
	return &MemoryMeetingRepository{
		meetings: make([]*entities.Meeting, 0),
		index:    make(map[string]int),
	}
}

// Create inserts a new meeting at the front of the collection
func (r *MemoryMeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[meeting.ID]; exists {
		return usecaseErrors.ErrMeetingAlreadyExists
	}

	// Newest first, matching the dashboard ordering
	r.meetings = append([]*entities.Meeting{meeting}, r.meetings...)
	r.reindex()
	return nil
}

// FindByID retrieves a meeting by its ID
func (r *MemoryMeetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	m := *r.meetings[i]
	return &m, nil
}

// Update replaces an existing meeting in place
func (r *MemoryMeetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[meeting.ID]
	if !exists {
		return usecaseErrors.ErrMeetingNotFound
	}
	r.meetings[i] = meeting
	return nil
}

// Delete removes a meeting from the collection
func (r *MemoryMeetingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if !exists {
		return usecaseErrors.ErrMeetingNotFound
	}
	r.meetings = append(r.meetings[:i], r.meetings[i+1:]...)
	r.reindex()
	return nil
}

// List retrieves meetings matching the filters, in collection order
func (r *MemoryMeetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filters.Search)
	result := make([]*entities.Meeting, 0, len(r.meetings))
	for _, stored := range r.meetings {
		if search != "" &&
			!strings.Contains(strings.ToLower(stored.Title), search) &&
			!strings.Contains(strings.ToLower(stored.Stakeholder), search) {
			continue
		}
		if filters.Status != nil && stored.Status != *filters.Status {
			continue
		}
		m := *stored
		result = append(result, &m)
	}
	return result, nil
}

// ReplaceAll atomically swaps the whole collection. Used by import, which is
// all-or-nothing: the caller only reaches this point with a fully decoded
// batch.
func (r *MemoryMeetingRepository) ReplaceAll(ctx context.Context, meetings []*entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.meetings = make([]*entities.Meeting, len(meetings))
	copy(r.meetings, meetings)
	r.reindex()
	return nil
}

// Count returns the total number of meetings
func (r *MemoryMeetingRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.meetings), nil
}

// reindex rebuilds the id -> position map. Callers must hold the write lock.
func (r *MemoryMeetingRepository) reindex() {
	r.index = make(map[string]int, len(r.meetings))
	for i, m := range r.meetings {
		r.index[m.ID] = i
	}
}
