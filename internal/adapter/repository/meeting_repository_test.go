package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
)

func testMeeting(id, title, stakeholder string, status entities.MeetingStatus) *entities.Meeting {
	return &entities.Meeting{
		ID:          id,
		Title:       title,
		Stakeholder: stakeholder,
		Status:      status,
	}
}

func TestMemoryMeetingRepository_CreateOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMeetingRepository()

	for _, m := range []*entities.Meeting{
		testMeeting("1", "First", "Acme", entities.MeetingStatusScheduled),
		testMeeting("2", "Second", "Acme", entities.MeetingStatusScheduled),
	} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	meetings, err := repo.List(ctx, repositories.MeetingFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meetings) != 2 || meetings[0].ID != "2" || meetings[1].ID != "1" {
		t.Errorf("order = %v, want newest first", []string{meetings[0].ID, meetings[1].ID})
	}
}

func TestMemoryMeetingRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMeetingRepository()

	if err := repo.Create(ctx, testMeeting("1", "A", "Acme", "scheduled")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	err := repo.Create(ctx, testMeeting("1", "B", "Acme", "scheduled"))
	if !errors.Is(err, usecaseErrors.ErrMeetingAlreadyExists) {
		t.Errorf("err = %v, want ErrMeetingAlreadyExists", err)
	}
}

func TestMemoryMeetingRepository_FindUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMeetingRepository()

	if err := repo.Create(ctx, testMeeting("1", "A", "Acme", "scheduled")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	m, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if m.Title != "A" {
		t.Errorf("Title = %q", m.Title)
	}

	m.Title = "A updated"
	if err := repo.Update(ctx, m); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ := repo.FindByID(ctx, "1")
	if got.Title != "A updated" {
		t.Errorf("Title after update = %q", got.Title)
	}

	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, "1"); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Errorf("err = %v, want ErrMeetingNotFound", err)
	}
	if err := repo.Delete(ctx, "1"); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Errorf("double delete err = %v, want ErrMeetingNotFound", err)
	}
}

func TestMemoryMeetingRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMeetingRepository()

	seed := []*entities.Meeting{
		testMeeting("1", "Q4 Strategy Review", "Acme Corporation", entities.MeetingStatusScheduled),
		testMeeting("2", "Project Kickoff", "TechStart Inc", entities.MeetingStatusCompleted),
		testMeeting("3", "Monthly Check-in", "Global Solutions", entities.MeetingStatusCompleted),
	}
	if err := repo.ReplaceAll(ctx, seed); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		got, _ := repo.List(ctx, repositories.MeetingFilters{Search: "kickoff"})
		if len(got) != 1 || got[0].ID != "2" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("search matches stakeholder", func(t *testing.T) {
		got, _ := repo.List(ctx, repositories.MeetingFilters{Search: "acme"})
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		status := entities.MeetingStatusCompleted
		got, _ := repo.List(ctx, repositories.MeetingFilters{Status: &status})
		if len(got) != 2 {
			t.Errorf("got %d meetings, want 2", len(got))
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		status := entities.MeetingStatusCompleted
		got, _ := repo.List(ctx, repositories.MeetingFilters{Search: "monthly", Status: &status})
		if len(got) != 1 || got[0].ID != "3" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got, _ := repo.List(ctx, repositories.MeetingFilters{Search: "nonexistent"})
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})
}

func TestMemoryMeetingRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMeetingRepository()

	if err := repo.Create(ctx, testMeeting("old", "Old", "Acme", "scheduled")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	batch := []*entities.Meeting{
		testMeeting("1", "Imported A", "X", "scheduled"),
		testMeeting("2", "Imported B", "Y", "completed"),
	}
	if err := repo.ReplaceAll(ctx, batch); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, "old"); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Error("previous collection should be gone after ReplaceAll")
	}
	count, _ := repo.Count(ctx)
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
	meetings, _ := repo.List(ctx, repositories.MeetingFilters{})
	if meetings[0].ID != "1" || meetings[1].ID != "2" {
		t.Errorf("ReplaceAll must preserve batch order, got %v", []string{meetings[0].ID, meetings[1].ID})
	}
}

func TestMemoryMeetingRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMeetingRepository()
	if err := repo.Create(ctx, testMeeting("1", "A", "Acme", "scheduled")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	meetings, _ := repo.List(ctx, repositories.MeetingFilters{})
	meetings[0].Title = "mutated"

	stored, _ := repo.FindByID(ctx, "1")
	if stored.Title != "A" {
		t.Errorf("stored title = %q, caller mutation leaked into the store", stored.Title)
	}
}
