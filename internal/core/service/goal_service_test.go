package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

func TestGoalService_Create_StartsAtZero(t *testing.T) {
	goals := newStubGoalRepo()
	svc := NewGoalService(goals, discardLogger)

	goal, err := svc.Create(context.Background(), "u1", ports.GoalInput{
		Title:        "Deep work",
		TargetValue:  40,
		CurrentValue: 99, // must be ignored
		Unit:         "hours",
		Color:        "#ff0000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.CurrentValue != 0 {
		t.Fatalf("new goal must start at 0, got %v", goal.CurrentValue)
	}
	if goal.UserID != "u1" || goal.TargetValue != 40 || goal.Unit != "hours" {
		t.Fatalf("unexpected goal: %+v", goal)
	}
}

func TestGoalService_Create_RequiresTitleAndUnit(t *testing.T) {
	svc := NewGoalService(newStubGoalRepo(), discardLogger)

	_, err := svc.Create(context.Background(), "u1", ports.GoalInput{Unit: "hours"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGoalService_Update_OverwritesAllFields(t *testing.T) {
	goals := newStubGoalRepo()
	goals.byID["g1"] = &domain.Goal{ID: "g1", UserID: "u1", Title: "old", Unit: "hours", CurrentValue: 3}
	svc := NewGoalService(goals, discardLogger)

	updated, err := svc.Update(context.Background(), "u1", "g1", ports.GoalInput{
		Title:        "new",
		TargetValue:  10,
		CurrentValue: 5,
		Unit:         "XP",
		Color:        "#00ff00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "new" || updated.TargetValue != 10 || updated.CurrentValue != 5 || updated.Unit != "XP" {
		t.Fatalf("fields not overwritten: %+v", updated)
	}
}

func TestGoalService_OwnershipEnforced(t *testing.T) {
	goals := newStubGoalRepo()
	goals.byID["g1"] = &domain.Goal{ID: "g1", UserID: "other"}
	svc := NewGoalService(goals, discardLogger)

	if _, err := svc.Update(context.Background(), "u1", "g1", ports.GoalInput{Title: "x"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("update: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", "g1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "u1", "missing", ports.GoalInput{}); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", ""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGoalService_Delete(t *testing.T) {
	goals := newStubGoalRepo()
	goals.byID["g1"] = &domain.Goal{ID: "g1", UserID: "u1"}
	svc := NewGoalService(goals, discardLogger)

	if err := svc.Delete(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := goals.byID["g1"]; ok {
		t.Fatalf("goal not deleted")
	}
}

func TestGoalService_List_ScopedToUser(t *testing.T) {
	goals := newStubGoalRepo()
	goals.byID["g1"] = &domain.Goal{ID: "g1", UserID: "u1"}
	goals.byID["g2"] = &domain.Goal{ID: "g2", UserID: "other"}
	svc := NewGoalService(goals, discardLogger)

	got, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("unexpected goals: %+v", got)
	}
}
