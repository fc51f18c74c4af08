package infra

import (
	"context"
	"testing"

	"gym-allocator/allocation/domain"
)

func TestMemoryStats_CountsByCategoryAndSlot(t *testing.T) {
	s := NewMemoryStats()
	ctx := context.Background()

	events := []domain.Outcome{
		domain.Outcome("SLOT 1"),
		domain.Outcome("SLOT 1"),
		domain.Outcome("SLOT 2"),
		domain.NoSlotAllocated,
		domain.InvalidEmailDomain,
	}
	for _, o := range events {
		if err := s.Record(ctx, domain.StatsEvent{RunID: "r1", Outcome: o}); err != nil {
			t.Fatalf("unexpected record error: %v", err)
		}
	}

	total := s.Total()
	if total.Allocated != 3 || total.Unallocated != 1 || total.Invalid != 1 {
		t.Fatalf("unexpected totals: %+v", total)
	}

	bySlot := s.BySlot()
	if bySlot["SLOT 1"] != 2 || bySlot["SLOT 2"] != 1 {
		t.Fatalf("unexpected per-slot counts: %v", bySlot)
	}
}
