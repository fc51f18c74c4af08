package infra

import (
	"context"
	"sync"

	"gym-allocator/allocation/domain"
)

type Counters struct {
	Allocated   int64
	Unallocated int64
	Invalid     int64
}

// MemoryStats é uma implementação simples em memória.
// Útil para testes e desenvolvimento.
//
// Não faz expiração e não é indicada para produção.
type MemoryStats struct {
	mu     sync.Mutex
	total  Counters
	bySlot map[string]int64
}

func NewMemoryStats() *MemoryStats {
	return &MemoryStats{bySlot: make(map[string]int64)}
}

func (s *MemoryStats) Record(_ context.Context, ev domain.StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case ev.Outcome.Allocated():
		s.total.Allocated++
		s.bySlot[string(ev.Outcome)]++
	case ev.Outcome == domain.InvalidEmailDomain:
		s.total.Invalid++
	default:
		s.total.Unallocated++
	}
	return nil
}

func (s *MemoryStats) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStats) BySlot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.bySlot))
	for k, v := range s.bySlot {
		out[k] = v
	}
	return out
}
