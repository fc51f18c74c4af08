package domain

import "context"

// StatsEvent representa uma decisão de alocação, para fins de estatística.
//
// RunID identifica a execução (cada passada completa tem o seu), permitindo
// separar contadores acumulados de contadores por execução.
type StatsEvent struct {
	RunID   string
	Outcome Outcome
}

// StatsStore é a estratégia de persistência das estatísticas de alocação.
//
// Implementações podem armazenar em Redis, memória, etc.
// O adapter deve tratar erro como best-effort (não derrubar a passada).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
