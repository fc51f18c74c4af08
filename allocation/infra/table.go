package infra

// Table é a implementação concreta de domain.SlotTable: mapa rótulo -> vagas
// restantes, pertencente a exatamente uma execução.
//
// Sem lock: a passada de alocação é estritamente sequencial e cada execução
// constrói a própria tabela — compartilhar uma Table entre passadas quebraria
// a prioridade por ordem de chegada.
type Table struct {
	remaining map[string]int
}

// NewTable copia as capacidades iniciais (a tabela nunca fica com o mapa do
// chamador). Capacidade negativa vira 0: slot administrativamente fechado,
// mesmo efeito de configurá-lo com 0 vagas.
func NewTable(capacities map[string]int) *Table {
	m := make(map[string]int, len(capacities))
	for label, c := range capacities {
		if c < 0 {
			c = 0
		}
		m[label] = c
	}
	return &Table{remaining: m}
}

// TryAllocate consome uma vaga do rótulo, se existir e houver saldo.
func (t *Table) TryAllocate(label string) bool {
	if t == nil {
		return false
	}
	if c, ok := t.remaining[label]; ok && c > 0 {
		t.remaining[label] = c - 1
		return true
	}
	return false
}

// Remaining informa o saldo de um rótulo (ok=false para rótulo desconhecido).
func (t *Table) Remaining(label string) (int, bool) {
	c, ok := t.remaining[label]
	return c, ok
}

// Snapshot devolve uma cópia do estado atual, para logs e testes.
func (t *Table) Snapshot() map[string]int {
	out := make(map[string]int, len(t.remaining))
	for k, v := range t.remaining {
		out[k] = v
	}
	return out
}
