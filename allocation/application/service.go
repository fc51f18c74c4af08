package application

import (
	"strconv"
	"strings"

	"gym-allocator/allocation/domain"
)

// Service concentra a regra de alocação: gate de validação seguido da
// varredura first-fit das preferências, em ordem de rank.
//
// Ele não sabe nada sobre CSV (colunas/cabeçalho), apenas decide.
// A ordem entre inscritos é responsabilidade do chamador — quem chega antes
// na passada leva a vaga, e esse é o único mecanismo de prioridade.
type Service struct {
	Table       domain.SlotTable
	Preferences []string
	Validator   domain.Validator
}

// Allocate resolve exatamente um Outcome para o registro.
//
// Passos, nesta ordem:
//  1. Validator (se houver) reprova -> InvalidEmailDomain, sem olhar preferências.
//  2. Preferências em ordem de rank: a primeira com vaga é concedida e
//     consumida (first-fit, nunca best-fit).
//  3. Nenhuma rendeu vaga -> NoSlotAllocated.
func (s Service) Allocate(rec domain.Record) domain.Outcome {
	if s.Validator != nil {
		if err := s.Validator.Validate(rec); err != nil {
			return domain.InvalidEmailDomain
		}
	}
	if s.Table == nil {
		return domain.NoSlotAllocated
	}

	for _, field := range s.Preferences {
		// trim antes do lookup: a planilha de origem costuma trazer espaços
		label := strings.TrimSpace(rec.Get(field))
		if label == "" {
			continue
		}
		if s.Table.TryAllocate(label) {
			return domain.Outcome(label)
		}
	}
	return domain.NoSlotAllocated
}

// PreferenceColumns monta os nomes de coluna "SLOT PREFERENCE : 1..k",
// exatamente como o formulário de inscrição os exporta.
func PreferenceColumns(k int) []string {
	cols := make([]string, 0, k)
	for i := 1; i <= k; i++ {
		cols = append(cols, "SLOT PREFERENCE : "+strconv.Itoa(i))
	}
	return cols
}
