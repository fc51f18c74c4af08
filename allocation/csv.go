package allocation

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"gym-allocator/allocation/application"
	"gym-allocator/allocation/domain"
)

// Summary resume uma passada completa, para log e cabeçalhos de resposta.
// Não participa de nenhuma decisão de alocação.
type Summary struct {
	Rows     int
	Outcomes map[domain.Outcome]int
}

type annotator struct {
	stats domain.StatsStore
	runID string
}

type Option func(*annotator)

// WithStats espelha cada decisão num StatsStore, em modo best-effort:
// erro de gravação nunca interrompe a passada.
func WithStats(store domain.StatsStore, runID string) Option {
	return func(a *annotator) {
		a.stats = store
		a.runID = runID
	}
}

// Annotate executa uma passada de alocação completa: lê o CSV de inscrições,
// resolve exatamente um Outcome por linha e escreve o CSV anotado em lockstep
// (uma saída por entrada, mesma ordem).
//
// O cabeçalho de saída é o de entrada com "Allocated Slot" anexado somente se
// ainda não existir — reprocessar um artefato já anotado não duplica a coluna,
// apenas re-resolve os outcomes contra a tabela desta execução.
//
// Linha curta (campos de preferência ausentes) não é erro: o inscrito cai em
// "No slot allocated". Erro de leitura/escrita do artefato é fatal e encerra
// a passada.
func Annotate(ctx context.Context, r io.Reader, w io.Writer, svc application.Service, opts ...Option) (Summary, error) {
	var a annotator
	for _, opt := range opts {
		opt(&a)
	}

	sum := Summary{Outcomes: make(map[domain.Outcome]int)}

	reader := csv.NewReader(r)
	// linhas com contagem de campos diferente do cabeçalho são toleradas
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return sum, errors.New("entrada sem cabeçalho")
		}
		return sum, fmt.Errorf("lendo cabeçalho: %w", err)
	}

	allocIdx := -1
	for i, field := range header {
		if field == domain.AllocatedField {
			allocIdx = i
			break
		}
	}

	outHeader := header
	if allocIdx < 0 {
		allocIdx = len(header)
		outHeader = append(append([]string(nil), header...), domain.AllocatedField)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(outHeader); err != nil {
		return sum, fmt.Errorf("escrevendo cabeçalho: %w", err)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("lendo linha %d: %w", sum.Rows+2, err)
		}

		rec := make(domain.Record, len(header))
		for i, field := range header {
			if i < len(row) {
				rec[field] = row[i]
			}
		}

		outcome := svc.Allocate(rec)

		out := make([]string, len(outHeader))
		for i := range header {
			if i < len(row) {
				out[i] = row[i]
			}
		}
		out[allocIdx] = string(outcome)

		if err := writer.Write(out); err != nil {
			return sum, fmt.Errorf("escrevendo linha %d: %w", sum.Rows+2, err)
		}

		if a.stats != nil {
			_ = a.stats.Record(ctx, domain.StatsEvent{RunID: a.runID, Outcome: outcome})
		}

		sum.Rows++
		sum.Outcomes[outcome]++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return sum, fmt.Errorf("finalizando saída: %w", err)
	}
	return sum, nil
}
