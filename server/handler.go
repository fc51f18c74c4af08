package server

import (
	"bytes"
	"net/http"
	"strconv"

	"gym-allocator/allocation"
	"gym-allocator/allocation/application"
	"gym-allocator/allocation/domain"
	"gym-allocator/allocation/infra"

	"github.com/google/uuid"
)

type Options struct {
	Profile infra.Profile
	Stats   domain.StatsStore
}

// Handler devolve o endpoint de alocação.
//
// A resposta só é escrita depois da passada inteira terminar: CSV inválido no
// meio do corpo vira 400, nunca uma resposta anotada pela metade.
func Handler(opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		// tabela nova por request: capacidade é estado por execução
		svc := application.Service{
			Table:       infra.NewTable(opts.Profile.Slots),
			Preferences: application.PreferenceColumns(opts.Profile.Preferences),
			Validator:   infra.EmailDomain(opts.Profile.EmailDomain),
		}

		runID := uuid.NewString()
		var annOpts []allocation.Option
		if opts.Stats != nil {
			annOpts = append(annOpts, allocation.WithStats(opts.Stats, runID))
		}

		var buf bytes.Buffer
		sum, err := allocation.Annotate(r.Context(), r.Body, &buf, svc, annOpts...)
		if err != nil {
			http.Error(w, "invalid csv: "+err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("X-Allocation-Run", runID)
		w.Header().Set("X-Allocation-Rows", strconv.Itoa(sum.Rows))
		_, _ = buf.WriteTo(w)
	})
}
