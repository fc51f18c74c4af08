package domain

// Record representa uma linha de inscrição já parseada (campo -> valor).
//
// A ordem das colunas pertence ao adapter (CSV); aqui só interessa o acesso
// por nome. Campo ausente equivale a valor vazio — linha curta não é erro,
// o inscrito apenas "não declarou" aquela preferência.
type Record map[string]string

func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}
