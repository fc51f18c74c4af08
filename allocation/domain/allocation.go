package domain

// Camada de domínio da alocação de vagas.
//
// Regras e contratos (interfaces/tipos) sem dependência de I/O.

// Outcome é o resultado único registrado para cada inscrito após a passada.
// Ou é o rótulo do slot concedido, ou um dos valores sentinela abaixo.
type Outcome string

const (
	// NoSlotAllocated é o valor gravado quando nenhuma preferência rendeu vaga
	// (slot desconhecido, esgotado, ou nenhuma preferência declarada).
	NoSlotAllocated Outcome = "No slot allocated"

	// InvalidEmailDomain é o valor gravado quando o gate de e-mail reprova o
	// inscrito antes mesmo de olhar as preferências.
	InvalidEmailDomain Outcome = "Invalid email domain"
)

// AllocatedField é o nome da coluna de saída que carrega o Outcome.
const AllocatedField = "Allocated Slot"

// Allocated informa se o outcome corresponde a um slot concedido,
// em oposição aos valores sentinela de não-alocação.
func (o Outcome) Allocated() bool {
	return o != "" && o != NoSlotAllocated && o != InvalidEmailDomain
}

// SlotTable representa a tabela de capacidades de uma única execução.
//
// TryAllocate retorna true somente se o rótulo existe e ainda há vaga;
// nesse caso a vaga é consumida (capacidade decrementada em exatamente 1).
// Rótulo desconhecido e slot esgotado são indistinguíveis (ambos false):
// os dois caem para a próxima preferência do inscrito.
type SlotTable interface {
	TryAllocate(label string) bool
}

// Validator decide se um inscrito pode disputar vagas.
//
// Erro != nil curto-circuita a alocação: o inscrito recebe InvalidEmailDomain
// e nenhuma preferência é examinada. Validator ausente (nil) aprova todos.
type Validator interface {
	Validate(rec Record) error
}
