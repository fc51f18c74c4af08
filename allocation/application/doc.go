// Package application contém o caso de uso da alocação: dado um inscrito,
// resolver exatamente um Outcome.
//
// Ele depende apenas do pacote domain e não conhece CSV nem HTTP.
// Ex.: Service.Allocate(rec) retorna o slot concedido ou um valor sentinela.
package application
