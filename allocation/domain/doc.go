// Package domain define contratos e tipos de domínio da alocação de vagas.
//
// Este pacote não depende de encoding/csv nem de implementações concretas.
// A intenção é permitir testes de unidade puros e desacoplar a regra de
// alocação de detalhes de entrada/saída.
package domain
