// Package server expõe a alocação como um endpoint HTTP de upload:
// POST /allocate recebe o CSV de inscrições no corpo e devolve o CSV anotado.
//
// Cada request constrói a própria tabela de capacidades a partir do perfil —
// o saldo de vagas é estado de UMA execução e nunca é compartilhado entre
// requests. Os middlewares do pacote protegem o endpoint: token bucket por
// cliente e semáforo de execuções simultâneas.
package server
