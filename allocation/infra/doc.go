// Package infra contém implementações concretas (infraestrutura) para os
// contratos definidos no pacote domain.
//
// Exemplos:
//   - Table: tabela de capacidades por rótulo, de uma única execução
//   - EmailDomain: gate de validação por sufixo de e-mail
//   - MemoryStats / RedisStats: contadores de outcomes
//   - Profile: perfil de deployment carregado de YAML
package infra
