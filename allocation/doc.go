// Package allocation fornece o adapter CSV da alocação de vagas de academia.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (sem dependência de I/O)
//   - application: caso de uso (gate de e-mail + varredura first-fit) sem CSV
//   - infra: implementações concretas (tabela de capacidades, gate de e-mail,
//     contadores de outcome, perfil YAML)
//   - allocation (este pacote): leitura/escrita do artefato CSV em lockstep +
//     tradução linha -> Record -> Outcome -> linha anotada
//
// Fluxo de uma execução:
//
//  1. Lê o cabeçalho e anexa a coluna "Allocated Slot" (uma única vez)
//  2. Para cada linha, na ordem de chegada: valida o e-mail (variante
//     estendida), varre as preferências em ordem de rank e consome a
//     primeira vaga disponível
//  3. Emite a linha original + outcome, uma saída por entrada
//
// A ordem de chegada é o único mecanismo de prioridade: quem aparece antes no
// arquivo disputa a vaga antes.
package allocation
