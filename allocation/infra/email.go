package infra

import (
	"errors"
	"strings"

	"gym-allocator/allocation/domain"
)

// EmailField é o nome da coluna examinada pelo gate de domínio de e-mail,
// como vem no export do formulário.
const EmailField = "Email"

var errWrongDomain = errors.New("email fora do domínio exigido")

type emailDomain struct {
	suffix string
}

// EmailDomain valida que o campo Email termina com o sufixo exigido
// (ex: "@iiitk.ac.in"). Normalização: trim + lowercase, aplicada dos dois
// lados. Sufixo vazio desliga o gate (retorna nil, Validator ausente).
func EmailDomain(suffix string) domain.Validator {
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if suffix == "" {
		return nil
	}
	return emailDomain{suffix: suffix}
}

func (v emailDomain) Validate(rec domain.Record) error {
	email := strings.ToLower(strings.TrimSpace(rec.Get(EmailField)))
	if !strings.HasSuffix(email, v.suffix) {
		return errWrongDomain
	}
	return nil
}
