package infra

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile descreve um deployment da alocação: a tabela de capacidades, o
// número de colunas de preferência do formulário e, opcionalmente, o sufixo
// de e-mail exigido (vazio = sem gate, variante base).
//
// Exemplo de YAML:
//
//	preferences: 9
//	email_domain: "@iiitk.ac.in"
//	slots:
//	  "SLOT 1 (4:30AM TO 5:30 AM)": 20
//	  "SLOT 2 (5:30AM TO 7:00 AM)": 2
type Profile struct {
	Slots       map[string]int `yaml:"slots"`
	Preferences int            `yaml:"preferences"`
	EmailDomain string         `yaml:"email_domain"`
}

// LoadProfile lê e valida um perfil YAML.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checa o perfil na carga, antes de qualquer passada usar a tabela.
func (p Profile) Validate() error {
	if len(p.Slots) == 0 {
		return errors.New("slots vazio: nenhuma capacidade configurada")
	}
	if p.Preferences < 1 {
		return errors.New("preferences deve ser >= 1")
	}
	for label, c := range p.Slots {
		if c < 0 {
			return fmt.Errorf("slot %q com capacidade negativa (%d)", label, c)
		}
	}
	return nil
}

// DefaultProfile é o deployment estendido compilado no binário: 9 preferências,
// gate de e-mail institucional e a tabela da temporada corrente.
// Slots com capacidade 0 ficam fechados para a execução, de propósito.
func DefaultProfile() Profile {
	return Profile{
		Preferences: 9,
		EmailDomain: "@iiitk.ac.in",
		Slots: map[string]int{
			"SLOT 1 (4:30AM TO 5:30 AM)":  20,
			"SLOT 2 (5:30AM TO 7:00 AM)":  2,
			"SLOT 3 (7:00AM TO 8:30AM)":   3,
			"SLOT 4 (2:30PM TO 4:00PM)":   35,
			"SLOT 5 (4:00PM TO 5:30PM)":   3,
			"SLOT 6 (5:30PM TO 7:00PM)":   1,
			"SLOT 7 (7:00PM TO 8:30PM)":   1,
			"SLOT 8 (8:30PM TO 10:00PM)":  35,
			"SLOT 9 (10:00PM TO 11:30PM)": 35,
		},
	}
}
