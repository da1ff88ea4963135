package wizard

import (
	"regexp"
	"strings"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(?:\+213|00213|0)[5-7][0-9]{8}$`)
)

// ContactErrors ошибки формата для показа рядом с полями.
// На переход между шагами не влияют.
type ContactErrors struct {
	Name  string
	Email string
	Phone string
}

// HasErrors проверяет есть ли хотя бы одна ошибка
func (e ContactErrors) HasErrors() bool {
	return e.Name != "" || e.Email != "" || e.Phone != ""
}

// ValidateContact проверяет формат контактных данных
func ValidateContact(c model.Customer) ContactErrors {
	var errs ContactErrors

	if strings.TrimSpace(c.Name) == "" {
		errs.Name = "Le nom est requis"
	}

	switch email := strings.TrimSpace(c.Email); {
	case email == "":
		errs.Email = "L'email est requis"
	case !emailRe.MatchString(email):
		errs.Email = "Format d'email invalide"
	}

	switch phone := NormalizePhone(c.Phone); {
	case phone == "":
		errs.Phone = "Le numéro de téléphone est requis"
	case !phoneRe.MatchString(phone):
		errs.Phone = "Format de numéro invalide (ex: 0555123456)"
	}

	return errs
}

// NormalizePhone убирает пробелы, дефисы и точки из номера
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}
