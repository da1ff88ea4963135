package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name     string
		customer model.Customer
		want     ContactErrors
	}{
		{
			name:     "valid",
			customer: model.Customer{Name: "Ali", Email: "ali@x.com", Phone: "0555000000"},
		},
		{
			name:     "valid international phone with spaces",
			customer: model.Customer{Name: "Ali", Email: "ali@x.com", Phone: "+213 555 00 00 00"},
		},
		{
			name:     "missing everything",
			customer: model.Customer{},
			want: ContactErrors{
				Name:  "Le nom est requis",
				Email: "L'email est requis",
				Phone: "Le numéro de téléphone est requis",
			},
		},
		{
			name:     "bad email",
			customer: model.Customer{Name: "Ali", Email: "ali@x", Phone: "0555000000"},
			want:     ContactErrors{Email: "Format d'email invalide"},
		},
		{
			name:     "landline is rejected",
			customer: model.Customer{Name: "Ali", Email: "ali@x.com", Phone: "0213000000"},
			want:     ContactErrors{Phone: "Format de numéro invalide (ex: 0555123456)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateContact(tt.customer)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != ContactErrors{}, got.HasErrors())
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "0555123456", NormalizePhone(" 0555-12.34 56 "))
	assert.Equal(t, "+213555123456", NormalizePhone("+213 (555) 123456"))
}
