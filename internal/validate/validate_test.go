package validate

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
)

type ratingBody struct {
	UserID *uint `json:"userId" validate:"required"`
	Rating *int  `json:"rating" validate:"required,rating"`
}

type userBody struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func ptr[T any](v T) *T { return &v }

func TestRating(t *testing.T) {
	tests := []struct {
		name   string
		rating *int
		ok     bool
	}{
		{"lower bound", ptr(0), true},
		{"upper bound", ptr(10), true},
		{"middle", ptr(7), true},
		{"negative", ptr(-1), false},
		{"too high", ptr(11), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(ratingBody{UserID: ptr(uint(1)), Rating: tt.rating})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
			assert.Equal(t, RatingMessage, apperr.Message(err))
		})
	}
}

func TestRequiredUsesJSONName(t *testing.T) {
	err := Struct(ratingBody{Rating: ptr(5)})
	assert.Equal(t, "O campo userId é obrigatório.", apperr.Message(err))

	err = Struct(ratingBody{UserID: ptr(uint(1))})
	assert.Equal(t, "O campo rating é obrigatório.", apperr.Message(err))
}

func TestEmail(t *testing.T) {
	err := Struct(userBody{Name: "Ana", Email: "not-an-email", Password: "p"})
	assert.Equal(t, "O campo email deve ser um email válido.", apperr.Message(err))
	assert.NoError(t, Struct(userBody{Name: "Ana", Email: "a@x.com", Password: "p"}))
}
