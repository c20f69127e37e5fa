// Package views shapes models into response bodies. Keys are PascalCase and
// every timestamp is rendered by datefmt.
package views

import (
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/datefmt"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

// Map applies f to every element, returning an empty (never nil) slice.
func Map[T, V any](in []T, f func(*T) V) []V {
	out := make([]V, len(in))
	for i := range in {
		out[i] = f(&in[i])
	}
	return out
}

type UserRef struct {
	Name  string
	Email string
}

type TitleRef struct {
	Title string
}

type TitleGenreRef struct {
	Title string
	Genre string
}

func userRef(u *models.User) *UserRef {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &UserRef{Name: u.Name, Email: u.Email}
}

type UserView struct {
	UserId    uint
	Name      string
	Email     string
	CreatedAt string
	UpdatedAt string
}

func User(u *models.User) UserView {
	return UserView{
		UserId:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: datefmt.DateTime(u.CreatedAt),
		UpdatedAt: datefmt.DateTime(u.UpdatedAt),
	}
}
