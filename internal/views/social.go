package views

import (
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/datefmt"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

type EventView struct {
	EventId   uint
	UserId    uint
	MovieId   *uint
	SeriesId  *uint
	EventDate string
	Note      *string
	CreatedAt string
	UpdatedAt string
	Movie     *TitleRef
	Series    *TitleRef
}

func Event(e *models.SchedulingEvent) EventView {
	v := EventView{
		EventId:   e.ID,
		UserId:    e.UserID,
		MovieId:   e.MovieID,
		SeriesId:  e.SeriesID,
		EventDate: datefmt.DateTime(e.EventDate),
		Note:      e.Note,
		CreatedAt: datefmt.DateTime(e.CreatedAt),
		UpdatedAt: datefmt.DateTime(e.UpdatedAt),
	}
	if e.Movie != nil {
		v.Movie = &TitleRef{Title: e.Movie.Title}
	}
	if e.Series != nil {
		v.Series = &TitleRef{Title: e.Series.Title}
	}
	return v
}

// ShareView carries whichever joins were loaded; the rest are omitted.
type ShareView struct {
	ShareId         uint
	SenderUserId    uint
	RecipientUserId uint
	MovieId         *uint
	SeriesId        *uint
	CreatedAt       string
	Movie           *TitleGenreRef `json:",omitempty"`
	Series          *TitleGenreRef `json:",omitempty"`
	SenderUser      *UserRef       `json:",omitempty"`
	RecipientUser   *UserRef       `json:",omitempty"`
}

func Share(s *models.Share) ShareView {
	v := ShareView{
		ShareId:         s.ID,
		SenderUserId:    s.SenderUserID,
		RecipientUserId: s.RecipientUserID,
		MovieId:         s.MovieID,
		SeriesId:        s.SeriesID,
		CreatedAt:       datefmt.DateTime(s.CreatedAt),
		SenderUser:      userRef(&s.SenderUser),
		RecipientUser:   userRef(&s.RecipientUser),
	}
	if s.Movie != nil {
		v.Movie = &TitleGenreRef{Title: s.Movie.Title, Genre: s.Movie.Genre}
	}
	if s.Series != nil {
		v.Series = &TitleGenreRef{Title: s.Series.Title, Genre: s.Series.Genre}
	}
	return v
}
