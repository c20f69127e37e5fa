package views

import (
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/datefmt"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

// User is omitted when the author was not loaded.

type MovieRatingView struct {
	MovieRatingId uint
	UserId        uint
	MovieId       uint
	Rating        int
	CreatedAt     string
	UpdatedAt     string
	User          *UserRef `json:",omitempty"`
}

func MovieRating(r *models.MovieRating) MovieRatingView {
	return MovieRatingView{
		MovieRatingId: r.ID,
		UserId:        r.UserID,
		MovieId:       r.MovieID,
		Rating:        r.Rating,
		CreatedAt:     datefmt.DateTime(r.CreatedAt),
		UpdatedAt:     datefmt.DateTime(r.UpdatedAt),
		User:          userRef(&r.User),
	}
}

type SeriesRatingView struct {
	SeriesRatingId uint
	UserId         uint
	SeriesId       uint
	Rating         int
	CreatedAt      string
	UpdatedAt      string
	User           *UserRef `json:",omitempty"`
}

func SeriesRating(r *models.SeriesRating) SeriesRatingView {
	return SeriesRatingView{
		SeriesRatingId: r.ID,
		UserId:         r.UserID,
		SeriesId:       r.SeriesID,
		Rating:         r.Rating,
		CreatedAt:      datefmt.DateTime(r.CreatedAt),
		UpdatedAt:      datefmt.DateTime(r.UpdatedAt),
		User:           userRef(&r.User),
	}
}

type MovieNoteView struct {
	NoteId    uint
	UserId    uint
	MovieId   uint
	NoteText  string
	CreatedAt string
	UpdatedAt string
	User      *UserRef `json:",omitempty"`
}

func MovieNote(n *models.MovieNote) MovieNoteView {
	return MovieNoteView{
		NoteId:    n.ID,
		UserId:    n.UserID,
		MovieId:   n.MovieID,
		NoteText:  n.NoteText,
		CreatedAt: datefmt.DateTime(n.CreatedAt),
		UpdatedAt: datefmt.DateTime(n.UpdatedAt),
		User:      userRef(&n.User),
	}
}

type SeriesNoteView struct {
	NoteId    uint
	UserId    uint
	SeriesId  uint
	NoteText  string
	CreatedAt string
	UpdatedAt string
	User      *UserRef `json:",omitempty"`
}

func SeriesNote(n *models.SeriesNote) SeriesNoteView {
	return SeriesNoteView{
		NoteId:    n.ID,
		UserId:    n.UserID,
		SeriesId:  n.SeriesID,
		NoteText:  n.NoteText,
		CreatedAt: datefmt.DateTime(n.CreatedAt),
		UpdatedAt: datefmt.DateTime(n.UpdatedAt),
		User:      userRef(&n.User),
	}
}

// UserNoteView flattens a movie or series note for the author's listing.
type UserNoteView struct {
	NoteId       uint
	Type         string
	RelatedTitle string
	NoteText     string
	CreatedAt    string
	UpdatedAt    string
}

const (
	NoteTypeMovie  = "Movie"
	NoteTypeSeries = "Series"
)

func UserMovieNote(n *models.MovieNote) UserNoteView {
	return UserNoteView{
		NoteId:       n.ID,
		Type:         NoteTypeMovie,
		RelatedTitle: n.Movie.Title,
		NoteText:     n.NoteText,
		CreatedAt:    datefmt.DateTime(n.CreatedAt),
		UpdatedAt:    datefmt.DateTime(n.UpdatedAt),
	}
}

func UserSeriesNote(n *models.SeriesNote) UserNoteView {
	return UserNoteView{
		NoteId:       n.ID,
		Type:         NoteTypeSeries,
		RelatedTitle: n.Series.Title,
		NoteText:     n.NoteText,
		CreatedAt:    datefmt.DateTime(n.CreatedAt),
		UpdatedAt:    datefmt.DateTime(n.UpdatedAt),
	}
}

type MovieCommentView struct {
	CommentId   uint
	UserId      uint
	MovieId     uint
	CommentText string
	CreatedAt   string
	UpdatedAt   string
	User        *UserRef `json:",omitempty"`
}

func MovieComment(c *models.MovieComment) MovieCommentView {
	return MovieCommentView{
		CommentId:   c.ID,
		UserId:      c.UserID,
		MovieId:     c.MovieID,
		CommentText: c.CommentText,
		CreatedAt:   datefmt.DateTime(c.CreatedAt),
		UpdatedAt:   datefmt.DateTime(c.UpdatedAt),
		User:        userRef(&c.User),
	}
}

type SeriesCommentView struct {
	CommentId   uint
	UserId      uint
	SeriesId    uint
	CommentText string
	CreatedAt   string
	UpdatedAt   string
	User        *UserRef `json:",omitempty"`
}

func SeriesComment(c *models.SeriesComment) SeriesCommentView {
	return SeriesCommentView{
		CommentId:   c.ID,
		UserId:      c.UserID,
		SeriesId:    c.SeriesID,
		CommentText: c.CommentText,
		CreatedAt:   datefmt.DateTime(c.CreatedAt),
		UpdatedAt:   datefmt.DateTime(c.UpdatedAt),
		User:        userRef(&c.User),
	}
}

type UserMovieCommentView struct {
	CommentId   uint
	MovieId     uint
	MovieTitle  string
	CommentText string
	CreatedAt   string
	UpdatedAt   string
}

func UserMovieComment(c *models.MovieComment) UserMovieCommentView {
	return UserMovieCommentView{
		CommentId:   c.ID,
		MovieId:     c.MovieID,
		MovieTitle:  c.Movie.Title,
		CommentText: c.CommentText,
		CreatedAt:   datefmt.DateTime(c.CreatedAt),
		UpdatedAt:   datefmt.DateTime(c.UpdatedAt),
	}
}

type UserSeriesCommentView struct {
	CommentId   uint
	SeriesId    uint
	SeriesTitle string
	CommentText string
	CreatedAt   string
	UpdatedAt   string
}

func UserSeriesComment(c *models.SeriesComment) UserSeriesCommentView {
	return UserSeriesCommentView{
		CommentId:   c.ID,
		SeriesId:    c.SeriesID,
		SeriesTitle: c.Series.Title,
		CommentText: c.CommentText,
		CreatedAt:   datefmt.DateTime(c.CreatedAt),
		UpdatedAt:   datefmt.DateTime(c.UpdatedAt),
	}
}
