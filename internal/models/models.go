// Package models holds the gorm schema. Primary keys are named ID in Go and
// carry an explicit <entity>_id column so foreign keys such as MovieID resolve
// to belongs-to relations unambiguously.
//
// Wire shapes live in package views; models are never encoded directly.
package models

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"column:user_id;primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Movie struct {
	ID          uint      `gorm:"column:movie_id;primaryKey"`
	Title       string    `gorm:"not null"`
	Genre       string    `gorm:"not null"`
	ReleaseDate time.Time `gorm:"not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CategoryRelations []MovieCategoryRelation `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

type Series struct {
	ID           uint      `gorm:"column:series_id;primaryKey"`
	Title        string    `gorm:"not null"`
	Genre        string    `gorm:"not null"`
	ReleaseDate  time.Time `gorm:"not null"`
	Description  *string
	SeasonsCount int `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CategoryRelations []SeriesCategoryRelation `gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE"`
}

func (Series) TableName() string { return "series" }

type MovieCategory struct {
	ID        uint   `gorm:"column:movie_category_id;primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SeriesCategory struct {
	ID        uint   `gorm:"column:series_category_id;primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SeriesCategory) TableName() string { return "series_categories" }

// MovieCategoryRelation is the join row between a movie and a category.
type MovieCategoryRelation struct {
	MovieID         uint `gorm:"primaryKey;autoIncrement:false"`
	MovieCategoryID uint `gorm:"primaryKey;autoIncrement:false"`

	Category MovieCategory `gorm:"foreignKey:MovieCategoryID;constraint:OnDelete:CASCADE"`
}

type SeriesCategoryRelation struct {
	SeriesID         uint `gorm:"primaryKey;autoIncrement:false"`
	SeriesCategoryID uint `gorm:"primaryKey;autoIncrement:false"`

	Category SeriesCategory `gorm:"foreignKey:SeriesCategoryID;constraint:OnDelete:CASCADE"`
}

type MovieRating struct {
	ID        uint `gorm:"column:movie_rating_id;primaryKey"`
	UserID    uint `gorm:"not null;index"`
	MovieID   uint `gorm:"not null;index"`
	Rating    int  `gorm:"not null;check:rating >= 0 AND rating <= 10"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  User  `gorm:"constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"constraint:OnDelete:CASCADE"`
}

type SeriesRating struct {
	ID        uint `gorm:"column:series_rating_id;primaryKey"`
	UserID    uint `gorm:"not null;index"`
	SeriesID  uint `gorm:"not null;index"`
	Rating    int  `gorm:"not null;check:rating >= 0 AND rating <= 10"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   User   `gorm:"constraint:OnDelete:CASCADE"`
	Series Series `gorm:"constraint:OnDelete:CASCADE"`
}

type MovieNote struct {
	ID        uint   `gorm:"column:note_id;primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	MovieID   uint   `gorm:"not null;index"`
	NoteText  string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  User  `gorm:"constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"constraint:OnDelete:CASCADE"`
}

type SeriesNote struct {
	ID        uint   `gorm:"column:note_id;primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	SeriesID  uint   `gorm:"not null;index"`
	NoteText  string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   User   `gorm:"constraint:OnDelete:CASCADE"`
	Series Series `gorm:"constraint:OnDelete:CASCADE"`
}

type MovieComment struct {
	ID          uint   `gorm:"column:comment_id;primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	MovieID     uint   `gorm:"not null;index"`
	CommentText string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User  User  `gorm:"constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"constraint:OnDelete:CASCADE"`
}

type SeriesComment struct {
	ID          uint   `gorm:"column:comment_id;primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	SeriesID    uint   `gorm:"not null;index"`
	CommentText string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User   User   `gorm:"constraint:OnDelete:CASCADE"`
	Series Series `gorm:"constraint:OnDelete:CASCADE"`
}

// SchedulingEvent plans a watch session. MovieID and SeriesID are both
// optional and may both be set.
type SchedulingEvent struct {
	ID        uint `gorm:"column:event_id;primaryKey"`
	UserID    uint `gorm:"not null;index"`
	MovieID   *uint
	SeriesID  *uint
	EventDate time.Time `gorm:"not null"`
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time

	User   User    `gorm:"constraint:OnDelete:CASCADE"`
	Movie  *Movie  `gorm:"constraint:OnDelete:CASCADE"`
	Series *Series `gorm:"constraint:OnDelete:CASCADE"`
}

func (SchedulingEvent) TableName() string { return "scheduling" }

type Share struct {
	ID              uint `gorm:"column:share_id;primaryKey"`
	SenderUserID    uint `gorm:"not null;index"`
	RecipientUserID uint `gorm:"not null;index"`
	MovieID         *uint
	SeriesID        *uint
	CreatedAt       time.Time

	SenderUser    User    `gorm:"foreignKey:SenderUserID;constraint:OnDelete:CASCADE"`
	RecipientUser User    `gorm:"foreignKey:RecipientUserID;constraint:OnDelete:CASCADE"`
	Movie         *Movie  `gorm:"constraint:OnDelete:CASCADE"`
	Series        *Series `gorm:"constraint:OnDelete:CASCADE"`
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&User{},
		&MovieCategory{}, &SeriesCategory{},
		&Movie{}, &Series{},
		&MovieCategoryRelation{}, &SeriesCategoryRelation{},
		&MovieRating{}, &SeriesRating{},
		&MovieNote{}, &SeriesNote{},
		&MovieComment{}, &SeriesComment{},
		&SchedulingEvent{},
		&Share{},
	}
}
