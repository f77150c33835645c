package models

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	UserUid   string `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string `gorm:"size:80;not null"`
	Email     string `gorm:"size:160;uniqueIndex;not null"`
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	CategoryUid string `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string `gorm:"size:80;uniqueIndex;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Book struct {
	ID         uint   `gorm:"primaryKey"`
	BookUid    string `gorm:"type:uuid;uniqueIndex;not null"`
	Name       string `gorm:"not null"`
	Author     string `gorm:"not null"`
	Summary    string
	CoverURL   string
	TotalPages int `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Categories []Category `gorm:"many2many:book_categories"`
	Ratings    []Rating   `gorm:"foreignKey:BookID"`
}

// Rating holds one user's review of one book. The composite unique index on
// (user_id, book_id) rejects a second rating for the same pair at the storage
// level, so concurrent submits cannot both get through.
type Rating struct {
	ID          uint   `gorm:"primaryKey"`
	RatingUid   string `gorm:"type:uuid;uniqueIndex;not null"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_user_book"`
	BookID      uint   `gorm:"not null;uniqueIndex:idx_user_book"`
	Rate        int    `gorm:"not null;check:rate >= 1 AND rate <= 5"`
	Description string `gorm:"size:450"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User User `gorm:"foreignKey:UserID"`
	Book Book `gorm:"foreignKey:BookID"`
}
