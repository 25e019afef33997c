package catalog

import (
	"time"

	"gorm.io/datatypes"
)

// Genre is the DB model for a game category. Genres are seeded, never edited
// from the web surface, so deleting one that games still use is refused.
type Genre struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Games     []Game `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Genre) TableName() string { return "genres" }

// Publisher is the DB model for a game publisher.
type Publisher struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:150;not null"`
	Games     []Game `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Publisher) TableName() string { return "publishers" }

// Game is the DB model for a catalog entry.
type Game struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null;index"`
	Description string `gorm:"size:400;not null"`
	ReleasedOn  *datatypes.Date
	Featured    bool  `gorm:"not null;index"`
	GenreID     *uint `gorm:"index"`
	Genre       *Genre
	PublisherID *uint `gorm:"index"`
	Publisher   *Publisher
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Game) TableName() string { return "games" }
