package entities

import "time"

// Author owns zero or more books. Names are not unique.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index;size:256" json:"name"`
	Books     []Book    `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}
