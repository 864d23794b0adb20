package models

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ServiceName string  `gorm:"size:100;uniqueIndex;not null" json:"service_name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(8,2);not null" json:"price"`
	Duration    int     `gorm:"not null" json:"duration"` // minutes
}
