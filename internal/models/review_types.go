package models

import "time"

// Review is the store model for the 'reviews' table.
type Review struct {
	ReviewID  int64     `gorm:"column:review_id;primaryKey;autoIncrement"`
	ProductID int64     `gorm:"column:product_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Rating    int       `gorm:"column:rating;not null"`
	Comment   *string   `gorm:"column:comment;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	User User `gorm:"foreignKey:UserID;references:UserID"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewEntity is the client-facing shape of a review, with the reviewer's name only.
type ReviewEntity struct {
	ID        int64          `json:"id"`
	ProductID int64          `json:"productId"`
	UserID    int64          `json:"userId"`
	Rating    int            `json:"rating"`
	Comment   *string        `json:"comment"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	User      ReviewerEntity `json:"user"`
}

type ReviewerEntity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
