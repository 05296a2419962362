package model

import "time"

// Progress is a dated measurement against a goal. Date is always set by the
// server at creation time; client-supplied dates are not honored so entries
// cannot be backdated. UserID is the recorder, derived from the verified
// session.
type Progress struct {
	BaseModel
	GoalID      uint      `gorm:"index;not null" json:"goalId"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Value       string    `gorm:"size:50;not null" json:"value"`
	Description string    `gorm:"size:250" json:"description"`
}

func (Progress) TableName() string {
	return "progress"
}
