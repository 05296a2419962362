package model

// GoalProgressInitial is the status a goal starts with. The server never
// transitions it on its own; users update it as free text.
const GoalProgressInitial = "in progress"

// Goal is a target a user wants to reach, e.g. "run 10 miles".
// Target is kept as a string to match what clients submit; validation
// guarantees it parses as a number.
type Goal struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Target   string `gorm:"size:50;not null" json:"target"`
	Metric   string `gorm:"size:50;not null" json:"metric"`
	Progress string `gorm:"size:50;default:'in progress'" json:"progress"`
}

func (Goal) TableName() string {
	return "goals"
}
