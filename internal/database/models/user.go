package models

// User represents a hacker account that submits vulnerability reports
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"size:40;not null;uniqueIndex" validate:"required,min=3,max=40"`
	Email        string `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email,max=100"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
	FirstName    string `json:"first_name" gorm:"size:50" validate:"max=50"`
	LastName     string `json:"last_name" gorm:"size:50" validate:"max=50"`
	Country      string `json:"country" gorm:"size:50" validate:"max=50"`
	Activated    bool   `json:"activated" gorm:"not null;default:false"`

	// Relationships
	Reports []Report `json:"reports,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
