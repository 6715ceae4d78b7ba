package models

// Company represents an organization running disclosure programs
type Company struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email        string `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email,max=100"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
	Website      string `json:"website" gorm:"size:200" validate:"max=200"`
	Approved     bool   `json:"approved" gorm:"not null;default:false"`

	// Relationships
	Programs []Program `json:"programs,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
