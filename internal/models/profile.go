package models

// StudentProfile - 1:1 с User при роли STUDENT.
type StudentProfile struct {
	BaseModel
	UserID             string             `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	University         string             `gorm:"not null" json:"university"`
	StudentID          string             `gorm:"not null" json:"studentId"`
	Program            string             `gorm:"not null" json:"program"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"verificationStatus"`
	VerificationNotes  *string            `json:"verificationNotes"`
	IDDocURL           *string            `json:"idDocUrl"`
	SelfieURL          *string            `json:"selfieUrl"`
}

// BuyerProfile - 1:1 с User при роли BUYER. Все поля опциональны.
type BuyerProfile struct {
	BaseModel
	UserID         string  `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	CompanyName    *string `json:"companyName"`
	Website        *string `json:"website"`
	BillingAddress *string `json:"billingAddress"`
}
