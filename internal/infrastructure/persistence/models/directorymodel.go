package models

import "github.com/orris-inc/helpdesk/internal/shared/constants"

type CustomerModel struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	UserID    string  `gorm:"size:128;not null" json:"user_id"`
	Name      string  `gorm:"size:200;not null" json:"name"`
	Email     string  `gorm:"size:255;not null" json:"email"`
	Company   *string `gorm:"size:200" json:"company,omitempty"`
	Phone     *string `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt string  `gorm:"size:32;not null" json:"created_at"`
	UpdatedAt string  `gorm:"size:32;not null" json:"updated_at"`
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}

type AgentModel struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	UserID    string `gorm:"size:128;not null" json:"user_id"`
	Name      string `gorm:"size:200;not null" json:"name"`
	Email     string `gorm:"size:255;not null" json:"email"`
	Role      string `gorm:"size:20;not null" json:"role"`
	CreatedAt string `gorm:"size:32;not null" json:"created_at"`
	UpdatedAt string `gorm:"size:32;not null" json:"updated_at"`
}

func (AgentModel) TableName() string {
	return constants.TableAgents
}
