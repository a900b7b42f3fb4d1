package db

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to the rows of one owner. Every tenant-scoped query
// starts with this scope; the tables hold all owners' rows side by side.
//
// Example usage:
//
//	db.Model(&models.TicketModel{}).Scopes(db.OwnedBy(ownerID)).Where("status = ?", status).Find(&rows)
func OwnedBy(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", ownerID)
	}
}
