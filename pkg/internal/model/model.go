package model

import "gorm.io/gorm"

// AutoMigrate 建表/补列, 服务启动时调用.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&InventoryItem{},
		&Performance{},
		&Passport{},
		&ScheduleEvent{},
		&Document{},
	)
}
