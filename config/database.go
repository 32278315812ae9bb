package config

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kurniasari-api/models"
)

var DB *gorm.DB

// ConnectDatabase opens the store selected by DB_DRIVER and migrates the
// schema. SQLite is the default; MySQL needs MYSQL_DSN set.
func ConnectDatabase() {
	var (
		db  *gorm.DB
		err error
	)

	switch App.DBDriver {
	case "mysql":
		if App.MySQLDSN == "" {
			log.Fatal("MYSQL_DSN is required when DB_DRIVER=mysql")
		}
		db, err = gorm.Open(mysql.Open(App.MySQLDSN), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(App.DBPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	DB = db
}

// Migrate runs AutoMigrate for every model. Exported so tests can build
// an isolated in-memory schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Outlet{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderAssignment{},
		&models.ShippingImage{},
		&models.AuditLog{},
	)
}
