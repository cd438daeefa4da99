package db

import (
	"github.com/tarimpazar/tarimpazar/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	return Migrate(DB)
}

// Migrate runs migrations against an explicit connection so tests can use
// their own database.
func Migrate(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Product{},
		&models.JobPosting{},
		&models.ForumTopic{},
		&models.ForumPost{},
		&models.SocialPost{},
		&models.Block{},
		&models.Conversation{},
		&models.Message{},
		&models.Report{},
		&models.Notification{},
		&models.FavoriteGroup{},
		&models.Favorite{},
	}

	migrator := conn.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := conn.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
