package database

import (
	"fmt"

	"vidtube/internal/model"
	"vidtube/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// Unique violations must surface as gorm.ErrDuplicatedKey: the
		// toggle engine relies on them for race resolution.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema, including the composite unique
// indexes the toggle engine depends on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.VideoModel{},
		&model.TweetModel{},
		&model.CommentModel{},
		&model.LikeModel{},
		&model.SubscriptionModel{},
		&model.PlaylistModel{},
		&model.PlaylistVideoModel{},
	)
}
