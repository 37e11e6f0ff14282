package database

import (
	"fmt"
	"log"

	"quiz_api_backend/internal/config"
	"quiz_api_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError: 把驱动的重复键错误翻译成 gorm.ErrDuplicatedKey，
	// 并发重复答题靠它兜底
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 建表并确保 answers 上的 (quiz_session_id, question_id) 唯一索引。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Question{},
		&model.QuizSession{},
		&model.Answer{},
	)
}
