package seeder

import (
	"taskboard/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedUsers inserts demo identities. User management lives outside this
// service; these rows keep local setups and audit joins working without it.
func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&user.User{}).Count(&count)
	if count > 0 {
		s.logger.Info("Users already exist, skipping seed")
		return nil
	}

	users := []user.User{
		{Name: "Alice Carter", Email: "alice@taskboard.local"},
		{Name: "Bob Singh", Email: "bob@taskboard.local"},
		{Name: "Carol Jones", Email: "carol@taskboard.local"},
	}

	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded users", zap.Int("count", len(users)))
	return nil
}
