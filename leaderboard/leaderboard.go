// Package leaderboard persists (name, score) records in a local sqlite
// file, keeping only the top ten scores.
package leaderboard

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Keep is the retention depth
const Keep = 10

// Record is one submitted run result
type Record struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:32;not null"`
	Score     int       `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Store is a local top-N score table
type Store struct {
	db *gorm.DB
}

// Open creates or opens the sqlite database at path. ":memory:" gives a
// transient store for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open leaderboard %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate leaderboard: %w", err)
	}
	return &Store{db: db}, nil
}

// Submit inserts a run result and trims the table back to the top ten.
// Returns the record's rank (1-based) or 0 when it fell off the board.
func (s *Store) Submit(name string, score int) (int, error) {
	rec := Record{Name: name, Score: score}
	if err := s.db.Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("submit score: %w", err)
	}
	if err := s.trim(); err != nil {
		return 0, err
	}

	var rank int64
	err := s.db.Model(&Record{}).
		Where("score > ? OR (score = ? AND id < ?)", score, score, rec.ID).
		Count(&rank).Error
	if err != nil {
		return 0, fmt.Errorf("rank score: %w", err)
	}
	if rank >= Keep {
		return 0, nil
	}
	return int(rank) + 1, nil
}

// Top returns up to Keep records, best first, ties resolved by age
func (s *Store) Top() ([]Record, error) {
	var records []Record
	err := s.db.Order("score DESC, id ASC").Limit(Keep).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return records, nil
}

// trim deletes everything below the retention cutoff
func (s *Store) trim() error {
	var cutoff []Record
	err := s.db.Order("score DESC, id ASC").Limit(Keep).Find(&cutoff).Error
	if err != nil {
		return fmt.Errorf("trim leaderboard: %w", err)
	}
	if len(cutoff) < Keep {
		return nil
	}
	keepIDs := make([]uint, 0, len(cutoff))
	for _, r := range cutoff {
		keepIDs = append(keepIDs, r.ID)
	}
	if err := s.db.Where("id NOT IN ?", keepIDs).Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("trim leaderboard: %w", err)
	}
	return nil
}
