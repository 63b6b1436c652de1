package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tomereli/nutrition-tracker/models"
)

const timestampLayout = "2006-01-02T15:04:05"

var (
	ErrInvalidTimestamp = errors.New("Invalid timestamp format. Use YYYY-MM-DDThh:mm:ss.")
	ErrNoEntries        = errors.New("no entries found for date")
)

// EntryStore owns the in-memory entry collection for the process lifetime.
type EntryStore struct {
	db *gorm.DB
}

func NewEntryStore(db *gorm.DB) *EntryStore {
	return &EntryStore{db: db}
}

// EntryRequest is the addEntry body. The required numeric fields are pointers
// so a literal 0 still counts as present.
type EntryRequest struct {
	Timestamp   string `json:"timestamp" binding:"required"`
	Description string `json:"description" binding:"required"`
	Calories    *int   `json:"calories" binding:"required,gte=0"`
	Protein     *int   `json:"protein" binding:"required,gte=0"`
	Carbs       int    `json:"carbs" binding:"gte=0"`
	Fat         int    `json:"fat" binding:"gte=0"`
	Caffeine    int    `json:"caffeine" binding:"gte=0"`
}

// Add validates the timestamp, derives the date key and stores the entry.
func (s *EntryStore) Add(req EntryRequest) (*models.NutritionEntry, error) {
	ts, err := time.Parse(timestampLayout, strings.TrimSpace(req.Timestamp))
	if err != nil {
		return nil, ErrInvalidTimestamp
	}

	entry := &models.NutritionEntry{
		Timestamp:   ts.Format(timestampLayout),
		Date:        ts.Format(dateLayout),
		Description: req.Description,
		Calories:    *req.Calories,
		Protein:     *req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Caffeine:    req.Caffeine,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Query returns all entries whose date falls within the range, in timestamp
// order.
func (s *EntryStore) Query(rng DateRange) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := s.db.
		Where("date BETWEEN ? AND ?", rng.StartKey(), rng.EndKey()).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}

// DeleteByDate removes every entry for the given YYYY-MM-DD date and returns
// the number removed. ErrNoEntries when nothing matched.
func (s *EntryStore) DeleteByDate(date string) (int64, error) {
	res := s.db.Where("date = ?", date).Delete(&models.NutritionEntry{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNoEntries
	}
	return res.RowsAffected, nil
}

// Flush removes all entries unconditionally.
func (s *EntryStore) Flush() error {
	return s.db.Where("1 = 1").Delete(&models.NutritionEntry{}).Error
}
