package service

import (
	"sort"
	"strings"
	"time"

	"quote-hunt/catalog"
	"quote-hunt/database"
	"quote-hunt/database/model"
	"quote-hunt/web/entity"

	"go.uber.org/atomic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectAttempts counts record-collection calls since process start,
// including duplicate scans. Reported in the server status view.
var collectAttempts = atomic.NewInt64(0)

// CollectAttempts returns the number of record-collection calls since start.
func CollectAttempts() int64 {
	return collectAttempts.Load()
}

// CollectionService is the collection ledger: one row per (user, location)
// collection event. The composite unique index on (user_id, location_id) is
// the single enforcement point of the at-most-one invariant; a rejected
// insert is the expected "already collected" outcome, never an error.
type CollectionService struct {
	userService    UserService
	settingService SettingService
}

const itemColumns = "collections.id, users.username, collections.location_id, " +
	"collections.location_name, collections.collectible_id, collections.collectible_title, " +
	"collections.collectible_content, collections.collectible_author, collections.collected_at AS timestamp"

// Exists reports whether the user has already collected at the location. Pure
// probe, no side effects.
func (s *CollectionService) Exists(username string, locationId string) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(&model.Collection{}).
		Joins("JOIN users ON users.id = collections.user_id").
		Where("users.username = ? AND collections.location_id = ?", strings.TrimSpace(username), locationId).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Record attempts to add a ledger entry for (username, locationId) with the
// given catalog snapshot. The user is created implicitly if unknown. Two
// concurrent calls for the same pair yield exactly one Created=true; the
// loser sees Created=false with no item.
func (s *CollectionService) Record(username string, locationId string, snap *catalog.Snapshot) (*entity.CollectResult, error) {
	collectAttempts.Inc()

	username = strings.TrimSpace(username)
	if len(username) < 2 {
		return nil, newValidationError("username must be at least 2 characters")
	}
	if locationId == "" {
		return nil, newValidationError("locationId is required")
	}

	user, err := s.userService.Register(username)
	if err != nil {
		return nil, err
	}

	entry := &model.Collection{
		UserId:             user.Id,
		LocationId:         locationId,
		LocationName:       snap.LocationName,
		CollectibleId:      snap.CollectibleId,
		CollectibleTitle:   snap.CollectibleTitle,
		CollectibleContent: snap.CollectibleContent,
		CollectibleAuthor:  snap.CollectibleAuthor,
		CollectedAt:        time.Now(),
	}

	db := database.GetDB()
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "location_id"}},
		DoNothing: true,
	}).Create(entry)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Insert rejected by the uniqueness constraint: already collected.
		return &entity.CollectResult{Created: false}, nil
	}

	return &entity.CollectResult{
		Created: true,
		Item: &entity.CollectionItem{
			Id:                 entry.Id,
			Username:           username,
			LocationId:         entry.LocationId,
			LocationName:       entry.LocationName,
			CollectibleId:      entry.CollectibleId,
			CollectibleTitle:   entry.CollectibleTitle,
			CollectibleContent: entry.CollectibleContent,
			CollectibleAuthor:  entry.CollectibleAuthor,
			Timestamp:          entry.CollectedAt,
		},
	}, nil
}

// ListByUser returns the user's ledger entries ordered by collection time.
func (s *CollectionService) ListByUser(username string) ([]entity.CollectionItem, error) {
	db := database.GetDB()
	items := make([]entity.CollectionItem, 0)
	err := db.Model(&model.Collection{}).
		Select(itemColumns).
		Joins("JOIN users ON users.id = collections.user_id").
		Where("users.username = ?", strings.TrimSpace(username)).
		Order("collections.collected_at ASC, collections.id ASC").
		Scan(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GroupedByUser returns all ledger entries grouped per user, ranked by
// collection count descending, ties broken by username ascending. Items
// within each user follow collection order.
func (s *CollectionService) GroupedByUser() ([]entity.UserSummary, error) {
	db := database.GetDB()
	items := make([]entity.CollectionItem, 0)
	err := db.Model(&model.Collection{}).
		Select(itemColumns).
		Joins("JOIN users ON users.id = collections.user_id").
		Order("users.username ASC, collections.collected_at ASC, collections.id ASC").
		Scan(&items).
		Error
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	summaries := make([]entity.UserSummary, 0)
	for _, item := range items {
		i, ok := index[item.Username]
		if !ok {
			i = len(summaries)
			index[item.Username] = i
			summaries = append(summaries, entity.UserSummary{Username: item.Username})
		}
		summaries[i].Items = append(summaries[i].Items, item)
		summaries[i].TotalCount++
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].TotalCount != summaries[j].TotalCount {
			return summaries[i].TotalCount > summaries[j].TotalCount
		}
		return summaries[i].Username < summaries[j].Username
	})
	return summaries, nil
}

// Statistics derives the aggregate counters from the ledger: distinct users
// that collected anything, and total entries minus the configured intro
// location (which is not a real collectible).
func (s *CollectionService) Statistics() (*entity.Statistics, error) {
	db := database.GetDB()

	stats := &entity.Statistics{}
	err := db.Model(&model.Collection{}).
		Distinct("user_id").
		Count(&stats.TotalUsers).
		Error
	if err != nil {
		return nil, err
	}

	introLocation, err := s.settingService.GetIntroLocation()
	if err != nil {
		return nil, err
	}
	query := db.Model(&model.Collection{})
	if introLocation != "" {
		query = query.Where("location_id <> ?", introLocation)
	}
	err = query.Count(&stats.TotalCollections).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Clear wipes the ledger and all users. Irreversible; admin-gated at the
// transport layer.
func (s *CollectionService) Clear() error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Collection{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.User{}).Error
	})
}
