package model

import "time"

// User is a registered hunt participant. Usernames are case-sensitive and
// unique; RegisteredAt is set on first registration and never changed.
type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	RegisteredAt time.Time `json:"registeredAt" gorm:"not null"`
}

// Collection is one collected quote for one (user, location) pair. The
// composite unique index is what guarantees at most one entry per pair, even
// under concurrent inserts. Catalog text is denormalized so stored entries
// survive later catalog edits.
type Collection struct {
	Id                 int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId             int       `json:"-" gorm:"uniqueIndex:idx_user_location;not null"`
	User               User      `json:"-" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	LocationId         string    `json:"locationId" gorm:"uniqueIndex:idx_user_location;not null"`
	LocationName       string    `json:"locationName"`
	CollectibleId      string    `json:"collectibleId"`
	CollectibleTitle   string    `json:"collectibleTitle"`
	CollectibleContent string    `json:"collectibleContent"`
	CollectibleAuthor  string    `json:"collectibleAuthor"`
	CollectedAt        time.Time `json:"collectedAt" gorm:"not null;index"`
}

// Setting is a key/value runtime setting row.
type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
