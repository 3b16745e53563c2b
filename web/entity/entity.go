// Package entity defines data structures shared by the web layer of quote-hunt.
package entity

import "time"

// Msg represents a standard API response with success status, message text,
// and optional data object.
type Msg struct {
	Success bool   `json:"success"` // Indicates if the operation was successful
	Msg     string `json:"msg"`     // Response message text
	Obj     any    `json:"obj"`     // Optional data object
}

// CollectionItem is a ledger entry as returned to clients, with the owning
// username joined in.
type CollectionItem struct {
	Id                 int64     `json:"id"`
	Username           string    `json:"username"`
	LocationId         string    `json:"locationId"`
	LocationName       string    `json:"locationName"`
	CollectibleId      string    `json:"collectibleId"`
	CollectibleTitle   string    `json:"collectibleTitle"`
	CollectibleContent string    `json:"collectibleContent"`
	CollectibleAuthor  string    `json:"collectibleAuthor"`
	Timestamp          time.Time `json:"timestamp"`
}

// CollectResult is the outcome of a record-collection call. A duplicate scan
// yields Created=false with no item; that is the expected no-op, not an error.
type CollectResult struct {
	Created bool            `json:"created"`
	Item    *CollectionItem `json:"item,omitempty"`
}

// Statistics are the admin aggregate counters derived from the ledger.
type Statistics struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalCollections int64 `json:"totalCollections"`
}

// UserSummary groups one user's ledger entries for the admin view.
type UserSummary struct {
	Username   string           `json:"username"`
	Items      []CollectionItem `json:"items"`
	TotalCount int              `json:"totalCount"`
}

// ServerStatus is the admin panel health snapshot.
type ServerStatus struct {
	Cpu float64 `json:"cpu"`
	Mem struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime          uint64 `json:"uptime"`
	DBSize          int64  `json:"dbSize"`
	CollectAttempts int64  `json:"collectAttempts"`
	Version         string `json:"version"`
}
