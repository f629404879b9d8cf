package models

import "time"

// Company mirrors one entry of the DART corpCode directory. The worker
// refreshes this table; the live search path uses the in-memory directory.
type Company struct {
	ID        uint   `gorm:"primaryKey"`
	CorpCode  string `gorm:"uniqueIndex"`
	CorpName  string
	StockCode string
	CreatedAt time.Time
	UpdatedAt time.Time
}
