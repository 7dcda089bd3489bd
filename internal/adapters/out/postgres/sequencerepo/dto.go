// Package sequencerepo provides the postgres-backed sequence allocator behind
// shipment reference numbering. One row per counter key holds the last issued
// sequence value; rows are created lazily and never deleted.
package sequencerepo

// CounterDTO represents one named monotonic counter.
// The key combines a transport mode code and a calendar day, e.g. "RORO-250115".
type CounterDTO struct {
	Key      string `gorm:"type:varchar(32);primaryKey"`
	Sequence uint64 `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for counter rows.
// Overrides GORM's default naming convention to use "shipment_counters".
func (CounterDTO) TableName() string {
	return "shipment_counters"
}
