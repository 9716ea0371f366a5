package model

import "time"

// ParkingSession represents an active, unmetered stay (hot table).
// Rates are snapshotted from the catalog at entry time so that later
// catalog edits never change an open session's price.
type ParkingSession struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	PlateNumber    string    `gorm:"size:32;index;not null" json:"plate_number"`
	TariffClass    string    `gorm:"size:64;not null" json:"tariff_class"`
	TariffLabel    string    `gorm:"size:128;not null" json:"tariff_label"`
	DayRate        float64   `gorm:"not null" json:"day_rate"`
	NightRate      float64   `gorm:"not null" json:"night_rate"`
	AdvancePayment float64   `gorm:"not null;default:0" json:"advance_payment"`
	EnteredAt      time.Time `gorm:"not null;index" json:"entered_at"`
	CreatedAt      time.Time `gorm:"not null" json:"-"`
}
