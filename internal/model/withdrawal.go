package model

import "time"

// WithdrawalRecord is the closed, historical counterpart of a
// ParkingSession (cold table). Records accumulate until the next CSV
// export drains the table.
type WithdrawalRecord struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID      int64     `gorm:"not null;index" json:"session_id"`
	PlateNumber    string    `gorm:"size:32;index;not null" json:"plate_number"`
	TariffClass    string    `gorm:"size:64;not null" json:"tariff_class"`
	TariffLabel    string    `gorm:"size:128;not null" json:"tariff_label"`
	DayRate        float64   `gorm:"not null" json:"day_rate"`
	NightRate      float64   `gorm:"not null" json:"night_rate"`
	AdvancePayment float64   `gorm:"not null" json:"advance_payment"`
	EnteredAt      time.Time `gorm:"not null" json:"entered_at"`
	ExitedAt       time.Time `gorm:"not null;index" json:"exited_at"`
	TotalFare      float64   `gorm:"not null" json:"total_fare"`
	AmountDue      float64   `gorm:"not null" json:"amount_due"`
	CreatedAt      time.Time `gorm:"not null" json:"-"`
}
