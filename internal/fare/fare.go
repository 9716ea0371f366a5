package fare

import (
	"math"
	"time"

	"cochera-backend/internal/model"
)

// Minute-of-day thresholds for the multi-day branches. The entry-day
// charge tapers off over the early afternoon; the exit-day charge ramps
// up over the late morning.
const (
	entryHalfDayAfter = 12*60 + 30 // 12:30
	entryFreeAfter    = 15*60 + 30 // 15:30
	exitFreeBefore    = 10*60 + 30 // 10:30
	exitFullDayAfter  = 15*60 + 30 // 15:30
)

// Compute returns the fare owed for a stay from entry to exit at the
// given day/night rates. It is pure and total: an inverted or empty
// interval yields 0, never an error. Calendar-day and minute-of-day
// decisions use each timestamp's own location, so both arguments must
// carry the lot's local timezone.
//
// Same calendar day: under an hour is free, under five hours costs one
// less than the day rate (floored at 0), five hours or more costs the
// full day rate.
//
// Across days the fare is the sum of three parts: an entry-day charge
// (full day up to 12:30, half day until 15:30, free after), one night
// rate per midnight crossed plus a full day rate for every intervening
// day beyond the first night, and an exit-day charge (free before
// 10:30, day rate minus one until 15:30, full day after).
func Compute(entry, exit time.Time, dayRate, nightRate float64) float64 {
	if !exit.After(entry) {
		return 0
	}

	ey, em, ed := entry.Date()
	xy, xm, xd := exit.Date()
	if ey == xy && em == xm && ed == xd {
		hours := exit.Sub(entry).Hours()
		switch {
		case hours < 1:
			return 0
		case hours < 5:
			return round2(math.Max(0, dayRate-1))
		default:
			return round2(dayRate)
		}
	}

	var total float64

	entryMinute := entry.Hour()*60 + entry.Minute()
	switch {
	case entryMinute >= entryFreeAfter:
		// arrived too late to be charged for the entry day
	case entryMinute > entryHalfDayAfter:
		total += dayRate / 2
	default:
		total += dayRate
	}

	nights := midnightsBetween(entry, exit)
	total += float64(nights) * nightRate
	if nights > 1 {
		// every night beyond the first implies one intervening full day
		total += float64(nights-1) * dayRate
	}

	exitMinute := exit.Hour()*60 + exit.Minute()
	switch {
	case exitMinute < exitFreeBefore:
		// left too early to be charged for the exit day
	case exitMinute < exitFullDayAfter:
		total += math.Max(0, dayRate-1)
	default:
		total += dayRate
	}

	return round2(total)
}

// midnightsBetween counts the local-midnight boundaries crossed between
// the two timestamps, clamped to zero. Rounding the hour difference
// keeps the count stable across DST transitions.
func midnightsBetween(entry, exit time.Time) int {
	start := time.Date(entry.Year(), entry.Month(), entry.Day(), 0, 0, 0, 0, entry.Location())
	end := time.Date(exit.Year(), exit.Month(), exit.Day(), 0, 0, 0, 0, exit.Location())
	n := int(math.Round(end.Sub(start).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// Finalize closes a parking session at the given exit time, producing
// the withdrawal record the caller must persist before deleting the
// session. It never mutates the session.
func Finalize(s model.ParkingSession, exitedAt time.Time) model.WithdrawalRecord {
	total := Compute(s.EnteredAt, exitedAt, s.DayRate, s.NightRate)
	due := math.Max(0, round2(total-s.AdvancePayment))

	return model.WithdrawalRecord{
		SessionID:      s.ID,
		PlateNumber:    s.PlateNumber,
		TariffClass:    s.TariffClass,
		TariffLabel:    s.TariffLabel,
		DayRate:        s.DayRate,
		NightRate:      s.NightRate,
		AdvancePayment: s.AdvancePayment,
		EnteredAt:      s.EnteredAt,
		ExitedAt:       exitedAt,
		TotalFare:      total,
		AmountDue:      due,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
