package models

import "time"

// TimeSlot is a bookable window. IsAvailable is the single source of truth
// for whether the slot can be offered; only the booking engine flips it.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date      time.Time `gorm:"type:date;uniqueIndex:idx_slot_date_start" json:"date"`
	StartTime string    `gorm:"size:5;uniqueIndex:idx_slot_date_start" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StartsAt combines the slot's date and start time in the given location.
func (s *TimeSlot) StartsAt(loc *time.Location) time.Time {
	t, _ := time.Parse("15:04", s.StartTime)
	return time.Date(
		s.Date.Year(), s.Date.Month(), s.Date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	)
}
