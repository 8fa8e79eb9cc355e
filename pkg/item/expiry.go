package item

import (
	"ReliefStock-Backend/domain"
	"time"
)

// DaysUntilExpiry counts whole calendar days between today and the expiry
// date, ignoring the time-of-day component of both.
func DaysUntilExpiry(expiryDate, today time.Time) int {
	expiry := truncateToDay(expiryDate)
	now := truncateToDay(today)
	return int(expiry.Sub(now).Hours() / 24)
}

// ExpiryStatusFor derives the display status shown on item screens. These
// thresholds are intentionally different from the alert severity tiers used
// by the expiry scan; the two tables must not be merged.
func ExpiryStatusFor(daysUntilExpiry int) string {
	switch {
	case daysUntilExpiry < 0:
		return domain.ExpiryStatusExpired
	case daysUntilExpiry <= 7:
		return domain.ExpiryStatusCritical
	case daysUntilExpiry <= 30:
		return domain.ExpiryStatusWarning
	default:
		return domain.ExpiryStatusSafe
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
