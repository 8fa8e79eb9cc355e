package alert

import (
	"ReliefStock-Backend/domain"
)

// SeverityFor maps days-until-expiry to the persisted alert severity written
// by the expiry scan. Display-side expiry status uses its own thresholds in
// pkg/item; the two tables are independent.
func SeverityFor(daysUntilExpiry int) string {
	switch {
	case daysUntilExpiry <= 3:
		return domain.SeverityCritical
	case daysUntilExpiry <= 7:
		return domain.SeverityHigh
	case daysUntilExpiry <= 14:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
