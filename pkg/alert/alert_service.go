package alert

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"ReliefStock-Backend/pkg/item"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AlertService interface {
		GenerateAlerts(ctx context.Context, thresholdDays int) (domain.ExpiryCheckResponse, error)
		GetAlerts(ctx context.Context, acknowledged *bool, page, limit int) ([]domain.AlertResponse, int64, error)
		GetAlertLogs(ctx context.Context, skip, limit int64) ([]*entities.AlertLog, int64, error)
		AcknowledgeAlert(ctx context.Context, id string) error
	}

	// Mailer delivers the critical-alert digest. A nil Mailer disables it.
	Mailer interface {
		Send(to, subject, body string) error
	}

	alertService struct {
		alertRepository    AlertRepository
		alertLogRepository AlertLogRepository
		itemRepository     item.ItemRepository
		mailer             Mailer
		adminEmail         string
		defaultThreshold   int
	}
)

func NewAlertService(
	alertRepository AlertRepository,
	alertLogRepository AlertLogRepository,
	itemRepository item.ItemRepository,
	mailer Mailer,
	adminEmail string,
	defaultThreshold int,
) AlertService {
	if defaultThreshold <= 0 {
		defaultThreshold = 30
	}
	return &alertService{
		alertRepository:    alertRepository,
		alertLogRepository: alertLogRepository,
		itemRepository:     itemRepository,
		mailer:             mailer,
		adminEmail:         adminEmail,
		defaultThreshold:   defaultThreshold,
	}
}

// GenerateAlerts scans in-stock items expiring within the threshold and
// creates at most one alert per item per calendar day. The relational write
// is authoritative; the document-store log write runs afterwards and its
// failure is only warned about, never propagated and never retried.
func (s *alertService) GenerateAlerts(ctx context.Context, thresholdDays int) (domain.ExpiryCheckResponse, error) {
	if thresholdDays < 0 {
		return domain.ExpiryCheckResponse{}, domain.ErrInvalidThreshold
	}
	if thresholdDays == 0 {
		thresholdDays = s.defaultThreshold
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	items, err := s.itemRepository.GetExpiringItems(ctx, today, today.AddDate(0, 0, thresholdDays))
	if err != nil {
		return domain.ExpiryCheckResponse{}, err
	}

	result := domain.ExpiryCheckResponse{
		CheckedItems: len(items),
		Timestamp:    now,
	}
	var criticalLines []string

	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}

		// Same-day dedup: the check handles the common case; the
		// idx_alerts_item_day unique index is the backstop when two scans
		// race past it, failing the second insert.
		exists, err := s.alertRepository.AlertExistsOn(ctx, it.ID.String(), today)
		if err != nil {
			log.Printf("expiry check: lookup failed for item %s: %v", it.ID, err)
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		days := item.DaysUntilExpiry(it.ExpiryDate, now)
		severity := SeverityFor(days)
		message := fmt.Sprintf(
			"Item '%s' expires in %d days. Current quantity: %d. Action required: prioritize for donation.",
			it.Name, days, it.Quantity,
		)

		newAlert := &entities.Alert{
			ID:        uuid.New(),
			ItemID:    it.ID,
			Message:   message,
			AlertDate: today,
			Severity:  severity,
		}

		if err := s.alertRepository.CreateAlert(ctx, newAlert); err != nil {
			log.Printf("expiry check: alert insert failed for item %s: %v", it.ID, err)
			continue
		}
		result.AlertsCreated++

		if severity == domain.SeverityCritical {
			criticalLines = append(criticalLines, message)
		}

		if err := s.alertLogRepository.InsertAlertLog(ctx, s.buildAlertLog(it, newAlert, days, now)); err != nil {
			log.Printf("expiry check: document-store log failed for alert %s: %v", newAlert.ID, err)
		} else {
			result.AlertsLogged++
		}
	}

	s.sendCriticalDigest(criticalLines)

	return result, nil
}

func (s *alertService) buildAlertLog(it *entities.Item, a *entities.Alert, days int, now time.Time) *entities.AlertLog {
	logEntry := &entities.AlertLog{
		AlertID:         a.ID.String(),
		ItemID:          it.ID.String(),
		ItemName:        it.Name,
		Message:         a.Message,
		AlertDate:       a.AlertDate.Format("2006-01-02"),
		Severity:        a.Severity,
		DaysUntilExpiry: days,
		Quantity:        it.Quantity,
		Category:        it.Category,
		DonorID:         it.DonorID.String(),
		ExpiryDate:      it.ExpiryDate.Format("2006-01-02"),
		Timestamp:       now.UTC(),
	}
	if it.Donor != nil {
		logEntry.DonorName = it.Donor.Name
	}
	return logEntry
}

func (s *alertService) sendCriticalDigest(lines []string) {
	if s.mailer == nil || s.adminEmail == "" || len(lines) == 0 {
		return
	}
	subject := fmt.Sprintf("%d items need immediate attention", len(lines))
	body := "<p>The expiry scan flagged the following items as CRITICAL:</p><ul><li>" +
		strings.Join(lines, "</li><li>") + "</li></ul>"
	if err := s.mailer.Send(s.adminEmail, subject, body); err != nil {
		log.Printf("expiry check: digest mail failed: %v", err)
	}
}

func (s *alertService) GetAlerts(ctx context.Context, acknowledged *bool, page, limit int) ([]domain.AlertResponse, int64, error) {
	alerts, count, err := s.alertRepository.GetAlerts(ctx, acknowledged, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.AlertResponse
	for _, a := range alerts {
		res := domain.AlertResponse{
			ID:             a.ID.String(),
			ItemID:         a.ItemID.String(),
			Message:        a.Message,
			AlertDate:      a.AlertDate,
			Severity:       a.Severity,
			IsAcknowledged: a.IsAcknowledged,
			CreatedAt:      a.CreatedAt,
		}
		if a.Item != nil {
			res.ItemName = a.Item.Name
			res.ItemQuantity = a.Item.Quantity
			if a.Item.Donor != nil {
				res.DonorName = a.Item.Donor.Name
			}
		}
		response = append(response, res)
	}

	return response, count, nil
}

func (s *alertService) GetAlertLogs(ctx context.Context, skip, limit int64) ([]*entities.AlertLog, int64, error) {
	logs, err := s.alertLogRepository.GetAlertLogs(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.alertLogRepository.CountAlertLogs(ctx)
	if err != nil {
		return nil, 0, err
	}
	return logs, count, nil
}

// AcknowledgeAlert flips the flag on the authoritative row, then mirrors it
// into the document store on a best-effort basis.
func (s *alertService) AcknowledgeAlert(ctx context.Context, id string) error {
	if _, err := s.alertRepository.GetAlertByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAlertNotFound
		}
		return err
	}

	if err := s.alertRepository.AcknowledgeAlert(ctx, id); err != nil {
		return err
	}

	if err := s.alertLogRepository.AcknowledgeAlertLogs(ctx, id); err != nil {
		log.Printf("acknowledge: document-store update failed for alert %s: %v", id, err)
	}
	return nil
}
