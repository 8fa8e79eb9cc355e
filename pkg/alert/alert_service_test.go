package alert

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeAlertRepository struct {
	alerts []*entities.Alert
}

func (f *fakeAlertRepository) CreateAlert(_ context.Context, alert *entities.Alert) error {
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeAlertRepository) AlertExistsOn(_ context.Context, itemID string, day time.Time) (bool, error) {
	for _, a := range f.alerts {
		if a.ItemID.String() == itemID && a.AlertDate.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertRepository) GetAlertByID(_ context.Context, id string) (*entities.Alert, error) {
	for _, a := range f.alerts {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, domain.ErrAlertNotFound
}

func (f *fakeAlertRepository) GetAlerts(_ context.Context, _ *bool, _, _ int) ([]*entities.Alert, int64, error) {
	return f.alerts, int64(len(f.alerts)), nil
}

func (f *fakeAlertRepository) AcknowledgeAlert(_ context.Context, id string) error {
	for _, a := range f.alerts {
		if a.ID.String() == id {
			a.IsAcknowledged = true
			return nil
		}
	}
	return domain.ErrAlertNotFound
}

type fakeAlertLogRepository struct {
	logs    []*entities.AlertLog
	failing bool
}

func (f *fakeAlertLogRepository) InsertAlertLog(_ context.Context, log *entities.AlertLog) error {
	if f.failing {
		return errors.New("document store unreachable")
	}
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeAlertLogRepository) GetAlertLogs(_ context.Context, _, _ int64) ([]*entities.AlertLog, error) {
	return f.logs, nil
}

func (f *fakeAlertLogRepository) CountAlertLogs(_ context.Context) (int64, error) {
	return int64(len(f.logs)), nil
}

func (f *fakeAlertLogRepository) AcknowledgeAlertLogs(_ context.Context, alertID string) error {
	if f.failing {
		return errors.New("document store unreachable")
	}
	for _, l := range f.logs {
		if l.AlertID == alertID {
			l.IsAcknowledged = true
		}
	}
	return nil
}

// fakeItemRepository only serves the expiry scan; the remaining methods are
// unused by the alert service.
type fakeItemRepository struct {
	items []*entities.Item
}

func (f *fakeItemRepository) GetExpiringItems(_ context.Context, from, to time.Time) ([]*entities.Item, error) {
	var out []*entities.Item
	for _, it := range f.items {
		if it.Quantity > 0 && !it.ExpiryDate.Before(from) && !it.ExpiryDate.After(to) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepository) AddItem(_ context.Context, _ *entities.Item) error { return nil }
func (f *fakeItemRepository) GetItemByID(_ context.Context, _ string) (*entities.Item, error) {
	return nil, nil
}
func (f *fakeItemRepository) UpdateItem(_ context.Context, _ *entities.Item) error { return nil }
func (f *fakeItemRepository) GetItems(_ context.Context, _, _ string, _, _ int) ([]*entities.Item, int64, error) {
	return nil, 0, nil
}
func (f *fakeItemRepository) GetExpiredItems(_ context.Context, _ time.Time) ([]*entities.Item, error) {
	return nil, nil
}
func (f *fakeItemRepository) CountDonationsForItem(_ context.Context, _ string) (int64, error) {
	return 0, nil
}
func (f *fakeItemRepository) GetDashboardStats(_ context.Context, _ time.Time) (map[string]int64, error) {
	return nil, nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(_, subject, _ string) error {
	f.sent = append(f.sent, subject)
	return nil
}

func itemExpiringIn(days, quantity int) *entities.Item {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &entities.Item{
		ID:         uuid.New(),
		Name:       "Rice",
		Quantity:   quantity,
		ExpiryDate: today.AddDate(0, 0, days),
		Category:   "Food",
		DonorID:    uuid.New(),
	}
}

func newTestService(items *fakeItemRepository, alerts *fakeAlertRepository, logs *fakeAlertLogRepository, mailer Mailer) AlertService {
	return NewAlertService(alerts, logs, items, mailer, "admin@example.org", 30)
}

func TestSeverityFor(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, domain.SeverityCritical},
		{3, domain.SeverityCritical},
		{4, domain.SeverityHigh},
		{7, domain.SeverityHigh},
		{8, domain.SeverityMedium},
		{14, domain.SeverityMedium},
		{15, domain.SeverityLow},
		{30, domain.SeverityLow},
	}

	for _, tc := range cases {
		if got := SeverityFor(tc.days); got != tc.want {
			t.Errorf("SeverityFor(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestGenerateAlerts_CriticalScenario(t *testing.T) {
	items := &fakeItemRepository{items: []*entities.Item{itemExpiringIn(2, 10)}}
	alerts := &fakeAlertRepository{}
	logs := &fakeAlertLogRepository{}

	svc := newTestService(items, alerts, logs, nil)

	res, err := svc.GenerateAlerts(context.Background(), 30)
	if err != nil {
		t.Fatalf("GenerateAlerts failed: %v", err)
	}
	if res.AlertsCreated != 1 {
		t.Fatalf("alerts created = %d, want 1", res.AlertsCreated)
	}
	if got := alerts.alerts[0].Severity; got != domain.SeverityCritical {
		t.Errorf("severity = %q, want CRITICAL", got)
	}
	if res.AlertsLogged != 1 {
		t.Errorf("alerts logged = %d, want 1", res.AlertsLogged)
	}
	if logs.logs[0].Quantity != 10 || logs.logs[0].Category != "Food" {
		t.Errorf("log document missing item snapshot: %+v", logs.logs[0])
	}

	// Re-running the scan on the same day must not duplicate the alert.
	res, err = svc.GenerateAlerts(context.Background(), 30)
	if err != nil {
		t.Fatalf("second GenerateAlerts failed: %v", err)
	}
	if res.AlertsCreated != 0 || res.Skipped != 1 {
		t.Errorf("rerun created %d, skipped %d; want 0 created, 1 skipped", res.AlertsCreated, res.Skipped)
	}
	if len(alerts.alerts) != 1 {
		t.Errorf("alert rows = %d, want 1", len(alerts.alerts))
	}
}

func TestGenerateAlerts_SeverityTiers(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{1, domain.SeverityCritical},
		{5, domain.SeverityHigh},
		{10, domain.SeverityMedium},
		{20, domain.SeverityLow},
	}

	for _, tc := range cases {
		items := &fakeItemRepository{items: []*entities.Item{itemExpiringIn(tc.days, 5)}}
		alerts := &fakeAlertRepository{}
		svc := newTestService(items, alerts, &fakeAlertLogRepository{}, nil)

		if _, err := svc.GenerateAlerts(context.Background(), 30); err != nil {
			t.Fatalf("GenerateAlerts(%d days) failed: %v", tc.days, err)
		}
		if got := alerts.alerts[0].Severity; got != tc.want {
			t.Errorf("item expiring in %d days: severity = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestGenerateAlerts_SkipsOutOfStockItems(t *testing.T) {
	items := &fakeItemRepository{items: []*entities.Item{itemExpiringIn(1, 0)}}
	alerts := &fakeAlertRepository{}

	svc := newTestService(items, alerts, &fakeAlertLogRepository{}, nil)

	res, err := svc.GenerateAlerts(context.Background(), 30)
	if err != nil {
		t.Fatalf("GenerateAlerts failed: %v", err)
	}
	if res.AlertsCreated != 0 || len(alerts.alerts) != 0 {
		t.Errorf("out-of-stock item produced an alert")
	}
}

func TestGenerateAlerts_DocumentWriteFailureIsBestEffort(t *testing.T) {
	items := &fakeItemRepository{items: []*entities.Item{itemExpiringIn(2, 10)}}
	alerts := &fakeAlertRepository{}
	logs := &fakeAlertLogRepository{failing: true}

	svc := newTestService(items, alerts, logs, nil)

	res, err := svc.GenerateAlerts(context.Background(), 30)
	if err != nil {
		t.Fatalf("GenerateAlerts must not fail on document-store errors: %v", err)
	}
	if res.AlertsCreated != 1 {
		t.Errorf("relational alert not created despite document failure")
	}
	if res.AlertsLogged != 0 {
		t.Errorf("alerts logged = %d, want 0", res.AlertsLogged)
	}
}

func TestGenerateAlerts_RejectsNegativeThreshold(t *testing.T) {
	svc := newTestService(&fakeItemRepository{}, &fakeAlertRepository{}, &fakeAlertLogRepository{}, nil)

	if _, err := svc.GenerateAlerts(context.Background(), -1); !errors.Is(err, domain.ErrInvalidThreshold) {
		t.Fatalf("expected ErrInvalidThreshold, got %v", err)
	}
}

func TestGenerateAlerts_SendsCriticalDigest(t *testing.T) {
	items := &fakeItemRepository{items: []*entities.Item{
		itemExpiringIn(1, 10),
		itemExpiringIn(20, 10),
	}}
	mailer := &fakeMailer{}

	svc := newTestService(items, &fakeAlertRepository{}, &fakeAlertLogRepository{}, mailer)

	if _, err := svc.GenerateAlerts(context.Background(), 30); err != nil {
		t.Fatalf("GenerateAlerts failed: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("digest mails sent = %d, want 1", len(mailer.sent))
	}
}

func TestAcknowledgeAlert_MirrorsIntoDocumentStore(t *testing.T) {
	items := &fakeItemRepository{items: []*entities.Item{itemExpiringIn(2, 10)}}
	alerts := &fakeAlertRepository{}
	logs := &fakeAlertLogRepository{}

	svc := newTestService(items, alerts, logs, nil)

	if _, err := svc.GenerateAlerts(context.Background(), 30); err != nil {
		t.Fatalf("GenerateAlerts failed: %v", err)
	}

	alertID := alerts.alerts[0].ID.String()
	if err := svc.AcknowledgeAlert(context.Background(), alertID); err != nil {
		t.Fatalf("AcknowledgeAlert failed: %v", err)
	}
	if !alerts.alerts[0].IsAcknowledged {
		t.Errorf("relational alert not acknowledged")
	}
	if !logs.logs[0].IsAcknowledged {
		t.Errorf("document log not acknowledged")
	}
}
