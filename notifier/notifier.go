package notifier

import (
	"context"
	"log"
	"time"

	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

// Dispatcher drains the notification outbox in the background. Rows are
// appended by the order workflows inside their own transactions; the
// dispatcher owns delivery and retries, so email infrastructure being
// down never fails a checkout or a status change. Operators watch the
// logs (and the attempts/last_error columns) for delivery problems.
type Dispatcher struct {
	DB          *gorm.DB
	Sender      Sender
	Interval    time.Duration
	MaxAttempts int
	BatchSize   int
}

func NewDispatcher(db *gorm.DB, sender Sender) *Dispatcher {
	return &Dispatcher{
		DB:          db,
		Sender:      sender,
		Interval:    15 * time.Second,
		MaxAttempts: 5,
		BatchSize:   25,
	}
}

// Run polls until the context is canceled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.DispatchPending()
		}
	}
}

// DispatchPending sends every unsent intent that still has attempts
// left. Exported so tests and one-shot callers can drive the outbox
// without the ticker.
func (d *Dispatcher) DispatchPending() {
	var intents []models.NotificationIntent
	if err := d.DB.Where("sent_at IS NULL AND attempts < ?", d.MaxAttempts).
		Order("created_at").
		Limit(d.BatchSize).
		Find(&intents).Error; err != nil {
		log.Printf("❌ Failed to load notification intents: %v", err)
		return
	}

	for _, intent := range intents {
		if err := d.dispatch(intent); err != nil {
			log.Printf("❌ Notification %d (%s) attempt %d failed: %v",
				intent.ID, intent.Kind, intent.Attempts+1, err)
			d.DB.Model(&models.NotificationIntent{}).
				Where("id = ?", intent.ID).
				Updates(map[string]interface{}{
					"attempts":   gorm.Expr("attempts + 1"),
					"last_error": err.Error(),
				})
			continue
		}

		now := time.Now()
		d.DB.Model(&models.NotificationIntent{}).
			Where("id = ?", intent.ID).
			Updates(map[string]interface{}{"sent_at": &now, "last_error": ""})
	}
}

func (d *Dispatcher) dispatch(intent models.NotificationIntent) error {
	var order models.Order
	if err := d.DB.Preload("Items").Preload("Items.Product").
		First(&order, intent.OrderID).Error; err != nil {
		return err
	}
	var user models.User
	if err := d.DB.First(&user, intent.UserID).Error; err != nil {
		return err
	}

	var (
		subject string
		body    []byte
		err     error
	)
	switch intent.Kind {
	case models.NotificationOrderConfirmation:
		subject, body, err = RenderOrderConfirmation(order, user)
	case models.NotificationStatusChange:
		subject, body, err = RenderStatusChange(order, user, intent.OldStatus, intent.NewStatus)
	default:
		log.Printf("⚠️ Unknown notification kind %q for intent %d", intent.Kind, intent.ID)
		return nil
	}
	if err != nil {
		return err
	}

	return d.Sender.Send(user.Email, subject, body)
}

// LogSender is the fallback when no SMTP configuration exists: messages
// are logged instead of delivered so checkout keeps working in dev.
type LogSender struct{}

func (LogSender) Send(to, subject string, _ []byte) error {
	log.Printf("📧 (log only) to=%s subject=%q", to, subject)
	return nil
}
