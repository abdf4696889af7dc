package services

import (
	"database/sql"
	"errors"

	"littlekicks/internal/apperr"
	"littlekicks/internal/domain"
	applog "littlekicks/internal/log"
	"littlekicks/internal/repos"

	"github.com/google/uuid"
)

type NotificationService struct {
	Notifs *repos.NotificationRepo
}

func NewNotificationService(notifs *repos.NotificationRepo) *NotificationService {
	return &NotificationService{Notifs: notifs}
}

// Emit appends a notification record. It is best-effort and informational:
// a failure is logged and swallowed so it can never undo the state transition
// that triggered it. Guest buyers have no inbox, so an empty userID is a no-op.
func (s *NotificationService) Emit(userID, transactionID, typ, title, message string) {
	if userID == "" {
		return
	}
	n := domain.Notification{
		ID:            uuid.NewString(),
		UserID:        userID,
		TransactionID: transactionID,
		Type:          typ,
		Title:         title,
		Message:       message,
	}
	if err := s.Notifs.Create(n); err != nil {
		applog.Warn("notification.emit.fail", err, map[string]any{
			"user_id": userID, "type": typ, "transaction_id": transactionID,
		})
	}
}

// ListForUser returns the caller's notifications, most recent first.
func (s *NotificationService) ListForUser(userID string) ([]domain.Notification, error) {
	return s.Notifs.ListByUser(userID)
}

// MarkRead flips read=true. Only the addressed user may do it; repeat calls
// are idempotent.
func (s *NotificationService) MarkRead(auth AuthContext, id string) error {
	n, err := s.Notifs.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("notification not found")
		}
		return err
	}
	if n.UserID != auth.UserID {
		return apperr.Forbidden("notification belongs to another user")
	}
	return s.Notifs.MarkRead(id)
}
