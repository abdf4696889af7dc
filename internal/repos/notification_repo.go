package repos

import (
	"littlekicks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type NotificationRepo struct{ db *sqlx.DB }

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo { return &NotificationRepo{db: db} }

func (r *NotificationRepo) Create(n domain.Notification) error {
	_, err := r.db.Exec(`
	  INSERT INTO notifications(id, user_id, transaction_id, type, title, message, read, created_at)
	  VALUES(?, ?, NULLIF(?,''), ?, ?, ?, 0, CURRENT_TIMESTAMP)
	`, n.ID, n.UserID, n.TransactionID, n.Type, n.Title, n.Message)
	return err
}

func (r *NotificationRepo) Get(id string) (domain.Notification, error) {
	var n domain.Notification
	err := r.db.Get(&n, `
	  SELECT id, user_id, COALESCE(transaction_id,'') AS transaction_id, type, title, message,
	         read, COALESCE(created_at,'') AS created_at
	  FROM notifications WHERE id = ?
	`, id)
	return n, err
}

// ListByUser returns a user's notifications, most recent first.
func (r *NotificationRepo) ListByUser(userID string) ([]domain.Notification, error) {
	out := []domain.Notification{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, COALESCE(transaction_id,'') AS transaction_id, type, title, message,
	         read, COALESCE(created_at,'') AS created_at
	  FROM notifications
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC, rowid DESC
	`, userID)
	return out, err
}

// MarkRead flips read for an already-read row too, so re-reads are idempotent.
func (r *NotificationRepo) MarkRead(id string) error {
	_, err := r.db.Exec(`UPDATE notifications SET read = 1 WHERE id = ?`, id)
	return err
}
