package repos

import (
	"strings"

	"littlekicks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type RatingRepo struct{ db *sqlx.DB }

func NewRatingRepo(db *sqlx.DB) *RatingRepo { return &RatingRepo{db: db} }

// Exists reports whether this rater already rated this transaction.
func (r *RatingRepo) Exists(transactionID, raterID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COUNT(*) FROM ratings WHERE transaction_id = ? AND rater_id = ?
	`, transactionID, raterID)
	return n > 0, err
}

// CreateFinalizing inserts the rating and performs the terminal transitions
// (transaction to COMPLETED, shoe to SOLD) in one database transaction.
// Returns duplicate=true when the (transaction_id, rater_id) uniqueness
// constraint rejected the insert.
func (r *RatingRepo) CreateFinalizing(rt domain.Rating, shoeID string) (duplicate bool, err error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO ratings(id, transaction_id, rater_id, rated_user_id, rating, comment, created_at)
	  VALUES(?, ?, ?, ?, ?, NULLIF(?,''), CURRENT_TIMESTAMP)
	`, rt.ID, rt.TransactionID, rt.RaterID, rt.RatedUserID, rt.Rating, rt.Comment); err != nil {
		if isUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}

	// Idempotent when the transaction is already COMPLETED.
	if _, err := setStatus(tx, `transactions`, rt.TransactionID, domain.TxnCompleted,
		[]string{domain.TxnDelivered, domain.TxnCompleted}); err != nil {
		return false, err
	}
	if _, err := setStatus(tx, `shoes`, shoeID, domain.ShoeSold,
		[]string{domain.ShoePendingSale, domain.ShoeSold}); err != nil {
		return false, err
	}

	return false, tx.Commit()
}

func (r *RatingRepo) Get(id string) (domain.Rating, error) {
	var rt domain.Rating
	err := r.db.Get(&rt, `
	  SELECT id, transaction_id, rater_id, rated_user_id, rating,
	         COALESCE(comment,'') AS comment, COALESCE(created_at,'') AS created_at
	  FROM ratings WHERE id = ?
	`, id)
	return rt, err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
