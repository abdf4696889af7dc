package repos

import (
	"littlekicks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TransactionRepo struct{ db *sqlx.DB }

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const txnCols = `
  id, shoe_id, seller_id,
  COALESCE(buyer_id,'') AS buyer_id,
  COALESCE(buyer_name,'') AS buyer_name,
  COALESCE(buyer_email,'') AS buyer_email,
  offer_price, final_price, service_fee, status,
  COALESCE(tracking_number,'') AS tracking_number,
  COALESCE(shipping_method,'') AS shipping_method,
  COALESCE(shipped_at,'') AS shipped_at,
  COALESCE(delivered_at,'') AS delivered_at,
  COALESCE(created_at,'') AS created_at`

// CreateClaiming inserts the transaction and claims its shoe out of AVAILABLE
// in one database transaction. Returns claimed=false (nothing written) when
// the shoe was no longer AVAILABLE, which is how a concurrent double-buy loses.
func (r *TransactionRepo) CreateClaiming(t domain.Transaction) (claimed bool, err error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := setStatus(tx, `shoes`, t.ShoeID, domain.ShoePendingSale, []string{domain.ShoeAvailable})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if _, err := tx.Exec(`
	  INSERT INTO transactions(
	    id, shoe_id, seller_id, buyer_id, buyer_name, buyer_email,
	    offer_price, final_price, service_fee, status, created_at)
	  VALUES(?, ?, ?, NULLIF(?,''), NULLIF(?,''), NULLIF(?,''), ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, t.ID, t.ShoeID, t.SellerID, t.BuyerID, t.BuyerName, t.BuyerEmail,
		t.OfferPrice, t.FinalPrice, t.ServiceFee, t.Status); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func (r *TransactionRepo) Get(id string) (domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.Get(&t, `SELECT `+txnCols+` FROM transactions WHERE id = ?`, id)
	return t, err
}

// SetStatus is the compare-and-swap transition for plain status flips.
func (r *TransactionRepo) SetStatus(id, to string, from ...string) (bool, error) {
	return setStatus(r.db, `transactions`, id, to, from)
}

// Cancel moves the transaction to CANCELLED and releases the shoe back to
// AVAILABLE together, so a rejected sale never leaves the listing stuck.
func (r *TransactionRepo) Cancel(id, shoeID string, from []string) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := setStatus(tx, `transactions`, id, domain.TxnCancelled, from)
	if err != nil || !ok {
		return false, err
	}
	if _, err := setStatus(tx, `shoes`, shoeID, domain.ShoeAvailable, []string{domain.ShoePendingSale}); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// MarkShipped records the shipment fields along with the SHIPPED flip.
func (r *TransactionRepo) MarkShipped(id, trackingNumber, shippingMethod string, from []string) (bool, error) {
	q, args, err := sqlx.In(`
	  UPDATE transactions
	  SET status = ?, tracking_number = NULLIF(?,''), shipping_method = NULLIF(?,''), shipped_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND status IN (?)
	`, domain.TxnShipped, trackingNumber, shippingMethod, id, from)
	if err != nil {
		return false, err
	}
	res, err := r.db.Exec(q, args...)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// MarkDelivered stamps delivered_at along with the DELIVERED flip.
func (r *TransactionRepo) MarkDelivered(id string, from []string) (bool, error) {
	q, args, err := sqlx.In(`
	  UPDATE transactions
	  SET status = ?, delivered_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND status IN (?)
	`, domain.TxnDelivered, id, from)
	if err != nil {
		return false, err
	}
	res, err := r.db.Exec(q, args...)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
