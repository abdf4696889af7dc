package domain

// Rating is a buyer's one-time review of a completed transaction.
// (transaction_id, rater_id) is unique in storage.
type Rating struct {
	ID            string `db:"id" json:"id"`
	TransactionID string `db:"transaction_id" json:"transactionId"`
	RaterID       string `db:"rater_id" json:"raterId"`
	RatedUserID   string `db:"rated_user_id" json:"ratedUserId"`
	Rating        int    `db:"rating" json:"rating"`
	Comment       string `db:"comment" json:"comment,omitempty"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
}
