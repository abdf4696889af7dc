package domain

// Notification types emitted by lifecycle transitions.
const (
	NotifSaleInitiated        = "SALE_INITIATED"
	NotifCounterofferReceived = "COUNTEROFFER_RECEIVED"
	NotifOfferAccepted        = "OFFER_ACCEPTED"
	NotifShipmentConfirmed    = "SHIPMENT_CONFIRMED"
	NotifDeliveryConfirmed    = "DELIVERY_CONFIRMED"
	NotifRatingReceived       = "RATING_RECEIVED"
)

// Notification is an append-only inbox record; only Read ever changes.
type Notification struct {
	ID            string `db:"id" json:"id"`
	UserID        string `db:"user_id" json:"userId"`
	TransactionID string `db:"transaction_id" json:"transactionId,omitempty"`
	Type          string `db:"type" json:"type"`
	Title         string `db:"title" json:"title"`
	Message       string `db:"message" json:"message"`
	Read          bool   `db:"read" json:"read"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
}
