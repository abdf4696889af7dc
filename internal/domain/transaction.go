package domain

import "database/sql"

// Transaction lifecycle statuses.
const (
	TxnPending      = "PENDING"
	TxnCounteroffer = "COUNTEROFFER"
	TxnAccepted     = "ACCEPTED"
	TxnShipped      = "SHIPPED"
	TxnDelivered    = "DELIVERED"
	TxnCompleted    = "COMPLETED"
	TxnCancelled    = "CANCELLED"

	// Reserved for a future payment integration. No transition produces them.
	TxnPaymentPending = "PAYMENT_PENDING"
	TxnPaid           = "PAID"
)

// ServiceFee is the flat fee attached to every transaction.
const ServiceFee = 0.99

// Buyer-facing actions accepted by the transaction update endpoint.
const (
	ActionAccept          = "accept"
	ActionReject          = "reject"
	ActionShip            = "ship"
	ActionConfirmDelivery = "confirm_delivery"
)

// ActionSources maps each action to the statuses it may be applied from.
// Anything outside these sets is an out-of-order transition. COMPLETED and
// CANCELLED appear nowhere, so finished transactions are immutable.
var ActionSources = map[string][]string{
	ActionAccept:          {TxnPending, TxnCounteroffer},
	ActionReject:          {TxnPending, TxnCounteroffer},
	ActionShip:            {TxnPending, TxnCounteroffer, TxnAccepted},
	ActionConfirmDelivery: {TxnShipped},
}

// ValidAction reports whether s is a recognized transaction action.
func ValidAction(s string) bool {
	_, ok := ActionSources[s]
	return ok
}

type Transaction struct {
	ID             string          `db:"id" json:"id"`
	ShoeID         string          `db:"shoe_id" json:"shoeId"`
	SellerID       string          `db:"seller_id" json:"sellerId"`
	BuyerID        string          `db:"buyer_id" json:"buyerId,omitempty"`
	BuyerName      string          `db:"buyer_name" json:"buyerName,omitempty"`
	BuyerEmail     string          `db:"buyer_email" json:"buyerEmail,omitempty"`
	OfferPrice     sql.NullFloat64 `db:"offer_price" json:"-"`
	FinalPrice     float64         `db:"final_price" json:"finalPrice"`
	ServiceFee     float64         `db:"service_fee" json:"serviceFee"`
	Status         string          `db:"status" json:"status"`
	TrackingNumber string          `db:"tracking_number" json:"trackingNumber,omitempty"`
	ShippingMethod string          `db:"shipping_method" json:"shippingMethod,omitempty"`
	ShippedAt      string          `db:"shipped_at" json:"shippedAt,omitempty"`
	DeliveredAt    string          `db:"delivered_at" json:"deliveredAt,omitempty"`
	CreatedAt      string          `db:"created_at" json:"createdAt"`
}

// Buyer is the registered-or-guest variant behind the flattened buyer columns.
type Buyer interface {
	// Matches reports whether the given caller identity is this buyer.
	Matches(userID, email string) bool
}

type RegisteredBuyer struct{ UserID string }

func (b RegisteredBuyer) Matches(userID, _ string) bool {
	return userID != "" && userID == b.UserID
}

type GuestBuyer struct{ Name, Email string }

func (b GuestBuyer) Matches(_, email string) bool {
	return email != "" && email == b.Email
}

// Buyer returns the tagged buyer variant for this transaction. A transaction
// always has exactly one of buyer_id or the guest name/email pair populated.
func (t *Transaction) Buyer() Buyer {
	if t.BuyerID != "" {
		return RegisteredBuyer{UserID: t.BuyerID}
	}
	return GuestBuyer{Name: t.BuyerName, Email: t.BuyerEmail}
}

// IsBuyer reports whether the caller identity matches the transaction's buyer,
// by user id for registered buyers or by stored email for guests.
func (t *Transaction) IsBuyer(userID, email string) bool {
	return t.Buyer().Matches(userID, email)
}

func (t *Transaction) IsSeller(userID string) bool {
	return userID != "" && userID == t.SellerID
}

// Terminal reports whether the transaction can no longer change.
func (t *Transaction) Terminal() bool {
	return t.Status == TxnCompleted || t.Status == TxnCancelled
}
