package services

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"littlekicks/internal/apperr"
	"littlekicks/internal/domain"
	"littlekicks/internal/repos"

	"github.com/google/uuid"
)

// TransactionService drives the negotiation/fulfillment state machine and
// the listing status flips that ride along with it. Every transition is a
// conditional update in the repo layer, so concurrent requests on the same
// record cannot both win.
type TransactionService struct {
	Shoes  *repos.ShoeRepo
	Txns   *repos.TransactionRepo
	Notifs *NotificationService
}

func NewTransactionService(shoes *repos.ShoeRepo, txns *repos.TransactionRepo, notifs *NotificationService) *TransactionService {
	return &TransactionService{Shoes: shoes, Txns: txns, Notifs: notifs}
}

type NewTransaction struct {
	ShoeID     string
	OfferPrice *float64
	GuestName  string
	GuestEmail string
}

// Create starts a purchase: it claims the shoe out of AVAILABLE and inserts
// the transaction in one step, then tells the seller.
func (s *TransactionService) Create(auth AuthContext, in NewTransaction) (domain.Transaction, error) {
	shoe, err := s.Shoes.Get(in.ShoeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, apperr.NotFound("shoe not found")
		}
		return domain.Transaction{}, err
	}
	if shoe.Status != domain.ShoeAvailable {
		return domain.Transaction{}, apperr.InvalidState("shoe is no longer available")
	}
	if auth.UserID == shoe.SellerID {
		// The purchase surface answers 400 here, not 403.
		return domain.Transaction{}, apperr.WithStatus(
			apperr.Forbidden("you cannot buy your own shoe"), http.StatusBadRequest)
	}
	if !auth.Authenticated() && (in.GuestName == "" || in.GuestEmail == "") {
		return domain.Transaction{}, apperr.Validation("guest buyers must provide name and email")
	}

	isCounteroffer := in.OfferPrice != nil && *in.OfferPrice != shoe.Price
	finalPrice := shoe.Price
	if in.OfferPrice != nil {
		finalPrice = *in.OfferPrice
	}

	t := domain.Transaction{
		ID:         uuid.NewString(),
		ShoeID:     shoe.ID,
		SellerID:   shoe.SellerID,
		FinalPrice: finalPrice,
		ServiceFee: domain.ServiceFee,
		Status:     domain.TxnPending,
	}
	if auth.Authenticated() {
		t.BuyerID = auth.UserID
	} else {
		t.BuyerName = in.GuestName
		t.BuyerEmail = in.GuestEmail
	}
	if isCounteroffer {
		t.Status = domain.TxnCounteroffer
		t.OfferPrice = sql.NullFloat64{Float64: *in.OfferPrice, Valid: true}
	}

	claimed, err := s.Txns.CreateClaiming(t)
	if err != nil {
		return domain.Transaction{}, err
	}
	if !claimed {
		// Lost the race: someone else flipped the shoe first.
		return domain.Transaction{}, apperr.InvalidState("shoe is no longer available")
	}

	if isCounteroffer {
		s.Notifs.Emit(shoe.SellerID, t.ID, domain.NotifCounterofferReceived, "Counteroffer Received",
			fmt.Sprintf("Buyer offered $%.2f for your %s shoe (asking $%.2f)", *in.OfferPrice, shoe.Brand, shoe.Price))
	} else {
		s.Notifs.Emit(shoe.SellerID, t.ID, domain.NotifSaleInitiated, "New Sale Request",
			fmt.Sprintf("Buyer accepted your asking price of $%.2f for your %s shoe", shoe.Price, shoe.Brand))
	}

	return s.Txns.Get(t.ID)
}

func (s *TransactionService) Get(id string) (domain.Transaction, error) {
	t, err := s.Txns.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Transaction{}, apperr.NotFound("transaction not found")
	}
	return t, err
}

type ActionInput struct {
	Action         string
	TrackingNumber string
	ShippingMethod string
}

// Apply runs one of the four lifecycle actions. Authorization and action
// dispatch happen before any write; the write itself is a compare-and-swap
// against the allowed source statuses, so out-of-order or raced actions fail
// with InvalidState and mutate nothing.
func (s *TransactionService) Apply(auth AuthContext, id string, in ActionInput) (domain.Transaction, error) {
	t, err := s.Txns.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, apperr.NotFound("transaction not found")
		}
		return domain.Transaction{}, err
	}
	if !domain.ValidAction(in.Action) {
		return domain.Transaction{}, apperr.Validation("invalid action")
	}

	switch in.Action {
	case domain.ActionAccept, domain.ActionReject, domain.ActionShip:
		if !t.IsSeller(auth.UserID) {
			return domain.Transaction{}, apperr.Forbidden("only the seller can " + in.Action)
		}
	case domain.ActionConfirmDelivery:
		if !t.IsBuyer(auth.UserID, auth.Email) {
			return domain.Transaction{}, apperr.Forbidden("only the buyer can confirm delivery")
		}
	}

	sources := domain.ActionSources[in.Action]
	var ok bool
	switch in.Action {
	case domain.ActionAccept:
		ok, err = s.Txns.SetStatus(id, domain.TxnAccepted, sources...)
	case domain.ActionReject:
		ok, err = s.Txns.Cancel(id, t.ShoeID, sources)
	case domain.ActionShip:
		ok, err = s.Txns.MarkShipped(id, in.TrackingNumber, in.ShippingMethod, sources)
	case domain.ActionConfirmDelivery:
		ok, err = s.Txns.MarkDelivered(id, sources)
	}
	if err != nil {
		return domain.Transaction{}, err
	}
	if !ok {
		return domain.Transaction{}, apperr.InvalidState(
			fmt.Sprintf("cannot %s a %s transaction", in.Action, t.Status))
	}

	updated, err := s.Txns.Get(id)
	if err != nil {
		return domain.Transaction{}, err
	}

	// The transition is committed; notifications ride behind it best-effort.
	shoe, serr := s.Shoes.Get(t.ShoeID)
	brand := shoe.Brand
	if serr != nil {
		brand = "shoe"
	}
	switch in.Action {
	case domain.ActionAccept:
		s.Notifs.Emit(t.BuyerID, t.ID, domain.NotifOfferAccepted, "Offer Accepted!",
			fmt.Sprintf("The seller accepted your offer for %s", brand))
	case domain.ActionShip:
		msg := fmt.Sprintf("Your %s has been shipped", brand)
		if updated.TrackingNumber != "" {
			msg += " - Tracking: " + updated.TrackingNumber
		}
		s.Notifs.Emit(t.BuyerID, t.ID, domain.NotifShipmentConfirmed, "Order Shipped!", msg)
	case domain.ActionConfirmDelivery:
		s.Notifs.Emit(t.SellerID, t.ID, domain.NotifDeliveryConfirmed, "Delivery Confirmed",
			fmt.Sprintf("Buyer confirmed delivery of %s", brand))
	}

	return updated, nil
}
