package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"littlekicks/internal/domain"
	"littlekicks/internal/services"
)

func TestCreate_BuyAtAskingPrice(t *testing.T) {
	e := newEnv(t)
	shoe := e.listShoe(t, 50.00)

	txn, err := e.txn.Create(buyer(), services.NewTransaction{
		ShoeID:     shoe.ID,
		OfferPrice: floatPtr(50.00),
	})
	require.NoError(t, err)

	require.Equal(t, domain.TxnPending, txn.Status)
	require.False(t, txn.OfferPrice.Valid, "offer at asking price is not a counteroffer")
	require.Equal(t, 50.00, txn.FinalPrice)
	require.Equal(t, domain.ServiceFee, txn.ServiceFee)
	require.Equal(t, sellerID, txn.SellerID)
	require.Equal(t, buyerID, txn.BuyerID)

	got, err := e.shoes.Get(shoe.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ShoePendingSale, got.Status)

	n := e.findNotification(t, sellerID, domain.NotifSaleInitiated)
	require.Contains(t, n.Message, "Nike")
	require.Contains(t, n.Message, "$50.00")
	require.Equal(t, txn.ID, n.TransactionID)
}

func TestCreate_Counteroffer(t *testing.T) {
	e := newEnv(t)
	shoe := e.listShoe(t, 50.00)

	txn, err := e.txn.Create(buyer(), services.NewTransaction{
		ShoeID:     shoe.ID,
		OfferPrice: floatPtr(40.00),
	})
	require.NoError(t, err)

	require.Equal(t, domain.TxnCounteroffer, txn.Status)
	require.True(t, txn.OfferPrice.Valid)
	require.Equal(t, 40.00, txn.OfferPrice.Float64)
	require.Equal(t, 40.00, txn.FinalPrice)

	n := e.findNotification(t, sellerID, domain.NotifCounterofferReceived)
	require.Contains(t, n.Message, "$40.00")
	require.Contains(t, n.Message, "asking $50.00")
}

func TestReject_ReleasesListing(t *testing.T) {
	e := newEnv(t)
	shoe := e.listShoe(t, 50.00)

	txn, err := e.txn.Create(buyer(), services.NewTransaction{
		ShoeID:     shoe.ID,
		OfferPrice: floatPtr(40.00),
	})
	require.NoError(t, err)

	updated, err := e.txn.Apply(seller(), txn.ID, services.ActionInput{Action: domain.ActionReject})
	require.NoError(t, err)
	require.Equal(t, domain.TxnCancelled, updated.Status)

	got, err := e.shoes.Get(shoe.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ShoeAvailable, got.Status, "rejected sale returns the shoe to the shelf")
}

func TestShip_SetsTrackingAndNotifiesBuyer(t *testing.T) {
	e := newEnv(t)
	shoe := e.listShoe(t, 50.00)

	txn, err := e.txn.Create(buyer(), services.NewTransaction{
		ShoeID:     shoe.ID,
		OfferPrice: floatPtr(40.00),
	})
	require.NoError(t, err)

	_, err = e.txn.Apply(seller(), txn.ID, services.ActionInput{Action: domain.ActionAccept})
	require.NoError(t, err)

	accepted := e.findNotification(t, buyerID, domain.NotifOfferAccepted)
	require.Contains(t, accepted.Message, "Nike")

	updated, err := e.txn.Apply(seller(), txn.ID, services.ActionInput{
		Action:         domain.ActionShip,
		TrackingNumber: "1Z999",
		ShippingMethod: "ground",
	})
	require.NoError(t, err)
	require.Equal(t, domain.TxnShipped, updated.Status)
	require.Equal(t, "1Z999", updated.TrackingNumber)
	require.Equal(t, "ground", updated.ShippingMethod)
	require.NotEmpty(t, updated.ShippedAt)

	n := e.findNotification(t, buyerID, domain.NotifShipmentConfirmed)
	require.Contains(t, n.Message, "1Z999")
}

func TestDeliveryAndRating_FinalizeEverything(t *testing.T) {
	e := newEnv(t)
	shoe := e.listShoe(t, 50.00)

	txn, err := e.txn.Create(buyer(), services.NewTransaction{ShoeID: shoe.ID})
	require.NoError(t, err)

	_, err = e.txn.Apply(seller(), txn.ID, services.ActionInput{Action: domain.ActionAccept})
	require.NoError(t, err)
	_, err = e.txn.Apply(seller(), txn.ID, services.ActionInput{Action: domain.ActionShip, TrackingNumber: "1Z999"})
	require.NoError(t, err)

	delivered, err := e.txn.Apply(buyer(), txn.ID, services.ActionInput{Action: domain.ActionConfirmDelivery})
	require.NoError(t, err)
	require.Equal(t, domain.TxnDelivered, delivered.Status)
	require.NotEmpty(t, delivered.DeliveredAt)

	sn := e.findNotification(t, sellerID, domain.NotifDeliveryConfirmed)
	require.True(t, strings.Contains(sn.Message, "Nike"))

	rt, err := e.rating.Submit(buyer(), services.NewRating{
		TransactionID: txn.ID,
		Rating:        5,
		Comment:       "Great shoes, fast shipping.",
	})
	require.NoError(t, err)
	require.Equal(t, 5, rt.Rating)
	require.Equal(t, buyerID, rt.RaterID)
	require.Equal(t, sellerID, rt.RatedUserID)

	final, err := e.txn.Get(txn.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TxnCompleted, final.Status)

	got, err := e.shoes.Get(shoe.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ShoeSold, got.Status)

	rn := e.findNotification(t, sellerID, domain.NotifRatingReceived)
	require.Contains(t, rn.Message, "5-star")
}
