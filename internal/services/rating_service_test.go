package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"littlekicks/internal/apperr"
	"littlekicks/internal/domain"
	"littlekicks/internal/services"
)

// deliver walks a fresh transaction to DELIVERED.
func deliver(t *testing.T, e *env, buyerAuth services.AuthContext, guest *services.NewTransaction) domain.Transaction {
	t.Helper()
	shoe := e.listShoe(t, 50.00)

	in := services.NewTransaction{ShoeID: shoe.ID}
	if guest != nil {
		in.GuestName = guest.GuestName
		in.GuestEmail = guest.GuestEmail
	}
	txn, err := e.txn.Create(buyerAuth, in)
	require.NoError(t, err)

	_, err = e.txn.Apply(seller(), txn.ID, services.ActionInput{Action: domain.ActionShip})
	require.NoError(t, err)
	out, err := e.txn.Apply(buyerAuth, txn.ID, services.ActionInput{Action: domain.ActionConfirmDelivery})
	require.NoError(t, err)
	return out
}

func TestSubmit_RequiresBuyer(t *testing.T) {
	e := newEnv(t)
	txn := deliver(t, e, buyer(), nil)

	_, err := e.rating.Submit(seller(), services.NewRating{TransactionID: txn.ID, Rating: 5})
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = e.rating.Submit(services.AuthContext{}, services.NewRating{TransactionID: txn.ID, Rating: 5})
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestSubmit_RequiresDeliveredTransaction(t *testing.T) {
	e := newEnv(t)
	shoe := e.listShoe(t, 50.00)
	txn, err := e.txn.Create(buyer(), services.NewTransaction{ShoeID: shoe.ID})
	require.NoError(t, err)

	_, err = e.rating.Submit(buyer(), services.NewRating{TransactionID: txn.ID, Rating: 4})
	require.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestSubmit_MissingTransaction(t *testing.T) {
	e := newEnv(t)
	_, err := e.rating.Submit(buyer(), services.NewRating{TransactionID: "nope", Rating: 4})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmit_DuplicateRatingConflicts(t *testing.T) {
	e := newEnv(t)
	txn := deliver(t, e, buyer(), nil)

	_, err := e.rating.Submit(buyer(), services.NewRating{TransactionID: txn.ID, Rating: 5})
	require.NoError(t, err)

	_, err = e.rating.Submit(buyer(), services.NewRating{TransactionID: txn.ID, Rating: 1})
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Rating again must not have downgraded anything.
	final, err := e.txn.Get(txn.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TxnCompleted, final.Status)
}

func TestSubmit_SecondRatingAfterCompletionStillConflicts(t *testing.T) {
	e := newEnv(t)
	txn := deliver(t, e, buyer(), nil)

	_, err := e.rating.Submit(buyer(), services.NewRating{TransactionID: txn.ID, Rating: 5})
	require.NoError(t, err)

	// DELIVERED and COMPLETED are both rateable states; only the uniqueness
	// constraint stops a repeat from the same rater.
	_, err = e.rating.Submit(buyer(), services.NewRating{TransactionID: txn.ID, Rating: 3})
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestSubmit_GuestWhoRegisteredMatchesByEmail(t *testing.T) {
	e := newEnv(t)

	guestAuth := services.AuthContext{Email: "pat@example.com"}
	txn := deliver(t, e, guestAuth, &services.NewTransaction{GuestName: "Pat", GuestEmail: "pat@example.com"})

	// Pat registers afterwards; the new account's email still matches the
	// stored guest email, so the rating is accepted.
	registered := services.AuthContext{UserID: "u-pat", Email: "pat@example.com"}
	rt, err := e.rating.Submit(registered, services.NewRating{TransactionID: txn.ID, Rating: 4})
	require.NoError(t, err)
	require.Equal(t, "u-pat", rt.RaterID)
	require.Equal(t, sellerID, rt.RatedUserID)
}
