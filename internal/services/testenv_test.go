package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"littlekicks/internal/domain"
	"littlekicks/internal/repos"
	"littlekicks/internal/services"
)

// Seeded demo accounts from repos.OpenDB.
const (
	sellerID    = "u-maria"
	sellerEmail = "maria@littlekicks.test"
	buyerID     = "u-sam"
	buyerEmail  = "sam@littlekicks.test"
)

type env struct {
	db       *sqlx.DB
	shoes    *repos.ShoeRepo
	txns     *repos.TransactionRepo
	ratings  *repos.RatingRepo
	notifs   *repos.NotificationRepo
	listings *services.ListingService
	txn      *services.TransactionService
	rating   *services.RatingService
	notif    *services.NotificationService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one connection so the in-memory DB is shared
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	e := &env{
		db:      db,
		shoes:   repos.NewShoeRepo(db),
		txns:    repos.NewTransactionRepo(db),
		ratings: repos.NewRatingRepo(db),
		notifs:  repos.NewNotificationRepo(db),
	}
	e.notif = services.NewNotificationService(e.notifs)
	e.listings = services.NewListingService(e.shoes)
	e.txn = services.NewTransactionService(e.shoes, e.txns, e.notif)
	e.rating = services.NewRatingService(e.txns, e.shoes, e.ratings, e.notif)
	return e
}

func seller() services.AuthContext {
	return services.AuthContext{UserID: sellerID, Email: sellerEmail}
}

func buyer() services.AuthContext {
	return services.AuthContext{UserID: buyerID, Email: buyerEmail}
}

// listShoe creates a fresh AVAILABLE listing owned by the demo seller.
func (e *env) listShoe(t *testing.T, price float64) domain.Shoe {
	t.Helper()
	shoe, err := e.listings.Create(seller(), services.NewListing{
		Type:        domain.ShoeTypePair,
		Brand:       "Nike",
		Year:        2023,
		Color:       "Blue",
		Size:        "10C",
		Condition:   domain.CondGood,
		Description: "Lightly worn velcro sneakers.",
		Price:       price,
	})
	if err != nil {
		t.Fatal(err)
	}
	return shoe
}

func floatPtr(f float64) *float64 { return &f }

// findNotification returns the newest notification of the given type for a
// user, failing the test when none exists.
func (e *env) findNotification(t *testing.T, userID, typ string) domain.Notification {
	t.Helper()
	out, err := e.notif.ListForUser(userID)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range out {
		if n.Type == typ {
			return n
		}
	}
	t.Fatalf("no %s notification for %s", typ, userID)
	return domain.Notification{}
}
