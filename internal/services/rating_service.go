package services

import (
	"database/sql"
	"errors"
	"fmt"

	"littlekicks/internal/apperr"
	"littlekicks/internal/domain"
	"littlekicks/internal/repos"

	"github.com/google/uuid"
)

// RatingService records the one-time buyer rating and performs the terminal
// transitions: transaction to COMPLETED, shoe to SOLD.
type RatingService struct {
	Txns    *repos.TransactionRepo
	Shoes   *repos.ShoeRepo
	Ratings *repos.RatingRepo
	Notifs  *NotificationService
}

func NewRatingService(txns *repos.TransactionRepo, shoes *repos.ShoeRepo, ratings *repos.RatingRepo, notifs *NotificationService) *RatingService {
	return &RatingService{Txns: txns, Shoes: shoes, Ratings: ratings, Notifs: notifs}
}

type NewRating struct {
	TransactionID string
	Rating        int
	Comment       string
}

func (s *RatingService) Submit(auth AuthContext, in NewRating) (domain.Rating, error) {
	t, err := s.Txns.Get(in.TransactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Rating{}, apperr.NotFound("transaction not found")
		}
		return domain.Rating{}, err
	}

	// Rating requires an account: the rater id keys the uniqueness constraint.
	// A guest buyer who registered with the same email still matches.
	if !auth.Authenticated() || !t.IsBuyer(auth.UserID, auth.Email) {
		return domain.Rating{}, apperr.Forbidden("only buyers can rate transactions")
	}
	if t.Status != domain.TxnDelivered && t.Status != domain.TxnCompleted {
		return domain.Rating{}, apperr.InvalidState("transaction must be delivered before rating")
	}
	if exists, err := s.Ratings.Exists(in.TransactionID, auth.UserID); err != nil {
		return domain.Rating{}, err
	} else if exists {
		return domain.Rating{}, apperr.Conflict("you have already rated this transaction")
	}

	rt := domain.Rating{
		ID:            uuid.NewString(),
		TransactionID: in.TransactionID,
		RaterID:       auth.UserID,
		RatedUserID:   t.SellerID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}
	duplicate, err := s.Ratings.CreateFinalizing(rt, t.ShoeID)
	if err != nil {
		return domain.Rating{}, err
	}
	if duplicate {
		return domain.Rating{}, apperr.Conflict("you have already rated this transaction")
	}

	brand := "shoe"
	if shoe, err := s.Shoes.Get(t.ShoeID); err == nil {
		brand = shoe.Brand
	}
	s.Notifs.Emit(t.SellerID, t.ID, domain.NotifRatingReceived, "New Rating Received",
		fmt.Sprintf("You received a %d-star rating for %s", in.Rating, brand))

	return s.Ratings.Get(rt.ID)
}
