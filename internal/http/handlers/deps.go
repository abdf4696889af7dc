package handlers

import (
	"littlekicks/internal/config"
	"littlekicks/internal/repos"
	"littlekicks/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ShoeHandler         *ShoeHandler
	TransactionHandler  *TransactionHandler
	RatingHandler       *RatingHandler
	NotificationHandler *NotificationHandler
	PageHandler         *PageHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	shoeRepo := repos.NewShoeRepo(db)
	txnRepo := repos.NewTransactionRepo(db)
	ratingRepo := repos.NewRatingRepo(db)
	notifRepo := repos.NewNotificationRepo(db)

	notifSvc := services.NewNotificationService(notifRepo)
	listingSvc := services.NewListingService(shoeRepo)
	txnSvc := services.NewTransactionService(shoeRepo, txnRepo, notifSvc)
	ratingSvc := services.NewRatingService(txnRepo, shoeRepo, ratingRepo, notifSvc)

	return &Deps{
		ShoeHandler:         &ShoeHandler{Listings: listingSvc},
		TransactionHandler:  &TransactionHandler{Txns: txnSvc},
		RatingHandler:       &RatingHandler{Ratings: ratingSvc},
		NotificationHandler: &NotificationHandler{Notifs: notifSvc},
		PageHandler:         &PageHandler{Listings: listingSvc},
	}
}
