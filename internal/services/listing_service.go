package services

import (
	"database/sql"
	"errors"

	"littlekicks/internal/apperr"
	"littlekicks/internal/domain"
	"littlekicks/internal/repos"

	"github.com/google/uuid"
)

// ListingService owns the shoe listing lifecycle. The status column is only
// ever moved by transaction transitions; this service creates and reads.
type ListingService struct {
	Shoes *repos.ShoeRepo
}

func NewListingService(shoes *repos.ShoeRepo) *ListingService {
	return &ListingService{Shoes: shoes}
}

type NewListing struct {
	Type        string
	Brand       string
	Year        int
	Color       string
	Size        string
	Condition   string
	Description string
	Price       float64
	Images      string
}

func (s *ListingService) Create(auth AuthContext, in NewListing) (domain.Shoe, error) {
	if !auth.Authenticated() {
		return domain.Shoe{}, apperr.Unauthorized("sign in to list a shoe")
	}

	shoe := domain.Shoe{
		ID:          uuid.NewString(),
		SellerID:    auth.UserID,
		Type:        in.Type,
		Brand:       in.Brand,
		Year:        in.Year,
		Color:       in.Color,
		Size:        in.Size,
		Condition:   in.Condition,
		Description: in.Description,
		Price:       in.Price,
		ImagesJSON:  in.Images,
		Status:      domain.ShoeAvailable,
	}
	if err := s.Shoes.Create(shoe); err != nil {
		return domain.Shoe{}, err
	}
	return s.Shoes.Get(shoe.ID)
}

func (s *ListingService) Get(id string) (domain.Shoe, error) {
	shoe, err := s.Shoes.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Shoe{}, apperr.NotFound("shoe not found")
	}
	return shoe, err
}

// List filters by optional type and status; the default view is what's for sale.
func (s *ListingService) List(shoeType, status string) ([]domain.Shoe, error) {
	if status == "" {
		status = domain.ShoeAvailable
	}
	return s.Shoes.List(shoeType, status)
}
