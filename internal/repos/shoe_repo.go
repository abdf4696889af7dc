package repos

import (
	"littlekicks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ShoeRepo struct{ db *sqlx.DB }

func NewShoeRepo(db *sqlx.DB) *ShoeRepo { return &ShoeRepo{db: db} }

const shoeCols = `
  id, seller_id, type, brand, year, color, size, condition, description, price,
  COALESCE(images_json,'') AS images_json, status, COALESCE(created_at,'') AS created_at`

func (r *ShoeRepo) Create(s domain.Shoe) error {
	_, err := r.db.Exec(`
	  INSERT INTO shoes(id, seller_id, type, brand, year, color, size, condition, description, price, images_json, status, created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, s.ID, s.SellerID, s.Type, s.Brand, s.Year, s.Color, s.Size, s.Condition, s.Description, s.Price, s.ImagesJSON, s.Status)
	return err
}

func (r *ShoeRepo) Get(id string) (domain.Shoe, error) {
	var s domain.Shoe
	err := r.db.Get(&s, `SELECT `+shoeCols+` FROM shoes WHERE id = ?`, id)
	return s, err
}

// List returns shoes filtered by optional type and status, newest first.
func (r *ShoeRepo) List(shoeType, status string) ([]domain.Shoe, error) {
	where := `status = ?`
	args := []any{status}
	if shoeType != "" {
		where += ` AND type = ?`
		args = append(args, shoeType)
	}

	out := []domain.Shoe{}
	err := r.db.Select(&out, `
	  SELECT `+shoeCols+`
	  FROM shoes
	  WHERE `+where+`
	  ORDER BY datetime(created_at) DESC, id
	`, args...)
	return out, err
}

// SetStatus flips status only when the shoe currently holds one of the
// expected statuses. Returns false when another request got there first.
func (r *ShoeRepo) SetStatus(id, to string, from ...string) (bool, error) {
	return setStatus(r.db, `shoes`, id, to, from)
}
