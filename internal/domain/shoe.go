package domain

// Shoe type: a single shoe or a matched pair.
const (
	ShoeTypeSingle = "SINGLE"
	ShoeTypePair   = "PAIR"
)

// Listing availability. A shoe leaves AVAILABLE when a transaction claims it
// and only returns there if that transaction is rejected.
const (
	ShoeAvailable   = "AVAILABLE"
	ShoePendingSale = "PENDING_SALE"
	ShoeSold        = "SOLD"
)

// Wear conditions accepted at listing time.
const (
	CondNew     = "NEW"
	CondLikeNew = "LIKE_NEW"
	CondGood    = "GOOD"
	CondFair    = "FAIR"
	CondWorn    = "WORN"
)

type Shoe struct {
	ID          string  `db:"id" json:"id"`
	SellerID    string  `db:"seller_id" json:"sellerId"`
	Type        string  `db:"type" json:"type"`
	Brand       string  `db:"brand" json:"brand"`
	Year        int     `db:"year" json:"year"`
	Color       string  `db:"color" json:"color"`
	Size        string  `db:"size" json:"size"`
	Condition   string  `db:"condition" json:"condition"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	ImagesJSON  string  `db:"images_json" json:"images"`
	Status      string  `db:"status" json:"status"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
}
