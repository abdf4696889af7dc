package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Demo data if the DB is empty (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'USER' CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Shoe listings
CREATE TABLE IF NOT EXISTS shoes(
  id TEXT PRIMARY KEY,
  seller_id TEXT NOT NULL REFERENCES users(id),
  type TEXT NOT NULL CHECK (type IN ('SINGLE','PAIR')),
  brand TEXT NOT NULL,
  year INTEGER NOT NULL,
  color TEXT NOT NULL,
  size TEXT NOT NULL,
  condition TEXT NOT NULL CHECK (condition IN ('NEW','LIKE_NEW','GOOD','FAIR','WORN')),
  description TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price > 0),
  images_json TEXT,
  status TEXT NOT NULL DEFAULT 'AVAILABLE' CHECK (status IN ('AVAILABLE','PENDING_SALE','SOLD')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_shoes_status     ON shoes(status);
CREATE INDEX IF NOT EXISTS idx_shoes_type       ON shoes(type);
CREATE INDEX IF NOT EXISTS idx_shoes_created_at ON shoes(created_at);

-- Transactions
CREATE TABLE IF NOT EXISTS transactions(
  id TEXT PRIMARY KEY,
  shoe_id TEXT NOT NULL REFERENCES shoes(id),
  seller_id TEXT NOT NULL,
  buyer_id TEXT NULL REFERENCES users(id),
  buyer_name TEXT,
  buyer_email TEXT,
  offer_price NUMERIC,
  final_price NUMERIC NOT NULL,
  service_fee NUMERIC NOT NULL,
  status TEXT NOT NULL,
  tracking_number TEXT,
  shipping_method TEXT,
  shipped_at TEXT,
  delivered_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_transactions_shoe   ON transactions(shoe_id);
CREATE INDEX IF NOT EXISTS idx_transactions_seller ON transactions(seller_id);
CREATE INDEX IF NOT EXISTS idx_transactions_buyer  ON transactions(buyer_id);

-- Ratings (one per buyer per transaction)
CREATE TABLE IF NOT EXISTS ratings(
  id TEXT PRIMARY KEY,
  transaction_id TEXT NOT NULL REFERENCES transactions(id),
  rater_id TEXT NOT NULL,
  rated_user_id TEXT NOT NULL,
  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  comment TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(transaction_id, rater_id)
);

-- Notifications (append-only; only 'read' is ever updated)
CREATE TABLE IF NOT EXISTS notifications(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  transaction_id TEXT,
  type TEXT NOT NULL,
  title TEXT NOT NULL,
  message TEXT NOT NULL,
  read INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures demo accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-maria", "maria@littlekicks.test", "Maria", "USER", "Passw0rd!"),
		mk("u-sam", "sam@littlekicks.test", "Sam", "USER", "Passw0rd!"),
		mk("u-admin", "admin@littlekicks.test", "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM shoes`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo shoe listings")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO shoes(id,seller_id,type,brand,year,color,size,condition,description,price,images_json) VALUES
	  ('shoe-velcro-01','u-maria','PAIR','Nike',2023,'Blue','10C','LIKE_NEW','Velcro sneakers, barely worn before the growth spurt.',24.99,'[]'),
	  ('shoe-rainboot-01','u-maria','PAIR','Crocs',2024,'Yellow','8C','GOOD','Rain boots with a small scuff on the left heel.',12.50,'[]'),
	  ('shoe-cleat-left','u-sam','SINGLE','Adidas',2022,'Black','13C','FAIR','Left soccer cleat, good as a spare.',6.00,'[]')`)

	return tx.Commit()
}
