package repos

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// OpenDB connects to PostgreSQL for postgres:// DSNs and to SQLite for
// anything else, then makes sure the schema exists.
func OpenDB(dsn string) (*sqlx.DB, error) {
	driver := driverFor(dsn)
	if driver == "sqlite" && !isMemory(dsn) {
		dsn = withPragmas(dsn)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// one connection serializes writers; in-memory databases also need it
		// because every new connection would get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

func driverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// withPragmas adds a busy timeout and WAL journaling to a file SQLite DSN
// unless the caller already set pragmas of their own.
func withPragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// now is a fixed-width UTC timestamp so created_at sorts lexically.
func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z")
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sellers(
  id TEXT PRIMARY KEY,
  battle_id TEXT NOT NULL,
  auth_token TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_sellers_battle ON sellers(battle_id)`,

	`CREATE TABLE IF NOT EXISTS buyers(
  id TEXT PRIMARY KEY,
  battle_id TEXT NOT NULL,
  auth_token TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  created_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_buyers_battle ON buyers(battle_id)`,

	`CREATE TABLE IF NOT EXISTS images(
  id TEXT PRIMARY KEY,
  base64 TEXT NOT NULL,
  image_description TEXT,
  product_number TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_images_product_number ON images(product_number)`,

	`CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  battle_id TEXT NOT NULL,
  seller_id TEXT NOT NULL REFERENCES sellers(id),
  name TEXT NOT NULL,
  short_description TEXT NOT NULL,
  long_description TEXT NOT NULL,
  price_in_cent INTEGER NOT NULL CHECK (price_in_cent > 0),
  currency TEXT NOT NULL DEFAULT 'USD',
  bestseller BOOLEAN NOT NULL DEFAULT FALSE,
  ranking INTEGER,
  towel_variant TEXT NOT NULL CHECK (towel_variant IN ('budget','mid_tier','premium')),
  gsm INTEGER NOT NULL,
  width_inches INTEGER NOT NULL,
  length_inches INTEGER NOT NULL,
  material TEXT NOT NULL,
  wholesale_cost_cents INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_battle ON products(battle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_seller ON products(seller_id)`,

	`CREATE TABLE IF NOT EXISTS product_images(
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  image_id TEXT NOT NULL REFERENCES images(id),
  position INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (product_id, image_id)
)`,

	`CREATE TABLE IF NOT EXISTS purchases(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id),
  buyer_id TEXT NOT NULL REFERENCES buyers(id),
  battle_id TEXT NOT NULL,
  purchased_at INTEGER NOT NULL,
  round INTEGER NOT NULL,
  price_of_purchase INTEGER NOT NULL,
  wholesale_cost_at_purchase INTEGER NOT NULL,
  created_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_battle_round ON purchases(battle_id, round)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_product ON purchases(product_id)`,

	`CREATE TABLE IF NOT EXISTS metadata(
  key TEXT NOT NULL,
  battle_id TEXT NOT NULL,
  value TEXT NOT NULL,
  PRIMARY KEY (key, battle_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_metadata_battle ON metadata(battle_id)`,
}

func ensureSchema(db *sqlx.DB) error {
	if db.DriverName() == "sqlite" {
		if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
			return err
		}
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// 1x1 transparent PNG, stands in for real photos until a catalog is imported.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

// SeedImages inserts two placeholder images per towel category when the
// images table is empty. Safe to run on every startup.
func SeedImages(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM images`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	logrus.Info("[seed] inserting placeholder images")

	type seed struct{ id, desc, pn string }
	seeds := []seed{
		{"img-01-front", "Budget towel, folded, front view", "01"},
		{"img-01-detail", "Budget towel, fabric close-up", "01"},
		{"img-02-front", "Mid-tier towel, folded, front view", "02"},
		{"img-02-detail", "Mid-tier towel, fabric close-up", "02"},
		{"img-03-front", "Premium towel, folded, front view", "03"},
		{"img-03-detail", "Premium towel, fabric close-up", "03"},
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range seeds {
		if _, err := tx.Exec(tx.Rebind(`
			INSERT INTO images(id, base64, image_description, product_number)
			VALUES(?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`), s.id, placeholderPNG, s.desc, s.pn); err != nil {
			return err
		}
	}
	return tx.Commit()
}
