package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUsersTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'MEMBER',
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		referral_code TEXT UNIQUE NOT NULL,
		sponsor_id TEXT,
		upline_id TEXT,
		rank TEXT,
		point_volume INTEGER NOT NULL DEFAULT 0,
		total_earnings INTEGER NOT NULL DEFAULT 0,
		kyc_verified INTEGER NOT NULL DEFAULT 0,
		bank_name TEXT,
		account_number TEXT,
		account_name TEXT,
		city TEXT,
		state TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createOrdersTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		amount INTEGER NOT NULL,
		points_earned INTEGER NOT NULL DEFAULT 0,
		self_retail INTEGER NOT NULL DEFAULT 0,
		payment_status TEXT NOT NULL DEFAULT 'PENDING',
		delivery_status TEXT NOT NULL DEFAULT 'PROCESSING',
		payment_proof_url TEXT,
		verified_by TEXT,
		verified_at DATETIME,
		bonuses_processed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createWalletTransactionsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallet_transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount INTEGER NOT NULL,
		description TEXT,
		reason TEXT,
		source_order_id TEXT,
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at DATETIME,
		UNIQUE (user_id, reason, source_order_id)
	);`)
}

func createProductsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price INTEGER NOT NULL,
		point_value INTEGER NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 0,
		sold INTEGER NOT NULL DEFAULT 0,
		image_url TEXT,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createReferralsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE referrals (
		id TEXT PRIMARY KEY,
		referrer_id TEXT NOT NULL,
		referred_id TEXT NOT NULL,
		level INTEGER NOT NULL,
		commission INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at DATETIME,
		UNIQUE (referrer_id, referred_id)
	);`)
}

func createRegistrationsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE registrations (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		amount INTEGER NOT NULL,
		payment_proof_url TEXT,
		status TEXT NOT NULL DEFAULT 'PENDING',
		verified_by TEXT,
		verified_at DATETIME,
		created_at DATETIME
	);`)
}

func createDSCCentersTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE dsc_centers (
		id TEXT PRIMARY KEY,
		center_number TEXT UNIQUE NOT NULL,
		operator_name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		credit_line INTEGER NOT NULL DEFAULT 0,
		product_sales INTEGER NOT NULL DEFAULT 0,
		registrations INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSupportTicketsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE support_tickets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		reply TEXT,
		replied_by TEXT,
		status TEXT NOT NULL DEFAULT 'OPEN',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPlanTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE compensation_settings (
		id INTEGER PRIMARY KEY,
		retail_profit_bps INTEGER NOT NULL,
		personal_purchase_bps INTEGER NOT NULL,
		sponsor_bonus_bps INTEGER NOT NULL,
		level_rates_bps TEXT NOT NULL,
		naira_per_point INTEGER NOT NULL,
		payout_cap_bps INTEGER NOT NULL,
		team_volume_rollup INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE ranks (
		name TEXT PRIMARY KEY,
		position INTEGER UNIQUE NOT NULL,
		threshold_pv INTEGER NOT NULL,
		achievement_bps INTEGER NOT NULL DEFAULT 0
	);`)
}
