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

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createVehicleTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		registration_number TEXT NOT NULL UNIQUE,
		fuel_type TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createRFIDTagTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE rfid_tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vehicle_id INTEGER,
		tag_number TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createStationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE fuel_stations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		latitude TEXT NOT NULL,
		longitude TEXT NOT NULL,
		has_rfid BOOLEAN NOT NULL DEFAULT 0,
		operational_hours TEXT NOT NULL,
		rating TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE fuel_prices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		station_id INTEGER NOT NULL,
		fuel_type TEXT NOT NULL,
		price TEXT NOT NULL,
		effective_date DATETIME NOT NULL
	);`)
}

func createPaymentMethodTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_methods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		details TEXT NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE,
		balance NUMERIC NOT NULL DEFAULT 0,
		auto_reload_enabled BOOLEAN NOT NULL DEFAULT 0,
		auto_reload_threshold TEXT,
		auto_reload_amount TEXT,
		auto_reload_payment_method_id INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id TEXT NOT NULL UNIQUE,
		user_id INTEGER NOT NULL,
		vehicle_id INTEGER,
		station_id INTEGER,
		fuel_type TEXT NOT NULL,
		quantity TEXT NOT NULL,
		price_per_unit TEXT NOT NULL,
		total_amount TEXT NOT NULL,
		payment_method_id INTEGER,
		payment_type TEXT NOT NULL,
		status TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	);`)
}
