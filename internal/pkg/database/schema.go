package database

import (
	"context"
	"fmt"
)

// schema is applied at startup. There is no migration tooling; every
// statement is idempotent and additive.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS employees (
		ma_nhan_vien    TEXT PRIMARY KEY,
		ho_ten          TEXT NOT NULL,
		ngay_sinh       DATE,
		gioi_tinh       TEXT NOT NULL DEFAULT '',
		so_cccd         TEXT NOT NULL DEFAULT '',
		phong_ban       TEXT NOT NULL DEFAULT '',
		chuc_danh       TEXT NOT NULL DEFAULT '',
		ngay_bat_dau    DATE,
		ngay_ket_thuc   DATE,
		so_dien_thoai   TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		dia_chi         TEXT NOT NULL DEFAULT '',
		hinh_anh        TEXT NOT NULL DEFAULT '',
		nhan_vien_khoan BOOLEAN NOT NULL DEFAULT FALSE,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS attendance_records (
		id          TEXT PRIMARY KEY,
		date        DATE NOT NULL,
		worker_id   TEXT NOT NULL,
		worker_name TEXT NOT NULL DEFAULT '',
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		total_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance_records (date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_worker ON attendance_records (worker_id, date)`,

	`CREATE TABLE IF NOT EXISTS work_schedules (
		id              TEXT NOT NULL,
		week_number     INTEGER NOT NULL DEFAULT 0,
		week_start_date DATE PRIMARY KEY,
		week_end_date   DATE NOT NULL,
		days            JSONB NOT NULL DEFAULT '{}',
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS payroll_records (
		id                  TEXT PRIMARY KEY,
		ma_nhan_vien        TEXT NOT NULL,
		ho_ten              TEXT NOT NULL DEFAULT '',
		chuc_danh           TEXT NOT NULL DEFAULT '',
		period              TEXT NOT NULL,
		nhan_vien_khoan     BOOLEAN NOT NULL DEFAULT FALSE,
		luong_co_ban        NUMERIC(15,2) NOT NULL DEFAULT 0,
		phu_cap_ca_keo_dai  NUMERIC(15,2) NOT NULL DEFAULT 0,
		phu_cap_trach_nhiem NUMERIC(15,2) NOT NULL DEFAULT 0,
		phu_cap_quan_ly_ca  NUMERIC(15,2) NOT NULL DEFAULT 0,
		phu_cap_xang        NUMERIC(15,2) NOT NULL DEFAULT 0,
		phu_cap_dien_thoai  NUMERIC(15,2) NOT NULL DEFAULT 0,
		phu_cap_an_trua     NUMERIC(15,2) NOT NULL DEFAULT 0,
		tong_luong          NUMERIC(15,2) NOT NULL DEFAULT 0,
		bhxh                NUMERIC(15,2) NOT NULL DEFAULT 0,
		bhyt                NUMERIC(15,2) NOT NULL DEFAULT 0,
		bhtn                NUMERIC(15,2) NOT NULL DEFAULT 0,
		tong_trich_bh       NUMERIC(15,2) NOT NULL DEFAULT 0,
		thuc_linh           NUMERIC(15,2) NOT NULL DEFAULT 0,
		tong_gio_lam        DOUBLE PRECISION NOT NULL DEFAULT 0,
		don_gia_gio         NUMERIC(15,2) NOT NULL DEFAULT 0,
		tien_khoan          NUMERIC(15,2) NOT NULL DEFAULT 0,
		thuong              NUMERIC(15,2) NOT NULL DEFAULT 0,
		phu_cap             NUMERIC(15,2) NOT NULL DEFAULT 0,
		tong_tien_cong      NUMERIC(15,2) NOT NULL DEFAULT 0,
		thue_tncn           NUMERIC(15,2) NOT NULL DEFAULT 0,
		thuc_tra            NUMERIC(15,2) NOT NULL DEFAULT 0,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payroll_period ON payroll_records (period)`,

	`CREATE TABLE IF NOT EXISTS payroll_tombstones (
		id         TEXT PRIMARY KEY,
		period     TEXT NOT NULL,
		deleted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tombstone_period ON payroll_tombstones (period)`,

	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id         TEXT NOT NULL,
		book       TEXT NOT NULL,
		entry_date DATE NOT NULL,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (book, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_book_date ON ledger_entries (book, entry_date)`,

	`CREATE TABLE IF NOT EXISTS ledger_opening_balances (
		book         TEXT NOT NULL,
		period       TEXT NOT NULL,
		so_du_dau_ky NUMERIC(15,2) NOT NULL DEFAULT 0,
		payables     JSONB,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (book, period)
	)`,
}

// EnsureSchema creates any missing tables and indexes.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
