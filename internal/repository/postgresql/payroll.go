package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
	"github.com/taphoa39/books-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, ma_nhan_vien, ho_ten, chuc_danh, period, nhan_vien_khoan,
	luong_co_ban, phu_cap_ca_keo_dai, phu_cap_trach_nhiem, phu_cap_quan_ly_ca,
	phu_cap_xang, phu_cap_dien_thoai, phu_cap_an_trua,
	tong_luong, bhxh, bhyt, bhtn, tong_trich_bh, thuc_linh,
	tong_gio_lam, don_gia_gio, tien_khoan, thuong, phu_cap,
	tong_tien_cong, thue_tncn, thuc_tra,
	created_at, updated_at
`

const payrollUpsert = `
	INSERT INTO payroll_records (
		id, ma_nhan_vien, ho_ten, chuc_danh, period, nhan_vien_khoan,
		luong_co_ban, phu_cap_ca_keo_dai, phu_cap_trach_nhiem, phu_cap_quan_ly_ca,
		phu_cap_xang, phu_cap_dien_thoai, phu_cap_an_trua,
		tong_luong, bhxh, bhyt, bhtn, tong_trich_bh, thuc_linh,
		tong_gio_lam, don_gia_gio, tien_khoan, thuong, phu_cap,
		tong_tien_cong, thue_tncn, thuc_tra
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
	)
	ON CONFLICT (id) DO UPDATE SET
		ho_ten = EXCLUDED.ho_ten,
		chuc_danh = EXCLUDED.chuc_danh,
		nhan_vien_khoan = EXCLUDED.nhan_vien_khoan,
		luong_co_ban = EXCLUDED.luong_co_ban,
		phu_cap_ca_keo_dai = EXCLUDED.phu_cap_ca_keo_dai,
		phu_cap_trach_nhiem = EXCLUDED.phu_cap_trach_nhiem,
		phu_cap_quan_ly_ca = EXCLUDED.phu_cap_quan_ly_ca,
		phu_cap_xang = EXCLUDED.phu_cap_xang,
		phu_cap_dien_thoai = EXCLUDED.phu_cap_dien_thoai,
		phu_cap_an_trua = EXCLUDED.phu_cap_an_trua,
		tong_luong = EXCLUDED.tong_luong,
		bhxh = EXCLUDED.bhxh,
		bhyt = EXCLUDED.bhyt,
		bhtn = EXCLUDED.bhtn,
		tong_trich_bh = EXCLUDED.tong_trich_bh,
		thuc_linh = EXCLUDED.thuc_linh,
		tong_gio_lam = EXCLUDED.tong_gio_lam,
		don_gia_gio = EXCLUDED.don_gia_gio,
		tien_khoan = EXCLUDED.tien_khoan,
		thuong = EXCLUDED.thuong,
		phu_cap = EXCLUDED.phu_cap,
		tong_tien_cong = EXCLUDED.tong_tien_cong,
		thue_tncn = EXCLUDED.thue_tncn,
		thuc_tra = EXCLUDED.thuc_tra,
		updated_at = NOW()
`

func payrollArgs(rec payroll.Record) []interface{} {
	return []interface{}{
		rec.ID, rec.MaNhanVien, rec.HoTen, rec.ChucDanh, rec.Period, rec.NhanVienKhoan,
		rec.LuongCoBan, rec.PhuCapCaKeoDai, rec.PhuCapTrachNhiem, rec.PhuCapQuanLyCa,
		rec.PhuCapXang, rec.PhuCapDienThoai, rec.PhuCapAnTrua,
		rec.TongLuong, rec.BHXH, rec.BHYT, rec.BHTN, rec.TongTrichBH, rec.ThucLinh,
		rec.TongGioLam, rec.DonGiaGio, rec.TienKhoan, rec.Thuong, rec.PhuCap,
		rec.TongTienCong, rec.ThueTNCN, rec.ThucTra,
	}
}

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.MaNhanVien, &rec.HoTen, &rec.ChucDanh, &rec.Period, &rec.NhanVienKhoan,
		&rec.LuongCoBan, &rec.PhuCapCaKeoDai, &rec.PhuCapTrachNhiem, &rec.PhuCapQuanLyCa,
		&rec.PhuCapXang, &rec.PhuCapDienThoai, &rec.PhuCapAnTrua,
		&rec.TongLuong, &rec.BHXH, &rec.BHYT, &rec.BHTN, &rec.TongTrichBH, &rec.ThucLinh,
		&rec.TongGioLam, &rec.DonGiaGio, &rec.TienKhoan, &rec.Thuong, &rec.PhuCap,
		&rec.TongTienCong, &rec.ThueTNCN, &rec.ThucTra,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Put implements payroll.Repository.
func (r *payrollRepository) Put(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	saved, err := scanPayroll(q.QueryRow(ctx, payrollUpsert+" RETURNING "+payrollColumns, payrollArgs(rec)...))
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to save payroll record %s: %w", rec.ID, err)
	}

	return saved, nil
}

// PutBatch implements payroll.Repository. All records are written in one
// transaction so a monthly sheet saves atomically.
func (r *payrollRepository) PutBatch(ctx context.Context, recs []payroll.Record) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, rec := range recs {
			if _, err := tx.Exec(ctx, payrollUpsert, payrollArgs(rec)...); err != nil {
				return fmt.Errorf("failed to save payroll record %s: %w", rec.ID, err)
			}
		}
		return nil
	})
}

// GetByID implements payroll.Repository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record %s: %w", id, err)
	}

	return rec, nil
}

// ListByPeriod implements payroll.Repository.
func (r *payrollRepository) ListByPeriod(ctx context.Context, period string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE period = $1 ORDER BY ma_nhan_vien`

	rows, err := q.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records for %s: %w", period, err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}

// Delete implements payroll.Repository.
func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

// AddTombstone implements payroll.Repository.
func (r *payrollRepository) AddTombstone(ctx context.Context, t payroll.Tombstone) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_tombstones (id, period)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET deleted_at = NOW()
	`

	if _, err := q.Exec(ctx, query, t.ID, t.Period); err != nil {
		return fmt.Errorf("failed to add payroll tombstone %s: %w", t.ID, err)
	}

	return nil
}

// RemoveTombstone implements payroll.Repository.
func (r *payrollRepository) RemoveTombstone(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_tombstones WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to remove payroll tombstone %s: %w", id, err)
	}

	return nil
}

// TombstonesByPeriod implements payroll.Repository.
func (r *payrollRepository) TombstonesByPeriod(ctx context.Context, period string) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM payroll_tombstones WHERE period = $1`, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll tombstones for %s: %w", period, err)
	}
	defer rows.Close()

	tombstones := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan payroll tombstone: %w", err)
		}
		tombstones[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll tombstones: %w", err)
	}

	return tombstones, nil
}
