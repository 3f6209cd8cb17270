package payroll

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecordKey identifies one payroll line: one worker in one monthly period.
// The stored id and API paths use the Key.String() form for compatibility
// with the data the front-end has always written.
type RecordKey struct {
	MaNhanVien string
	Period     string // YYYY-MM
}

func (k RecordKey) String() string {
	return k.MaNhanVien + "_" + k.Period
}

// ParseRecordKey splits a stored maNhanVien_period id back into its parts.
func ParseRecordKey(id string) (RecordKey, bool) {
	i := strings.LastIndex(id, "_")
	if i <= 0 || i == len(id)-1 {
		return RecordKey{}, false
	}
	return RecordKey{MaNhanVien: id[:i], Period: id[i+1:]}, true
}

// Record is one payroll line. Two variants share the struct, discriminated
// by NhanVienKhoan: salaried staff use the luongCoBan + phụ cấp columns,
// contractors the hours × rate columns. Derived columns are recomputed from
// the inputs before every save; the stored values are a denormalized
// snapshot, never the source of truth.
type Record struct {
	ID            string
	MaNhanVien    string
	HoTen         string
	ChucDanh      string
	Period        string
	NhanVienKhoan bool

	// Salaried staff inputs
	LuongCoBan       decimal.Decimal
	PhuCapCaKeoDai   decimal.Decimal
	PhuCapTrachNhiem decimal.Decimal
	PhuCapQuanLyCa   decimal.Decimal
	PhuCapXang       decimal.Decimal
	PhuCapDienThoai  decimal.Decimal
	PhuCapAnTrua     decimal.Decimal

	// Salaried staff derived
	TongLuong  decimal.Decimal
	BHXH       decimal.Decimal
	BHYT       decimal.Decimal
	BHTN       decimal.Decimal
	TongTrichBH decimal.Decimal
	ThucLinh   decimal.Decimal

	// Contractor inputs (TongGioLam comes from attendance, the rest from
	// the payroll clerk)
	TongGioLam float64
	DonGiaGio  decimal.Decimal
	Thuong     decimal.Decimal
	PhuCap     decimal.Decimal

	// Contractor derived
	TienKhoan   decimal.Decimal
	TongTienCong decimal.Decimal
	ThueTNCN    decimal.Decimal
	ThucTra     decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the typed composite key of the record.
func (r Record) Key() RecordKey {
	return RecordKey{MaNhanVien: r.MaNhanVien, Period: r.Period}
}

// Tombstone marks a payroll line the user deleted explicitly. Attendance
// reconciliation consults these so a deleted line is not silently
// regenerated on the next sync. Saving a payroll line clears its tombstone.
type Tombstone struct {
	ID        string
	Period    string
	DeletedAt time.Time
}
