package ledger

import (
	"github.com/shopspring/decimal"
)

// Book identifies one of the statutory accounting books kept by a
// Vietnamese household business under Circular 88/2021/TT-BTC. The values
// double as storage keys, matching the keys the bookkeeping front-end has
// always used.
type Book string

const (
	BookDoanhThu       Book = "s1_doanhthu"        // revenue detail
	BookVatLieu        Book = "s2_vatlieu"         // materials / goods
	BookChiPhi         Book = "s3_chiphi"          // production & business expenses
	BookNghiaVuThue    Book = "s4_nghiavuthue"     // tax obligations
	BookLuongChinhThuc Book = "s4a_luong_chinhthuc" // salaried staff wage book
	BookLuongKhoan     Book = "s4b_luong_khoan"    // piecework wage book
	BookCongNo         Book = "s5_congno"          // receivables / payables
	BookLuongBaoHiem   Book = "s5_luong_baohiem"   // wages + insurance payables
	BookQuyTienMat     Book = "s6_quytienmat"      // cash fund
	BookTienNganHang   Book = "s7_tienganhang"     // bank deposits
)

// AllBooks lists every supported book, in statutory order.
var AllBooks = []Book{
	BookDoanhThu,
	BookVatLieu,
	BookChiPhi,
	BookNghiaVuThue,
	BookLuongChinhThuc,
	BookLuongKhoan,
	BookCongNo,
	BookLuongBaoHiem,
	BookQuyTienMat,
	BookTienNganHang,
}

// IsValid reports whether b names a known book.
func (b Book) IsValid() bool {
	for _, book := range AllBooks {
		if b == book {
			return true
		}
	}
	return false
}

// HasRunningBalance reports whether the book carries a cumulative balance
// column recomputed from the period opening balance.
func (b Book) HasRunningBalance() bool {
	switch b {
	case BookNghiaVuThue, BookCongNo, BookLuongBaoHiem, BookQuyTienMat, BookTienNganHang:
		return true
	}
	return false
}

// PaymentMethod is the hình thức thanh toán tag used across the books.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "TM" // tiền mặt
	PaymentTransfer PaymentMethod = "CK" // chuyển khoản
)

// Entry is implemented by every book row type.
type Entry interface {
	EntryID() string
	SetEntryID(id string)
	EntryDate() string
	// Derive recomputes the row's derived columns from its inputs.
	Derive()
}

// FlowEntry is a row in a book with a single running-balance column.
type FlowEntry interface {
	Entry
	// Flow returns the row's inflow and outflow amounts.
	Flow() (in, out decimal.Decimal)
	SetBalance(balance decimal.Decimal)
}

// ============ S1: SỔ CHI TIẾT DOANH THU ============

type DoanhThuEntry struct {
	ID                string          `json:"id"`
	NgayBan           string          `json:"ngayBan"`
	SoHoaDon          string          `json:"soHoaDon"`
	HinhThucBan       PaymentMethod   `json:"hinhThucBan"`
	NhomHang          string          `json:"nhomHang"`
	DoanhThuChuaVAT   decimal.Decimal `json:"doanhThuChuaVAT"`
	ThueVAT           decimal.Decimal `json:"thueVAT"`
	TongTienThanhToan decimal.Decimal `json:"tongTienThanhToan"`
	GhiChu            string          `json:"ghiChu,omitempty"`
}

func (e *DoanhThuEntry) EntryID() string      { return e.ID }
func (e *DoanhThuEntry) SetEntryID(id string) { e.ID = id }
func (e *DoanhThuEntry) EntryDate() string    { return e.NgayBan }

func (e *DoanhThuEntry) Derive() {
	e.TongTienThanhToan = e.DoanhThuChuaVAT.Add(e.ThueVAT)
}

// ============ S2: SỔ CHI TIẾT VẬT LIỆU – HÀNG HÓA ============

type VatLieuEntry struct {
	ID         string          `json:"id"`
	Ngay       string          `json:"ngay"`
	TenHang    string          `json:"tenHang"`
	DonViTinh  string          `json:"donViTinh"`
	TonDauKy   decimal.Decimal `json:"tonDauKy"`
	NhapTrongKy decimal.Decimal `json:"nhapTrongKy"`
	XuatTrongKy decimal.Decimal `json:"xuatTrongKy"`
	HaoHutHuy  decimal.Decimal `json:"haoHutHuy"`
	TonCuoiKy  decimal.Decimal `json:"tonCuoiKy"`
	GhiChu     string          `json:"ghiChu,omitempty"`
}

func (e *VatLieuEntry) EntryID() string      { return e.ID }
func (e *VatLieuEntry) SetEntryID(id string) { e.ID = id }
func (e *VatLieuEntry) EntryDate() string    { return e.Ngay }

func (e *VatLieuEntry) Derive() {
	e.TonCuoiKy = e.TonDauKy.Add(e.NhapTrongKy).Sub(e.XuatTrongKy).Sub(e.HaoHutHuy)
}

// ============ S3: SỔ CHI PHÍ SẢN XUẤT KINH DOANH ============

type ChiPhiEntry struct {
	ID                string          `json:"id"`
	NgayChi           string          `json:"ngayChi"`
	NoiDungChi        string          `json:"noiDungChi"`
	LoaiChiPhi        string          `json:"loaiChiPhi"`
	SoTienChuaVAT     decimal.Decimal `json:"soTienChuaVAT"`
	VATKhauTru        decimal.Decimal `json:"vatKhauTru"`
	TongTien          decimal.Decimal `json:"tongTien"`
	HinhThucThanhToan PaymentMethod   `json:"hinhThucThanhToan"`
	ChungTuKemTheo    string          `json:"chungTuKemTheo,omitempty"`
	GhiChu            string          `json:"ghiChu,omitempty"`
}

func (e *ChiPhiEntry) EntryID() string      { return e.ID }
func (e *ChiPhiEntry) SetEntryID(id string) { e.ID = id }
func (e *ChiPhiEntry) EntryDate() string    { return e.NgayChi }

func (e *ChiPhiEntry) Derive() {
	e.TongTien = e.SoTienChuaVAT.Add(e.VATKhauTru)
}

// ============ S4: SỔ NGHĨA VỤ THUẾ ============

type NghiaVuThueEntry struct {
	ID        string          `json:"id"`
	Ngay      string          `json:"ngay"`
	LoaiThue  string          `json:"loaiThue"`
	NoiDung   string          `json:"noiDung"`
	PhaiNop   decimal.Decimal `json:"phaiNop"`
	DaNop     decimal.Decimal `json:"daNop"`
	ConPhaiNop decimal.Decimal `json:"conPhaiNop"`
	GhiChu    string          `json:"ghiChu,omitempty"`
}

func (e *NghiaVuThueEntry) EntryID() string      { return e.ID }
func (e *NghiaVuThueEntry) SetEntryID(id string) { e.ID = id }
func (e *NghiaVuThueEntry) EntryDate() string    { return e.Ngay }
func (e *NghiaVuThueEntry) Derive()              {}

func (e *NghiaVuThueEntry) Flow() (in, out decimal.Decimal) { return e.PhaiNop, e.DaNop }
func (e *NghiaVuThueEntry) SetBalance(b decimal.Decimal)    { e.ConPhaiNop = b }

// ============ S4A: BẢNG LƯƠNG NHÂN VIÊN CHÍNH THỨC ============

type LuongChinhThucEntry struct {
	ID          string          `json:"id"`
	Thang       string          `json:"thang"` // MM/yyyy
	HoTen       string          `json:"hoTen"`
	LuongCoBan  decimal.Decimal `json:"luongCoBan"`
	PhuCap      decimal.Decimal `json:"phuCap"`
	TongLuong   decimal.Decimal `json:"tongLuong"`
	BHXHNLD     decimal.Decimal `json:"bhxhNLD"`
	BHXHChuHo   decimal.Decimal `json:"bhxhChuHo"`
	ThucLinh    decimal.Decimal `json:"thucLinh"`
	HinhThucTra PaymentMethod   `json:"hinhThucTra"`
	KyNhan      bool            `json:"kyNhan"`
}

func (e *LuongChinhThucEntry) EntryID() string      { return e.ID }
func (e *LuongChinhThucEntry) SetEntryID(id string) { e.ID = id }

// EntryDate normalizes the MM/yyyy payroll month to an orderable date.
func (e *LuongChinhThucEntry) EntryDate() string {
	if len(e.Thang) == 7 { // MM/yyyy
		return e.Thang[3:] + "-" + e.Thang[:2] + "-01"
	}
	return e.Thang
}

func (e *LuongChinhThucEntry) Derive() {
	e.TongLuong = e.LuongCoBan.Add(e.PhuCap)
	e.ThucLinh = e.TongLuong.Sub(e.BHXHNLD).Sub(e.BHXHChuHo)
}

// ============ S4B: BẢNG LƯƠNG NHÂN VIÊN KHOÁN ============

// WithholdingThreshold is the piecework payment level at or above which
// personal income tax must be withheld in the wage book unless a Cam kết 08
// commitment is on file. This is a separate regulatory rule from the payroll
// income-tax applicability threshold; the two must not be merged.
var WithholdingThreshold = decimal.NewFromInt(2_000_000)

type LuongKhoanEntry struct {
	ID             string          `json:"id"`
	NgayChi        string          `json:"ngayChi"`
	HoTen          string          `json:"hoTen"`
	CongViecKhoan  string          `json:"congViecKhoan"`
	SoTienKhoan    decimal.Decimal `json:"soTienKhoan"`
	SoCCCD         string          `json:"soCMND_CCCD"`
	CamKet08       bool            `json:"camKet08"`
	ThueTNCNKhauTru decimal.Decimal `json:"thueTNCNKhauTru"`
	SoTienThucTra  decimal.Decimal `json:"soTienThucTra"`
	KyNhan         bool            `json:"kyNhan"`
}

func (e *LuongKhoanEntry) EntryID() string      { return e.ID }
func (e *LuongKhoanEntry) SetEntryID(id string) { e.ID = id }
func (e *LuongKhoanEntry) EntryDate() string    { return e.NgayChi }

// Derive zeroes the withheld tax below the withholding threshold and keeps
// the entered amount at or above it. Threshold comparison is >=, unlike the
// payroll income-tax rule.
func (e *LuongKhoanEntry) Derive() {
	if e.SoTienKhoan.LessThan(WithholdingThreshold) {
		e.ThueTNCNKhauTru = decimal.Zero
	}
	e.SoTienThucTra = e.SoTienKhoan.Sub(e.ThueTNCNKhauTru)
}

// ============ S5: SỔ THEO DÕI THANH TOÁN (CÔNG NỢ) ============

type CongNoEntry struct {
	ID            string          `json:"id"`
	Ngay          string          `json:"ngay"`
	DoiTuong      string          `json:"doiTuong"`
	LoaiDoiTuong  string          `json:"loaiDoiTuong"` // NhaCungCap | KhachHang
	NoiDung       string          `json:"noiDung"`
	PhatSinhTang  decimal.Decimal `json:"phatsinhTang"`
	PhatSinhGiam  decimal.Decimal `json:"phatsinhGiam"`
	SoDu          decimal.Decimal `json:"soDu"`
	HanThanhToan  string          `json:"hanThanhToan,omitempty"`
	GhiChu        string          `json:"ghiChu,omitempty"`
}

func (e *CongNoEntry) EntryID() string      { return e.ID }
func (e *CongNoEntry) SetEntryID(id string) { e.ID = id }
func (e *CongNoEntry) EntryDate() string    { return e.Ngay }
func (e *CongNoEntry) Derive()              {}

func (e *CongNoEntry) Flow() (in, out decimal.Decimal) { return e.PhatSinhTang, e.PhatSinhGiam }
func (e *CongNoEntry) SetBalance(b decimal.Decimal)    { e.SoDu = b }

// ============ S5: SỔ LƯƠNG VÀ BẢO HIỂM PHẢI TRẢ ============

// LuongBaoHiemEntry tracks four payable columns in one row: wages plus the
// three statutory insurance funds. Each column family carries its own
// running balance.
type LuongBaoHiemEntry struct {
	ID   string `json:"id"`
	Ngay string `json:"ngay"`
	NoiDung string `json:"noiDung"`

	LuongPhaiTra    decimal.Decimal `json:"luongPhaiTra"`
	LuongDaTra      decimal.Decimal `json:"luongDaTra"`
	LuongConPhaiTra decimal.Decimal `json:"luongConPhaiTra"`

	BHXHPhaiNop    decimal.Decimal `json:"bhxhPhaiNop"`
	BHXHDaNop      decimal.Decimal `json:"bhxhDaNop"`
	BHXHConPhaiNop decimal.Decimal `json:"bhxhConPhaiNop"`

	BHYTPhaiNop    decimal.Decimal `json:"bhytPhaiNop"`
	BHYTDaNop      decimal.Decimal `json:"bhytDaNop"`
	BHYTConPhaiNop decimal.Decimal `json:"bhytConPhaiNop"`

	BHTNPhaiNop    decimal.Decimal `json:"bhtnPhaiNop"`
	BHTNDaNop      decimal.Decimal `json:"bhtnDaNop"`
	BHTNConPhaiNop decimal.Decimal `json:"bhtnConPhaiNop"`

	GhiChu string `json:"ghiChu,omitempty"`
}

func (e *LuongBaoHiemEntry) EntryID() string      { return e.ID }
func (e *LuongBaoHiemEntry) SetEntryID(id string) { e.ID = id }
func (e *LuongBaoHiemEntry) EntryDate() string    { return e.Ngay }
func (e *LuongBaoHiemEntry) Derive()              {}

// ============ S6: SỔ QUỸ TIỀN MẶT ============

type QuyTienMatEntry struct {
	ID           string          `json:"id"`
	Ngay         string          `json:"ngay"`
	NoiDungThuChi string          `json:"noiDungThuChi"`
	SoTienThu    decimal.Decimal `json:"soTienThu"`
	SoTienChi    decimal.Decimal `json:"soTienChi"`
	SoTienTon    decimal.Decimal `json:"soTienTon"`
	NguoiThuChi  string          `json:"nguoiThuChi,omitempty"`
	GhiChu       string          `json:"ghiChu,omitempty"`
}

func (e *QuyTienMatEntry) EntryID() string      { return e.ID }
func (e *QuyTienMatEntry) SetEntryID(id string) { e.ID = id }
func (e *QuyTienMatEntry) EntryDate() string    { return e.Ngay }
func (e *QuyTienMatEntry) Derive()              {}

func (e *QuyTienMatEntry) Flow() (in, out decimal.Decimal) { return e.SoTienThu, e.SoTienChi }
func (e *QuyTienMatEntry) SetBalance(b decimal.Decimal)    { e.SoTienTon = b }

// ============ S7: SỔ TIỀN GỬI NGÂN HÀNG ============

// LargeTransferHighlight marks bank rows the bookkeeper must be able to
// spot: single transfers of more than 20,000,000 VND.
var LargeTransferHighlight = decimal.NewFromInt(20_000_000)

type TienNganHangEntry struct {
	ID               string          `json:"id"`
	Ngay             string          `json:"ngay"`
	SoChungTu        string          `json:"soChungTu"`
	NoiDungGiaoDich  string          `json:"noiDungGiaoDich"`
	SoTienGuiVao     decimal.Decimal `json:"soTienGuiVao"`
	SoTienRutRa      decimal.Decimal `json:"soTienRutRa"`
	SoTienConLai     decimal.Decimal `json:"soTienConLai"`
	DoiTuongLienQuan string          `json:"doiTuongLienQuan,omitempty"`
	GhiChu           string          `json:"ghiChu,omitempty"`
	Highlight        bool            `json:"highlight"`
}

func (e *TienNganHangEntry) EntryID() string      { return e.ID }
func (e *TienNganHangEntry) SetEntryID(id string) { e.ID = id }
func (e *TienNganHangEntry) EntryDate() string    { return e.Ngay }

func (e *TienNganHangEntry) Derive() {
	e.Highlight = e.SoTienGuiVao.GreaterThan(LargeTransferHighlight) ||
		e.SoTienRutRa.GreaterThan(LargeTransferHighlight)
}

func (e *TienNganHangEntry) Flow() (in, out decimal.Decimal) { return e.SoTienGuiVao, e.SoTienRutRa }
func (e *TienNganHangEntry) SetBalance(b decimal.Decimal)    { e.SoTienConLai = b }

// ============ OPENING BALANCES ============

// PayablesOpening is the opening balance of the wages + insurance payables
// book, one column family each.
type PayablesOpening struct {
	TienLuong decimal.Decimal `json:"tienLuong"`
	BHXH      decimal.Decimal `json:"bhxh"`
	BHYT      decimal.Decimal `json:"bhyt"`
	BHTN      decimal.Decimal `json:"bhtn"`
}

// OpeningBalance seeds the running-balance recomputation for one book and
// period. Scalar books use SoDuDauKy; the payables book uses Payables.
type OpeningBalance struct {
	Book      Book             `json:"book"`
	Period    string           `json:"period"` // YYYY-MM
	SoDuDauKy decimal.Decimal  `json:"soDuDauKy"`
	Payables  *PayablesOpening `json:"payables,omitempty"`
}
