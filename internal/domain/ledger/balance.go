package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SortByDate orders entries ascending by date. Balance computation assumes
// this ordering; insertion order is otherwise irrelevant.
func SortByDate[E Entry](entries []E) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EntryDate() < entries[j].EntryDate()
	})
}

// ComputeRunningBalance walks entries once, accumulating
// balance[i] = balance[i-1] + inflow[i] - outflow[i] with the opening
// balance as the seed, writing each row's balance column as it goes.
// The returned closing balance equals the opening balance when the entry
// list is empty.
func ComputeRunningBalance[E FlowEntry](entries []E, opening decimal.Decimal) decimal.Decimal {
	running := opening
	for _, e := range entries {
		in, out := e.Flow()
		running = running.Add(in).Sub(out)
		e.SetBalance(running)
	}
	return running
}

// ComputePayablesBalance is the multi-column variant for the wages +
// insurance payables book: four independent accumulators advanced in the
// same single pass.
func ComputePayablesBalance(entries []*LuongBaoHiemEntry, opening PayablesOpening) PayablesOpening {
	running := opening
	for _, e := range entries {
		running.TienLuong = running.TienLuong.Add(e.LuongPhaiTra).Sub(e.LuongDaTra)
		running.BHXH = running.BHXH.Add(e.BHXHPhaiNop).Sub(e.BHXHDaNop)
		running.BHYT = running.BHYT.Add(e.BHYTPhaiNop).Sub(e.BHYTDaNop)
		running.BHTN = running.BHTN.Add(e.BHTNPhaiNop).Sub(e.BHTNDaNop)

		e.LuongConPhaiTra = running.TienLuong
		e.BHXHConPhaiNop = running.BHXH
		e.BHYTConPhaiNop = running.BHYT
		e.BHTNConPhaiNop = running.BHTN
	}
	return running
}
