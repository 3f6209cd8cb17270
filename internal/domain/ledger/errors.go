package ledger

import "errors"

var (
	ErrUnknownBook            = errors.New("unknown ledger book")
	ErrEntryNotFound          = errors.New("ledger entry not found")
	ErrOpeningBalanceNotFound = errors.New("opening balance not found for this period")
)
