package Ledger

// EmptyLedgerError is returned when an aggregate is asked of a Ledger without entries.
type EmptyLedgerError struct {
}

func (e *EmptyLedgerError) Error() string {
	return "Ledger is Empty: no execution time recorded."
}
