package db

import "errors"

// ErrLedgerIO marks failures of the durable store: the database could not be
// opened, queried, or written. Callers should treat it as fatal to the run,
// since numbering guarantees cannot be upheld without the ledger.
var ErrLedgerIO = errors.New("ledger storage failure")
