// Package ledgerfeed fetches raw transaction ledger exports from dealer
// network endpoints. It returns the ledger text untouched; parsing belongs
// to pkg/sanitize.
package ledgerfeed

type LedgerSource interface {
	Fetch() (string, error)
	Name() string
}
