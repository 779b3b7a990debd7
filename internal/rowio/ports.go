// Package rowio defines the tabular document port the ledgers persist
// through. A document is a plain cell matrix: one header row followed by one
// row per record. Implementations live in subpackages (excel, gsheets,
// memory) and are chosen by the backend factory.
package rowio

import "context"

// Table reads and rewrites a whole tabular document. ReadAll returns
// (nil, nil) when the document does not exist yet; WriteAll replaces the
// entire content, header included.
type Table interface {
	ReadAll(ctx context.Context) ([][]string, error)
	WriteAll(ctx context.Context, rows [][]string) error
}
