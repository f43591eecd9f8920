// Package usecase は暗号通貨データ操作のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrSymbolRequired is returned when a query is missing its symbol parameter.
	ErrSymbolRequired = errors.New("cryptocurrency symbol is required")

	// ErrSymbolsRequired is returned when a batch query is missing its symbols parameter.
	ErrSymbolsRequired = errors.New("cryptocurrency symbols are required")

	// ErrNoData is returned when a query matches no stored records.
	ErrNoData = errors.New("no data found")
)
