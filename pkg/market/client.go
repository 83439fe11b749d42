package market

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNoData = errors.New("market: no data returned")

const userAgent = "Mozilla/5.0"

// Bar is one trading day as reported upstream.
type Bar struct {
	Date   string
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}
