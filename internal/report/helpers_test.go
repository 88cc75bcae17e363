package report

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/skinledger/skinledger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fee(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func stamp(d civil.Date) string {
	return d.In(time.UTC).Add(10 * time.Hour).Format("2006-01-02T15:04:05.000000Z")
}

func credit(d civil.Date, amount, fee string) model.Transaction {
	txn := model.Transaction{
		Type:      model.TypeCredit,
		Status:    model.StatusComplete,
		UpdatedAt: stamp(d),
		Amount:    dec(amount),
	}
	if fee != "" {
		txn.Fee = decimal.NewNullDecimal(dec(fee))
	}
	return txn
}

func purchase(d civil.Date, amount string) model.Transaction {
	return model.Transaction{
		Type:      model.TypePurchase,
		Status:    model.StatusComplete,
		UpdatedAt: stamp(d),
		Amount:    dec(amount),
	}
}
