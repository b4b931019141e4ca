package domain

import (
	"github.com/shopspring/decimal"
)

// Money — денежная сумма в единственной валюте витрины.
// В JSON пишется числом (4.5), как в исходном формате корзины; читается и из числа, и из строки.
type Money struct {
	d decimal.Decimal
}

// NewMoney — разбор суммы из строки ("4.50").
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d: d}, nil
}

// MustMoney — как NewMoney, но паникует; для констант и тестов.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromFloat — сумма из float64 (цены из каталога приходят числами).
func MoneyFromFloat(f float64) Money { return Money{d: decimal.NewFromFloat(f)} }

func (m Money) Add(other Money) Money { return Money{d: m.d.Add(other.d)} }

// Mul — сумма, умноженная на количество.
func (m Money) Mul(qty int) Money { return Money{d: m.d.Mul(decimal.NewFromInt(int64(qty)))} }

func (m Money) IsNegative() bool { return m.d.IsNegative() }

func (m Money) Equal(other Money) bool { return m.d.Equal(other.d) }

// String — две цифры после запятой ("12.00").
func (m Money) String() string { return m.d.StringFixed(2) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.String()), nil
}

func (m *Money) UnmarshalJSON(raw []byte) error {
	return m.d.UnmarshalJSON(raw)
}
