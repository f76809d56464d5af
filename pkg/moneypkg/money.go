// Package moneypkg formats and parses monetary amounts.
package moneypkg

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrMalformedAmount indicates that the amount is not a decimal number.
var ErrMalformedAmount = errors.New("malformed amount")

var printer = message.NewPrinter(language.English)

// Dollars formats the absolute value of d as "$1,234.56".
// The cents are taken from the decimal text, so they survive at any magnitude.
func Dollars(d decimal.Decimal) string {
	whole, cents, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	return "$" + groupThousands(whole) + "." + cents
}

func groupThousands(whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return printer.Sprint(number.Decimal(n))
	}

	// Past int64 the digits are grouped by hand.
	var b strings.Builder

	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteByte(whole[i])
	}

	return b.String()
}

// Parse parses a decimal amount such as "1000", "12.50" or " 3 ".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}

	return d, nil
}
