package discord

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/BrandishSpin_Go/internal/ledger"
)

// AmountFormatter renders token base units for humans, e.g. 1234500 with 2
// decimals as "12,345 SPIN".
type AmountFormatter struct {
	printer  *message.Printer
	decimals int32
	symbol   string
}

func NewAmountFormatter(decimals int32, symbol string) AmountFormatter {
	return AmountFormatter{
		printer:  message.NewPrinter(language.English),
		decimals: decimals,
		symbol:   symbol,
	}
}

func (f AmountFormatter) Format(amount int64) string {
	s := ledger.FormatAmount(amount, f.decimals)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err == nil {
		whole = f.printer.Sprintf("%d", n)
	}
	if hasFrac {
		whole += "." + frac
	}
	if f.symbol == "" {
		return sign + whole
	}
	return sign + whole + " " + f.symbol
}
