package money

import (
	"strconv"
	"strings"
)

type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Formatter renders catalog prices the way they are shown to customers.
type Formatter struct {
	Symbol           string
	Position         SymbolPosition
	Decimals         int
	ThousandsSep     string
	DecimalSeparator string
}

// DefaultFormatter is "$1.500" style, no decimals.
func DefaultFormatter() Formatter {
	return Formatter{
		Symbol:           "$",
		Position:         SymbolBefore,
		Decimals:         0,
		ThousandsSep:     ".",
		DecimalSeparator: ",",
	}
}

func (f Formatter) Format(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	out := groupThousands(strconv.FormatInt(amount, 10), f.ThousandsSep)
	if f.Decimals > 0 {
		out += f.DecimalSeparator + strings.Repeat("0", f.Decimals)
	}
	if negative {
		out = "-" + out
	}

	if f.Position == SymbolAfter {
		return out + f.Symbol
	}
	return f.Symbol + out
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
