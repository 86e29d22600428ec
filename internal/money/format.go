// Package money renders Vietnamese đồng amounts for display.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Suffix is appended to every formatted amount.
	Suffix = "đ"
	// Separator sits between groups of three digits.
	Separator = '.'
)

var ErrInvalidAmount = errors.New("invalid amount")

// FormatVND groups the digits of amount in threes from the right and appends
// the đồng suffix: 450000 -> "450.000đ". Negative amounts get a leading minus
// sign in front of the grouped magnitude.
func FormatVND(amount int64) string {
	return group(strconv.FormatInt(amount, 10))
}

// FormatDecimal rounds d to whole đồng and formats it like FormatVND. There is
// no upper bound on the magnitude.
func FormatDecimal(d decimal.Decimal) string {
	return group(d.Round(0).String())
}

// group inserts separators into a decimal integer string with an optional
// leading minus and appends the suffix.
func group(digits string) string {
	sign := ""
	if digits[0] == '-' {
		sign, digits = "-", digits[1:]
	}

	var sb strings.Builder
	sb.Grow(len(sign) + len(digits) + len(digits)/3 + len(Suffix))
	sb.WriteString(sign)
	for i := 0; i < len(digits); i++ {
		// a separator goes before every digit that starts a full group of three
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(Separator)
		}
		sb.WriteByte(digits[i])
	}
	sb.WriteString(Suffix)
	return sb.String()
}

// ParseVND is the inverse of FormatVND. The suffix is optional; separators, if
// present, must split the digits into groups of exactly three.
func ParseVND(s string) (int64, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(s), Suffix)
	body := strings.TrimPrefix(raw, "-")
	if body == "" || body[0] < '0' || body[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if strings.ContainsRune(body, Separator) {
		groups := strings.Split(body, string(Separator))
		for i, g := range groups {
			if g == "" || len(g) > 3 || (i > 0 && len(g) != 3) {
				return 0, fmt.Errorf("%w: misplaced separator in %q", ErrInvalidAmount, s)
			}
		}
		raw = strings.ReplaceAll(raw, string(Separator), "")
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}
	return n, nil
}
