// Package format turns serie values into the strings shown by labels and
// tooltips, and builds the deterministic names label widgets are pooled under.
//
// Numeric formatters follow the short codes charts commonly accept:
//
//	""      shortest representation ("25", "0.1")
//	"fN"    fixed, N decimals (default 2)
//	"nN"    fixed with thousands grouping, N decimals (default 2)
//	"pN"    percent of 1.0, N decimals (default 2): 0.256 -> "25.60%"
//	"eN"    scientific, N decimals (default 2)
//	"d"     rounded integer
//	"0.00"  pattern: decimals follow '.', ',' enables grouping ("#,##0.0")
//
// Codes are case-insensitive. Results are cached; formatting the same value
// twice does not allocate.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/ggchart/internal/cache"
)

// ErrInvalidFormat is returned for numeric formatters that cannot be parsed.
var ErrInvalidFormat = errors.New("format: invalid numeric formatter")

// Kind is the style of a parsed numeric formatter.
type Kind byte

const (
	KindShortest Kind = iota
	KindFixed
	KindGrouped
	KindPercent
	KindExponent
	KindInteger
)

// NumberFormat is a parsed numeric formatter.
type NumberFormat struct {
	Kind      Kind
	Precision int
}

const defaultPrecision = 2

// ParseNumericFormatter parses a formatter code.
func ParseNumericFormatter(s string) (NumberFormat, error) {
	if s == "" {
		return NumberFormat{Kind: KindShortest}, nil
	}
	if isPattern(s) {
		nf := NumberFormat{Kind: KindFixed}
		if strings.Contains(s, ",") {
			nf.Kind = KindGrouped
		}
		if i := strings.IndexByte(s, '.'); i >= 0 {
			nf.Precision = len(s) - i - 1
		}
		return nf, nil
	}

	var kind Kind
	switch s[0] {
	case 'f', 'F':
		kind = KindFixed
	case 'n', 'N':
		kind = KindGrouped
	case 'p', 'P':
		kind = KindPercent
	case 'e', 'E':
		kind = KindExponent
	case 'd', 'D':
		kind = KindInteger
	default:
		return NumberFormat{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	prec := defaultPrecision
	if kind == KindInteger {
		prec = 0
	}
	if len(s) > 1 {
		p, err := strconv.Atoi(s[1:])
		if err != nil || p < 0 || p > 15 {
			return NumberFormat{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		prec = p
	}
	return NumberFormat{Kind: kind, Precision: prec}, nil
}

func isPattern(s string) bool {
	dots := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '#', ',':
		case '.':
			dots++
		default:
			return false
		}
	}
	return dots <= 1
}

// Format renders v.
func (nf NumberFormat) Format(v float64) string {
	switch nf.Kind {
	case KindFixed:
		return strconv.FormatFloat(v, 'f', nf.Precision, 64)
	case KindGrouped:
		return printer.Sprint(number.Decimal(v, number.Scale(nf.Precision)))
	case KindPercent:
		return strconv.FormatFloat(v*100, 'f', nf.Precision, 64) + "%"
	case KindExponent:
		return strconv.FormatFloat(v, 'e', nf.Precision, 64)
	case KindInteger:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printer is only used from inside numbers.GetOrCreate, which serializes it.
var printer = message.NewPrinter(language.English)

type numberKey struct {
	value     float64
	formatter string
}

var numbers = cache.New[numberKey, string](4096)

// NumberToStr formats value with a numeric formatter code. Malformed codes
// fall back to the shortest representation.
func NumberToStr(value float64, formatter string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return numbers.GetOrCreate(numberKey{value, formatter}, func() string {
		nf, err := ParseNumericFormatter(formatter)
		if err != nil {
			nf = NumberFormat{Kind: KindShortest}
		}
		return nf.Format(value)
	})
}

// NumberCacheStats reports the number cache statistics.
func NumberCacheStats() cache.Stats { return numbers.Stats() }
