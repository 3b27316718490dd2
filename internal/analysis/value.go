package analysis

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	Missing Kind = iota
	Int
	Float
	Text
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a single table cell: one of Missing, Int, Float or Text.
// The zero Value is Missing.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// MissingValue returns the Missing cell.
func MissingValue() Value { return Value{} }

// IntValue wraps an integer cell.
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// FloatValue wraps a floating-point cell.
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// TextValue wraps a text cell. Text is kept verbatim.
func TextValue(s string) Value { return Value{kind: Text, s: s} }

// naTokens are raw cell spellings read as Missing, matching what common
// spreadsheet and CSV exports emit for absent numbers.
var naTokens = map[string]struct{}{
	"":         {},
	"na":       {},
	"n/a":      {},
	"#n/a":     {},
	"#na":      {},
	"nan":      {},
	"-nan":     {},
	"null":     {},
	"none":     {},
	"<na>":     {},
	"-1.#ind":  {},
	"1.#ind":   {},
	"-1.#qnan": {},
	"1.#qnan":  {},
}

// ParseValue converts a raw cell into a typed Value. Surrounding blanks are
// ignored for detection only; Text cells keep the raw string untouched.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if _, ok := naTokens[strings.ToLower(s)]; ok {
		return MissingValue()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// ParseFloat accepts "inf"/"infinity"; those stay numeric.
		return FloatValue(f)
	}
	return TextValue(raw)
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool { return v.kind == Missing }

// IsNumeric reports whether the cell holds an Int or Float.
func (v Value) IsNumeric() bool { return v.kind == Int || v.kind == Float }

// Number returns the numeric content of Int and Float cells.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case Int:
		return float64(v.i), true
	case Float:
		return v.f, true
	default:
		return 0, false
	}
}

// Text returns the content of a Text cell.
func (v Value) Text() (string, bool) {
	if v.kind != Text {
		return "", false
	}
	return v.s, true
}

// String renders the cell for display and export. Missing renders empty and
// integral floats keep a trailing ".0" so they read as floats.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".IN") {
			s += ".0"
		}
		return s
	case Text:
		return v.s
	default:
		return ""
	}
}

// Equal compares two cells. Int and Float compare numerically; Text compares
// exactly; Missing only equals Missing.
func (v Value) Equal(o Value) bool {
	switch {
	case v.kind == Int && o.kind == Int:
		return v.i == o.i
	case v.kind == Int && o.kind == Float:
		i, ok := integral(o.f)
		return ok && i == v.i
	case v.kind == Float && o.kind == Int:
		i, ok := integral(v.f)
		return ok && i == o.i
	case v.kind == Float && o.kind == Float:
		return v.f == o.f
	case v.kind != o.kind:
		return false
	}
	return v.kind == Missing || v.s == o.s
}

// integral reports the int64 a float holds exactly, if any.
func integral(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// key is a canonical encoding consistent with Equal, used for row hashing.
// Every encoding is self-delimiting so joined keys stay unambiguous.
func (v Value) key() string {
	switch v.kind {
	case Int:
		return "i" + strconv.FormatInt(v.i, 10)
	case Float:
		if i, ok := integral(v.f); ok {
			return "i" + strconv.FormatInt(i, 10)
		}
		return "f" + strconv.FormatFloat(v.f, 'g', -1, 64)
	case Text:
		return "s" + strconv.Itoa(len(v.s)) + ":" + v.s
	default:
		return "-"
	}
}
