package ident

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotScalar is returned by FromValue for values that cannot be ids.
var ErrNotScalar = errors.New("identifier must be a string or a number")

// String returns the user id for a string value.
func String(s string) ID {
	return ID{origin: UserString, text: s}
}

// Number returns the user id for a numeric value. It panics on NaN or an
// infinity.
func Number(f float64) ID {
	text, err := formatFloat(f)
	if err != nil {
		panic(err)
	}
	return ID{origin: UserNumber, text: text}
}

// FromValue converts a decoded scalar into an ID. A nil value is reported as
// absent (ok == false, err == nil). An existing ID is returned unchanged,
// which lets canonical records be re-wrapped into raw shape.
func FromValue(v any) (id ID, ok bool, err error) {
	switch t := v.(type) {
	case nil:
		return ID{}, false, nil
	case ID:
		if !t.IsValid() {
			return ID{}, false, fmt.Errorf("%w: zero ID", ErrNotScalar)
		}
		return t, true, nil
	case string:
		return String(t), true, nil
	case json.Number:
		text, err := normalizeNumber(string(t))
		if err != nil {
			return ID{}, false, err
		}
		return ID{origin: UserNumber, text: text}, true, nil
	case int:
		return intID(int64(t)), true, nil
	case int8:
		return intID(int64(t)), true, nil
	case int16:
		return intID(int64(t)), true, nil
	case int32:
		return intID(int64(t)), true, nil
	case int64:
		return intID(t), true, nil
	case uint:
		return uintID(uint64(t)), true, nil
	case uint8:
		return uintID(uint64(t)), true, nil
	case uint16:
		return uintID(uint64(t)), true, nil
	case uint32:
		return uintID(uint64(t)), true, nil
	case uint64:
		return uintID(t), true, nil
	case float32:
		return floatID(float64(t))
	case float64:
		return floatID(t)
	default:
		return ID{}, false, fmt.Errorf("%w: got %T", ErrNotScalar, v)
	}
}

func intID(i int64) ID {
	return ID{origin: UserNumber, text: strconv.FormatInt(i, 10)}
}

func uintID(u uint64) ID {
	return ID{origin: UserNumber, text: strconv.FormatUint(u, 10)}
}

func floatID(f float64) (ID, bool, error) {
	text, err := formatFloat(f)
	if err != nil {
		return ID{}, false, err
	}
	return ID{origin: UserNumber, text: text}, true, nil
}

// normalizeNumber gives every spelling of the same number one text, so that
// 1, 1.0 and 1e0 name the same item. Integral values are compared exactly
// from their decimal text. Other values are compared as float64.
func normalizeNumber(s string) (string, error) {
	if text, ok := integralText(s); ok {
		return text, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("%w: invalid number %q", ErrNotScalar, s)
	}
	return formatFloat(f)
}

// maxIntegralDigits bounds the text integralText will build. Larger values
// go through float64, which rejects them as infinite.
const maxIntegralDigits = 400

// integralText returns the plain decimal digits of s when s is a number
// literal with an integral value, such as "-12", "1.50e1" or "100e-2".
func integralText(s string) (string, bool) {
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	mantissa, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return "", false
		}
		mantissa, exp = s[:i], e
	}

	intPart, frac := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, frac = mantissa[:i], mantissa[i+1:]
	}
	if intPart == "" && frac == "" {
		return "", false
	}
	digits := intPart + frac
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0", true
	}

	// Scale so that value == digits * 10^shift.
	shift := exp - len(frac)
	if shift < 0 {
		if -shift > len(digits) {
			return "", false
		}
		cut := len(digits) + shift
		if strings.Trim(digits[cut:], "0") != "" {
			return "", false
		}
		digits = digits[:cut]
		if digits == "" {
			return "", false
		}
	} else {
		if len(digits)+shift > maxIntegralDigits {
			return "", false
		}
		digits += strings.Repeat("0", shift)
	}

	if neg {
		return "-" + digits, true
	}
	return digits, true
}

func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not a valid number", ErrNotScalar, f)
	}
	if f == 0 {
		return "0", nil
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
