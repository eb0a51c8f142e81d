package ledger

import (
	"strconv"
	"strings"
)

// AmountEntry accumulates a decimal amount string from discrete keypad
// tokens. The buffer always holds a displayable value: it is "0" when
// empty, contains at most one dot, and at most two fraction digits.
type AmountEntry struct {
	buf string
}

// NewAmountEntry returns an entry with an empty ("0") buffer.
func NewAmountEntry() *AmountEntry {
	return &AmountEntry{buf: "0"}
}

// String returns the current buffer text.
func (e *AmountEntry) String() string {
	return e.buf
}

// Set replaces the buffer wholesale. Used when an edit session seeds the
// entry with an existing record's amount.
func (e *AmountEntry) Set(s string) {
	if s == "" {
		s = "0"
	}
	e.buf = s
}

// Input applies a single keypad token, one of '0'-'9' or '.'. Tokens that
// would break the buffer invariants are dropped without changing it; any
// other rune is ignored.
func (e *AmountEntry) Input(r rune) {
	switch {
	case r == '.':
		if strings.ContainsRune(e.buf, '.') {
			return
		}
		if e.buf == "0" {
			e.buf = "0."
			return
		}
		e.buf += "."

	case r >= '0' && r <= '9':
		if e.buf == "0" {
			e.buf = string(r)
			return
		}
		next := e.buf + string(r)
		if dot := strings.IndexByte(next, '.'); dot >= 0 && len(next)-dot-1 > 2 {
			return
		}
		e.buf = next
	}
}

// Backspace removes the last character. A single-character buffer resets
// to "0" rather than becoming empty.
func (e *AmountEntry) Backspace() {
	if len(e.buf) > 1 {
		e.buf = e.buf[:len(e.buf)-1]
		return
	}
	e.buf = "0"
}

// Clear resets the buffer to "0".
func (e *AmountEntry) Clear() {
	e.buf = "0"
}

// Confirm parses the buffer as a decimal number. A zero value parses
// fine here; whether zero is acceptable depends on the flow (it deletes
// during an edit, and is rejected for new records).
func (e *AmountEntry) Confirm() (float64, error) {
	v, err := strconv.ParseFloat(e.buf, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders an amount the way the entry buffer would hold it:
// no trailing zeros, no exponent.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
