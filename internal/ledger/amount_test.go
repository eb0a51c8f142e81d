package ledger

import "testing"

func feed(e *AmountEntry, tokens string) {
	for _, r := range tokens {
		e.Input(r)
	}
}

func TestAmountEntryInput(t *testing.T) {
	tests := []struct {
		name   string
		tokens string
		want   string
	}{
		{"empty stays zero", "", "0"},
		{"leading zero replaced", "07", "7"},
		{"plain digits", "125", "125"},
		{"dot on zero", ".", "0."},
		{"zero dot five", ".5", "0.5"},
		{"second dot ignored", "1.2.3", "1.23"},
		{"two fraction digits ok", "9.99", "9.99"},
		{"third fraction digit rejected", "9.995", "9.99"},
		{"rejection leaves buffer intact", "12.345678", "12.34"},
		{"integer part unbounded", "1234567", "1234567"},
		{"non-token ignored", "1a2", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewAmountEntry()
			feed(e, tt.tokens)
			if got := e.String(); got != tt.want {
				t.Fatalf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAmountEntryBackspace(t *testing.T) {
	e := NewAmountEntry()
	feed(e, "12.5")

	e.Backspace()
	if got := e.String(); got != "12." {
		t.Fatalf("buffer = %q, want %q", got, "12.")
	}
	e.Backspace()
	e.Backspace()
	if got := e.String(); got != "1" {
		t.Fatalf("buffer = %q, want %q", got, "1")
	}

	// A single-character buffer resets to "0", never to empty.
	e.Backspace()
	if got := e.String(); got != "0" {
		t.Fatalf("buffer after last backspace = %q, want %q", got, "0")
	}
	e.Backspace()
	if got := e.String(); got != "0" {
		t.Fatalf("buffer stays %q, got %q", "0", got)
	}
}

func TestAmountEntryClear(t *testing.T) {
	e := NewAmountEntry()
	feed(e, "42.42")
	e.Clear()
	if got := e.String(); got != "0" {
		t.Fatalf("buffer after clear = %q, want %q", got, "0")
	}
}

func TestAmountEntryConfirm(t *testing.T) {
	tests := []struct {
		name    string
		tokens  string
		want    float64
		wantErr bool
	}{
		{"integer", "12", 12, false},
		{"fraction", "12.5", 12.5, false},
		{"trailing dot", "3.", 3, false},
		{"zero allowed through", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewAmountEntry()
			feed(e, tt.tokens)
			got, err := e.Confirm()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Confirm() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}
