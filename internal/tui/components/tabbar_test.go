package components

import "testing"

func TestTabAtXMatchesTabWidths(t *testing.T) {
	pos := 2 // leading indent in the tab bar

	for i, tab := range Tabs {
		w := len(tab.Key) + 1 + len(tab.Name)
		x := pos + w/2 // midpoint inside this tab
		if got := TabAtX(x); got != i {
			t.Fatalf("x=%d -> tab=%d, want %d", x, got, i)
		}
		pos += w + 3 // gap between tabs
	}
}

func TestTabAtXOutsideTabs(t *testing.T) {
	if got := TabAtX(0); got != -1 {
		t.Fatalf("TabAtX(0) = %d, want -1", got)
	}
	if got := TabAtX(1000); got != -1 {
		t.Fatalf("TabAtX(1000) = %d, want -1", got)
	}
}
