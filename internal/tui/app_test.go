package tui

import (
	"testing"

	"tally/internal/config"
	"tally/internal/ledger"
)

func TestTabNumberShortcuts(t *testing.T) {
	a := NewApp(ledger.New(nil, nil), config.DefaultConfig())

	a.activeTab = tabCategories
	m, _ := a.updateCategoriesTab("3")
	a = m.(App)
	if a.activeTab != tabSettings {
		t.Fatalf("activeTab = %d, want settings", a.activeTab)
	}

	m, _ = a.updateSettingsTab("2")
	a = m.(App)
	if a.activeTab != tabCategories {
		t.Fatalf("activeTab = %d, want categories", a.activeTab)
	}

	m, _ = a.updateCategoriesTab("1")
	a = m.(App)
	if a.activeTab != tabLedger {
		t.Fatalf("activeTab = %d, want ledger", a.activeTab)
	}
}
