package infra

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadProfile_ParsesExtendedVariant(t *testing.T) {
	path := writeProfile(t, `
preferences: 9
email_domain: "@iiitk.ac.in"
slots:
  "SLOT 1 (4:30AM TO 5:30 AM)": 20
  "SLOT 2 (5:30AM TO 7:00 AM)": 2
`)

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Preferences != 9 {
		t.Fatalf("expected 9 preferences, got %d", p.Preferences)
	}
	if p.EmailDomain != "@iiitk.ac.in" {
		t.Fatalf("expected email domain, got %q", p.EmailDomain)
	}
	if p.Slots["SLOT 2 (5:30AM TO 7:00 AM)"] != 2 {
		t.Fatalf("unexpected slots: %v", p.Slots)
	}
}

func TestLoadProfile_BaseVariantHasNoGate(t *testing.T) {
	path := writeProfile(t, `
preferences: 3
slots:
  "SLOT 3 (4:00PM TO 5:30PM)": 12
`)

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := EmailDomain(p.EmailDomain); v != nil {
		t.Fatalf("expected gate disabled for base variant")
	}
}

func TestLoadProfile_RejectsNegativeCapacity(t *testing.T) {
	path := writeProfile(t, `
preferences: 3
slots:
  "SLOT 1": -1
`)

	if _, err := LoadProfile(path); err == nil {
		t.Fatalf("expected validation error for negative capacity")
	}
}

func TestLoadProfile_RejectsEmptySlots(t *testing.T) {
	path := writeProfile(t, "preferences: 3\n")

	if _, err := LoadProfile(path); err == nil {
		t.Fatalf("expected validation error for empty slots")
	}
}

func TestLoadProfile_RejectsZeroPreferences(t *testing.T) {
	path := writeProfile(t, `
preferences: 0
slots:
  "SLOT 1": 5
`)

	if _, err := LoadProfile(path); err == nil {
		t.Fatalf("expected validation error for preferences < 1")
	}
}

func TestLoadProfile_MissingFileIsFatal(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultProfile_IsValid(t *testing.T) {
	p := DefaultProfile()
	if err := p.Validate(); err != nil {
		t.Fatalf("default profile must validate: %v", err)
	}
	if p.Preferences != 9 {
		t.Fatalf("expected extended variant by default, got %d preferences", p.Preferences)
	}
}
