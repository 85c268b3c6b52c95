package i18n

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Locale
		wantOK bool
	}{
		{"es", Spanish, true},
		{"ES", Spanish, true},
		{"es-MX", Spanish, true},
		{"en_US", English, true},
		{"en", English, true},
		{"fr", "", false},
		{"", "", false},
		{"not a tag!", "", false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("Parse(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
		wantOK bool
	}{
		{"en-US,en;q=0.9", English, true},
		{"es-AR,es;q=0.9,en;q=0.5", Spanish, true},
		{"fr-FR,en;q=0.4", English, true},
		{"de-DE", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := MatchAcceptLanguage(tc.header)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("MatchAcceptLanguage(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestForCountry(t *testing.T) {
	tests := []struct {
		code   string
		want   Locale
		wantOK bool
	}{
		{"MX", Spanish, true},
		{"es", Spanish, true},
		{"US", English, true},
		{"JP", English, true},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := ForCountry(tc.code)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ForCountry(%q) = (%q, %v), want (%q, %v)", tc.code, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestBundlesAreComplete(t *testing.T) {
	for _, l := range Supported {
		b := For(l)
		if b.Locale != l {
			t.Fatalf("For(%s).Locale = %s", l, b.Locale)
		}
		v := reflect.ValueOf(b.Messages)
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Fatalf("locale %s is missing %s", l, v.Type().Field(i).Name)
			}
		}
		if len(b.Suggestions) != 6 {
			t.Fatalf("locale %s has %d suggestions, want 6", l, len(b.Suggestions))
		}
		if len(b.Tips) != 3 {
			t.Fatalf("locale %s has %d tips, want 3", l, len(b.Tips))
		}
	}
}

func TestForFallsBackAndCopies(t *testing.T) {
	if got := For("fr").Locale; got != Default {
		t.Fatalf("For(fr).Locale = %s, want %s", got, Default)
	}
	b := For(English)
	b.Suggestions[0] = "changed"
	if For(English).Suggestions[0] == "changed" {
		t.Fatal("For must return copies of the suggestion list")
	}
	if len(All()) != len(Supported) {
		t.Fatalf("All() returned %d bundles", len(All()))
	}
}
