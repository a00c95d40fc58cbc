package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "iso", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "european", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "long month", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "short tokens", format: "M/D/YY", want: "1/2/06"},
		{name: "short month", format: "MMM YYYY", want: "Jan 2006"},
		{name: "bracket literal", format: "[Updated] MMMM YYYY", want: "Updated January 2006"},
		{name: "bracket protects tokens", format: "[DD]-DD", want: "DD-02"},
		{name: "empty brackets", format: "[]YYYY", want: "2006"},
		{name: "plain literals kept", format: "YYYY.MM", want: "2006.01"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: "YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "YYYY [oops", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Layout(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Layout(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Layout(%q) = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "literal passthrough", value: "Spring 2026", want: "Spring 2026"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto", value: "auto", want: "2026-03-07"},
		{name: "auto upper case", value: "AUTO", want: "2026-03-07"},
		{name: "auto with format", value: "auto:DD/MM/YYYY", want: "07/03/2026"},
		{name: "auto with preset", value: "auto:month", want: "March 2026"},
		{name: "preset is case-insensitive", value: "auto:LONG", want: "March 7, 2026"},
		{name: "upper-case prefix keeps format case", value: "Auto:MMM YYYY", want: "Mar 2026"},
		{name: "missing colon", value: "automatic", wantErr: true},
		{name: "empty format", value: "auto:", wantErr: true},
		{name: "bad format", value: "auto:[x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.value, now)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Fatalf("Resolve(%q) error = %v, want ErrInvalidDateFormat", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
