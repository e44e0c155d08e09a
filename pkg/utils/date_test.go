package utils_test

import (
	"testing"
	"time"

	"github.com/labworks/labman/pkg/utils"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantNil bool
		wantErr bool
	}{
		{name: "plain date", in: "2025-03-14", want: "2025-03-14"},
		{name: "empty is nil", in: "", wantNil: true},
		{name: "leap day", in: "2024-02-29", want: "2024-02-29"},
		{name: "time suffix rejected", in: "2025-03-14T10:00:00Z", wantErr: true},
		{name: "out of range day", in: "2025-02-30", wantErr: true},
		{name: "garbage", in: "not-a-date", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) err: %v", tt.in, err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseDate(%q) expected nil, got %v", tt.in, got)
				}
				return
			}
			if got == nil || got.Format(utils.DateLayout) != tt.want {
				t.Fatalf("ParseDate(%q) = %v, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := utils.FormatDate(nil); got != "" {
		t.Fatalf("FormatDate(nil) = %q, want empty", got)
	}
	d := time.Date(2025, 12, 1, 15, 4, 5, 0, time.UTC)
	if got := utils.FormatDate(&d); got != "2025-12-01" {
		t.Fatalf("FormatDate = %q, want 2025-12-01", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	const in = "2026-01-31"
	parsed, err := utils.ParseDate(in)
	if err != nil {
		t.Fatalf("ParseDate err: %v", err)
	}
	if got := utils.FormatDate(parsed); got != in {
		t.Fatalf("round trip = %q, want %q", got, in)
	}
}
