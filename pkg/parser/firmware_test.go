package parser

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFirmwareDate(t *testing.T) {
	tests := []struct {
		version string
		want    time.Time
		ok      bool
	}{
		// ISO
		{"SonicOS 7.0.1-2022-01-01", date(2022, time.January, 1), true},
		{"SonicOS 7.0.1-5030-2023-06-01", date(2023, time.June, 1), true},
		{"FW 2023/06/15", date(2023, time.June, 15), true},
		// Month name
		{"SonicOS 7.0 Jun 2023", date(2023, time.June, 1), true},
		{"release June 2023", date(2023, time.June, 1), true},
		{"patched Dec-2021", date(2021, time.December, 1), true},
		// Numeric month-year
		{"firmware 06-2023", date(2023, time.June, 1), true},
		{"firmware 6/2023", date(2023, time.June, 1), true},
		// Compact
		{"build 20230601", date(2023, time.June, 1), true},
		{"fw 230601", date(2023, time.June, 1), true},
		// Family priority: ISO beats compact
		{"2022-01-01 build 20230601", date(2022, time.January, 1), true},
		// Invalid or absent
		{"", time.Time{}, false},
		{"unknown", time.Time{}, false},
		{"SonicOS 7.0.1-5030", time.Time{}, false},
		{"build 999999", time.Time{}, false},
		{"release 123456", time.Time{}, false},
		{"2023-13-01 only", time.Time{}, false}, // month out of range
		{"2023-02-30 only", time.Time{}, false}, // day does not exist
		{"1889-01-01", time.Time{}, false},      // before sanity window
	}

	for _, tt := range tests {
		got, ok := FirmwareDate(tt.version)
		if ok != tt.ok {
			t.Errorf("FirmwareDate(%q) ok = %v, want %v", tt.version, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("FirmwareDate(%q) = %s, want %s", tt.version, got, tt.want)
		}
	}
}

func TestKnownOldFirmware(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"SonicOS 5.9.1.13", true},
		{"SonicOS 6.2.7.1", true},
		{"SonicOS 4.2.1", true},
		{"SonicOS 3.1", true},
		{"legacy image", true},
		{"OLD build", true},
		{"deprecated branch", true},
		{"SonicOS 6.5.4.4-44n", false},
		{"SonicOS 7.0.1-5030", false},
		{"unknown", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := KnownOldFirmware(tt.version); got != tt.want {
			t.Errorf("KnownOldFirmware(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
