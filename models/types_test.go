// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"testing"
)

func TestMakePreview(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLen int
		cut     bool
	}{
		{"short text unchanged", "Is this normal?", 15, false},
		{"exactly at limit", strings.Repeat("a", 80), 80, false},
		{"one over limit", strings.Repeat("a", 81), 83, true},
		{"well over limit", strings.Repeat("a", 85), 83, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MakePreview(tc.text)
			if len(got) != tc.wantLen {
				t.Errorf("Expected preview length %d, got %d", tc.wantLen, len(got))
			}
			if tc.cut && !strings.HasSuffix(got, "...") {
				t.Errorf("Expected ellipsis suffix, got %q", got)
			}
			if !tc.cut && got != tc.text {
				t.Errorf("Expected text unchanged, got %q", got)
			}
		})
	}
}

func TestMakePreview_MultibyteRunes(t *testing.T) {
	// 85 multibyte runes must be cut at 80 runes, not 80 bytes
	text := strings.Repeat("é", 85)
	got := MakePreview(text)

	runes := []rune(got)
	if len(runes) != 83 {
		t.Errorf("Expected 83 runes (80 + ellipsis), got %d", len(runes))
	}
	if string(runes[:80]) != strings.Repeat("é", 80) {
		t.Error("Preview prefix does not match original runes")
	}
}

func TestValidAgeRange(t *testing.T) {
	for _, valid := range []string{AgeRange13to14, AgeRange15to16, AgeRange17to18} {
		if !ValidAgeRange(valid) {
			t.Errorf("Expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "12-13", "19-20", "13-16"} {
		if ValidAgeRange(invalid) {
			t.Errorf("Expected %q to be invalid", invalid)
		}
	}
}

func TestValidMood(t *testing.T) {
	for _, valid := range []string{MoodOkay, MoodLow, MoodAnxious, MoodIrritable} {
		if !ValidMood(valid) {
			t.Errorf("Expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "happy", "OKAY"} {
		if ValidMood(invalid) {
			t.Errorf("Expected %q to be invalid", invalid)
		}
	}
}

func TestValidDate(t *testing.T) {
	for _, valid := range []string{"2025-03-01", "1999-12-31"} {
		if !ValidDate(valid) {
			t.Errorf("Expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "03/01/2025", "2025-3-1", "20250301", "2025-03-01T00:00:00"} {
		if ValidDate(invalid) {
			t.Errorf("Expected %q to be invalid", invalid)
		}
	}
}
