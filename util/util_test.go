package util

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	testTime := time.Date(2025, 4, 5, 14, 30, 45, 0, time.UTC)

	testCases := []struct {
		name           string
		format         string
		expectedResult string
	}{
		{"RFC3339", time.RFC3339, "2025-04-05T14:30:45Z"},
		{"Simple Date", "2006-01-02", "2025-04-05"},
		{"Time Only", "15:04:05", "14:30:45"},
		{"Date and Time", "2006-01-02 15:04:05", "2025-04-05 14:30:45"},
		{"Short Date", "Jan 2", "Apr 5"},
		{"Month and Year", "January 2006", "April 2025"},
		{"Kitchen Time", time.Kitchen, "2:30PM"},
		{"Empty Format", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := formatTime(tc.format, testTime)

			if result != tc.expectedResult {
				t.Errorf("formatTime(%q, %v) = %q; want %q",
					tc.format, testTime, result, tc.expectedResult)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple", "Goa", "goa"},
		{"Two Words", "Spiti Valley", "spiti-valley"},
		{"Surrounding Spaces", "  Rann of Kutch  ", "rann-of-kutch"},
		{"Hyphen Runs", "Leh -- Ladakh", "leh-ladakh"},
		{"Punctuation Dropped", "Taj Mahal, Agra", "taj-mahal-agra"},
		{"Digits Kept", "Top 10 Beaches", "top-10-beaches"},
		{"Non ASCII Dropped", "Café São Paulo", "caf-so-paulo"},
		{"Already A Slug", "spiti-valley", "spiti-valley"},
		{"Empty", "", ""},
		{"Only Separators", " -- ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Slugify(tc.input)
			if result != tc.expected {
				t.Errorf("Slugify(%q) = %q; want %q", tc.input, result, tc.expected)
			}

			// slugs must be stable under re-derivation
			if again := Slugify(result); again != result {
				t.Errorf("Slugify(%q) is not idempotent: got %q", result, again)
			}
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{"Single Day", day(2025, time.January, 2), day(2025, time.January, 2), "Jan 2, 2025"},
		{"Same Month", day(2025, time.June, 1), day(2025, time.June, 4), "Jun 1 - Jun 4, 2025"},
		{"Same Year", day(2025, time.March, 5), day(2025, time.April, 12), "Mar 5 - Apr 12, 2025"},
		{"Across Years", day(2024, time.December, 28), day(2025, time.January, 3), "Dec 28, 2024 - Jan 3, 2025"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := FormatDateRange(tc.start, tc.end)
			if result != tc.expected {
				t.Errorf("FormatDateRange(%v, %v) = %q; want %q", tc.start, tc.end, result, tc.expected)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Plain Text", "hello", true},
		{"Padded Text", "  hello  ", true},
		{"Empty", "", false},
		{"Spaces Only", "   ", false},
		{"Tabs And Newlines", "\t\n", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := NotBlank(tc.input); result != tc.expected {
				t.Errorf("NotBlank(%q) = %v; want %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Plain", "asha@example.com", true},
		{"Subdomain", "asha@mail.example.co.in", true},
		{"Plus Tag", "asha+trips@example.com", true},
		{"Missing At", "asha.example.com", false},
		{"Missing Domain", "asha@", false},
		{"Missing Local", "@example.com", false},
		{"Empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := IsEmail(tc.input); result != tc.expected {
				t.Errorf("IsEmail(%q) = %v; want %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestGenerateVerificationCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateVerificationCode()
		if len(code) != 4 {
			t.Fatalf("expected 4 digit code, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("expected numeric code, got %q", code)
			}
		}
	}
}
