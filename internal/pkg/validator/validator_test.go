package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidNationalID(t *testing.T) {
	valid := []string{"10000000000", "99999999999"}
	invalid := []string{"", "1234567890", "123456789012", "1000000000a", "abcdefghijk"}
	for _, id := range valid {
		if !IsValidNationalID(id) {
			t.Errorf("IsValidNationalID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidNationalID(id) {
			t.Errorf("IsValidNationalID(%q) = true, want false", id)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00:00", "09:05:00", "18:30:00", "23:59:59"}
	invalid := []string{"", "24:00:00", "18:60:00", "9:00", "18.30.00", "banana"}
	for _, clock := range valid {
		if !IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = true, want false", clock)
		}
	}
}

func TestParseYearMonth(t *testing.T) {
	year, month, err := ParseYearMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseYearMonth(2024-02) returned error: %v", err)
	}
	if year != 2024 || month != time.February {
		t.Errorf("ParseYearMonth(2024-02) = (%d, %v), want (2024, February)", year, month)
	}

	invalid := []string{"", "2024", "2024-13", "2024-00", "24-02", "2024/02", "2024-2"}
	for _, s := range invalid {
		if _, _, err := ParseYearMonth(s); err == nil {
			t.Errorf("ParseYearMonth(%q) = nil error, want error", s)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2100, time.February, 28}, // century, not a leap year
		{2000, time.February, 29}, // 400-year rule
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		got := DaysInMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}
