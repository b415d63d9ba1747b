package validator

import (
	"testing"
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidCompanySlug(t *testing.T) {
	valid := []string{"acme", "acme-corp", "pt-maju-jaya-123"}
	invalid := []string{"ab", "Acme", "acme corp", "acme_corp", ""}
	for _, slug := range valid {
		if !IsValidCompanySlug(slug) {
			t.Errorf("IsValidCompanySlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range invalid {
		if IsValidCompanySlug(slug) {
			t.Errorf("IsValidCompanySlug(%q) = true, want false", slug)
		}
	}
}

func TestIsValidTimeSlotRange(t *testing.T) {
	valid := []string{"09.00 - 09.30", "14.00 - 14.30", "23.30 - 23.59"}
	invalid := []string{"9.00 - 9.30", "09:00 - 09:30", "09.00-09.30", "25.00 - 25.30", ""}
	for _, tr := range valid {
		if !IsValidTimeSlotRange(tr) {
			t.Errorf("IsValidTimeSlotRange(%q) = false, want true", tr)
		}
	}
	for _, tr := range invalid {
		if IsValidTimeSlotRange(tr) {
			t.Errorf("IsValidTimeSlotRange(%q) = true, want false", tr)
		}
	}
}

func TestIsValidMembershipNo(t *testing.T) {
	valid := []string{"1000", "43521", "2147484647"}
	invalid := []string{"999a", "10", "", "12-34"}
	for _, no := range valid {
		if !IsValidMembershipNo(no) {
			t.Errorf("IsValidMembershipNo(%q) = false, want true", no)
		}
	}
	for _, no := range invalid {
		if IsValidMembershipNo(no) {
			t.Errorf("IsValidMembershipNo(%q) = true, want false", no)
		}
	}
}
