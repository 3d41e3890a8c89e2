package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"user.name@example.com", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"a@c .com", false},
		{"@b.co", false},
		{"a@.co", true},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.in); got != tc.want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidSaudiMobile(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0551234567", true},
		{"0501234567", true},
		{"05 5123 4567", true},
		{"0441234567", false},
		{"0521234567", false},
		{"055123456", false},
		{"05512345678", false},
		{"1551234567", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidSaudiMobile(tc.in); got != tc.want {
			t.Fatalf("IsValidSaudiMobile(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFieldLifecycle(t *testing.T) {
	field := NewField(
		Rule{Check: IsPresent, Message: "البريد الإلكتروني مطلوب"},
		Rule{Check: IsValidEmail, Message: "البريد الإلكتروني غير صحيح"},
	)

	if field.State() != StateUntouched {
		t.Fatal("new field should start untouched")
	}

	if got := field.Blur("not-an-email"); got != StateInvalid {
		t.Fatalf("expected invalid after blur, got %v", got)
	}
	if field.Message() != "البريد الإلكتروني غير صحيح" {
		t.Fatalf("unexpected message %q", field.Message())
	}

	field.Input()
	if field.State() != StateUntouched || field.Message() != "" {
		t.Fatal("typing should optimistically clear the error")
	}

	if got := field.Blur("a@b.co"); got != StateValid {
		t.Fatalf("expected valid after blur, got %v", got)
	}

	field.Input()
	if field.State() != StateValid {
		t.Fatal("typing in a valid field should not reset it")
	}

	if got := field.Blur(""); got != StateInvalid {
		t.Fatalf("expected invalid for empty required value, got %v", got)
	}
	if field.Message() != "البريد الإلكتروني مطلوب" {
		t.Fatalf("expected the required-rule message first, got %q", field.Message())
	}
}
