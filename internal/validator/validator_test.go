package validator

import "testing"

func TestValidator(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Error("expected a new validator to be valid")
	}
	v.Check(false, "rating", "must be at least one")
	v.Check(true, "content", "must be provided")
	if v.Valid() {
		t.Error("expected validator with errors to be invalid")
	}
	if _, exists := v.Errors["content"]; exists {
		t.Error("passing check should not record an error")
	}
	// First message for a key wins.
	v.AddError("rating", "another message")
	if v.Errors["rating"] != "must be at least one" {
		t.Errorf("expected original message to be kept; got %q", v.Errors["rating"])
	}
}

func TestMatchesEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ada@example.com", true},
		// The HTML5 pattern accepts dotless domains.
		{"ada@example", true},
		{"", false},
		{"@example.com", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.email, EmailRX); got != tt.want {
			t.Errorf("Matches(%q) = %v; want %v", tt.email, got, tt.want)
		}
	}
}

func TestIn(t *testing.T) {
	if !In("author", "author", "reader") {
		t.Error("expected author to be in list")
	}
	if In("admin", "author", "reader") {
		t.Error("did not expect admin to be in list")
	}
}

func TestUnique(t *testing.T) {
	if !Unique([]string{"Chinua Achebe", "Buchi Emecheta"}) {
		t.Error("expected distinct values to be unique")
	}
	if Unique([]string{"Chinua Achebe", "Chinua Achebe"}) {
		t.Error("expected repeated values to not be unique")
	}
}
