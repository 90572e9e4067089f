package util

import "testing"

func TestHashPassphraseStable(t *testing.T) {
	a := HashPassphrase("Board1234")
	b := HashPassphrase("Board1234")
	if a != b {
		t.Fatalf("hash not deterministic")
	}
	if a == HashPassphrase("Board1235") {
		t.Fatalf("distinct inputs hashed equal")
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha256 length 64, got %d", len(a))
	}
}

func TestValidatePassphrase(t *testing.T) {
	cases := []struct {
		pass string
		ok   bool
	}{
		{"Board1234", true},
		{"short1", false},
		{"lettersonly", false},
		{"12345678", false},
		{"safety2026", true},
	}
	for _, c := range cases {
		err := ValidatePassphrase(c.pass)
		if c.ok && err != nil {
			t.Fatalf("ValidatePassphrase(%q) = %v, want nil", c.pass, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("ValidatePassphrase(%q) = nil, want error", c.pass)
		}
	}
}
