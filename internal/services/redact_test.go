package services

import "testing"

func TestRedact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BJP", "Party X"},
		{"bjp", "Party X"},
		{"BJP supports ONOE for cost savings.", "Party X supports ONOE for cost savings."},
		{"Congress and AAP disagree", "Party X and Party X disagree"},
		{"BSP and SP", "Party X and Party X"},
		{"Narendra Modi met Rahul Gandhi", "Leader Y met Leader Y"},
		{"amit shah said", "Leader Y said"},
		{"Nothing to hide here.", "Nothing to hide here."},
	}

	for _, tc := range tests {
		if got := Redact(tc.in); got != tc.want {
			t.Errorf("Redact(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRedact_Idempotent(t *testing.T) {
	inputs := []string{
		"BJP and Congress under Narendra Modi",
		"The SP respects the aitc",
		ReplyConstitutional,
		ReplyModelFailure,
	}

	for _, in := range inputs {
		once := Redact(in)
		if twice := Redact(once); twice != once {
			t.Errorf("Redact not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestRedact_FallbackUnchanged(t *testing.T) {
	if got := Redact(ReplyModelFailure); got != ReplyModelFailure {
		t.Errorf("expected fallback text unchanged, got %q", got)
	}
}

func TestBlindRead(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The BJP won.", "The a national political party won."},
		{"Bharatiya Janata Party", "a national political party"},
		{"congress protested", "a national opposition party protested"},
		{"The state government disagreed", "The the regional administration disagreed"},
		{"The PM spoke", "The the head of government spoke"},
		{"Delhi votes", "the national capital votes"},
		{"Elections in India", "Elections in the country"},
		{"Rain expected", "Rain expected"},
	}

	for _, tc := range tests {
		if got := BlindRead(tc.in); got != tc.want {
			t.Errorf("BlindRead(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBlindRead_LongerNamesReplacedFirst(t *testing.T) {
	got := BlindRead("Indian National Congress")
	if got != "a national opposition party" {
		t.Errorf("expected full party name replaced as a unit, got %q", got)
	}
}
