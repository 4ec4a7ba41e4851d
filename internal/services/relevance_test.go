package services

import "testing"

func TestIsONOERelated(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"What is One Nation One Election?", true},
		{"explain onoe", true},
		{"Would a simultaneous election save money?", true},
		{"Can states synchronize terms?", true},
		{"election and voting turnout", true},
		{"Lok Sabha and Assembly terms", true},
		{"election election election", false},
		{"voting machines", false},
		{"What's the weather today?", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsONOERelated(tc.question); got != tc.want {
			t.Errorf("IsONOERelated(%q) = %v, want %v", tc.question, got, tc.want)
		}
	}
}
