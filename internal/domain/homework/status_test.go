package homework

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStatus_AllKnownStatuses(t *testing.T) {
	for status, verdict := range StatusVerdicts {
		t.Run(status, func(t *testing.T) {
			hw := Homework{Name: "hw1", Status: status}
			msg, err := ParseStatus(hw)
			if err != nil {
				t.Fatalf("ParseStatus() err = %v", err)
			}
			if !strings.Contains(msg, "hw1") {
				t.Errorf("message %q does not contain the homework name", msg)
			}
			if !strings.Contains(msg, verdict) {
				t.Errorf("message %q does not contain the verdict %q", msg, verdict)
			}

			// Pure function: formatting the same item twice yields the
			// same string.
			again, err := ParseStatus(hw)
			if err != nil {
				t.Fatalf("ParseStatus() second call err = %v", err)
			}
			if again != msg {
				t.Errorf("ParseStatus is not idempotent: %q vs %q", msg, again)
			}
		})
	}
}

func TestParseStatus_Errors(t *testing.T) {
	cases := []struct {
		name string
		hw   Homework
		want error
	}{
		{"missing name", Homework{Status: "approved"}, ErrMissingName},
		{"missing status", Homework{Name: "hw1"}, ErrMissingStatus},
		{"unknown status", Homework{Name: "hw1", Status: "burned"}, ErrUnknownStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStatus(tc.hw)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseStatus(%+v) err = %v, want %v", tc.hw, err, tc.want)
			}
		})
	}
}
