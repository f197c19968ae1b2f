package utils

import "testing"

func TestSplitPassengerNames(t *testing.T) {
	names := SplitPassengerNames("John Doe\nJane Doe\n")
	if len(names) != 2 || names[0] != "John Doe" || names[1] != "Jane Doe" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestSplitPassengerNamesDropsBlanksAndExtraSpace(t *testing.T) {
	names := SplitPassengerNames("  John   Doe  \n\n\t\nJane Doe")
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %v", names)
	}
	if names[0] != "John Doe" {
		t.Fatalf("whitespace not normalized: %q", names[0])
	}
}

func TestSplitPassengerNamesEmpty(t *testing.T) {
	if names := SplitPassengerNames("   \n \n"); len(names) != 0 {
		t.Fatalf("expected no names, got %v", names)
	}
}
