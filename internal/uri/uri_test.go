package uri

import "testing"

func TestOpen(t *testing.T) {
	got := Open("My Vault", "journal/2024-03-05.md", "")

	want := "obsidian://open?vault=My%20Vault&file=journal%2F2024-03-05.md"
	if got != want {
		t.Errorf("Open() = %q, want %q", got, want)
	}
}

func TestOpen_WithAnchor(t *testing.T) {
	got := Open("vault", "2024-03-05.md", "Morning run")

	want := "obsidian://open?vault=vault&file=2024-03-05.md%23Morning%20run"
	if got != want {
		t.Errorf("Open() = %q, want %q", got, want)
	}
}

func TestOpen_SpacesAreNotPlusEncoded(t *testing.T) {
	got := Open("a b", "c d.md", "")

	for _, c := range got {
		if c == '+' {
			t.Fatalf("Open() = %q, contains '+'", got)
		}
	}
}
