package tradejournal

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestEntry_Headline(t *testing.T) {
	testCases := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "title wins",
			entry: Entry{Title: "Weekly debrief", Body: "# Something else"},
			want:  "Weekly debrief",
		},
		{
			name:  "first heading",
			entry: Entry{Body: "intro paragraph\n\n## Lessons\n\nmore text\n\n# Late title"},
			want:  "Lessons",
		},
		{
			name:  "fallback to first line",
			entry: Entry{Body: "Sold too early again.\nSecond line."},
			want:  "Sold too early again.",
		},
		{
			name:  "empty body",
			entry: Entry{},
			want:  "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entry.Headline(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewEntry_Normalizes(t *testing.T) {
	e := NewEntry(at("2025-08-20"), "", "body", []string{" Discipline "}, []string{" aapl "})
	if e.ID == "" {
		t.Error("a new entry must get an id")
	}
	if e.Tags[0] != "discipline" {
		t.Errorf("tags: got %q, want discipline", e.Tags[0])
	}
	if e.Symbols[0] != "AAPL" {
		t.Errorf("symbols: got %q, want AAPL", e.Symbols[0])
	}
}

func TestEntries_AppendLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.jsonl")

	second := NewEntry(at("2025-08-21"), "Later", "body two", nil, nil)
	first := NewEntry(at("2025-08-20"), "Earlier", "body one", []string{"fomo"}, []string{"NVDA"})

	// Append out of order; load sorts by time.
	if err := AppendEntry(path, second); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := AppendEntry(path, first); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := LoadEntries(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Error("entries must load sorted by time")
	}
	got := entries[0]
	if got.Title != "Earlier" || got.Body != "body one" {
		t.Errorf("round trip changed the entry: %+v", got)
	}
	if got.Tags[0] != "fomo" || got.Symbols[0] != "NVDA" {
		t.Errorf("round trip lost tags or symbols: %+v", got)
	}
}

func TestLoadEntries_Missing(t *testing.T) {
	entries, err := LoadEntries(filepath.Join(t.TempDir(), "entries.jsonl"))
	if err != nil {
		t.Fatalf("a missing file means no entries, got %v", err)
	}
	if entries != nil {
		t.Errorf("got %v, want nil", entries)
	}
}

func TestDecodeEntries_ReportsLine(t *testing.T) {
	_, err := DecodeEntries(strings.NewReader("{\"id\":\"a\",\"time\":\"2025-08-20T00:00:00Z\",\"body\":\"ok\"}\nnope\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("decode error must name the line, got %v", err)
	}
}

func TestEntries_LongBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.jsonl")
	long := strings.Repeat("a very long reflection ", 10000)
	if err := AppendEntry(path, NewEntry(at("2025-08-20"), "", long, nil, nil)); err != nil {
		t.Fatalf("append: %v", err)
	}
	entries, err := LoadEntries(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if entries[0].Body != long {
		t.Error("long bodies must survive the round trip")
	}
}
