package tradejournal

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStrategies_Add(t *testing.T) {
	book := NewStrategies()
	if err := book.Add(NewStrategy("pullback", "buy the dip", []string{"trend up"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := book.Add(NewStrategy("pullback", "", nil)); err == nil {
		t.Error("duplicate names must be rejected")
	}
	if err := book.Add(NewStrategy("  ", "", nil)); err == nil {
		t.Error("blank names must be rejected")
	}
	if book.Len() != 1 {
		t.Errorf("got %d strategies, want 1", book.Len())
	}
}

func TestStrategies_Archive(t *testing.T) {
	book := NewStrategies()
	book.Add(NewStrategy("pullback", "", nil))
	book.Add(NewStrategy("breakout", "", nil))

	if err := book.Archive("pullback"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := book.Archive("unknown"); err == nil {
		t.Error("archiving an unknown strategy must fail")
	}

	active := book.Active()
	if len(active) != 1 || active[0].Name != "breakout" {
		t.Errorf("active: got %v, want [breakout]", active)
	}
	if len(book.All()) != 2 {
		t.Error("archived strategies stay in the book")
	}

	s, found := book.Get("pullback")
	if !found || !s.Archived {
		t.Error("the archived strategy must still resolve by name")
	}
}

func TestStrategies_SortedByName(t *testing.T) {
	book := NewStrategies()
	book.Add(NewStrategy("momo", "", nil))
	book.Add(NewStrategy("breakout", "", nil))

	all := book.All()
	if all[0].Name != "breakout" || all[1].Name != "momo" {
		t.Errorf("strategies must sort by name, got %v %v", all[0].Name, all[1].Name)
	}
}

func TestStrategies_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategies.jsonl")

	book := NewStrategies()
	book.Add(NewStrategy("pullback", "buy the first pullback", []string{"trend up", "volume above average"}))
	book.Archive("pullback")

	if err := SaveStrategies(path, book); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadStrategies(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s, found := loaded.Get("pullback")
	if !found {
		t.Fatal("pullback lost in round trip")
	}
	if s.Description != "buy the first pullback" || len(s.Rules) != 2 || !s.Archived {
		t.Errorf("round trip changed the strategy: %+v", s)
	}
}

func TestLoadStrategies_Missing(t *testing.T) {
	book, err := LoadStrategies(filepath.Join(t.TempDir(), "strategies.jsonl"))
	if err != nil {
		t.Fatalf("a missing file is an empty book, got %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("got %d strategies, want 0", book.Len())
	}
}

func TestDecodeStrategies_ReportsLine(t *testing.T) {
	_, err := DecodeStrategies(strings.NewReader("{\"id\":\"a\",\"name\":\"pullback\"}\nnope\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("decode error must name the line, got %v", err)
	}
}
