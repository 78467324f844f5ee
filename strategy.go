package tradejournal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Strategy is a named trading setup with the checklist of rules that define
// it. Transactions reference strategies by name, and the stats report breaks
// performance down per strategy.
type Strategy struct {
	ID          string
	Name        string
	Description string
	Rules       []string // the setup checklist, in order
	Archived    bool     // retired strategies stay for history but are hidden
}

// NewStrategy creates a new strategy with a fresh id.
func NewStrategy(name, description string, rules []string) Strategy {
	return Strategy{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Rules:       rules,
	}
}

// MarshalJSON implements the json.Marshaler interface with a stable key order.
func (s Strategy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("name", s.Name)
	w.Optional("description", s.Description)
	w.Optional("rules", s.Rules)
	w.Optional("archived", s.Archived)
	return w.MarshalJSON()
}

// Strategies is the journal's strategy book, unique by name.
type Strategies struct {
	list []Strategy
}

// NewStrategies creates an empty strategy book.
func NewStrategies() *Strategies { return &Strategies{} }

// Len returns the number of strategies, archived included.
func (b *Strategies) Len() int { return len(b.list) }

// Get returns the strategy with the given name.
func (b *Strategies) Get(name string) (Strategy, bool) {
	for _, s := range b.list {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}

// Add inserts a strategy; the name must not already be taken.
func (b *Strategies) Add(s Strategy) error {
	if s.Name == "" {
		return fmt.Errorf("strategy name is missing")
	}
	if _, exists := b.Get(s.Name); exists {
		return fmt.Errorf("strategy %q already exists", s.Name)
	}
	b.list = append(b.list, s)
	b.sort()
	return nil
}

// Archive marks a strategy as retired.
func (b *Strategies) Archive(name string) error {
	for i := range b.list {
		if b.list[i].Name == name {
			b.list[i].Archived = true
			return nil
		}
	}
	return fmt.Errorf("strategy %q not found", name)
}

// Active returns the non-archived strategies, sorted by name.
func (b *Strategies) Active() []Strategy {
	var out []Strategy
	for _, s := range b.list {
		if !s.Archived {
			out = append(out, s)
		}
	}
	return out
}

// All returns every strategy, sorted by name.
func (b *Strategies) All() []Strategy { return b.list }

func (b *Strategies) sort() {
	sort.SliceStable(b.list, func(i, j int) bool { return b.list[i].Name < b.list[j].Name })
}

// strategyRecord is a specialized struct for decoding a strategy line.
type strategyRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rules       []string `json:"rules"`
	Archived    bool     `json:"archived"`
}

// DecodeStrategies reads a JSONL stream of strategies.
func DecodeStrategies(r io.Reader) (*Strategies, error) {
	book := NewStrategies()
	scanner := bufio.NewScanner(r)

	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec strategyRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode strategy: %w", i, err)
		}
		if err := book.Add(Strategy(rec)); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return book, nil
}

// EncodeStrategies writes the strategy book in canonical JSONL form.
func EncodeStrategies(w io.Writer, b *Strategies) error {
	for _, s := range b.list {
		bs, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", bs); err != nil {
			return err
		}
	}
	return nil
}

// LoadStrategies reads the strategies file; a missing file is an empty book.
func LoadStrategies(path string) (*Strategies, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStrategies(), nil
		}
		return nil, err
	}
	defer f.Close()
	return DecodeStrategies(f)
}

// SaveStrategies writes the strategies file.
func SaveStrategies(path string, b *Strategies) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeStrategies(f, b)
}
