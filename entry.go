package tradejournal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Entry is a dated markdown note in the journal: a reflection, a post-trade
// debrief, anything worth keeping next to the numbers.
type Entry struct {
	ID      string
	Time    time.Time
	Title   string   // optional; Headline falls back to the body's first heading
	Body    string   // markdown
	Tags    []string // free-form labels, lowercase
	Symbols []string // tickers this note relates to
}

// NewEntry creates a new entry with a fresh id.
func NewEntry(at time.Time, title, body string, tags, symbols []string) Entry {
	for i, s := range symbols {
		symbols[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	for i, t := range tags {
		tags[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return Entry{
		ID:      uuid.NewString(),
		Time:    at.UTC(),
		Title:   title,
		Body:    body,
		Tags:    tags,
		Symbols: symbols,
	}
}

// Date returns the day the entry falls on.
func (e Entry) Date() Date { return DateOf(e.Time) }

// Headline returns the entry's title, or the first markdown heading found in
// the body, or the first line of the body as a last resort.
func (e Entry) Headline() string {
	if e.Title != "" {
		return e.Title
	}

	source := []byte(e.Body)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var headline string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(source))
			}
			headline = strings.TrimSpace(b.String())
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if headline != "" {
		return headline
	}

	line, _, _ := strings.Cut(strings.TrimSpace(e.Body), "\n")
	return line
}

// MarshalJSON implements the json.Marshaler interface with a stable key order.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("time", e.Time.UTC().Format(TimeFormat))
	w.Optional("title", e.Title)
	w.Append("body", e.Body)
	w.Optional("tags", e.Tags)
	w.Optional("symbols", e.Symbols)
	return w.MarshalJSON()
}

// entryRecord is a specialized struct for decoding an entry line.
type entryRecord struct {
	ID      string   `json:"id"`
	Time    string   `json:"time"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags"`
	Symbols []string `json:"symbols"`
}

// DecodeEntries reads a JSONL stream of journal entries, sorted by time then id.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // entries can hold long markdown bodies

	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec entryRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode entry: %w", i, err)
		}
		at, err := time.Parse(TimeFormat, rec.Time)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid time %q: %w", i, rec.Time, err)
		}
		entries = append(entries, Entry{
			ID:      rec.ID,
			Time:    at.UTC(),
			Title:   rec.Title,
			Body:    rec.Body,
			Tags:    rec.Tags,
			Symbols: rec.Symbols,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Time.Equal(entries[j].Time) {
			return entries[i].Time.Before(entries[j].Time)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// EncodeEntry writes a single entry as one JSONL line.
func EncodeEntry(w io.Writer, e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// LoadEntries reads the entries file; a missing file is an empty journal.
func LoadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return DecodeEntries(f)
}

// AppendEntry appends one entry to the entries file, creating it on first use.
func AppendEntry(path string, e Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeEntry(f, e)
}
