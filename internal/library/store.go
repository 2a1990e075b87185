package library

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Slot is the single durable location the collection is written to. Load
// reports ok=false when the slot has never been written.
type Slot interface {
	Load() (payload []byte, ok bool, err error)
	Save(payload []byte) error
}

// Store is the single source of truth for the prompt collection. Every
// successful mutation rewrites the whole collection to the slot before it
// returns. A nil slot keeps the store memory-only.
type Store struct {
	mu      sync.Mutex
	slot    Slot
	prompts []Prompt
	newID   func() string
	now     func() time.Time
	titles  *titleCollator
}

func NewStore(slot Slot, locale language.Tag) *Store {
	s := &Store{
		slot:   slot,
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
		titles: newTitleCollator(locale),
	}
	s.prompts = loadCollection(slot)
	return s
}

// loadCollection reads the slot once at startup. Any failure degrades to
// an empty collection instead of propagating.
func loadCollection(slot Slot) []Prompt {
	if slot == nil {
		return nil
	}
	payload, ok, err := slot.Load()
	if err != nil {
		log.Printf("library slot unreadable, starting empty: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var prompts []Prompt
	if err := json.Unmarshal(payload, &prompts); err != nil {
		log.Printf("library slot corrupt, starting empty: %v", err)
		return nil
	}
	return prompts
}

// Create validates and prepends a new record, newest first. The returned
// error may be a PersistenceError, in which case the record is already
// part of the in-memory collection.
func (s *Store) Create(title, text, thumbnail, negativeText string) (Prompt, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" {
		return Prompt{}, &ValidationError{Field: "title", Reason: ReasonRequired}
	}
	if text == "" {
		return Prompt{}, &ValidationError{Field: "text", Reason: ReasonRequired}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prompt := Prompt{
		ID:           s.newID(),
		Title:        title,
		Text:         text,
		Thumbnail:    strings.TrimSpace(thumbnail),
		NegativeText: strings.TrimSpace(negativeText),
		CreatedAt:    s.now(),
	}
	s.prompts = append([]Prompt{prompt}, s.prompts...)
	if err := s.persistLocked(); err != nil {
		return prompt, err
	}
	return prompt, nil
}

// Update replaces title, text and negativeText of an existing record.
// ID, createdAt and thumbnail are never touched. Validation runs before
// any field changes.
func (s *Store) Update(id, title, text, negativeText string) error {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" {
		return &ValidationError{Field: "title", Reason: ReasonRequired}
	}
	if text == "" {
		return &ValidationError{Field: "text", Reason: ReasonRequired}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index := -1
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return &NotFoundError{ID: id}
	}
	s.prompts[index].Title = title
	s.prompts[index].Text = text
	s.prompts[index].NegativeText = strings.TrimSpace(negativeText)
	return s.persistLocked()
}

// Delete removes a record by id. An unknown id is a no-op, not an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			s.prompts = append(s.prompts[:i], s.prompts[i+1:]...)
			return s.persistLocked()
		}
	}
	return nil
}

// List returns a fresh ordering view of the collection. The stored order
// is never mutated; ties keep it (stable sort).
func (s *Store) List(sortBy SortOption) []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := make([]Prompt, len(s.prompts))
	copy(view, s.prompts)
	s.sortView(view, sortBy)
	return view
}

func (s *Store) persistLocked() error {
	if s.slot == nil {
		return nil
	}
	payload, err := json.Marshal(s.prompts)
	if err != nil {
		return &PersistenceError{Err: err}
	}
	if err := s.slot.Save(payload); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}
