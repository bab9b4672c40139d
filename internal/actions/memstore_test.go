package actions

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/chainrent/chainrent/internal/docstore"
)

// memStore is an in-memory document store used by the action tests. It keeps
// one collection per record type, applies merge patches exactly as given and
// counts every store call so tests can assert the authorization checks
// short-circuit before any store interaction.
type memStore struct {
	mu    sync.Mutex
	docs  map[string][]reflect.Value
	calls int
	fail  error
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]reflect.Value{}}
}

func (s *memStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *memStore) failWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func collectionOf(t reflect.Type) string {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.Name()
}

func (s *memStore) begin() error {
	s.calls++
	return s.fail
}

func (s *memStore) Create(_ context.Context, doc interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	v := reflect.ValueOf(doc).Elem()
	name := collectionOf(v.Type())
	copied := reflect.New(v.Type()).Elem()
	copied.Set(v)
	s.docs[name] = append(s.docs[name], copied)
	return nil
}

func (s *memStore) List(_ context.Context, dest interface{}, limit int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return 0, err
	}
	slice := reflect.ValueOf(dest).Elem()
	name := collectionOf(slice.Type())
	rows := append([]reflect.Value{}, s.docs[name]...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FieldByName("ID").Int() > rows[j].FieldByName("ID").Int()
	})
	out := reflect.MakeSlice(slice.Type(), 0, len(rows))
	for i, row := range rows {
		if i == limit {
			break
		}
		out = reflect.Append(out, row)
	}
	slice.Set(out)
	return int64(len(rows)), nil
}

func (s *memStore) Get(_ context.Context, id int64, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	v := reflect.ValueOf(dest).Elem()
	name := collectionOf(v.Type())
	for _, row := range s.docs[name] {
		if row.FieldByName("ID").Int() == id {
			v.Set(row)
			return nil
		}
	}
	return docstore.ErrNotFound
}

func (s *memStore) Update(_ context.Context, model interface{}, id int64, patch map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	name := collectionOf(reflect.TypeOf(model))
	for i, row := range s.docs[name] {
		if row.FieldByName("ID").Int() != id {
			continue
		}
		for column, value := range patch {
			setColumn(s.docs[name][i], column, value)
		}
		return nil
	}
	return docstore.ErrNotFound
}

func (s *memStore) Delete(_ context.Context, model interface{}, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	name := collectionOf(reflect.TypeOf(model))
	for i, row := range s.docs[name] {
		if row.FieldByName("ID").Int() == id {
			s.docs[name] = append(s.docs[name][:i], s.docs[name][i+1:]...)
			return nil
		}
	}
	return docstore.ErrNotFound
}

// setColumn writes a snake_case column value onto the matching struct field.
func setColumn(row reflect.Value, column string, value interface{}) {
	fieldName := strings.ReplaceAll(column, "_", "")
	t := row.Type()
	for i := 0; i < t.NumField(); i++ {
		if strings.EqualFold(t.Field(i).Name, fieldName) {
			row.Field(i).Set(reflect.ValueOf(value).Convert(t.Field(i).Type))
			return
		}
	}
}

var _ docstore.Store = (*memStore)(nil)
