package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/kogocampus/course-scraper/internal/storage"
	"github.com/kogocampus/course-scraper/internal/store"
	"github.com/kogocampus/course-scraper/internal/store/model"
)

// fakeStore is an in-memory stand-in for the redis-backed store.
type fakeStore struct {
	mapping     *fakeMapping
	task        *fakeTask
	unavailable bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		mapping: &fakeMapping{data: map[string]string{}},
		task:    &fakeTask{records: map[string]model.TaskRecord{}},
	}
}

func (s *fakeStore) Mapping() store.Mapping { return s.mapping }
func (s *fakeStore) Task() store.Task       { return s.task }
func (s *fakeStore) Close() error           { return nil }

func (s *fakeStore) Health(ctx context.Context) error {
	if s.unavailable {
		return store.ErrStoreUnavailable
	}
	return nil
}

type fakeMapping struct {
	data map[string]string
}

func (m *fakeMapping) validate(name string) error {
	return store.ValidateSchoolName(name)
}

func (m *fakeMapping) Get(ctx context.Context, name string) (string, error) {
	if err := m.validate(name); err != nil {
		return "", err
	}
	path, ok := m.data[name]
	if !ok {
		return "", store.ErrRecordNotFound
	}
	return path, nil
}

func (m *fakeMapping) Set(ctx context.Context, name, objectPath string) error {
	if err := m.validate(name); err != nil {
		return err
	}
	m.data[name] = objectPath
	return nil
}

func (m *fakeMapping) SetIfAbsent(ctx context.Context, name, objectPath string) (bool, error) {
	if err := m.validate(name); err != nil {
		return false, err
	}
	if _, ok := m.data[name]; ok {
		return false, nil
	}
	m.data[name] = objectPath
	return true, nil
}

func (m *fakeMapping) Delete(ctx context.Context, name string) error {
	if err := m.validate(name); err != nil {
		return err
	}
	if _, ok := m.data[name]; !ok {
		return store.ErrRecordNotFound
	}
	delete(m.data, name)
	return nil
}

func (m *fakeMapping) Exists(ctx context.Context, name string) (bool, error) {
	if err := m.validate(name); err != nil {
		return false, err
	}
	_, ok := m.data[name]
	return ok, nil
}

func (m *fakeMapping) List(ctx context.Context) ([]model.SchoolMapping, error) {
	mappings := make([]model.SchoolMapping, 0, len(m.data))
	for name, path := range m.data {
		mappings = append(mappings, model.SchoolMapping{Name: name, ObjectPath: path})
	}
	return mappings, nil
}

type fakeTask struct {
	records map[string]model.TaskRecord
}

func (t *fakeTask) Save(ctx context.Context, record model.TaskRecord) error {
	t.records[record.TaskName] = record
	return nil
}

func (t *fakeTask) List(ctx context.Context) ([]model.TaskRecord, error) {
	records := make([]model.TaskRecord, 0, len(t.records))
	for _, record := range t.records {
		records = append(records, record)
	}
	return records, nil
}

// fakeBlobStore is an in-memory stand-in for the object store.
type fakeBlobStore struct {
	objects map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (b *fakeBlobStore) FetchJSON(ctx context.Context, path string) (json.RawMessage, error) {
	data, ok := b.objects[path]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	if !json.Valid(data) {
		return nil, storage.NewStorageError("get", fmt.Errorf("object %s is not valid JSON", path))
	}
	return json.RawMessage(data), nil
}

func (b *fakeBlobStore) PutJSON(ctx context.Context, path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return storage.NewStorageError("put", err)
	}
	b.objects[path] = data
	return nil
}

func (b *fakeBlobStore) Head(ctx context.Context, path string) (bool, error) {
	_, ok := b.objects[path]
	return ok, nil
}

func (b *fakeBlobStore) List(ctx context.Context, prefix, continuationToken string, maxKeys int) (*storage.ObjectPage, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	page := &storage.ObjectPage{}
	seenDirs := map[string]bool{}

	keys := make([]string, 0, len(b.objects))
	for key := range b.objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(key, prefix)
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			dir := prefix + rest[:idx+1]
			if !seenDirs[dir] {
				seenDirs[dir] = true
				page.Directories = append(page.Directories, storage.DirectoryEntry{
					Name: rest[:idx],
					Path: dir,
				})
			}
			continue
		}
		page.Files = append(page.Files, storage.FileEntry{
			Name: rest,
			Path: key,
			Size: int64(len(b.objects[key])),
		})
	}

	page.KeyCount = len(page.Directories) + len(page.Files)
	return page, nil
}
