package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-backend/internal/domains/tag"
)

type fakeRepository struct {
	tags   map[int]*tag.Tag
	used   map[int]bool
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tags:   map[int]*tag.Tag{},
		used:   map[int]bool{},
		nextID: 1,
	}
}

func (f *fakeRepository) put(t tag.Tag) {
	copied := t
	f.tags[t.ID] = &copied
	if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
}

func (f *fakeRepository) GetAll(_ context.Context) ([]tag.Tag, error) {
	out := []tag.Tag{}
	for _, t := range f.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int) (*tag.Tag, error) {
	t, ok := f.tags[id]
	if !ok {
		return nil, tag.ErrTagNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRepository) Search(_ context.Context, term string) ([]tag.Tag, error) {
	out := []tag.Tag{}
	for _, t := range f.tags {
		if strings.Contains(strings.ToLower(t.Name), strings.ToLower(term)) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeRepository) Create(_ context.Context, name string, note *string) (*tag.Tag, error) {
	t := &tag.Tag{ID: f.nextID, Name: name, Note: note}
	f.nextID++
	f.tags[t.ID] = t
	copied := *t
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, t *tag.Tag) error {
	if _, ok := f.tags[t.ID]; !ok {
		return tag.ErrTagNotFound
	}
	copied := *t
	f.tags[t.ID] = &copied
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := f.tags[id]; !ok {
		return tag.ErrTagNotFound
	}
	delete(f.tags, id)
	return nil
}

func (f *fakeRepository) ExistsByName(_ context.Context, name string, excludeID int) (bool, error) {
	for _, t := range f.tags {
		if t.ID != excludeID && strings.EqualFold(t.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) IsTagUsed(_ context.Context, id int) (bool, error) {
	return f.used[id], nil
}

func strPtr(s string) *string { return &s }

func TestCreateRejectsDuplicateName(t *testing.T) {
	repo := newFakeRepository()
	repo.put(tag.Tag{ID: 1, Name: "golang"})
	svc := NewTagService(repo)

	_, err := svc.Create(context.Background(), tag.CreateTagRequest{Name: "GoLang"})
	assert.ErrorIs(t, err, tag.ErrDuplicateTagName)
}

func TestCreateAssignsSequentialID(t *testing.T) {
	repo := newFakeRepository()
	repo.put(tag.Tag{ID: 4, Name: "golang"})
	svc := NewTagService(repo)

	created, err := svc.Create(context.Background(), tag.CreateTagRequest{Name: "web", Note: strPtr("frontend")})
	require.NoError(t, err)

	assert.Equal(t, 5, created.ID)
	assert.Equal(t, "web", created.Name)
	require.NotNil(t, created.Note)
	assert.Equal(t, "frontend", *created.Note)
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	repo := newFakeRepository()
	repo.put(tag.Tag{ID: 1, Name: "golang", Note: strPtr("language")})
	svc := NewTagService(repo)

	updated, err := svc.Update(context.Background(), 1, tag.UpdateTagRequest{Name: strPtr("go")})
	require.NoError(t, err)

	assert.Equal(t, "go", updated.Name)
	require.NotNil(t, updated.Note)
	assert.Equal(t, "language", *updated.Note)
}

func TestUpdateRenameRejectsDuplicate(t *testing.T) {
	repo := newFakeRepository()
	repo.put(tag.Tag{ID: 1, Name: "golang"})
	repo.put(tag.Tag{ID: 2, Name: "web"})
	svc := NewTagService(repo)

	_, err := svc.Update(context.Background(), 2, tag.UpdateTagRequest{Name: strPtr("Golang")})
	assert.ErrorIs(t, err, tag.ErrDuplicateTagName)
}

func TestUpdateUnknownTag(t *testing.T) {
	svc := NewTagService(newFakeRepository())

	_, err := svc.Update(context.Background(), 99, tag.UpdateTagRequest{Name: strPtr("go")})
	assert.ErrorIs(t, err, tag.ErrTagNotFound)
}

func TestDeleteRejectsTagInUse(t *testing.T) {
	repo := newFakeRepository()
	repo.put(tag.Tag{ID: 1, Name: "golang"})
	repo.used[1] = true
	svc := NewTagService(repo)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, tag.ErrTagInUse)

	// Still there
	_, err = svc.GetByID(context.Background(), 1)
	assert.NoError(t, err)
}

func TestDeleteUnusedTag(t *testing.T) {
	repo := newFakeRepository()
	repo.put(tag.Tag{ID: 1, Name: "golang"})
	svc := NewTagService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, tag.ErrTagNotFound)
}
