package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-backend/internal/domains/category"
)

type fakeRepository struct {
	categories map[int16]*category.Category
	used       map[int16]bool
	nextID     int16
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories: map[int16]*category.Category{},
		used:       map[int16]bool{},
		nextID:     1,
	}
}

func (f *fakeRepository) put(c category.Category) {
	copied := c
	f.categories[c.ID] = &copied
	if c.ID >= f.nextID {
		f.nextID = c.ID + 1
	}
}

func (f *fakeRepository) GetAll(_ context.Context) ([]category.Category, error) {
	out := []category.Category{}
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepository) Search(_ context.Context, term string) ([]category.Category, error) {
	needle := strings.ToLower(term)
	out := []category.Category{}
	for _, c := range f.categories {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Description), needle) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int16) (*category.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeRepository) Create(_ context.Context, c *category.Category) (*category.Category, error) {
	c.ID = f.nextID
	f.nextID++
	copied := *c
	f.categories[c.ID] = &copied
	return c, nil
}

func (f *fakeRepository) Update(_ context.Context, c *category.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	copied := *c
	f.categories[c.ID] = &copied
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int16) error {
	if _, ok := f.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeRepository) Exists(_ context.Context, id int16) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeRepository) ExistsByName(_ context.Context, name string, excludeID int16) (bool, error) {
	for _, c := range f.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) IsCategoryUsed(_ context.Context, id int16) (bool, error) {
	return f.used[id], nil
}

func (f *fakeRepository) HasChildren(_ context.Context, id int16) (bool, error) {
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func int16Ptr(v int16) *int16 { return &v }

func TestCreateRejectsUnknownParent(t *testing.T) {
	svc := NewCategoryService(newFakeRepository())

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name:        "Sports",
		Description: "Sports news",
		ParentID:    int16Ptr(42),
	})
	assert.ErrorIs(t, err, category.ErrParentNotFound)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	repo := newFakeRepository()
	repo.put(category.Category{ID: 1, Name: "Sports"})
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name:        "SPORTS",
		Description: "Sports news",
	})
	assert.ErrorIs(t, err, category.ErrDuplicateName)
}

func TestUpdateParentBlockedWhileUsed(t *testing.T) {
	repo := newFakeRepository()
	repo.put(category.Category{ID: 1, Name: "Sports", Description: "Sports news"})
	repo.put(category.Category{ID: 2, Name: "World", Description: "World news"})
	repo.used[1] = true
	svc := NewCategoryService(repo)

	_, err := svc.Update(context.Background(), 1, category.UpdateCategoryRequest{
		Name:        "Sports",
		Description: "Sports news",
		ParentID:    int16Ptr(2),
	})
	assert.ErrorIs(t, err, category.ErrParentChangeInUse)
}

func TestUpdateNonParentFieldsWhileUsed(t *testing.T) {
	repo := newFakeRepository()
	repo.put(category.Category{ID: 1, Name: "Sports", Description: "Sports news"})
	repo.used[1] = true
	svc := NewCategoryService(repo)

	updated, err := svc.Update(context.Background(), 1, category.UpdateCategoryRequest{
		Name:        "Sport",
		Description: "All sports",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sport", updated.Name)
	assert.Equal(t, "All sports", updated.Description)
}

func TestUpdateRejectsSelfParent(t *testing.T) {
	repo := newFakeRepository()
	repo.put(category.Category{ID: 1, Name: "Sports", Description: "Sports news"})
	svc := NewCategoryService(repo)

	_, err := svc.Update(context.Background(), 1, category.UpdateCategoryRequest{
		Name:        "Sports",
		Description: "Sports news",
		ParentID:    int16Ptr(1),
	})
	assert.ErrorIs(t, err, category.ErrSelfParent)
}

func TestDeleteBlockedWhileUsed(t *testing.T) {
	repo := newFakeRepository()
	repo.put(category.Category{ID: 1, Name: "Sports"})
	repo.used[1] = true
	svc := NewCategoryService(repo)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, category.ErrCategoryInUse)
}

func TestDeleteBlockedWithChildren(t *testing.T) {
	repo := newFakeRepository()
	repo.put(category.Category{ID: 1, Name: "Sports"})
	repo.put(category.Category{ID: 2, Name: "Football", ParentID: int16Ptr(1)})
	svc := NewCategoryService(repo)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, category.ErrCategoryInUse)
}

func TestDeleteLeafCategory(t *testing.T) {
	repo := newFakeRepository()
	repo.put(category.Category{ID: 1, Name: "Sports"})
	svc := NewCategoryService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
