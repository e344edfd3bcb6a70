package service

import (
	"database/sql"
	"errors"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type MenuService struct {
	items      MenuRepository
	categories CategoryRepository
}

func NewMenuService(items MenuRepository, categories CategoryRepository) *MenuService {
	return &MenuService{items: items, categories: categories}
}

// ListItems returns the public menu; admins also see unavailable items.
func (s *MenuService) ListItems(includeUnavailable bool) ([]domain.MenuItem, error) {
	if includeUnavailable {
		return s.items.ListAll()
	}
	return s.items.ListAvailable()
}

func (s *MenuService) ListFeatured() ([]domain.MenuItem, error) {
	return s.items.ListFeatured()
}

func (s *MenuService) ListByCategory(categoryID int) ([]domain.MenuItem, error) {
	return s.items.ListByCategory(categoryID)
}

func (s *MenuService) GetItem(id int) (domain.MenuItem, error) {
	item, err := s.items.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return item, ErrNotFound
	}
	return item, err
}

func (s *MenuService) CreateItem(input domain.MenuItemInput) (domain.MenuItem, error) {
	if err := checkStruct(input); err != nil {
		return domain.MenuItem{}, err
	}

	item := domain.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Ingredients: input.Ingredients,
		CategoryID:  input.CategoryID,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}

	if err := s.items.Insert(&item); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

// UpdateItem merges the non-nil fields of the update into the stored item.
func (s *MenuService) UpdateItem(id int, update domain.MenuItemUpdate) (domain.MenuItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return item, err
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Image != nil {
		item.Image = *update.Image
	}
	if update.Ingredients != nil {
		item.Ingredients = *update.Ingredients
	}
	if update.CategoryID != nil {
		item.CategoryID = update.CategoryID
	}
	if update.IsAvailable != nil {
		item.IsAvailable = *update.IsAvailable
	}
	if update.IsFeatured != nil {
		item.IsFeatured = *update.IsFeatured
	}

	if err := s.items.Update(&item); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(id int) error {
	err := s.items.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *MenuService) ListCategories() ([]domain.Category, error) {
	return s.categories.List()
}

func (s *MenuService) GetCategory(id int) (domain.Category, error) {
	c, err := s.categories.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

func (s *MenuService) CreateCategory(input domain.CategoryInput) (domain.Category, error) {
	if err := checkStruct(input); err != nil {
		return domain.Category{}, err
	}

	c := domain.Category{Name: input.Name, Slug: input.Slug}
	if err := s.categories.Insert(&c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *MenuService) UpdateCategory(id int, update domain.CategoryUpdate) (domain.Category, error) {
	c, err := s.GetCategory(id)
	if err != nil {
		return c, err
	}

	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Slug != nil {
		c.Slug = *update.Slug
	}

	if err := s.categories.Update(&c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// DeleteCategory removes the category without touching the menu items that
// reference it; their reads resolve to a null category from then on.
func (s *MenuService) DeleteCategory(id int) error {
	err := s.categories.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
