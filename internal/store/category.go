package store

import (
	"fmt"

	"github.com/fekuna/omnipos-register/internal/model"
)

func (s *Store) AddCategory(c model.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryIndex(c.ID) >= 0 {
		return fmt.Errorf("category %s: %w", c.ID, model.ErrDuplicateID)
	}
	s.categories = append(s.categories, c)
	return nil
}

func (s *Store) UpdateCategory(c model.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(c.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrCategoryNotFound, c.ID)
	}
	s.categories[idx] = c
	return nil
}

// RemoveCategory refuses to orphan products that still reference the category.
func (s *Store) RemoveCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrCategoryNotFound, id)
	}
	for _, p := range s.products {
		if p.CategoryID == id {
			return fmt.Errorf("category %s used by product %s: %w", id, p.ID, model.ErrCategoryInUse)
		}
	}
	s.categories = append(s.categories[:idx:idx], s.categories[idx+1:]...)
	return nil
}

func (s *Store) Category(id string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return model.Category{}, fmt.Errorf("%w: %s", model.ErrCategoryNotFound, id)
	}
	return s.categories[idx], nil
}

func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Category{}, s.categories...)
}

func (s *Store) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func validateCategory(c model.Category) error {
	if c.ID == "" {
		return model.Invalidf("category id is required")
	}
	if c.Name == "" {
		return model.Invalidf("category name is required")
	}
	return nil
}
