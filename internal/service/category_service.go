package service

import (
	"context"
	"fmt"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
	"github.com/01moynul/eshop-catalog-golang/internal/repository"
)

type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListCategories returns the root categories with their descendants nested
// under Children. A category whose parent is missing is treated as a root.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.CategoryEntity, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return BuildCategoryTree(categories), nil
}

// BuildCategoryTree nests categories under their parents, keeping input order
// among siblings.
func BuildCategoryTree(categories []models.Category) []models.CategoryEntity {
	known := make(map[int64]bool, len(categories))
	for _, c := range categories {
		known[c.CategoryID] = true
	}

	children := make(map[int64][]models.Category)
	var roots []models.Category
	for _, c := range categories {
		if c.ParentCategoryID == nil || !known[*c.ParentCategoryID] || *c.ParentCategoryID == c.CategoryID {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentCategoryID] = append(children[*c.ParentCategoryID], c)
	}

	visited := make(map[int64]bool, len(categories))
	var build func(c models.Category) models.CategoryEntity
	build = func(c models.Category) models.CategoryEntity {
		visited[c.CategoryID] = true
		e := ToCategoryEntity(&c)
		for _, child := range children[c.CategoryID] {
			if visited[child.CategoryID] {
				continue
			}
			e.Children = append(e.Children, build(child))
		}
		return e
	}

	tree := make([]models.CategoryEntity, 0, len(roots))
	for _, r := range roots {
		tree = append(tree, build(r))
	}
	return tree
}
