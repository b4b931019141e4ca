package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

var _ ports.MenuReader = (*CatalogService)(nil)

// CatalogService — меню бэкенда, разложенное по разделам.
type CatalogService struct {
	source ports.MenuSource
	log    ports.Logger
}

func NewCatalogService(source ports.MenuSource, log ports.Logger) *CatalogService {
	return &CatalogService{source: source, log: log}
}

// Sections — разделы в порядке Breakfast, Lunch, Drinks; неизвестные категории уходят в раздел по умолчанию.
func (s *CatalogService) Sections(ctx context.Context) ([]domain.MenuSection, error) {
	items, err := s.source.Menu(ctx)
	if err != nil {
		s.log.Errorf(ctx, "load menu failed: %v", err)
		return nil, fmt.Errorf("load menu: %w", err)
	}

	for _, item := range items {
		if _, known := domain.ParseCategory(item.Category); !known {
			s.log.Warnf(ctx, "menu item id=%d has unknown category %q, using %s",
				item.MenuItemID, item.Category, domain.DefaultCategory)
		}
	}
	return domain.GroupMenu(items), nil
}
