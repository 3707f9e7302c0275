package service

import (
	"context"
	"fmt"

	"foodfleet/internal/domain"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type CatalogService struct {
	repo  CatalogRepository
	cache CatalogCache
}

// NewCatalogService accepts a nil cache, in which case every call reads the store.
func NewCatalogService(repo CatalogRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) ListRestaurantsWithMenus(ctx context.Context) ([]domain.RestaurantWithMenu, error) {
	if s.cache != nil {
		catalog, found, err := s.cache.GetCatalog(ctx)
		if err != nil {
			log.WithError(err).Warn("catalog cache read failed")
		} else if found {
			return catalog, nil
		}
	}

	var (
		restaurants []domain.Restaurant
		items       []domain.MenuItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		restaurants, err = s.repo.ListRestaurants(gctx)
		if err != nil {
			return fmt.Errorf("%w: list restaurants: %w", ErrStore, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = s.repo.ListMenuItems(gctx)
		if err != nil {
			return fmt.Errorf("%w: list menu items: %w", ErrStore, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := JoinMenus(restaurants, items)

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, catalog); err != nil {
			log.WithError(err).Warn("catalog cache write failed")
		}
	}
	return catalog, nil
}

// JoinMenus embeds each restaurant's menu items under the "menu" key, keeping item order.
// Items whose restaurant_id matches no restaurant are dropped.
func JoinMenus(restaurants []domain.Restaurant, items []domain.MenuItem) []domain.RestaurantWithMenu {
	menus := make(map[string][]domain.MenuItem, len(restaurants))
	for _, item := range items {
		key, ok := domain.ColumnKey(item, domain.RestaurantIDColumn)
		if !ok {
			continue
		}
		menus[key] = append(menus[key], item)
	}

	result := make([]domain.RestaurantWithMenu, 0, len(restaurants))
	for _, rest := range restaurants {
		joined := make(domain.RestaurantWithMenu, len(rest)+1)
		for column, value := range rest {
			joined[column] = value
		}

		menu := []domain.MenuItem{}
		if key, ok := domain.ColumnKey(rest, domain.RestaurantIDColumn); ok && menus[key] != nil {
			menu = menus[key]
		}
		joined[domain.MenuColumn] = menu
		result = append(result, joined)
	}
	return result
}
