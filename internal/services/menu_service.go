package services

import (
	"context"
	"fmt"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

// MenuService manages the menu items rendered on menu screens. Items are
// plain records; the image field is a name or URL the frontends resolve
// themselves, so this service never touches the asset store.
type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return out, nil
}

func (s *MenuService) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	if item.Name == "" || item.Description == "" || item.Price == 0 || item.Image == "" {
		return nil, fmt.Errorf("%w: all fields are required", utils.ErrInvalidInput)
	}
	item.ID = utils.NewID()
	if err := s.repo.Insert(ctx, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return &item, nil
}

func (s *MenuService) UpdatePrice(ctx context.Context, id string, price float64) (*models.MenuItem, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", utils.ErrInvalidInput)
	}
	item, err := s.repo.UpdatePrice(ctx, id, price)
	if err != nil {
		return nil, mapLookup(err)
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapLookup(err)
	}
	return nil
}

// Seed loads the sample menu. It only inserts when the collection is still
// empty, so calling it again returns the existing items unchanged.
func (s *MenuService) Seed(ctx context.Context) ([]models.MenuItem, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}
	items := sampleMenu()
	if err := s.repo.InsertMany(ctx, items); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return items, nil
}

func sampleMenu() []models.MenuItem {
	items := []models.MenuItem{
		{
			Name:        "Hambúrguer Clássico",
			Description: "Pão artesanal, carne 150g, queijo, alface e tomate.",
			Price:       25.0,
			Image:       "hamburguer-classico.jpg",
		},
		{
			Name:        "Hambúrguer BBQ",
			Description: "Pão brioche, carne 180g, cheddar, bacon crocante e molho barbecue.",
			Price:       32.0,
			Image:       "hamburguer-bbq.jpg",
		},
		{
			Name:        "Hambúrguer Vegano",
			Description: "Pão integral, hambúrguer de grão-de-bico, rúcula e molho especial.",
			Price:       28.0,
			Image:       "hamburguer-vegano.jpg",
		},
	}
	for i := range items {
		items[i].ID = utils.NewID()
	}
	return items
}
