package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"signage-service/internal/models"
	"signage-service/internal/services"
	"signage-service/internal/testutil"
	"signage-service/internal/utils"
)

func newMenuService(t *testing.T) (*services.MenuService, *testutil.MenuRepo) {
	t.Helper()
	repo := testutil.NewMenuRepo()
	return services.NewMenuService(repo), repo
}

func TestMenuCreateAndList(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, models.MenuItem{
		Name:        "Suco de Laranja",
		Description: "Natural, 500ml.",
		Price:       9.5,
		Image:       "suco-laranja.jpg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, 9.5, item.Price)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Suco de Laranja", items[0].Name)
}

func TestMenuCreateRequiresAllFields(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	incomplete := []models.MenuItem{
		{Description: "sem nome", Price: 5, Image: "x.jpg"},
		{Name: "Sem descrição", Price: 5, Image: "x.jpg"},
		{Name: "Sem preço", Description: "d", Image: "x.jpg"},
		{Name: "Sem imagem", Description: "d", Price: 5},
	}
	for _, item := range incomplete {
		_, err := svc.Create(ctx, item)
		require.ErrorIs(t, err, utils.ErrInvalidInput)
	}
}

func TestMenuUpdatePrice(t *testing.T) {
	svc, repo := newMenuService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, models.MenuItem{
		Name:        "Batata Frita",
		Description: "Porção grande.",
		Price:       15,
		Image:       "batata.jpg",
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePrice(ctx, item.ID, 18)
	require.NoError(t, err)
	require.Equal(t, 18.0, updated.Price)
	require.Equal(t, item.Name, updated.Name)

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 18.0, stored[0].Price)

	_, err = svc.UpdatePrice(ctx, "nope", 18)
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.UpdatePrice(ctx, item.ID, 0)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestMenuDelete(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, models.MenuItem{
		Name:        "Refrigerante",
		Description: "Lata 350ml.",
		Price:       6,
		Image:       "refri.jpg",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))
	require.ErrorIs(t, svc.Delete(ctx, item.ID), utils.ErrNotFound)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMenuSeedOnlyOnEmptyCollection(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seeded)
	for _, item := range seeded {
		require.NotEmpty(t, item.ID)
		require.NotEmpty(t, item.Name)
		require.Greater(t, item.Price, 0.0)
	}

	// a second call returns the existing items without inserting again
	again, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, seeded, again)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, len(seeded))
}

func TestMenuSeedSkipsNonEmptyCollection(t *testing.T) {
	svc, repo := newMenuService(t)
	ctx := context.Background()

	existing := models.MenuItem{ID: "m1", Name: "Pastel", Description: "De queijo.", Price: 8, Image: "pastel.jpg"}
	require.NoError(t, repo.Insert(ctx, &existing))

	items, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Pastel", items[0].Name)
}
