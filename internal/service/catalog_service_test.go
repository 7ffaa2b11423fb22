package service

import (
	"context"
	"testing"
	"time"

	"meal-pickup/internal/model"
	"meal-pickup/internal/validate"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T, doc *model.Document) (*catalogService, *testStore) {
	t.Helper()
	store := newTestStore(t, doc)
	svc := NewCatalogService(store.repo, store.queue, zerolog.Nop()).(*catalogService)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestCatalogService_Public(t *testing.T) {
	svc, _ := newTestCatalogService(t, seedDocument())

	view, err := svc.Public(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Dil Panjab", view.Business.Name)
	assert.Equal(t, "Rajma Chawal", view.TodaysMeal.Name)
	require.Len(t, view.Menu, 1, "unavailable items are hidden")
	assert.Equal(t, "m-samosa", view.Menu[0].ID)
}

func TestCatalogService_UpdateBusiness(t *testing.T) {
	tests := []struct {
		name        string
		req         *model.BusinessRequest
		expectError error
	}{
		{
			name: "Success trims fields",
			req: &model.BusinessRequest{
				Name:           "  Dil Panjab Kitchen ",
				Address:        " 2 Market Road ",
				Phone:          "0777",
				CollectionNote: "Back door",
			},
		},
		{
			name:        "Missing name",
			req:         &model.BusinessRequest{Name: "   ", Address: "2 Market Road"},
			expectError: model.ErrBusinessRequired,
		},
		{
			name:        "Missing address",
			req:         &model.BusinessRequest{Name: "Dil Panjab"},
			expectError: model.ErrBusinessRequired,
		},
		{
			name:        "Nil request",
			req:         nil,
			expectError: model.ErrBusinessRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestCatalogService(t, seedDocument())

			business, err := svc.UpdateBusiness(context.Background(), tt.req)

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, "Dil Panjab", store.load(t).Business.Name, "document unchanged")
				return
			}

			require.NoError(t, err)
			expected := model.Business{
				Name:           "Dil Panjab Kitchen",
				Address:        "2 Market Road",
				Phone:          "0777",
				CollectionNote: "Back door",
			}
			assert.Equal(t, expected, *business)
			assert.Equal(t, expected, store.load(t).Business)
		})
	}
}

func TestCatalogService_UpdateTodaysMeal(t *testing.T) {
	tests := []struct {
		name        string
		req         *model.TodaysMealRequest
		expectError error
		expected    *model.TodaysMeal
	}{
		{
			name: "Defaults date to today",
			req: &model.TodaysMealRequest{
				Name:      "Chole Bhature",
				Price:     validate.NumberOf(9.499),
				Available: true,
				Image:     "images/chole.svg",
			},
			expected: &model.TodaysMeal{
				Name:      "Chole Bhature",
				Price:     9.5,
				Available: true,
				Date:      "2024-06-01",
				Image:     "images/chole.svg",
			},
		},
		{
			name: "Keeps supplied date and drops unsafe image",
			req: &model.TodaysMealRequest{
				Name:  "Kadhi",
				Price: validate.NumberOf(7),
				Date:  "2024-06-03",
				Image: "javascript:alert(1)",
			},
			expected: &model.TodaysMeal{
				Name:  "Kadhi",
				Price: 7,
				Date:  "2024-06-03",
			},
		},
		{
			name:        "Invalid date",
			req:         &model.TodaysMealRequest{Name: "Kadhi", Price: validate.NumberOf(7), Date: "2024-02-30"},
			expectError: model.ErrMealDate,
		},
		{
			name:        "Negative price",
			req:         &model.TodaysMealRequest{Name: "Kadhi", Price: validate.NumberOf(-1)},
			expectError: model.ErrMealRequired,
		},
		{
			name:        "Missing price",
			req:         &model.TodaysMealRequest{Name: "Kadhi"},
			expectError: model.ErrMealRequired,
		},
		{
			name:        "Missing name",
			req:         &model.TodaysMealRequest{Price: validate.NumberOf(5)},
			expectError: model.ErrMealRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestCatalogService(t, seedDocument())

			meal, err := svc.UpdateTodaysMeal(context.Background(), tt.req)

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, seedDocument().TodaysMeal, store.load(t).TodaysMeal)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, *tt.expected, *meal)
			assert.Equal(t, *tt.expected, store.load(t).TodaysMeal)
		})
	}
}

func TestCatalogService_CreateMenuItem(t *testing.T) {
	svc, store := newTestCatalogService(t, seedDocument())
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, &model.MenuItemRequest{
		Name:      "Tikki",
		Price:     validate.NumberOf(4.5),
		Available: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Tikki", item.Name)

	second, err := svc.CreateMenuItem(ctx, &model.MenuItemRequest{Name: "Fries", Price: validate.NumberOf(2)})
	require.NoError(t, err)
	assert.NotEqual(t, item.ID, second.ID)

	doc := store.load(t)
	require.Len(t, doc.Menu, 4)
	assert.Equal(t, item.ID, doc.Menu[2].ID, "appended in insertion order")
	assert.Equal(t, second.ID, doc.Menu[3].ID)

	_, err = svc.CreateMenuItem(ctx, &model.MenuItemRequest{Name: "Free?", Price: validate.Number{}})
	require.ErrorIs(t, err, model.ErrMenuItemRequired)
	assert.Len(t, store.load(t).Menu, 4)
}

func TestCatalogService_CreateMenuItem_HugePrice(t *testing.T) {
	svc, store := newTestCatalogService(t, seedDocument())

	item, err := svc.CreateMenuItem(context.Background(), &model.MenuItemRequest{
		Name:  "Gold Thali",
		Price: validate.NumberOf(1e307),
	})
	require.NoError(t, err)
	assert.Equal(t, 1e307, item.Price)

	doc := store.load(t)
	require.Len(t, doc.Menu, 3)
	assert.Equal(t, 1e307, doc.Menu[2].Price)
}

func TestCatalogService_UpdateMenuItem(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		req         *model.MenuItemRequest
		expectError error
	}{
		{
			name: "Success replaces all mutable fields",
			id:   "m-lassi",
			req:  &model.MenuItemRequest{Name: "Sweet Lassi", Description: "Chilled", Price: validate.NumberOf(3), Available: true},
		},
		{
			name:        "Unknown id wins over invalid body",
			id:          "missing",
			req:         &model.MenuItemRequest{},
			expectError: model.ErrMenuItemNotFound,
		},
		{
			name:        "Invalid body",
			id:          "m-lassi",
			req:         &model.MenuItemRequest{Name: "Sweet Lassi"},
			expectError: model.ErrMenuItemRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestCatalogService(t, seedDocument())

			item, err := svc.UpdateMenuItem(context.Background(), tt.id, tt.req)

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, seedDocument().Menu, store.load(t).Menu)
				return
			}

			require.NoError(t, err)
			expected := model.MenuItem{ID: "m-lassi", Name: "Sweet Lassi", Description: "Chilled", Price: 3, Available: true}
			assert.Equal(t, expected, *item)
			assert.Equal(t, expected, store.load(t).Menu[1])
		})
	}
}

func TestCatalogService_DeleteMenuItem(t *testing.T) {
	svc, store := newTestCatalogService(t, seedDocument())
	ctx := context.Background()

	require.NoError(t, svc.DeleteMenuItem(ctx, "m-samosa"))

	doc := store.load(t)
	require.Len(t, doc.Menu, 1)
	assert.Equal(t, "m-lassi", doc.Menu[0].ID)

	err := svc.DeleteMenuItem(ctx, "m-samosa")
	require.ErrorIs(t, err, model.ErrMenuItemNotFound)
}
