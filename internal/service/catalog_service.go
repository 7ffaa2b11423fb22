package service

import (
	"context"
	"fmt"
	"time"

	"meal-pickup/internal/model"
	"meal-pickup/internal/repository"
	"meal-pickup/internal/validate"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo   repository.DocumentRepository
	queue  *repository.WriteQueue
	now    func() time.Time
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service. Reads go straight to repo; writes go through queue.
func NewCatalogService(repo repository.DocumentRepository, queue *repository.WriteQueue, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		queue:  queue,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// Public returns the customer-facing view of the document.
func (s *catalogService) Public(ctx context.Context) (*model.PublicView, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load public view: %w", err)
	}

	return &model.PublicView{
		Business:   doc.Business,
		TodaysMeal: doc.TodaysMeal,
		Menu:       doc.AvailableMenu(),
	}, nil
}

// Document returns the whole document.
func (s *catalogService) Document(ctx context.Context) (*model.Document, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

// UpdateBusiness replaces the shop profile. Name and address are required.
func (s *catalogService) UpdateBusiness(ctx context.Context, req *model.BusinessRequest) (*model.Business, error) {
	if req == nil {
		return nil, model.ErrBusinessRequired
	}

	business := model.Business{
		Name:           validate.Text(req.Name, 80),
		Address:        validate.Text(req.Address, 250),
		Phone:          validate.Text(req.Phone, 40),
		CollectionNote: validate.Text(req.CollectionNote, 200),
	}
	if business.Name == "" || business.Address == "" {
		return nil, model.ErrBusinessRequired
	}

	updated, err := repository.Submit(ctx, s.queue, func(doc *model.Document) (model.Business, error) {
		doc.Business = business
		return doc.Business, nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update business info")
		return nil, err
	}

	s.logger.Info().Str("name", updated.Name).Msg("business info updated")
	return &updated, nil
}

// UpdateTodaysMeal replaces today's meal. The date defaults to today when omitted.
func (s *catalogService) UpdateTodaysMeal(ctx context.Context, req *model.TodaysMealRequest) (*model.TodaysMeal, error) {
	if req == nil {
		return nil, model.ErrMealRequired
	}

	price, priceOK := validate.Price(req.Price)
	meal := model.TodaysMeal{
		Name:        validate.Text(req.Name, 120),
		Description: validate.Text(req.Description, 300),
		Price:       price,
		Available:   bool(req.Available),
		Image:       validate.ImageURL(req.Image),
	}
	if meal.Name == "" || !priceOK {
		return nil, model.ErrMealRequired
	}

	if date := validate.Text(req.Date, 30); date == "" {
		meal.Date = s.now().Format(time.DateOnly)
	} else if cleaned, ok := validate.Date(date); ok {
		meal.Date = cleaned
	} else {
		return nil, model.ErrMealDate
	}

	updated, err := repository.Submit(ctx, s.queue, func(doc *model.Document) (model.TodaysMeal, error) {
		doc.TodaysMeal = meal
		return doc.TodaysMeal, nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update today's meal")
		return nil, err
	}

	s.logger.Info().
		Str("meal", updated.Name).
		Float64("price", updated.Price).
		Bool("available", updated.Available).
		Str("date", updated.Date).
		Msg("today's meal updated")
	return &updated, nil
}

// CreateMenuItem appends a new item with a fresh id.
func (s *catalogService) CreateMenuItem(ctx context.Context, req *model.MenuItemRequest) (*model.MenuItem, error) {
	item, ok := cleanMenuItem(req)
	if !ok {
		return nil, model.ErrMenuItemRequired
	}

	created, err := repository.Submit(ctx, s.queue, func(doc *model.Document) (model.MenuItem, error) {
		item.ID = newID(func(id string) bool { return doc.FindMenuItem(id) >= 0 })
		doc.Menu = append(doc.Menu, item)
		return item, nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to add menu item")
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("name", created.Name).Msg("menu item added")
	return &created, nil
}

// UpdateMenuItem replaces the mutable fields of the item with id.
func (s *catalogService) UpdateMenuItem(ctx context.Context, id string, req *model.MenuItemRequest) (*model.MenuItem, error) {
	item, ok := cleanMenuItem(req)

	updated, err := repository.Submit(ctx, s.queue, func(doc *model.Document) (model.MenuItem, error) {
		idx := doc.FindMenuItem(id)
		if idx < 0 {
			return model.MenuItem{}, model.ErrMenuItemNotFound
		}
		if !ok {
			return model.MenuItem{}, model.ErrMenuItemRequired
		}

		item.ID = id
		doc.Menu[idx] = item
		return item, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", id).Msg("failed to update menu item")
		return nil, err
	}

	s.logger.Info().Str("item_id", id).Msg("menu item updated")
	return &updated, nil
}

// DeleteMenuItem removes the item with id.
func (s *catalogService) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := s.queue.Enqueue(ctx, func(doc *model.Document) (any, error) {
		idx := doc.FindMenuItem(id)
		if idx < 0 {
			return nil, model.ErrMenuItemNotFound
		}
		doc.Menu = append(doc.Menu[:idx], doc.Menu[idx+1:]...)
		return nil, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", id).Msg("failed to delete menu item")
		return err
	}

	s.logger.Info().Str("item_id", id).Msg("menu item deleted")
	return nil
}

// cleanMenuItem sanitizes a menu item request. ok is false when name or price is unusable.
func cleanMenuItem(req *model.MenuItemRequest) (model.MenuItem, bool) {
	if req == nil {
		return model.MenuItem{}, false
	}

	price, priceOK := validate.Price(req.Price)
	item := model.MenuItem{
		Name:        validate.Text(req.Name, 120),
		Description: validate.Text(req.Description, 300),
		Price:       price,
		Image:       validate.ImageURL(req.Image),
		Available:   bool(req.Available),
	}
	return item, item.Name != "" && priceOK
}

// newID returns a random UUID that taken reports as unused.
func newID(taken func(id string) bool) string {
	for {
		id := uuid.NewString()
		if !taken(id) {
			return id
		}
	}
}
