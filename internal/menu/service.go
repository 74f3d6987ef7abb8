package menu

import (
	"context"
	"strconv"
	"time"
)

// Notifier receives catalog change events for best-effort mirroring.
// Implementations must not block the caller.
type Notifier interface {
	MenuChanged(item Item, action SyncAction)
}

// Service defines the admin CRUD surface over the catalog.
type Service interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, input NewItemInput) (*Item, error)
	Update(ctx context.Context, id string, input NewItemInput) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewItemInput) (*Item, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item := itemFromInput(input)
	item.ID = strconv.FormatInt(s.now().UnixMilli(), 10)

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.notifier.MenuChanged(item, SyncActionAdd)
	return &item, nil
}

func (s *service) Update(ctx context.Context, id string, input NewItemInput) (*Item, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item := itemFromInput(input)
	item.ID = id

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.notifier.MenuChanged(item, SyncActionUpdate)
	return &item, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.MenuChanged(*item, SyncActionDelete)
	return nil
}

func itemFromInput(input NewItemInput) Item {
	return Item{
		Name:                  input.Name,
		Description:           input.Description,
		Prices:                input.Prices,
		Category:              input.Category,
		Image:                 input.Image,
		AvailableTemperatures: input.AvailableTemperatures,
		AvailableSizes:        input.AvailableSizes,
	}
}

// validateInput rejects admin form input before it reaches the data
// model. Invalid items must never enter the catalog.
func validateInput(input NewItemInput) error {
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Description == "" {
		return ErrDescriptionRequired
	}
	if input.Image == "" {
		return ErrImageRequired
	}
	if input.Prices.S < 0 || input.Prices.M < 0 || input.Prices.L < 0 {
		return ErrNegativePrice
	}
	if !input.Category.IsValid() {
		return ErrInvalidCategory
	}
	if len(input.AvailableTemperatures) == 0 && len(input.AvailableSizes) == 0 {
		return ErrNoVariant
	}
	for _, temp := range input.AvailableTemperatures {
		if !temp.IsValid() {
			return ErrInvalidTemperature
		}
	}
	for _, size := range input.AvailableSizes {
		if !size.IsValid() {
			return ErrInvalidSize
		}
	}
	return nil
}
