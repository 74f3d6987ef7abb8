package menu

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, item Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, item Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) MenuChanged(item Item, action SyncAction) {
	m.Called(item, action)
}

func validInput() NewItemInput {
	return NewItemInput{
		Name:        "Espresso",
		Description: "A short strong shot",
		Prices:      Prices{S: 250, M: 300, L: 350},
		Category:    CategoryDrink,
		Image:       "https://example.com/espresso.jpg",
		AvailableTemperatures: []Temperature{
			TemperatureHot,
		},
	}
}

func TestService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		notifier := new(MockNotifier)
		svc := NewService(repo, notifier).(*service)
		svc.now = func() time.Time {
			return time.Date(2025, time.March, 3, 10, 12, 0, 0, time.UTC)
		}

		repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
		notifier.On("MenuChanged", mock.Anything, SyncActionAdd).Return()

		item, err := svc.Create(context.Background(), validInput())

		assert.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "Espresso", item.Name)
		notifier.AssertCalled(t, "MenuChanged", mock.Anything, SyncActionAdd)
	})

	t.Run("Validation failures never reach the repository", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*NewItemInput)
			wantErr error
		}{
			{"missing name", func(i *NewItemInput) { i.Name = "" }, ErrNameRequired},
			{"missing description", func(i *NewItemInput) { i.Description = "" }, ErrDescriptionRequired},
			{"missing image", func(i *NewItemInput) { i.Image = "" }, ErrImageRequired},
			{"negative price", func(i *NewItemInput) { i.Prices.M = -1 }, ErrNegativePrice},
			{"bad category", func(i *NewItemInput) { i.Category = "Merch" }, ErrInvalidCategory},
			{"no variant", func(i *NewItemInput) {
				i.AvailableTemperatures = nil
				i.AvailableSizes = nil
			}, ErrNoVariant},
			{"bad temperature", func(i *NewItemInput) {
				i.AvailableTemperatures = []Temperature{"Lukewarm"}
			}, ErrInvalidTemperature},
			{"bad size", func(i *NewItemInput) {
				i.AvailableSizes = []Size{"XL"}
			}, ErrInvalidSize},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := new(MockRepository)
				notifier := new(MockNotifier)
				svc := NewService(repo, notifier)

				input := validInput()
				tc.mutate(&input)

				_, err := svc.Create(context.Background(), input)

				assert.ErrorIs(t, err, tc.wantErr)
				repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestService_Update(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(repo, notifier)

	repo.On("Update", mock.Anything, mock.MatchedBy(func(i Item) bool {
		return i.ID == "42"
	})).Return(nil)
	notifier.On("MenuChanged", mock.Anything, SyncActionUpdate).Return()

	item, err := svc.Update(context.Background(), "42", validInput())

	assert.NoError(t, err)
	assert.Equal(t, "42", item.ID)
	notifier.AssertCalled(t, "MenuChanged", mock.Anything, SyncActionUpdate)
}

func TestService_Delete(t *testing.T) {
	t.Run("Success notifies with the deleted item", func(t *testing.T) {
		repo := new(MockRepository)
		notifier := new(MockNotifier)
		svc := NewService(repo, notifier)

		existing := &Item{ID: "42", Name: "Espresso"}
		repo.On("Get", mock.Anything, "42").Return(existing, nil)
		repo.On("Delete", mock.Anything, "42").Return(nil)
		notifier.On("MenuChanged", *existing, SyncActionDelete).Return()

		assert.NoError(t, svc.Delete(context.Background(), "42"))
		notifier.AssertExpectations(t)
	})

	t.Run("Missing item", func(t *testing.T) {
		repo := new(MockRepository)
		notifier := new(MockNotifier)
		svc := NewService(repo, notifier)

		repo.On("Get", mock.Anything, "nope").Return(nil, ErrItemNotFound)

		err := svc.Delete(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrItemNotFound)
		notifier.AssertNotCalled(t, "MenuChanged", mock.Anything, mock.Anything)
	})
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryDrink, NormalizeCategory("Hot"))
	assert.Equal(t, CategoryDrink, NormalizeCategory("Ice"))
	assert.Equal(t, CategoryFood, NormalizeCategory("Food"))
	assert.Equal(t, Category("Merch"), NormalizeCategory("Merch"))
}

func TestItem_Sizes(t *testing.T) {
	t.Run("Defaults to all sizes", func(t *testing.T) {
		assert.Equal(t, AllSizes, Item{}.Sizes())
	})

	t.Run("Respects configured subset", func(t *testing.T) {
		item := Item{AvailableSizes: []Size{SizeM, SizeL}}
		assert.True(t, item.HasSize(SizeM))
		assert.False(t, item.HasSize(SizeS))
	})
}

func TestPrices_For(t *testing.T) {
	p := Prices{S: 300, M: 350, L: 400}
	assert.Equal(t, 300, p.For(SizeS))
	assert.Equal(t, 350, p.For(SizeM))
	assert.Equal(t, 400, p.For(SizeL))
}
