package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"property-search-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- фейки портов ---

type fakePropertyRepo struct {
	items     map[int64]domain.Property
	nextID    int64
	listErr   error
	lastQuery domain.PropertyFilter
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{items: map[int64]domain.Property{}}
}

func (r *fakePropertyRepo) List(_ context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	r.lastQuery = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Property
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (r *fakePropertyRepo) GetWithRelations(ctx context.Context, id int64) (*domain.Property, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePropertyRepo) Create(_ context.Context, p *domain.Property) error {
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *fakePropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeBikeParkingRepo struct {
	items  map[int64]domain.BikeParking
	nextID int64
}

func newFakeBikeParkingRepo() *fakeBikeParkingRepo {
	return &fakeBikeParkingRepo{items: map[int64]domain.BikeParking{}}
}

func (r *fakeBikeParkingRepo) ListByPropertyID(_ context.Context, propertyID int64) ([]domain.BikeParking, error) {
	out := []domain.BikeParking{}
	for id := int64(1); id <= r.nextID; id++ {
		if b, ok := r.items[id]; ok && b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBikeParkingRepo) GetByID(_ context.Context, id int64) (*domain.BikeParking, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, domain.ErrBikeParkingNotFound
	}
	return &b, nil
}

func (r *fakeBikeParkingRepo) Create(_ context.Context, b *domain.BikeParking) error {
	r.nextID++
	b.ID = r.nextID
	r.items[b.ID] = *b
	return nil
}

func (r *fakeBikeParkingRepo) Update(_ context.Context, b *domain.BikeParking) error {
	r.items[b.ID] = *b
	return nil
}

func (r *fakeBikeParkingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrBikeParkingNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeNotificationRepo struct {
	properties *fakePropertyRepo
	items      []domain.Notification
}

func (r *fakeNotificationRepo) ListByPropertyID(_ context.Context, propertyID int64) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.items {
		if n.PropertyID == propertyID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CreateAndMarkNotified(_ context.Context, n *domain.Notification) error {
	p, ok := r.properties.items[n.PropertyID]
	if !ok {
		return domain.ErrPropertyNotFound
	}
	n.ID = int64(len(r.items) + 1)
	r.items = append(r.items, *n)
	p.Status = domain.StatusNotified
	r.properties.items[p.ID] = p
	return nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id int64) error {
	for i, n := range r.items {
		if n.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

type fakeProviderRepo struct {
	byProperty map[int64]domain.InternetProvider
	updateErr  error
}

func (r *fakeProviderRepo) GetByPropertyID(_ context.Context, propertyID int64) (*domain.InternetProvider, error) {
	ip, ok := r.byProperty[propertyID]
	if !ok {
		return nil, domain.ErrInternetProviderNotFound
	}
	return &ip, nil
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id int64) (*domain.InternetProvider, error) {
	for _, ip := range r.byProperty {
		if ip.ID == id {
			return &ip, nil
		}
	}
	return nil, domain.ErrInternetProviderNotFound
}

func (r *fakeProviderRepo) Upsert(_ context.Context, ip *domain.InternetProvider) error {
	if existing, ok := r.byProperty[ip.PropertyID]; ok {
		ip.ID = existing.ID
	} else {
		ip.ID = int64(len(r.byProperty) + 1)
	}
	r.byProperty[ip.PropertyID] = *ip
	return nil
}

func (r *fakeProviderRepo) Update(_ context.Context, ip *domain.InternetProvider) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for pid, existing := range r.byProperty {
		if existing.ID == ip.ID {
			delete(r.byProperty, pid)
		}
	}
	r.byProperty[ip.PropertyID] = *ip
	return nil
}

func (r *fakeProviderRepo) Delete(_ context.Context, id int64) error {
	for pid, existing := range r.byProperty {
		if existing.ID == id {
			delete(r.byProperty, pid)
			return nil
		}
	}
	return domain.ErrInternetProviderNotFound
}

// fakeGeo считает "расстояние" как сумму разностей координат, чтобы результат был предсказуем
type fakeGeo struct{}

func (fakeGeo) DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return (lat2 - lat1) + (lon2 - lon1)
}

func (fakeGeo) Geohash(lat, lon float64) string { return "gh" }

type fakePublisher struct {
	events []domain.PropertyNotifiedEvent
	err    error
}

func (p *fakePublisher) PublishPropertyNotified(_ context.Context, e domain.PropertyNotifiedEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func ptr[T any](v T) *T { return &v }

func propertyInput(name string) domain.PropertyInput {
	return domain.PropertyInput{
		Name:      name,
		Latitude:  ptr(35.0),
		Longitude: ptr(139.0),
		Rent:      100000,
		Status:    "NEW",
	}
}

// --- тесты ---

func TestCreateProperty_ComputesGeohash(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewCreatePropertyUseCase(repo, fakeGeo{})

	p, err := uc.Execute(context.Background(), propertyInput("alpha"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "gh", p.Geohash)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	in := propertyInput("no-coords")
	in.Latitude = nil
	p, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, p.Geohash)
}

func TestUpdateProperty(t *testing.T) {
	repo := newFakePropertyRepo()
	ctx := context.Background()
	created, err := NewCreatePropertyUseCase(repo, fakeGeo{}).Execute(ctx, propertyInput("before"))
	require.NoError(t, err)

	uc := NewUpdatePropertyUseCase(repo, fakeGeo{})

	in := propertyInput("after")
	in.Longitude = nil
	updated, err := uc.Execute(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.Empty(t, updated.Geohash)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = uc.Execute(ctx, 999, in)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestListProperties_PassesFilterAndErrors(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewListPropertiesUseCase(repo)

	filter := domain.PropertyFilter{Station: ptr("Shinjuku"), Skip: 5, Limit: 10}
	_, err := uc.Execute(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, repo.lastQuery)

	repo.listErr = errors.New("db down")
	_, err = uc.Execute(context.Background(), filter)
	assert.Error(t, err)
}

func TestGetAndDeleteProperty(t *testing.T) {
	repo := newFakePropertyRepo()
	ctx := context.Background()
	created, err := NewCreatePropertyUseCase(repo, fakeGeo{}).Execute(ctx, propertyInput("alpha"))
	require.NoError(t, err)

	got, err := NewGetPropertyUseCase(repo).Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name)

	require.NoError(t, NewDeletePropertyUseCase(repo).Execute(ctx, created.ID))
	_, err = NewGetPropertyUseCase(repo).Execute(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, NewDeletePropertyUseCase(repo).Execute(ctx, created.ID), domain.ErrPropertyNotFound)
}

func TestCreateBikeParking_Distance(t *testing.T) {
	ctx := context.Background()
	properties := newFakePropertyRepo()
	parkings := newFakeBikeParkingRepo()
	uc := NewCreateBikeParkingUseCase(parkings, properties, fakeGeo{})

	withCoords, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, propertyInput("with"))
	require.NoError(t, err)
	noCoordsInput := propertyInput("without")
	noCoordsInput.Latitude, noCoordsInput.Longitude = nil, nil
	withoutCoords, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, noCoordsInput)
	require.NoError(t, err)
	originInput := propertyInput("origin")
	originInput.Latitude, originInput.Longitude = ptr(0.0), ptr(0.0)
	atOrigin, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, originInput)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    domain.BikeParkingInput
		expected *float64
	}{
		{
			name:     "computed when both have coordinates",
			input:    domain.BikeParkingInput{PropertyID: withCoords.ID, Latitude: ptr(35.5), Longitude: ptr(139.25), Distance: ptr(99.0)},
			expected: ptr(0.75),
		},
		{
			name:     "client value when parking has no coordinates",
			input:    domain.BikeParkingInput{PropertyID: withCoords.ID, Distance: ptr(2.0)},
			expected: ptr(2.0),
		},
		{
			name:     "client value when property has no coordinates",
			input:    domain.BikeParkingInput{PropertyID: withoutCoords.ID, Latitude: ptr(35.5), Longitude: ptr(139.25), Distance: ptr(3.0)},
			expected: ptr(3.0),
		},
		{
			name:     "zero coordinates are real coordinates",
			input:    domain.BikeParkingInput{PropertyID: atOrigin.ID, Latitude: ptr(0.0), Longitude: ptr(0.01), Distance: ptr(5.0)},
			expected: ptr(0.01),
		},
		{
			name:     "nil when nothing is known",
			input:    domain.BikeParkingInput{PropertyID: withoutCoords.ID},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := uc.Execute(ctx, tt.input)
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, b.Distance)
				return
			}
			require.NotNil(t, b.Distance)
			assert.InDelta(t, *tt.expected, *b.Distance, 1e-9)
		})
	}

	_, err = uc.Execute(ctx, domain.BikeParkingInput{PropertyID: 999})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	assert.Len(t, parkings.items, 5)
}

func TestUpdateBikeParking_RecomputesDistance(t *testing.T) {
	ctx := context.Background()
	properties := newFakePropertyRepo()
	parkings := newFakeBikeParkingRepo()

	p, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, propertyInput("with"))
	require.NoError(t, err)
	b, err := NewCreateBikeParkingUseCase(parkings, properties, fakeGeo{}).Execute(ctx,
		domain.BikeParkingInput{PropertyID: p.ID, Latitude: ptr(35.5), Longitude: ptr(139.0)})
	require.NoError(t, err)

	uc := NewUpdateBikeParkingUseCase(parkings, properties, fakeGeo{})
	updated, err := uc.Execute(ctx, b.ID, domain.BikeParkingInput{PropertyID: p.ID, Latitude: ptr(36.0), Longitude: ptr(139.0)})
	require.NoError(t, err)
	require.NotNil(t, updated.Distance)
	assert.InDelta(t, 1.0, *updated.Distance, 1e-9)
	assert.Equal(t, b.CreatedAt, updated.CreatedAt)

	_, err = uc.Execute(ctx, 999, domain.BikeParkingInput{PropertyID: p.ID})
	assert.ErrorIs(t, err, domain.ErrBikeParkingNotFound)
	_, err = uc.Execute(ctx, b.ID, domain.BikeParkingInput{PropertyID: 999})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	list, err := NewListBikeParkingsUseCase(parkings).Execute(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, NewDeleteBikeParkingUseCase(parkings).Execute(ctx, b.ID))
	assert.ErrorIs(t, NewDeleteBikeParkingUseCase(parkings).Execute(ctx, b.ID), domain.ErrBikeParkingNotFound)
}

func TestUpdateBikeParking_MovesToAnotherProperty(t *testing.T) {
	ctx := context.Background()
	properties := newFakePropertyRepo()
	parkings := newFakeBikeParkingRepo()
	createProperty := NewCreatePropertyUseCase(properties, fakeGeo{})

	from, err := createProperty.Execute(ctx, propertyInput("from"))
	require.NoError(t, err)
	toInput := propertyInput("to")
	toInput.Latitude, toInput.Longitude = ptr(0.0), ptr(0.0)
	to, err := createProperty.Execute(ctx, toInput)
	require.NoError(t, err)

	b, err := NewCreateBikeParkingUseCase(parkings, properties, fakeGeo{}).Execute(ctx,
		domain.BikeParkingInput{PropertyID: from.ID, Latitude: ptr(0.0), Longitude: ptr(0.01)})
	require.NoError(t, err)

	moved, err := NewUpdateBikeParkingUseCase(parkings, properties, fakeGeo{}).Execute(ctx, b.ID,
		domain.BikeParkingInput{PropertyID: to.ID, Latitude: ptr(0.0), Longitude: ptr(0.01)})
	require.NoError(t, err)
	assert.Equal(t, to.ID, moved.PropertyID)
	require.NotNil(t, moved.Distance)
	assert.InDelta(t, 0.01, *moved.Distance, 1e-9)

	list := NewListBikeParkingsUseCase(parkings)
	fromList, err := list.Execute(ctx, from.ID)
	require.NoError(t, err)
	assert.Empty(t, fromList)
	toList, err := list.Execute(ctx, to.ID)
	require.NoError(t, err)
	require.Len(t, toList, 1)
	assert.Equal(t, b.ID, toList[0].ID)
}

func TestCreateNotification_PublishesAfterSave(t *testing.T) {
	ctx := context.Background()
	properties := newFakePropertyRepo()
	repo := &fakeNotificationRepo{properties: properties}
	publisher := &fakePublisher{}
	uc := NewCreateNotificationUseCase(repo, publisher)

	p, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, propertyInput("alpha"))
	require.NoError(t, err)

	notifiedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n, err := uc.Execute(ctx, domain.NotificationInput{PropertyID: p.ID, NotifiedAt: notifiedAt, LineMessageID: ptr("line-1")})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNotified, properties.items[p.ID].Status)
	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, p.ID, event.PropertyID)
	assert.Equal(t, n.ID, event.NotificationID)
	assert.Equal(t, notifiedAt, event.NotifiedAt)
	assert.Equal(t, "line-1", *event.LineMessageID)
	assert.Equal(t, domain.StatusNotified, event.Status)
}

func TestCreateNotification_PublishErrorIsIgnored(t *testing.T) {
	ctx := context.Background()
	properties := newFakePropertyRepo()
	repo := &fakeNotificationRepo{properties: properties}
	publisher := &fakePublisher{err: errors.New("broker down")}

	p, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, propertyInput("alpha"))
	require.NoError(t, err)

	_, err = NewCreateNotificationUseCase(repo, publisher).Execute(ctx, domain.NotificationInput{PropertyID: p.ID, NotifiedAt: time.Now()})
	require.NoError(t, err)
	assert.Len(t, repo.items, 1)
}

func TestCreateNotification_WithoutPublisher(t *testing.T) {
	ctx := context.Background()
	properties := newFakePropertyRepo()
	repo := &fakeNotificationRepo{properties: properties}

	_, err := NewCreateNotificationUseCase(repo, nil).Execute(ctx, domain.NotificationInput{PropertyID: 42, NotifiedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	p, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, propertyInput("alpha"))
	require.NoError(t, err)
	n, err := NewCreateNotificationUseCase(repo, nil).Execute(ctx, domain.NotificationInput{PropertyID: p.ID, NotifiedAt: time.Now()})
	require.NoError(t, err)

	list, err := NewListNotificationsUseCase(repo).Execute(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, NewDeleteNotificationUseCase(repo).Execute(ctx, n.ID))
	assert.ErrorIs(t, NewDeleteNotificationUseCase(repo).Execute(ctx, n.ID), domain.ErrNotificationNotFound)
}

func TestInternetProviderUseCases(t *testing.T) {
	ctx := context.Background()
	properties := newFakePropertyRepo()
	repo := &fakeProviderRepo{byProperty: map[int64]domain.InternetProvider{}}

	p, err := NewCreatePropertyUseCase(properties, fakeGeo{}).Execute(ctx, propertyInput("alpha"))
	require.NoError(t, err)

	_, err = NewGetInternetProviderUseCase(repo).Execute(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInternetProviderNotFound)

	upsert := NewUpsertInternetProviderUseCase(repo)
	first, err := upsert.Execute(ctx, domain.InternetProviderInput{PropertyID: p.ID, FletsPlan: ptr("1G")})
	require.NoError(t, err)
	second, err := upsert.Execute(ctx, domain.InternetProviderInput{PropertyID: p.ID, NuroPlan: ptr("2G")})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.byProperty, 1)

	update := NewUpdateInternetProviderUseCase(repo, properties)
	updated, err := update.Execute(ctx, first.ID, domain.InternetProviderInput{PropertyID: p.ID, JcomPlan: ptr("J")})
	require.NoError(t, err)
	assert.Nil(t, updated.NuroPlan)
	assert.Equal(t, "J", *updated.JcomPlan)

	_, err = update.Execute(ctx, first.ID, domain.InternetProviderInput{PropertyID: 999})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	_, err = update.Execute(ctx, 999, domain.InternetProviderInput{PropertyID: p.ID})
	assert.ErrorIs(t, err, domain.ErrInternetProviderNotFound)

	repo.updateErr = domain.ErrInternetProviderExists
	_, err = update.Execute(ctx, first.ID, domain.InternetProviderInput{PropertyID: p.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.updateErr = nil

	require.NoError(t, NewDeleteInternetProviderUseCase(repo).Execute(ctx, first.ID))
	assert.ErrorIs(t, NewDeleteInternetProviderUseCase(repo).Execute(ctx, first.ID), domain.ErrInternetProviderNotFound)
}
