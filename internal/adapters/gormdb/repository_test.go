package gormdb_adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"property-search-service/internal/core/domain"
	"property-search-service/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repos struct {
	db            *gorm.DB
	properties    *PropertyRepository
	providers     *InternetProviderRepository
	parkings      *BikeParkingRepository
	notifications *NotificationRepository
}

func setupRepos(t *testing.T) repos {
	t.Helper()

	url := "sqlite:///" + filepath.Join(t.TempDir(), "test.db")
	db, _, err := database.NewClient(context.Background(), database.Config{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	_, err = NewMigrator(db).Up()
	require.NoError(t, err)

	r := repos{db: db}
	r.properties, err = NewPropertyRepository(db)
	require.NoError(t, err)
	r.providers, err = NewInternetProviderRepository(db)
	require.NoError(t, err)
	r.parkings, err = NewBikeParkingRepository(db)
	require.NoError(t, err)
	r.notifications, err = NewNotificationRepository(db)
	require.NoError(t, err)
	return r
}

func ptr[T any](v T) *T { return &v }

func sampleInput(name string) domain.PropertyInput {
	return domain.PropertyInput{
		Name:              name,
		Address:           "Tokyo, Shinjuku 1-1-1",
		Latitude:          ptr(35.0),
		Longitude:         ptr(139.0),
		Station:           "Shinjuku",
		WalkingMinutes:    5,
		Rent:              100000,
		FloorPlan:         "1LDK",
		SizeSqm:           40.5,
		BuildingStructure: "RC",
		BuiltYear:         2010,
		Floor:             3,
		Status:            "NEW",
		SiteURL:           "https://example.com/1",
	}
}

func createProperty(t *testing.T, r repos, in domain.PropertyInput) domain.Property {
	t.Helper()
	p := domain.NewProperty(in, time.Now().UTC())
	require.NoError(t, r.properties.Create(context.Background(), &p))
	require.NotZero(t, p.ID)
	return p
}

func TestPropertyRepository_CreateAndGet(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	created := createProperty(t, r, sampleInput("Test"))

	got, err := r.properties.GetWithRelations(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test", got.Name)
	assert.Equal(t, 100000, got.Rent)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 35.0, *got.Latitude, 1e-9)
	assert.Nil(t, got.ManagementFee)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
	assert.Nil(t, got.InternetProvider)
	assert.Empty(t, got.BikeParkings)
	assert.Empty(t, got.Notifications)

	_, err = r.properties.GetByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPropertyRepository_ListFilters(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	a := sampleInput("A")
	b := sampleInput("B")
	b.Station = "Shibuya"
	b.Rent = 80000
	c := sampleInput("C")
	c.Rent = 150000
	c.FloorPlan = "2LDK"
	pa := createProperty(t, r, a)
	pb := createProperty(t, r, b)
	pc := createProperty(t, r, c)

	tests := []struct {
		name    string
		filter  domain.PropertyFilter
		wantIDs []int64
	}{
		{"no filters", domain.PropertyFilter{Limit: 100}, []int64{pa.ID, pb.ID, pc.ID}},
		{"station", domain.PropertyFilter{Station: ptr("Shibuya"), Limit: 100}, []int64{pb.ID}},
		{"rent range inclusive", domain.PropertyFilter{MinRent: ptr(80000), MaxRent: ptr(100000), Limit: 100}, []int64{pa.ID, pb.ID}},
		{"min rent zero still applies", domain.PropertyFilter{MinRent: ptr(0), Limit: 100}, []int64{pa.ID, pb.ID, pc.ID}},
		{"floor plan and station", domain.PropertyFilter{Station: ptr("Shinjuku"), FloorPlan: ptr("2LDK"), Limit: 100}, []int64{pc.ID}},
		{"no match", domain.PropertyFilter{Station: ptr("Nowhere"), Limit: 100}, []int64{}},
		{"skip and limit", domain.PropertyFilter{Skip: 1, Limit: 1}, []int64{pb.ID}},
		{"limit zero", domain.PropertyFilter{Limit: 0}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.properties.List(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPropertyRepository_ListGeohashPrefix(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	near := domain.NewProperty(sampleInput("near"), time.Now().UTC())
	near.Geohash = "xn76urx66"
	require.NoError(t, r.properties.Create(ctx, &near))
	far := domain.NewProperty(sampleInput("far"), time.Now().UTC())
	far.Geohash = "u4pruydqq"
	require.NoError(t, r.properties.Create(ctx, &far))

	got, err := r.properties.List(ctx, domain.PropertyFilter{GeohashPrefix: ptr("xn7"), Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, near.ID, got[0].ID)
}

func TestPropertyRepository_Update(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	created := createProperty(t, r, sampleInput("before"))

	in := sampleInput("after")
	in.Latitude = nil
	in.Longitude = nil
	in.ManagementFee = ptr(5000)
	next := created.Replaced(in, created.UpdatedAt.Add(time.Second))
	require.NoError(t, r.properties.Update(ctx, &next))

	got, err := r.properties.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Nil(t, got.Latitude)
	require.NotNil(t, got.ManagementFee)
	assert.Equal(t, 5000, *got.ManagementFee)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt))

	missing := next
	missing.ID = created.ID + 100
	assert.ErrorIs(t, r.properties.Update(ctx, &missing), domain.ErrPropertyNotFound)
}

func TestPropertyRepository_DeleteCascades(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	p := createProperty(t, r, sampleInput("doomed"))
	other := createProperty(t, r, sampleInput("survivor"))

	provider := domain.InternetProvider{PropertyID: p.ID, FletsPlan: ptr("flets"), CheckedAt: time.Now().UTC()}
	require.NoError(t, r.providers.Upsert(ctx, &provider))
	parking := domain.NewBikeParking(domain.BikeParkingInput{PropertyID: p.ID, ParkingName: "P1", Address: "a", ParkingURL: "u"}, time.Now().UTC())
	require.NoError(t, r.parkings.Create(ctx, &parking))
	otherParking := domain.NewBikeParking(domain.BikeParkingInput{PropertyID: other.ID, ParkingName: "P2", Address: "b", ParkingURL: "u"}, time.Now().UTC())
	require.NoError(t, r.parkings.Create(ctx, &otherParking))
	n := domain.NewNotification(domain.NotificationInput{PropertyID: p.ID, NotifiedAt: time.Now().UTC()}, time.Now().UTC())
	require.NoError(t, r.notifications.CreateAndMarkNotified(ctx, &n))

	require.NoError(t, r.properties.Delete(ctx, p.ID))

	_, err := r.properties.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	_, err = r.providers.GetByPropertyID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInternetProviderNotFound)
	parkings, err := r.parkings.ListByPropertyID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, parkings)
	notifications, err := r.notifications.ListByPropertyID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	parkings, err = r.parkings.ListByPropertyID(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, parkings, 1)

	assert.ErrorIs(t, r.properties.Delete(ctx, p.ID), domain.ErrPropertyNotFound)
}

func TestSchema_ForeignKeyCascade(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	p := createProperty(t, r, sampleInput("raw"))
	parking := domain.NewBikeParking(domain.BikeParkingInput{PropertyID: p.ID, ParkingName: "P", Address: "a", ParkingURL: "u"}, time.Now().UTC())
	require.NoError(t, r.parkings.Create(ctx, &parking))

	// удаление в обход репозитория: сработать должен ON DELETE CASCADE
	require.NoError(t, r.db.Exec("DELETE FROM properties WHERE id = ?", p.ID).Error)

	_, err := r.parkings.GetByID(ctx, parking.ID)
	assert.ErrorIs(t, err, domain.ErrBikeParkingNotFound)
}

func TestBikeParkingRepository_MissingPropertyIsNotFound(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	orphan := domain.NewBikeParking(domain.BikeParkingInput{PropertyID: 4242, ParkingName: "P", Address: "a", ParkingURL: "u"}, time.Now().UTC())
	assert.ErrorIs(t, r.parkings.Create(ctx, &orphan), domain.ErrPropertyNotFound)

	p := createProperty(t, r, sampleInput("owner"))
	parking := domain.NewBikeParking(domain.BikeParkingInput{PropertyID: p.ID, ParkingName: "P", Address: "a", ParkingURL: "u"}, time.Now().UTC())
	require.NoError(t, r.parkings.Create(ctx, &parking))

	parking.PropertyID = 4242
	assert.ErrorIs(t, r.parkings.Update(ctx, &parking), domain.ErrPropertyNotFound)

	got, err := r.parkings.GetByID(ctx, parking.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.PropertyID)
}

func TestInternetProviderRepository_UpsertOverwrites(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	p := createProperty(t, r, sampleInput("net"))

	first := domain.InternetProvider{PropertyID: p.ID, FletsPlan: ptr("flets"), NuroPlan: ptr("nuro"), CheckedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, r.providers.Upsert(ctx, &first))
	require.NotZero(t, first.ID)

	second := domain.InternetProvider{PropertyID: p.ID, AuHikariPlan: ptr("au"), CheckedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, r.providers.Upsert(ctx, &second))
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, r.db.Model(&internetProviderModel{}).Where("property_id = ?", p.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := r.providers.GetByPropertyID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FletsPlan)
	assert.Nil(t, got.NuroPlan)
	require.NotNil(t, got.AuHikariPlan)
	assert.Equal(t, "au", *got.AuHikariPlan)
	assert.True(t, got.CheckedAt.Equal(second.CheckedAt))

	missing := domain.InternetProvider{PropertyID: p.ID + 100, CheckedAt: time.Now().UTC()}
	assert.ErrorIs(t, r.providers.Upsert(ctx, &missing), domain.ErrPropertyNotFound)
}

func TestInternetProviderRepository_UpdateConflict(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	p1 := createProperty(t, r, sampleInput("one"))
	p2 := createProperty(t, r, sampleInput("two"))
	a := domain.InternetProvider{PropertyID: p1.ID, CheckedAt: time.Now().UTC()}
	b := domain.InternetProvider{PropertyID: p2.ID, CheckedAt: time.Now().UTC()}
	require.NoError(t, r.providers.Upsert(ctx, &a))
	require.NoError(t, r.providers.Upsert(ctx, &b))

	moved := a
	moved.PropertyID = p2.ID
	assert.ErrorIs(t, r.providers.Update(ctx, &moved), domain.ErrInternetProviderExists)

	a.JcomPlan = ptr("jcom")
	require.NoError(t, r.providers.Update(ctx, &a))

	missing := a
	missing.ID = 999
	assert.ErrorIs(t, r.providers.Update(ctx, &missing), domain.ErrInternetProviderNotFound)
	assert.ErrorIs(t, r.providers.Delete(ctx, 999), domain.ErrInternetProviderNotFound)
	assert.NoError(t, r.providers.Delete(ctx, a.ID))
}

func TestNotificationRepository_MarksPropertyNotified(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	p := createProperty(t, r, sampleInput("notify"))
	assert.Equal(t, "NEW", p.Status)

	n := domain.NewNotification(domain.NotificationInput{PropertyID: p.ID, NotifiedAt: time.Now().UTC(), LineMessageID: ptr("msg-1")}, time.Now().UTC())
	require.NoError(t, r.notifications.CreateAndMarkNotified(ctx, &n))
	require.NotZero(t, n.ID)

	got, err := r.properties.GetWithRelations(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotified, got.Status)
	assert.False(t, got.UpdatedAt.Before(p.UpdatedAt))
	require.Len(t, got.Notifications, 1)
	assert.Equal(t, "msg-1", *got.Notifications[0].LineMessageID)

	require.NoError(t, r.notifications.Delete(ctx, n.ID))
	got, err = r.properties.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotified, got.Status, "deleting a notification keeps the status")

	assert.ErrorIs(t, r.notifications.Delete(ctx, n.ID), domain.ErrNotificationNotFound)
}

func TestNotificationRepository_MissingPropertyWritesNothing(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	n := domain.NewNotification(domain.NotificationInput{PropertyID: 42, NotifiedAt: time.Now().UTC()}, time.Now().UTC())
	assert.ErrorIs(t, r.notifications.CreateAndMarkNotified(ctx, &n), domain.ErrPropertyNotFound)

	var count int64
	require.NoError(t, r.db.Model(&notificationModel{}).Count(&count).Error)
	assert.Zero(t, count)

	list, err := r.notifications.ListByPropertyID(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMigrations_DownDropsTables(t *testing.T) {
	r := setupRepos(t)

	m := NewMigrator(r.db)
	rolled, err := m.Down()
	require.NoError(t, err)
	assert.Equal(t, "create_property_tables", rolled.Name)
	assert.False(t, r.db.Migrator().HasTable("properties"))
	assert.False(t, r.db.Migrator().HasTable("notifications"))
}
