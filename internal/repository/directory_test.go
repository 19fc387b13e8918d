package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryRepository_Contacts(t *testing.T) {
	// Подготовка
	repo := NewDirectoryRepository(openTestDB(t))
	ctx := context.Background()

	for _, c := range []*models.Contact{
		{Name: "Locksmith", UserPhone: "+441"},
		{Name: "Hatzola", UserPhone: "+441", Phone: strPtr("999")},
		{Name: "Other owner", UserPhone: "+442"},
	} {
		require.NoError(t, repo.CreateContact(ctx, c))
		assert.NotZero(t, c.ID)
	}

	// Действие
	contacts, err := repo.ListContacts(ctx, "+441")

	// Проверки
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Hatzola", contacts[0].Name)
	assert.Equal(t, "Locksmith", contacts[1].Name)

	require.NoError(t, repo.DeleteContact(ctx, contacts[0].ID))
	assert.ErrorIs(t, repo.DeleteContact(ctx, contacts[0].ID), models.ErrNotFound)

	contacts, err = repo.ListContacts(ctx, "+441")
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestDirectoryRepository_ListContactsEmpty(t *testing.T) {
	repo := NewDirectoryRepository(openTestDB(t))

	contacts, err := repo.ListContacts(context.Background(), "+449")

	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestDirectoryRepository_SuspectUpdate(t *testing.T) {
	// Подготовка
	repo := NewDirectoryRepository(openTestDB(t))
	ctx := context.Background()

	suspect := &models.Suspect{Name: "Unknown male", CreatedBy: strPtr("+441")}
	require.NoError(t, repo.CreateSuspect(ctx, suspect))
	createdAt := suspect.UpdatedAt

	time.Sleep(5 * time.Millisecond)

	// Действие
	err := repo.UpdateSuspect(ctx, &models.Suspect{ID: suspect.ID, Name: "John Doe", Alias: strPtr("JD")})

	// Проверки
	require.NoError(t, err)
	suspects, err := repo.ListSuspects(ctx)
	require.NoError(t, err)
	require.Len(t, suspects, 1)
	assert.Equal(t, "John Doe", suspects[0].Name)
	assert.Equal(t, "JD", *suspects[0].Alias)
	assert.Equal(t, "+441", *suspects[0].CreatedBy)
	assert.True(t, suspects[0].UpdatedAt.After(createdAt))
}

func TestDirectoryRepository_SuspectMissing(t *testing.T) {
	repo := NewDirectoryRepository(openTestDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, repo.UpdateSuspect(ctx, &models.Suspect{ID: 42, Name: "x"}), models.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteSuspect(ctx, 42), models.ErrNotFound)
}

func TestDirectoryRepository_Vehicles(t *testing.T) {
	// Подготовка
	repo := NewDirectoryRepository(openTestDB(t))
	ctx := context.Background()

	first := &models.Vehicle{Registration: "AB12 CDE"}
	require.NoError(t, repo.CreateVehicle(ctx, first))
	second := &models.Vehicle{Registration: "XY34 ZZZ", Status: "stolen"}
	require.NoError(t, repo.CreateVehicle(ctx, second))

	// Действие
	vehicles, err := repo.ListVehicles(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "XY34 ZZZ", vehicles[0].Registration)
	assert.Equal(t, models.VehicleStatusActive, vehicles[1].Status)

	first.Make = strPtr("Ford")
	first.Status = "recovered"
	require.NoError(t, repo.UpdateVehicle(ctx, first))
	require.NoError(t, repo.DeleteVehicle(ctx, second.ID))

	vehicles, err = repo.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Ford", *vehicles[0].Make)
	assert.Equal(t, "recovered", vehicles[0].Status)
}

func TestDirectoryRepository_Notifications(t *testing.T) {
	// Подготовка
	db := openTestDB(t)
	repo := NewDirectoryRepository(db)
	ctx := context.Background()

	older := &models.Notification{UserPhone: "+441", Title: "Assigned", Message: "first", Type: "assignment"}
	require.NoError(t, db.Create(older).Error)
	newer := &models.Notification{UserPhone: "+441", Title: "Assigned", Message: "second", Type: "assignment"}
	require.NoError(t, db.Create(newer).Error)

	// Действие
	require.NoError(t, repo.MarkNotificationRead(ctx, older.ID))
	notifications, err := repo.ListNotifications(ctx, "+441")

	// Проверки
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Message)
	assert.False(t, notifications[0].IsRead)
	assert.True(t, notifications[1].IsRead)

	assert.ErrorIs(t, repo.MarkNotificationRead(ctx, 999), models.ErrNotFound)
}
