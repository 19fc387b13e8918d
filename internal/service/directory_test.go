package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectoryService(t *testing.T) (*directoryService, *mocks.MockDirectoryRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDirectoryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewDirectoryService(repoMock, logger)
	return service.(*directoryService), repoMock
}

func TestCreateContact(t *testing.T) {
	service, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	contact := &models.Contact{Name: "Desk Sergeant", UserPhone: "+441"}

	repoMock.EXPECT().CreateContact(ctx, contact).Return(nil).Times(1)

	require.NoError(t, service.CreateContact(ctx, contact))
	assert.ErrorIs(t, service.CreateContact(ctx, &models.Contact{UserPhone: "+441"}), models.ErrValidation)
	assert.ErrorIs(t, service.CreateContact(ctx, &models.Contact{Name: "x"}), models.ErrValidation)
}

func TestListContacts_RequiresOwner(t *testing.T) {
	service, _ := newTestDirectoryService(t)

	_, err := service.ListContacts(context.Background(), "")

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateSuspect_NotFound(t *testing.T) {
	service, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	suspect := &models.Suspect{ID: 9, Name: "J. Doe"}

	repoMock.EXPECT().UpdateSuspect(ctx, suspect).Return(fmt.Errorf("suspect 9: %w", models.ErrNotFound))

	assert.ErrorIs(t, service.UpdateSuspect(ctx, suspect), models.ErrNotFound)
}

func TestCreateVehicle_DefaultStatus(t *testing.T) {
	// Подготовка
	service, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	vehicle := &models.Vehicle{Registration: "AB12 CDE"}

	// Ожидания
	repoMock.EXPECT().CreateVehicle(ctx, vehicle).Return(nil).Times(1)

	// Действие
	err := service.CreateVehicle(ctx, vehicle)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusActive, vehicle.Status)
}

func TestUpdateVehicle_RequiresRegistration(t *testing.T) {
	service, _ := newTestDirectoryService(t)

	err := service.UpdateVehicle(context.Background(), &models.Vehicle{ID: 1})

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestMarkNotificationRead(t *testing.T) {
	service, repoMock := newTestDirectoryService(t)
	ctx := context.Background()

	repoMock.EXPECT().MarkNotificationRead(ctx, int64(3)).Return(nil)
	repoMock.EXPECT().MarkNotificationRead(ctx, int64(4)).Return(fmt.Errorf("notification 4: %w", models.ErrNotFound))

	assert.NoError(t, service.MarkNotificationRead(ctx, 3))
	assert.ErrorIs(t, service.MarkNotificationRead(ctx, 4), models.ErrNotFound)
}
