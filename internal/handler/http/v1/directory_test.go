package v1

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContacts(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.directory.EXPECT().
		CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, contact *models.Contact) error {
			assert.Equal(t, "+441", contact.UserPhone)
			contact.ID = 3
			return nil
		})
	m.directory.EXPECT().ListContacts(gomock.Any(), "+441").Return([]models.Contact{{ID: 3, Name: "Desk"}}, nil)
	m.directory.EXPECT().DeleteContact(gomock.Any(), int64(3)).Return(nil)
	m.directory.EXPECT().DeleteContact(gomock.Any(), int64(4)).Return(fmt.Errorf("contact: %w", models.ErrNotFound))

	w := makeRequest(router, "POST", "/api/v1/contacts", bytes.NewBufferString(`{"name":"Desk","user_phone":"+441"}`), authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"id":3}`, w.Body.String())

	w = makeRequest(router, "GET", "/api/v1/contacts?user_phone=%2B441", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Desk"`)

	w = makeRequest(router, "DELETE", "/api/v1/contacts/3", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/contacts/4", nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuspects(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.directory.EXPECT().ListSuspects(gomock.Any()).Return(nil, nil)
	m.directory.EXPECT().
		UpdateSuspect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Suspect) error {
			assert.Equal(t, int64(9), s.ID)
			assert.Equal(t, "Johnny", *s.Alias)
			return nil
		})

	w := makeRequest(router, "GET", "/api/v1/suspects", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = makeRequest(router, "PUT", "/api/v1/suspects/9", bytes.NewBufferString(`{"name":"J. Doe","alias":"Johnny"}`), authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "POST", "/api/v1/suspects", bytes.NewBufferString(`{"alias":"nameless"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVehicles(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.directory.EXPECT().
		CreateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Vehicle) error {
			assert.Equal(t, "AB12 CDE", v.Registration)
			v.ID = 5
			return nil
		})
	m.directory.EXPECT().DeleteVehicle(gomock.Any(), int64(5)).Return(nil)

	w := makeRequest(router, "POST", "/api/v1/vehicles", bytes.NewBufferString(`{"registration":"AB12 CDE"}`), authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/vehicles/5", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/vehicles/five", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifications(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.directory.EXPECT().ListNotifications(gomock.Any(), "+442").
		Return([]models.Notification{{ID: 1, UserPhone: "+442", Title: "New Incident Request"}}, nil)
	m.directory.EXPECT().MarkNotificationRead(gomock.Any(), int64(1)).Return(nil)

	w := makeRequest(router, "GET", "/api/v1/users/+442/notifications", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Incident Request")

	w = makeRequest(router, "PUT", "/api/v1/notifications/1/read", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
}
