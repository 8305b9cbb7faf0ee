package impl

import (
	"context"
	"strings"
	"testing"

	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvatarTestEnv(t *testing.T) (*avatarService, *fakeAvatarStore, *fakeEmployeeRepo) {
	t.Helper()

	store := &fakeAvatarStore{}
	employeeRepo := newFakeEmployeeRepo()
	service := NewAvatarService(AvatarServiceParams{
		Store:        store,
		EmployeeRepo: employeeRepo,
		Logger:       newDiscardLogger(),
	}).(*avatarService)

	return service, store, employeeRepo
}

func TestAvatarService_Upload(t *testing.T) {
	service, store, _ := newAvatarTestEnv(t)

	out, err := service.Upload(context.Background(), strings.NewReader("png-bytes"), ".png")

	require.NoError(t, err)
	assert.NotEmpty(t, out.URL)
	assert.Len(t, store.saved, 1)
}

func TestAvatarService_Upload_StoreFailure(t *testing.T) {
	service, store, _ := newAvatarTestEnv(t)
	store.failSave = true

	_, err := service.Upload(context.Background(), strings.NewReader("png-bytes"), ".png")

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}

func TestAvatarService_UploadFor_OwnershipGate(t *testing.T) {
	service, _, employeeRepo := newAvatarTestEnv(t)
	employeeRepo.add(&entity.EmployeeDetail{Employee: entity.Employee{UserID: 1}})
	employeeRepo.add(&entity.EmployeeDetail{Employee: entity.Employee{UserID: 2}})

	_, err := service.UploadFor(context.Background(), userPrincipal, 1, strings.NewReader("x"), ".jpg")
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden)

	_, err = service.UploadFor(context.Background(), userPrincipal, 999, strings.NewReader("x"), ".jpg")
	assert.ErrorIs(t, err, domainerrors.ErrStaffNotFound)

	out, err := service.UploadFor(context.Background(), userPrincipal, 2, strings.NewReader("x"), ".jpg")
	require.NoError(t, err)

	employee, err := employeeRepo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, out.URL, employee.Avatar)
}

func TestAvatarService_UploadFor_RemovesReplacedAvatar(t *testing.T) {
	service, store, employeeRepo := newAvatarTestEnv(t)
	employeeRepo.add(&entity.EmployeeDetail{
		Employee: entity.Employee{UserID: 2, Avatar: "/uploads/avatars/old.png"},
	})

	_, err := service.UploadFor(context.Background(), userPrincipal, 1, strings.NewReader("x"), ".png")

	require.NoError(t, err)
	require.Len(t, store.removed, 1)
	assert.Equal(t, "/uploads/avatars/old.png", store.removed[0])
}
