package service

import (
	"testing"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/internal/mock"
	"github.com/MKhiriev/go-sign-gate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{AccountRepository: mock.NewMockAccountRepository(ctrl)}

	services := NewServices(storages, config.App{BcryptCost: bcrypt.MinCost}, logger.Nop())
	require.NotNil(t, services)

	auth, ok := services.AuthService.(*authService)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, auth.hasher.(*bcryptHasher).cost)
}
