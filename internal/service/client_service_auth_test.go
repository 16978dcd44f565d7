package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/mock"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuth(t *testing.T) (ClientAuthService, *mock.MockTweetAPI, *mock.MockSettingsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := mock.NewMockTweetAPI(ctrl)
	settings := mock.NewMockSettingsRepository(ctrl)
	session := NewClientSession(settings, api, logger.Nop())

	return NewClientAuthService(api, session, logger.Nop()), api, settings
}

func TestClientAuthService_Login_PersistsSession(t *testing.T) {
	auth, api, settings := newTestClientAuth(t)
	ctx := context.Background()

	resp := models.AuthResponse{User: models.PublicUser{ID: "u-1", Username: "bob"}, Token: "jwt"}
	api.EXPECT().Login(ctx, models.LoginRequest{Email: "bob@example.com", Password: "pw"}).Return(resp, nil)
	settings.EXPECT().Set(ctx, models.SettingToken, "jwt").Return(nil)
	settings.EXPECT().Set(ctx, models.SettingUser, gomock.Any()).Return(nil)
	api.EXPECT().SetToken("jwt")

	user, err := auth.Login(ctx, models.LoginRequest{Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, resp.User, user)
}

func TestClientAuthService_Login_MapsServerError(t *testing.T) {
	auth, api, _ := newTestClientAuth(t)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, &adapter.Error{
		Kind: adapter.ErrUnauthorized, StatusCode: http.StatusUnauthorized, Message: "invalid credentials",
	})

	_, err := auth.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestClientAuthService_Signup_ValidationDetails(t *testing.T) {
	auth, api, _ := newTestClientAuth(t)

	api.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, &adapter.Error{
		Kind:    adapter.ErrBadRequest,
		Message: "Invalid signup data",
		Details: map[string]string{"username": "is required"},
	})

	_, err := auth.Signup(context.Background(), models.SignupRequest{})
	require.ErrorIs(t, err, ErrValidation)

	msg, details, ok := Message(err)
	assert.True(t, ok)
	assert.Equal(t, "Invalid signup data", msg)
	assert.Equal(t, "is required", details["username"])
}

func TestClientAuthService_Signup_SessionSaveFails(t *testing.T) {
	auth, api, settings := newTestClientAuth(t)

	api.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: "jwt"}, nil)
	settings.EXPECT().Set(gomock.Any(), models.SettingToken, "jwt").Return(errors.New("disk full"))

	_, err := auth.Signup(context.Background(), models.SignupRequest{})
	assert.Error(t, err)
}

func TestClientAuthService_Logout_AlwaysClears(t *testing.T) {
	auth, api, settings := newTestClientAuth(t)
	ctx := context.Background()

	api.EXPECT().Logout(ctx).Return(errors.New("connection refused"))
	api.EXPECT().SetToken("")
	settings.EXPECT().Delete(ctx, models.SettingToken, models.SettingUser).Return(nil)

	assert.NoError(t, auth.Logout(ctx))
}
