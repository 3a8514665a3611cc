package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
)

func TestLogin_StoresIdentityAndNavigates(t *testing.T) {
	auth := &fakeAuthAPI{info: &model.SessionInformation{
		Token:    "tok",
		Type:     "Bearer",
		ID:       1,
		Username: "yoga@studio.com",
		Admin:    true,
	}}
	store := session.NewStore()
	nav := &fakeNavigator{}
	vm := NewLoginViewModel(auth, store, nav)

	require.NoError(t, vm.Submit(context.Background(), "yoga@studio.com", "test!1234"))

	assert.Equal(t, "yoga@studio.com", auth.loginWith.Email)
	assert.Equal(t, "test!1234", auth.loginWith.Password)

	info, ok := store.Information()
	require.True(t, ok)
	assert.Equal(t, int64(1), info.ID)
	assert.True(t, info.Admin)
	assert.Equal(t, "tok", store.Token())
	assert.Equal(t, []string{"/sessions"}, nav.paths)
}

func TestLogin_FailureLeavesStoreEmpty(t *testing.T) {
	auth := &fakeAuthAPI{loginErr: errors.New("bad credentials")}
	store := session.NewStore()
	nav := &fakeNavigator{}
	vm := NewLoginViewModel(auth, store, nav)

	require.Error(t, vm.Submit(context.Background(), "yoga@studio.com", "wrong"))
	assert.False(t, store.IsLogged())
	assert.Empty(t, nav.paths)
}

func TestLogin_RejectsMalformedEmail(t *testing.T) {
	auth := &fakeAuthAPI{}
	vm := NewLoginViewModel(auth, session.NewStore(), &fakeNavigator{})

	err := vm.Submit(context.Background(), "not-an-email", "test!1234")

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Nil(t, auth.loginWith, "no request leaves the client")
}

func TestRegister_NavigatesToLogin(t *testing.T) {
	auth := &fakeAuthAPI{}
	nav := &fakeNavigator{}
	vm := NewRegisterViewModel(auth, nav)

	req := &model.RegisterRequest{
		Email:     "yoga@studio.com",
		FirstName: "Andrea",
		LastName:  "Franco",
		Password:  "test!1234",
	}
	require.NoError(t, vm.Submit(context.Background(), req))

	assert.Equal(t, req, auth.registerWith)
	assert.Equal(t, []string{"/login"}, nav.paths)
}

func TestRegister_ErrorPropagates(t *testing.T) {
	auth := &fakeAuthAPI{registerErr: errors.New("email taken")}
	nav := &fakeNavigator{}
	vm := NewRegisterViewModel(auth, nav)

	require.Error(t, vm.Submit(context.Background(), &model.RegisterRequest{
		Email:     "yoga@studio.com",
		FirstName: "Andrea",
		LastName:  "Franco",
		Password:  "test!1234",
	}))
	assert.Empty(t, nav.paths)
}
