package viewmodel

import (
	"context"
	"fmt"

	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
	"github.com/studiozen/yogabook/internal/validator"
)

// LoginViewModel drives the login screen: on success it records the
// returned identity in the ambient store and navigates to the session
// list.
type LoginViewModel struct {
	auth  AuthAPI
	store *session.Store
	nav   Navigator
}

// NewLoginViewModel creates the login view-model.
func NewLoginViewModel(auth AuthAPI, store *session.Store, nav Navigator) *LoginViewModel {
	return &LoginViewModel{auth: auth, store: store, nav: nav}
}

// Submit authenticates with the given credentials. Bad credentials
// surface as apiclient.ErrUnauthorized.
func (vm *LoginViewModel) Submit(ctx context.Context, email, password string) error {
	req := &model.LoginRequest{Email: email, Password: password}
	if fields := validator.Struct(req); fields != nil {
		return &ValidationError{Fields: fields}
	}

	info, err := vm.auth.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	vm.store.Login(session.Information{
		Token:     info.Token,
		Type:      info.Type,
		ID:        info.ID,
		Username:  info.Username,
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Admin:     info.Admin,
	})
	vm.nav.Navigate("/sessions")
	return nil
}

// RegisterViewModel drives the register screen: on success it navigates
// to the login screen. It never touches the ambient store.
type RegisterViewModel struct {
	auth AuthAPI
	nav  Navigator
}

// NewRegisterViewModel creates the register view-model.
func NewRegisterViewModel(auth AuthAPI, nav Navigator) *RegisterViewModel {
	return &RegisterViewModel{auth: auth, nav: nav}
}

// Submit creates a new account. A taken email surfaces as
// apiclient.ErrBadRequest.
func (vm *RegisterViewModel) Submit(ctx context.Context, req *model.RegisterRequest) error {
	if fields := validator.Struct(req); fields != nil {
		return &ValidationError{Fields: fields}
	}

	if err := vm.auth.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	vm.nav.Navigate("/login")
	return nil
}
