package viewmodel

import (
	"context"
	"testing"

	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
)

// fakeSessionAPI keeps one current session and mimics the server's
// participant handling so re-fetch-after-mutate can be observed.
type fakeSessionAPI struct {
	all     []model.Session
	current *model.Session

	allErr           error
	detailErr        error
	participateErr   error
	unParticipateErr error
	deleteErr        error

	participateCalls   [][2]int64
	unParticipateCalls [][2]int64
	deleteCalls        []int64
	createdWith        *model.SessionRequest
	updatedWith        *model.SessionRequest
	updatedID          int64
	detailCalls        int
}

func (f *fakeSessionAPI) All(ctx context.Context) ([]model.Session, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.all, nil
}

func (f *fakeSessionAPI) Detail(ctx context.Context, id int64) (*model.Session, error) {
	f.detailCalls++
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	copied := *f.current
	copied.Users = append([]int64(nil), f.current.Users...)
	return &copied, nil
}

func (f *fakeSessionAPI) Create(ctx context.Context, req *model.SessionRequest) (*model.Session, error) {
	f.createdWith = req
	return &model.Session{ID: 1, Name: req.Name}, nil
}

func (f *fakeSessionAPI) Update(ctx context.Context, id int64, req *model.SessionRequest) (*model.Session, error) {
	f.updatedID = id
	f.updatedWith = req
	return &model.Session{ID: id, Name: req.Name}, nil
}

func (f *fakeSessionAPI) Delete(ctx context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func (f *fakeSessionAPI) Participate(ctx context.Context, sessionID, userID int64) error {
	f.participateCalls = append(f.participateCalls, [2]int64{sessionID, userID})
	if f.participateErr != nil {
		return f.participateErr
	}
	f.current.Users = append(f.current.Users, userID)
	return nil
}

func (f *fakeSessionAPI) UnParticipate(ctx context.Context, sessionID, userID int64) error {
	f.unParticipateCalls = append(f.unParticipateCalls, [2]int64{sessionID, userID})
	if f.unParticipateErr != nil {
		return f.unParticipateErr
	}
	users := f.current.Users[:0]
	for _, id := range f.current.Users {
		if id != userID {
			users = append(users, id)
		}
	}
	f.current.Users = users
	return nil
}

type fakeTeacherAPI struct {
	teachers map[int64]*model.Teacher
	allErr   error
}

func (f *fakeTeacherAPI) All(ctx context.Context) ([]model.Teacher, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	teachers := make([]model.Teacher, 0, len(f.teachers))
	for _, t := range f.teachers {
		teachers = append(teachers, *t)
	}
	return teachers, nil
}

func (f *fakeTeacherAPI) Detail(ctx context.Context, id int64) (*model.Teacher, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

type fakeUserAPI struct {
	user      *model.User
	getErr    error
	deleteErr error

	deleteCalls []int64
}

func (f *fakeUserAPI) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func (f *fakeUserAPI) Delete(ctx context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

type fakeAuthAPI struct {
	info        *model.SessionInformation
	loginErr    error
	registerErr error

	loginWith    *model.LoginRequest
	registerWith *model.RegisterRequest
}

func (f *fakeAuthAPI) Login(ctx context.Context, req *model.LoginRequest) (*model.SessionInformation, error) {
	f.loginWith = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.info, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, req *model.RegisterRequest) error {
	f.registerWith = req
	return f.registerErr
}

type fakeNavigator struct {
	paths []string
	backs int
}

func (n *fakeNavigator) Navigate(path string) { n.paths = append(n.paths, path) }
func (n *fakeNavigator) Back()                { n.backs++ }

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(message string) { n.messages = append(n.messages, message) }

var errNotFound = errSentinel("not found")

type errSentinel string

func (e errSentinel) Error() string { return string(e) }

func loggedInStore(t *testing.T, id int64, admin bool) *session.Store {
	t.Helper()
	store := session.NewStore()
	store.Login(session.Information{Token: "tok", ID: id, Username: "user@test.com", Admin: admin})
	return store
}
