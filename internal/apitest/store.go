package apitest

import (
	"sort"
	"sync"
	"time"

	"github.com/studiozen/yogabook/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// memStore is the in-memory state behind the test double. All access
// goes through the mutex; ids are auto-incremented the way the real
// database would.
type memStore struct {
	mu          sync.Mutex
	users       map[int64]*model.User
	passwords   map[int64]string
	sessions    map[int64]*model.Session
	teachers    map[int64]*model.Teacher
	nextUser    int64
	nextSession int64
	nextTeacher int64
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[int64]*model.User),
		passwords: make(map[int64]string),
		sessions:  make(map[int64]*model.Session),
		teachers:  make(map[int64]*model.Teacher),
	}
}

func now() *time.Time {
	t := time.Now().UTC().Truncate(time.Second)
	return &t
}

func (st *memStore) createUser(email, firstName, lastName, password string, admin bool, bcryptCost int) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextUser++
	user := &model.User{
		ID:        st.nextUser,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Admin:     admin,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	st.users[user.ID] = user
	st.passwords[user.ID] = string(hash)
	return user, nil
}

func (st *memStore) userByEmail(email string) (*model.User, string, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, u := range st.users {
		if u.Email == email {
			return u, st.passwords[u.ID], true
		}
	}
	return nil, "", false
}

func (st *memStore) userByID(id int64) (*model.User, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	u, ok := st.users[id]
	return u, ok
}

func (st *memStore) deleteUser(id int64) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.users[id]; !ok {
		return false
	}
	delete(st.users, id)
	delete(st.passwords, id)
	return true
}

func (st *memStore) createTeacher(firstName, lastName string) *model.Teacher {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextTeacher++
	teacher := &model.Teacher{
		ID:        st.nextTeacher,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	st.teachers[teacher.ID] = teacher
	return teacher
}

func (st *memStore) teacherByID(id int64) (*model.Teacher, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	t, ok := st.teachers[id]
	return t, ok
}

func (st *memStore) listTeachers() []model.Teacher {
	st.mu.Lock()
	defer st.mu.Unlock()
	teachers := make([]model.Teacher, 0, len(st.teachers))
	for _, t := range st.teachers {
		teachers = append(teachers, *t)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers
}

func (st *memStore) createSession(req *model.SessionRequest) *model.Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextSession++
	session := &model.Session{
		ID:          st.nextSession,
		Name:        req.Name,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
		Description: req.Description,
		Users:       []int64{},
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	st.sessions[session.ID] = session
	return session
}

func (st *memStore) sessionByID(id int64) (*model.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *memStore) listSessions() []model.Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	sessions := make([]model.Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		sessions = append(sessions, *s)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions
}

func (st *memStore) updateSession(id int64, req *model.SessionRequest) (*model.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	session.Name = req.Name
	session.Date = req.Date
	session.TeacherID = req.TeacherID
	session.Description = req.Description
	session.UpdatedAt = now()
	return session, true
}

func (st *memStore) deleteSession(id int64) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// addParticipant returns (sessionFound, userAdded). The participant set
// stays duplicate-free: adding an existing member reports added=false.
func (st *memStore) addParticipant(sessionID, userID int64) (found, added bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[sessionID]
	if !ok {
		return false, false
	}
	for _, id := range session.Users {
		if id == userID {
			return true, false
		}
	}
	session.Users = append(session.Users, userID)
	session.UpdatedAt = now()
	return true, true
}

func (st *memStore) removeParticipant(sessionID, userID int64) (found, removed bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[sessionID]
	if !ok {
		return false, false
	}
	for i, id := range session.Users {
		if id == userID {
			session.Users = append(session.Users[:i], session.Users[i+1:]...)
			session.UpdatedAt = now()
			return true, true
		}
	}
	return true, false
}
