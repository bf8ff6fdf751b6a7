package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/residence-hub/internal/api/middleware"
	"github.com/linskybing/residence-hub/internal/config"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	return NewUserService(repos), mockUser
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := user.CreateUserInput{
		Email:      " Alice@Example.com ",
		Password:   "123456",
		FlatNumber: "B-204",
		FullName:   ptrString("Alice"),
	}

	mockUser.EXPECT().GetUserByEmail("alice@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.UID = 7
		return nil
	})

	usr, err := svc.Register(input)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), usr.UID)
	assert.Equal(t, "alice@example.com", usr.Email)
	assert.Equal(t, config.RoleResident, usr.Role)
	assert.NotEqual(t, "123456", usr.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte("123456")))
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{UID: 1}, nil)

	_, err := svc.Register(user.CreateUserInput{Email: "bob@example.com", Password: "123456", FlatNumber: "A-1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Register(user.CreateUserInput{Email: "bob@example.com", Password: "123456", FlatNumber: "A-1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_LookupError(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{}, errors.New("db down"))

	_, err := svc.Register(user.CreateUserInput{Email: "bob@example.com", Password: "123456", FlatNumber: "A-1"})
	assert.EqualError(t, err, "db down")
}

func TestCreateAdmin_SetsRole(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("root@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).Return(nil)

	usr, err := svc.CreateAdmin(user.CreateUserInput{Email: "root@example.com", Password: "123456", FlatNumber: "office"})
	assert.NoError(t, err)
	assert.Equal(t, config.RoleAdmin, usr.Role)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	usr := user.User{UID: 1, Email: "bob@example.com", Role: config.RoleResident, Password: hashed(t, "123456")}
	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, email, role string, exp time.Duration) (string, error) {
		assert.Equal(t, uint(1), userID)
		assert.Equal(t, config.RoleResident, role)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("bob@example.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), u.UID)
	assert.Equal(t, "token123", token)
}

func TestLogin_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	usr := user.User{UID: 1, Email: "bob@example.com", Password: hashed(t, "123456")}
	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(usr, nil)

	_, _, err := svc.Login("bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ghost@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- FindByID / List ---------------------
func TestFindByID_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.FindByID(9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestList_DefaultLimit(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().ListUsers(50, 0).Return([]user.User{{UID: 1}}, nil)

	users, err := svc.List(0, 0)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

// --------------------- Update ---------------------
func TestUpdate_SelfProfile(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, FlatNumber: "A-1"}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, err := svc.Update(user.Actor{ID: 3}, 3, user.UpdateUserInput{
		FlatNumber: ptrString("C-9"),
		FullName:   ptrString("Carol"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "C-9", usr.FlatNumber)
	assert.Equal(t, "Carol", *usr.FullName)
}

func TestUpdate_OtherUserForbidden(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.Update(user.Actor{ID: 3}, 4, user.UpdateUserInput{FlatNumber: ptrString("C-9")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_ResidentCannotChangeRole(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3}, nil)

	_, err := svc.Update(user.Actor{ID: 3}, 3, user.UpdateUserInput{Role: ptrString(config.RoleAdmin)})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_AdminChangesRole(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(4)).Return(user.User{UID: 4, Role: config.RoleResident}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, err := svc.Update(user.Actor{ID: 1, IsAdmin: true}, 4, user.UpdateUserInput{Role: ptrString(config.RoleAdmin)})
	assert.NoError(t, err)
	assert.Equal(t, config.RoleAdmin, usr.Role)
}

func TestUpdate_PasswordRequiresOld(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, Password: hashed(t, "123456")}, nil)

	_, err := svc.Update(user.Actor{ID: 3}, 3, user.UpdateUserInput{Password: ptrString("newpass")})
	assert.ErrorIs(t, err, ErrMissingOldPassword)
}

func TestUpdate_PasswordWrongOld(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, Password: hashed(t, "123456")}, nil)

	_, err := svc.Update(user.Actor{ID: 3}, 3, user.UpdateUserInput{
		OldPassword: ptrString("nope"),
		Password:    ptrString("newpass"),
	})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestUpdate_PasswordChanged(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, Password: hashed(t, "123456")}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, err := svc.Update(user.Actor{ID: 3}, 3, user.UpdateUserInput{
		OldPassword: ptrString("123456"),
		Password:    ptrString("newpass"),
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte("newpass")))
}
