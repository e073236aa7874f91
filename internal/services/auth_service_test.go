package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
	"panchmev/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// TestMain is used to set up the test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_SignUp(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// Successful registration gets the default customer role and a
	// hashed password.
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.SignUp("Test@Example.com", "password123", "Test User")
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email) // normalized
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Duplicate email is rejected.
	mockRepo.On("GetByEmail", "test@example.com").Return(&models.User{ID: "1"}, nil).Once()
	_, err = authService.SignUp("test@example.com", "password123", "Test User")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SignIn(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		FullName: "Test User",
		Password: string(hashedPassword),
		Role:     models.RoleCustomer,
	}

	// Successful login returns a token and the user row.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, got, err := authService.SignIn("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.RoleCustomer, got.Role)
	mockRepo.AssertExpectations(t)

	// Wrong password yields the generic error.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.SignIn("test@example.com", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Unknown email yields the same generic error.
	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, fmt.Errorf("user ghost@example.com: %w", repositories.ErrNotFound)).Once()
	_, _, err = authService.SignIn("ghost@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SessionUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleCustomer,
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, _, err := authService.SignIn(user.Email, "password123")
	assert.NoError(t, err)

	// The role comes from the users table, not the token: promote the
	// user out-of-band and the same token resolves to the new role.
	promoted := *user
	promoted.Role = models.RoleAdmin
	mockRepo.On("GetByID", user.ID).Return(&promoted, nil).Once()

	got, err := authService.SessionUser(token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
	mockRepo.AssertExpectations(t)

	// Garbage tokens are rejected.
	_, err = authService.SessionUser("not-a-token")
	assert.Error(t, err)

	// A valid token whose user vanished is "no session" too.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token2, _, err := authService.SignIn(user.Email, "password123")
	assert.NoError(t, err)
	mockRepo.On("GetByID", user.ID).Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.SessionUser(token2)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
