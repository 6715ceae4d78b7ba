package auth

import (
	"encoding/json"
	"net/http"
	"testing"

	"bugbounty-platform-backend/internal/database/models"
	"bugbounty-platform-backend/internal/mocks"
	"bugbounty-platform-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupAuthRouter(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockUserRepositoryInterface, *mocks.MockCompanyRepositoryInterface) {
	service, userRepo, companyRepo := newTestAuthService(t)
	handler := NewAuthHandler(service)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/auth/hackers/signup", handler.SignupHacker)
	httpSuite.Router.POST("/auth/hackers/login", handler.LoginHacker)
	httpSuite.Router.POST("/auth/companies/signup", handler.SignupCompany)
	httpSuite.Router.POST("/auth/companies/login", handler.LoginCompany)
	return httpSuite, userRepo, companyRepo
}

func TestSignupHackerEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		httpSuite, userRepo, _ := setupAuthRouter(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().GetByEmail("h4x0r@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().Create(gomock.Any()).Return(nil)

		w := httpSuite.MakeRequest(http.MethodPost, "/auth/hackers/signup", &HackerSignupRequest{
			Username:  "h4x0r",
			Email:     "h4x0r@example.com",
			Password:  "correct-horse",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, KindHacker, resp.Kind)
	})

	t.Run("duplicate username maps to 409", func(t *testing.T) {
		httpSuite, userRepo, _ := setupAuthRouter(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(&models.User{Username: "h4x0r"}, nil)

		w := httpSuite.MakeRequest(http.MethodPost, "/auth/hackers/signup", &HackerSignupRequest{
			Username:  "h4x0r",
			Email:     "h4x0r@example.com",
			Password:  "correct-horse",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid payload maps to 400", func(t *testing.T) {
		httpSuite, _, _ := setupAuthRouter(t)

		w := httpSuite.MakeRequest(http.MethodPost, "/auth/hackers/signup", &HackerSignupRequest{
			Username: "h4x0r",
			Email:    "not-an-email",
			Password: "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoints(t *testing.T) {
	t.Run("hacker login ok", func(t *testing.T) {
		httpSuite, userRepo, _ := setupAuthRouter(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(&models.User{
			Username:     "h4x0r",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		w := httpSuite.MakeRequest(http.MethodPost, "/auth/hackers/login", &LoginRequest{
			Identifier: "h4x0r",
			Password:   "correct-horse",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("hacker wrong password maps to 401", func(t *testing.T) {
		httpSuite, userRepo, _ := setupAuthRouter(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(&models.User{
			Username:     "h4x0r",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		w := httpSuite.MakeRequest(http.MethodPost, "/auth/hackers/login", &LoginRequest{
			Identifier: "h4x0r",
			Password:   "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("company login ok", func(t *testing.T) {
		httpSuite, _, companyRepo := setupAuthRouter(t)
		companyRepo.EXPECT().GetByEmail("security@acme.io").Return(&models.Company{
			Email:        "security@acme.io",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		w := httpSuite.MakeRequest(http.MethodPost, "/auth/companies/login", &LoginRequest{
			Identifier: "security@acme.io",
			Password:   "correct-horse",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, KindCompany, resp.Kind)
	})
}
