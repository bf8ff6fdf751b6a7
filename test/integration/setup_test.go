//go:build integration
// +build integration

package integration

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/api/middleware"
	"github.com/linskybing/residence-hub/internal/api/routes"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/config"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/internal/testutils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds all test dependencies
type TestContext struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Services *application.Services
}

func setupTestContext(t *testing.T) *TestContext {
	t.Helper()

	config.JwtSecret = "test-secret-key-for-integration-testing"
	config.Issuer = "test-residence-hub"
	config.TokenTTL = time.Hour
	middleware.Init()

	conn := testutils.SetupPostgresForIntegration(t)
	repos := repository.NewRepositories(conn)
	services := application.New(repos, application.Deps{})
	t.Cleanup(services.Suggestion.Close)

	router := testutils.NewTestEngine()
	routes.RegisterRoutes(router, routes.Deps{
		Repos:    repos,
		Services: services,
	})

	return &TestContext{DB: conn, Router: router, Services: services}
}

// clientFor returns an HTTP client authenticated as u.
func (tc *TestContext) clientFor(t *testing.T, u user.User) *testutils.HTTPClient {
	t.Helper()
	token, err := middleware.GenerateToken(u.UID, u.Email, u.Role, time.Hour)
	require.NoError(t, err)
	return testutils.NewHTTPClient(tc.Router, token)
}
