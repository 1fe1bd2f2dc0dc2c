package sessionstore_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/redis/sessionstore"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SessionStoreIntegrationTestSuite provides integration tests for the Redis
// session store using a Redis container.
type SessionStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	store     *sessionstore.RedisSessionStore
}

func (suite *SessionStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start Redis container
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	suite.Require().NoError(suite.client.Ping(ctx).Err())

	suite.store = sessionstore.NewRedisSessionStoreWithClient(suite.client)
}

func (suite *SessionStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *SessionStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SessionStoreIntegrationTestSuite) storeSession(token string, userID kernel.UUID, role string, ttl time.Duration) {
	payload, err := json.Marshal(map[string]string{
		"user_id": userID.String(),
		"role":    role,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.client.Set(context.Background(), "session:"+token, payload, ttl).Err())
}

func (suite *SessionStoreIntegrationTestSuite) TestResolve_ValidToken_ReturnsActor() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	suite.storeSession("tok-customer", userID, "customer", time.Minute)

	actor, err := suite.store.Resolve(ctx, "tok-customer")
	suite.Require().NoError(err)
	suite.True(userID.IsEqual(actor.UserID()))
	suite.Equal(kernel.RoleCustomer, actor.Role())
}

func (suite *SessionStoreIntegrationTestSuite) TestResolve_AllRoles_RoundTrip() {
	ctx := context.Background()

	for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RoleSeller, kernel.RoleDelivery} {
		token := "tok-" + string(role)
		suite.storeSession(token, kernel.NewUUID(), string(role), time.Minute)

		actor, err := suite.store.Resolve(ctx, token)
		suite.Require().NoError(err)
		suite.Equal(role, actor.Role())
	}
}

func (suite *SessionStoreIntegrationTestSuite) TestResolve_UnknownToken_ReturnsNotAuthorized() {
	ctx := context.Background()

	_, err := suite.store.Resolve(ctx, "no-such-token")
	suite.Require().Error(err)

	var notAuthorizedErr *errs.NotAuthorizedError
	suite.Require().ErrorAs(err, &notAuthorizedErr)
}

func (suite *SessionStoreIntegrationTestSuite) TestResolve_EmptyToken_ReturnsNotAuthorized() {
	ctx := context.Background()

	_, err := suite.store.Resolve(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrNotAuthorized)
}

func (suite *SessionStoreIntegrationTestSuite) TestResolve_ExpiredToken_ReturnsNotAuthorized() {
	ctx := context.Background()

	suite.storeSession("tok-expiring", kernel.NewUUID(), "seller", 50*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	_, err := suite.store.Resolve(ctx, "tok-expiring")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrNotAuthorized)
}

func (suite *SessionStoreIntegrationTestSuite) TestResolve_InvalidRole_ReturnsNotAuthorized() {
	ctx := context.Background()

	suite.storeSession("tok-bad-role", kernel.NewUUID(), "admin", time.Minute)

	_, err := suite.store.Resolve(ctx, "tok-bad-role")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrNotAuthorized)
}

func TestSessionStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreIntegrationTestSuite))
}
