package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	intakehttp "orderintake/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RateLimiterIntegrationTestSuite verifies the fixed-window limiter against a
// real redis instance.
type RateLimiterIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (suite *RateLimiterIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *RateLimiterIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *RateLimiterIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RateLimiterIntegrationTestSuite) limitedEcho(limit int64, window time.Duration) nethttp.Handler {
	e := echo.New()
	e.POST("/orders", func(c echo.Context) error {
		return c.NoContent(nethttp.StatusOK)
	})
	e.Use(intakehttp.RateLimiter(suite.client, intakehttp.RateLimiterConfig{
		Limit:  limit,
		Window: window,
		Prefix: "test:orders",
	}))
	return e
}

func (suite *RateLimiterIntegrationTestSuite) hit(handler nethttp.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(nethttp.MethodPost, "/orders", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func (suite *RateLimiterIntegrationTestSuite) TestAllowsUpToLimit() {
	handler := suite.limitedEcho(3, time.Minute)

	for range 3 {
		rec := suite.hit(handler)
		suite.Equal(nethttp.StatusOK, rec.Code)
	}
}

func (suite *RateLimiterIntegrationTestSuite) TestRejectsAboveLimit() {
	handler := suite.limitedEcho(3, time.Minute)

	for range 3 {
		suite.hit(handler)
	}
	rec := suite.hit(handler)

	suite.Equal(nethttp.StatusTooManyRequests, rec.Code)

	var body intakehttp.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal(intakehttp.CodeRateLimited, body.Code)
}

func (suite *RateLimiterIntegrationTestSuite) TestWindowExpiryResetsCounter() {
	handler := suite.limitedEcho(1, time.Second)

	suite.Equal(nethttp.StatusOK, suite.hit(handler).Code)
	suite.Equal(nethttp.StatusTooManyRequests, suite.hit(handler).Code)

	time.Sleep(1100 * time.Millisecond)
	suite.Equal(nethttp.StatusOK, suite.hit(handler).Code)
}

func (suite *RateLimiterIntegrationTestSuite) TestClientsCountedSeparately() {
	handler := suite.limitedEcho(1, time.Minute)

	first := httptest.NewRequest(nethttp.MethodPost, "/orders", nil)
	first.RemoteAddr = "10.0.0.1:4000"
	second := httptest.NewRequest(nethttp.MethodPost, "/orders", nil)
	second.RemoteAddr = "10.0.0.2:4000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	suite.Equal(nethttp.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	suite.Equal(nethttp.StatusOK, rec.Code)
}

func TestRateLimiterIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterIntegrationTestSuite))
}
