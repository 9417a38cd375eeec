package zonerepo_test

import (
	"context"
	"testing"
	"time"

	"orderintake/internal/adapters/out/postgres/zonerepo"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/zone"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ZoneRepositoryIntegrationTestSuite verifies zone persistence, including the
// jsonb polygon round trip, against a real PostgreSQL instance.
type ZoneRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *zonerepo.GormZoneRepository
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&zonerepo.ZoneDTO{}))
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE zones RESTART IDENTITY").Error)
	suite.repository = zonerepo.NewGormZoneRepository(suite.db)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ZoneRepositoryIntegrationTestSuite) squareRing(minLat, minLng, maxLat, maxLng float64) kernel.Polygon {
	corners := [][2]float64{
		{minLat, minLng},
		{minLat, maxLng},
		{maxLat, maxLng},
		{maxLat, minLng},
		{minLat, minLng},
	}

	vertices := make([]kernel.GeoPoint, 0, len(corners))
	for _, c := range corners {
		pt, err := kernel.NewGeoPoint(c[0], c[1])
		suite.Require().NoError(err)
		vertices = append(vertices, pt)
	}

	polygon, err := kernel.NewPolygon(vertices)
	suite.Require().NoError(err)
	return polygon
}

func (suite *ZoneRepositoryIntegrationTestSuite) seedZone(name string, fee int64, priority int, active bool) {
	z, err := zone.NewZone(name, fee, suite.squareRing(-38.02, -57.58, -37.98, -57.52), priority, active)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(context.Background(), z))
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetAllActive_OrdersByPriority() {
	suite.seedZone("Faro", 1000, 5, true)
	suite.seedZone("Centro", 500, 10, true)
	suite.seedZone("Cerrada", 800, 20, false)

	zones, err := suite.repository.GetAllActive(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(zones, 2)
	suite.Equal("Centro", zones[0].Name())
	suite.Equal("Faro", zones[1].Name())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetAllActive_EmptyTable() {
	zones, err := suite.repository.GetAllActive(context.Background())

	suite.Require().NoError(err)
	suite.Empty(zones)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGet_RoundTripsPolygon() {
	suite.seedZone("Centro", 500, 10, true)

	loaded, err := suite.repository.Get(context.Background(), 1)
	suite.Require().NoError(err)

	suite.Equal("Centro", loaded.Name())
	suite.Equal(int64(500), loaded.DeliveryFee())
	suite.Equal(10, loaded.Priority())
	suite.True(loaded.IsActive())

	inside, err := kernel.NewGeoPoint(-38.0, -57.55)
	suite.Require().NoError(err)
	contained, err := loaded.Contains(inside)
	suite.Require().NoError(err)
	suite.True(contained)

	outside, err := kernel.NewGeoPoint(-37.90, -57.55)
	suite.Require().NoError(err)
	contained, err = loaded.Contains(outside)
	suite.Require().NoError(err)
	suite.False(contained)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 99999)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestZoneRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ZoneRepositoryIntegrationTestSuite))
}
