package queries_test

import (
	"context"
	"testing"
	"time"

	"postal/internal/adapters/out/postgres/orderrepo"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/order"
	"postal/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandlerTestSuite tests the tracking lookup against a
// real PostgreSQL database.
type GetOrderTrackingQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderTrackingQueryHandler
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderTrackingQueryHandler(db)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_Found() {
	ctx := context.Background()
	routeID := uuid.New()
	consolidatedAt := time.Now().Add(-time.Hour).Truncate(time.Second)

	dto := orderrepo.OrderDTO{
		ID:                   uuid.New(),
		TrackingNumber:       "VN100200300",
		OriginOfficeID:       uuid.New(),
		CurrentOfficeID:      uuid.New(),
		DestinationOfficeID:  uuid.New(),
		DestinationWardCode:  "D1001",
		ChargeableWeightKg:   2.5,
		Status:               int(order.AtProvinceWarehouse),
		ConsolidationRouteID: &routeID,
		CreatedAt:            time.Now().Add(-2 * time.Hour),
		ConsolidatedAt:       &consolidatedAt,
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderTrackingQuery("VN100200300")
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("VN100200300", resp.TrackingNumber)
	suite.Equal(order.AtProvinceWarehouse.String(), resp.Status)
	suite.Equal(dto.ID, resp.ID.Bytes())
	suite.Equal(dto.CurrentOfficeID, resp.CurrentOfficeID.Bytes())
	suite.Equal("D1001", resp.DestinationWardCode)
	suite.InDelta(2.5, resp.ChargeableWeightKg, 0.001)
	suite.Require().NotNil(resp.ConsolidationRouteID)
	suite.Equal(routeID, resp.ConsolidationRouteID.Bytes())
	suite.Nil(resp.BatchID)
	suite.Require().NotNil(resp.ConsolidatedAt)
	suite.WithinDuration(consolidatedAt, *resp.ConsolidatedAt, time.Second)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetOrderTrackingQuery("VN000000000")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_UnconstructedQuery() {
	ctx := context.Background()

	var query queries.GetOrderTrackingQuery
	_, err := suite.handler.Handle(ctx, query)

	suite.ErrorIs(err, queries.ErrGetOrderTrackingQueryIsNotConstructed)
}

func TestGetOrderTrackingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderTrackingQueryHandlerTestSuite))
}
