package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordering/internal/adapters/out/postgres/paymentrepo"
	"ordering/internal/core/domain/model/payment"
	"ordering/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// PaymentRepositoryIntegrationTestSuite verifies payment persistence behavior
// against a real PostgreSQL container.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpsert_InsertsAttempt() {
	ctx := context.Background()
	attempt, err := payment.NewPayment(7, "pay-1", 900, "card", payment.StatusPending)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Upsert(ctx, attempt))
	suite.NotZero(attempt.ID())

	found, err := suite.repository.GetByPaymentID(ctx, "pay-1")
	suite.Require().NoError(err)
	suite.Equal(payment.StatusPending, found.Status())
	suite.Nil(found.PaymentDate())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpsert_ReplayUpdatesInPlace() {
	ctx := context.Background()

	first, err := payment.NewPayment(7, "pay-1", 900, "card", payment.StatusPending)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, first))

	replay, err := payment.NewPayment(7, "pay-1", 900, "card", payment.StatusSucceeded)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, replay))

	var count int64
	suite.Require().NoError(suite.db.Model(&paymentrepo.PaymentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	found, err := suite.repository.GetByPaymentID(ctx, "pay-1")
	suite.Require().NoError(err)
	suite.Equal(payment.StatusSucceeded, found.Status())
	suite.NotNil(found.PaymentDate())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpsert_PaymentDateSurvivesReplay() {
	ctx := context.Background()

	succeeded, err := payment.NewPayment(7, "pay-1", 900, "card", payment.StatusSucceeded)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, succeeded))

	stamped, err := suite.repository.GetByPaymentID(ctx, "pay-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(stamped.PaymentDate())
	originalDate := *stamped.PaymentDate()

	replay, err := payment.NewPayment(7, "pay-1", 900, "card", payment.StatusSucceeded)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, replay))

	found, err := suite.repository.GetByPaymentID(ctx, "pay-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(found.PaymentDate())
	suite.WithinDuration(originalDate, *found.PaymentDate(), time.Millisecond)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetLatestByOrderID() {
	ctx := context.Background()

	first, err := payment.NewPayment(7, "pay-1", 900, "card", payment.StatusFailed)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, first))

	second, err := payment.NewPayment(7, "pay-2", 900, "card", payment.StatusSucceeded)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, second))

	latest, err := suite.repository.GetLatestByOrderID(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal("pay-2", latest.PaymentID())

	_, err = suite.repository.GetLatestByOrderID(ctx, 12345)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
