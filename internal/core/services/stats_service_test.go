package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatsRepository ---
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) FindDonationsInRange(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) ([]domain.Donation, error) {
	args := m.Called(ctx, from, to, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockStatsRepository) CountDonations(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (int64, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) SumDonationAmountUSD(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStatsRepository) CountDonationsByType(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (map[domain.DonationType]int64, error) {
	args := m.Called(ctx, from, to, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.DonationType]int64), args.Error(1)
}

func (m *MockStatsRepository) MonthlySubscriptionTotals(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (domain.AllocationTotals, domain.AllocationTotals, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).(domain.AllocationTotals), args.Get(1).(domain.AllocationTotals), args.Error(2)
}

func (m *MockStatsRepository) AllocationTotalsByKind(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (domain.AllocationTotals, domain.AllocationTotals, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).(domain.AllocationTotals), args.Get(1).(domain.AllocationTotals), args.Error(2)
}

func (m *MockStatsRepository) SumTeamSupportAndFees(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockStatsRepository) RecentDonations(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter, limit int) ([]domain.RecentDonation, error) {
	args := m.Called(ctx, from, to, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentDonation), args.Error(1)
}

// --- Test Suite ---
type StatsServiceTestSuite struct {
	suite.Suite
	mockStatsRepo *MockStatsRepository
	service       portssvc.StatsSvcFacade
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.mockStatsRepo = new(MockStatsRepository)
	suite.service = services.NewStatsService(suite.mockStatsRepo)
}

func donationOn(day time.Time, kind domain.DonationType, amountUSD int64) domain.Donation {
	return domain.Donation{
		DonationID: uuid.NewString(),
		Type:       kind,
		AmountUSD:  decimal.NewFromInt(amountUSD),
		AuditFields: domain.AuditFields{
			CreatedAt: day,
		},
	}
}

func (suite *StatsServiceTestSuite) TestGetChartSeries_ZeroFillsEveryDay() {
	ctx := context.Background()

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	donations := []domain.Donation{
		donationOn(now, domain.OneTime, 100),
		donationOn(now, domain.OneTime, 50),
		donationOn(now, domain.Monthly, 25),
	}
	suite.mockStatsRepo.On("FindDonationsInRange", ctx, mock.Anything, mock.Anything, portsrepo.StatsFilter{}).
		Return(donations, nil).Once()

	resp, err := suite.service.GetChartSeries(ctx, dto.StatsQueryParams{Period: "week"})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Buckets, 7, "one bucket per day, gaps zero-filled")

	var todayBucket *domain.DateBucket
	for i := range resp.Buckets {
		if resp.Buckets[i].Date == today {
			todayBucket = &resp.Buckets[i]
		} else {
			assert.Zero(suite.T(), resp.Buckets[i].CountOneTime)
			assert.Zero(suite.T(), resp.Buckets[i].CountMonthly)
			assert.True(suite.T(), resp.Buckets[i].AmountOneTime.IsZero())
		}
	}
	suite.Require().NotNil(todayBucket)
	assert.Equal(suite.T(), int64(2), todayBucket.CountOneTime)
	assert.True(suite.T(), decimal.NewFromInt(150).Equal(todayBucket.AmountOneTime))
	assert.Equal(suite.T(), int64(1), todayBucket.CountMonthly)
	assert.True(suite.T(), decimal.NewFromInt(25).Equal(todayBucket.AmountMonthly))
}

func (suite *StatsServiceTestSuite) TestGetChartSeries_AllocationUSDTakesPrecedence() {
	ctx := context.Background()

	now := time.Now().UTC()
	donation := donationOn(now, domain.OneTime, 100)
	donation.Items = []domain.DonationItem{
		{ItemID: uuid.NewString(), AmountUSD: decimal.NewFromInt(60)},
		{ItemID: uuid.NewString(), AmountUSD: decimal.NewFromInt(30)},
	}
	suite.mockStatsRepo.On("FindDonationsInRange", ctx, mock.Anything, mock.Anything, portsrepo.StatsFilter{}).
		Return([]domain.Donation{donation}, nil).Once()

	resp, err := suite.service.GetChartSeries(ctx, dto.StatsQueryParams{Period: "day"})

	suite.Require().NoError(err)
	today := now.Format("2006-01-02")
	for _, bucket := range resp.Buckets {
		if bucket.Date == today {
			assert.True(suite.T(), decimal.NewFromInt(90).Equal(bucket.AmountOneTime), "allocation USD sum beats the donation's own amountUSD")
		}
	}
}

func (suite *StatsServiceTestSuite) TestGetChartSeries_CampaignFilterBeatsCategory() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockStatsRepo.On("FindDonationsInRange", ctx, mock.Anything, mock.Anything, portsrepo.StatsFilter{CampaignID: &campaignID}).
		Return([]domain.Donation{}, nil).Once()

	_, err := suite.service.GetChartSeries(ctx, dto.StatsQueryParams{
		Period:     "day",
		CampaignID: &campaignID,
		CategoryID: &categoryID,
	})

	suite.Require().NoError(err)
	suite.mockStatsRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestGetChartSeries_ExplicitDatesWin() {
	ctx := context.Background()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	suite.mockStatsRepo.On("FindDonationsInRange", ctx, mock.Anything, mock.Anything, portsrepo.StatsFilter{}).
		Return([]domain.Donation{}, nil).Once()

	resp, err := suite.service.GetChartSeries(ctx, dto.StatsQueryParams{
		Period:    "all",
		StartDate: &start,
		EndDate:   &end,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "2026-03-01", resp.StartDate)
	assert.Equal(suite.T(), "2026-03-05", resp.EndDate)
	assert.Len(suite.T(), resp.Buckets, 5)
}

func (suite *StatsServiceTestSuite) TestGetStatsSummary_CombinesSubAggregates() {
	ctx := context.Background()

	suite.mockStatsRepo.On("CountDonations", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(12), nil).Once()
	suite.mockStatsRepo.On("SumDonationAmountUSD", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.NewFromInt(1200), nil).Once()
	suite.mockStatsRepo.On("CountDonationsByType", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(map[domain.DonationType]int64{domain.OneTime: 8, domain.Monthly: 4}, nil).Once()
	suite.mockStatsRepo.On("MonthlySubscriptionTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(
			domain.AllocationTotals{Count: 3, AmountUSD: decimal.NewFromInt(75)},
			domain.AllocationTotals{Count: 1, AmountUSD: decimal.NewFromInt(25)},
			nil,
		).Once()
	suite.mockStatsRepo.On("AllocationTotalsByKind", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(
			domain.AllocationTotals{Count: 10, AmountUSD: decimal.NewFromInt(900)},
			domain.AllocationTotals{Count: 4, AmountUSD: decimal.NewFromInt(300)},
			nil,
		).Once()
	suite.mockStatsRepo.On("SumTeamSupportAndFees", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.NewFromInt(40), decimal.NewFromInt(36), nil).Once()
	suite.mockStatsRepo.On("RecentDonations", mock.Anything, mock.Anything, mock.Anything, mock.Anything, 10).
		Return([]domain.RecentDonation{
			{DonationID: uuid.NewString(), Amount: decimal.NewFromInt(100), DonorName: "Ada", Type: domain.OneTime},
		}, nil).Once()

	resp, err := suite.service.GetStatsSummary(ctx, dto.StatsQueryParams{Period: "month"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(12), resp.TotalDonations)
	assert.True(suite.T(), decimal.NewFromInt(1200).Equal(resp.TotalAmountUSD))
	assert.Equal(suite.T(), int64(8), resp.OneTimeCount)
	assert.Equal(suite.T(), int64(4), resp.MonthlyCount)
	assert.Equal(suite.T(), int64(3), resp.ActiveMonthlyCount)
	assert.Equal(suite.T(), int64(1), resp.StoppedMonthlyCount)
	assert.True(suite.T(), decimal.NewFromInt(900).Equal(resp.CampaignAllocations.AmountUSD))
	assert.True(suite.T(), decimal.NewFromInt(300).Equal(resp.CategoryAllocations.AmountUSD))
	assert.True(suite.T(), decimal.NewFromInt(40).Equal(resp.TeamSupportSum))
	assert.True(suite.T(), decimal.NewFromInt(36).Equal(resp.FeesSum))
	suite.Require().Len(resp.Recent, 1)
	suite.mockStatsRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestGetStatsSummary_EmptyLedger() {
	ctx := context.Background()

	suite.mockStatsRepo.On("CountDonations", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).Once()
	suite.mockStatsRepo.On("SumDonationAmountUSD", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil).Once()
	suite.mockStatsRepo.On("CountDonationsByType", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(map[domain.DonationType]int64{}, nil).Once()
	suite.mockStatsRepo.On("MonthlySubscriptionTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.AllocationTotals{}, domain.AllocationTotals{}, nil).Once()
	suite.mockStatsRepo.On("AllocationTotalsByKind", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.AllocationTotals{}, domain.AllocationTotals{}, nil).Once()
	suite.mockStatsRepo.On("SumTeamSupportAndFees", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockStatsRepo.On("RecentDonations", mock.Anything, mock.Anything, mock.Anything, mock.Anything, 10).
		Return([]domain.RecentDonation{}, nil).Once()

	resp, err := suite.service.GetStatsSummary(ctx, dto.StatsQueryParams{})

	suite.Require().NoError(err)
	assert.Zero(suite.T(), resp.TotalDonations)
	assert.NotNil(suite.T(), resp.Recent, "empty ledger yields empty structures, not an error")
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
