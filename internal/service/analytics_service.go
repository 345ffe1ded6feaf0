package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/config"
	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
)

// statsWindowDays is the trailing window for the account attendance rate.
const statsWindowDays = 30

// AnalyticsService composes directory and ledger aggregates for the
// dashboard. Account snapshots are cached in Redis for a short TTL;
// a cache miss or a broken cache falls through to Postgres.
type AnalyticsService struct {
	analyticsRepo *repository.AnalyticsRepository
	rdb           *redis.Client
	cfg           *config.Config
	log           zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		rdb:           rdb,
		cfg:           cfg,
		log:           log.With().Str("component", "analytics_service").Logger(),
	}
}

// AccountStats returns student counts by course and the attendance rate
// over the trailing 30 days.
func (s *AnalyticsService) AccountStats(ctx context.Context, ownerID int) (*model.AccountStats, error) {
	key := config.CacheKey.AccountStatsKey(ownerID)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		stats := &model.AccountStats{}
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
		// Unreadable payload; recompute below.
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Int("account_id", ownerID).Msg("stats cache read failed")
	}

	total, err := s.analyticsRepo.CountStudents(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byCourse, err := s.analyticsRepo.CountByCourse(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	attTotal, attPresent, err := s.analyticsRepo.AttendanceCounts(ctx, ownerID, statsWindowDays)
	if err != nil {
		return nil, err
	}

	stats := &model.AccountStats{
		TotalStudents:  total,
		ByCourse:       byCourse,
		AttendanceRate: percentage(attPresent, attTotal),
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.StatsCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Int("account_id", ownerID).Msg("stats cache write failed")
		}
	}

	return stats, nil
}

// AttendanceTrend returns per-day attendance totals over the trailing
// windowDays, oldest first. windowDays is clamped to [1, 365] and
// defaults to 30.
func (s *AnalyticsService) AttendanceTrend(ctx context.Context, ownerID, windowDays int) ([]model.TrendPoint, error) {
	if windowDays < 1 {
		windowDays = statsWindowDays
	}
	if windowDays > 365 {
		windowDays = 365
	}

	points, err := s.analyticsRepo.AttendanceTrend(ctx, ownerID, windowDays)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []model.TrendPoint{}
	}
	return points, nil
}

// TopPerformers ranks students by average score across all subjects.
// Students with no mark entries are excluded. limit is clamped to
// [1, 100] and defaults to 10.
func (s *AnalyticsService) TopPerformers(ctx context.Context, ownerID, limit int) ([]model.PerformerRow, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	performers, err := s.analyticsRepo.TopPerformers(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}
	for i := range performers {
		performers[i].AverageScore = round1(performers[i].AverageScore)
	}
	if performers == nil {
		performers = []model.PerformerRow{}
	}
	return performers, nil
}

// SubjectPerformance aggregates marks per subject across the account's
// students, best average first.
func (s *AnalyticsService) SubjectPerformance(ctx context.Context, ownerID int) ([]model.SubjectRow, error) {
	subjects, err := s.analyticsRepo.SubjectPerformance(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		subjects[i].AverageScore = round1(subjects[i].AverageScore)
	}
	if subjects == nil {
		subjects = []model.SubjectRow{}
	}
	return subjects, nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percentage returns part/total*100 rounded to one decimal, zero when
// total is zero.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}
