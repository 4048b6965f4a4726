package expert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"consultly/models"
	"consultly/services/events"
	"consultly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validStatuses = map[string]bool{
	"active": true, "away": true, "busy": true, "offline": true,
}

func (s *DefaultExpertService) GetByID(ctx context.Context, id string) (*models.Expert, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultExpertService) List(ctx context.Context, filter models.ExpertFilter) ([]models.Expert, int64, error) {
	return s.Repo.List(ctx, filter)
}

// ListFeatured serves the featured listing from the cache when possible.
// Cache failures are advisory: they are logged and the repository answers.
func (s *DefaultExpertService) ListFeatured(ctx context.Context) ([]models.Expert, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, featuredCacheKey); err == nil {
			var experts []models.Expert
			if jsonErr := json.Unmarshal(data, &experts); jsonErr == nil {
				return experts, nil
			}
		} else if err != ErrCacheMiss {
			utils.GetLogger().Warn("featured cache read failed", zap.Error(err))
		}
	}

	experts, err := s.Repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, jsonErr := json.Marshal(experts); jsonErr == nil {
			if err := s.Cache.Set(ctx, featuredCacheKey, data, featuredCacheTTL); err != nil {
				utils.GetLogger().Warn("featured cache write failed", zap.Error(err))
			}
		}
	}
	return experts, nil
}

// Categories returns the distinct service categories offered across experts.
func (s *DefaultExpertService) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.ListCategories(ctx)
}

// UpdateAvailability replaces the expert's weekly rules after validating
// them at the boundary. Only the owning user may update a profile.
func (s *DefaultExpertService) UpdateAvailability(ctx context.Context, expertID, actorUserID string, req models.UpdateAvailabilityRequest) (*models.Expert, error) {
	expert, err := s.Repo.GetByID(ctx, expertID)
	if err != nil {
		return nil, err
	}
	if expert.UserID != actorUserID {
		return nil, fmt.Errorf("user %s does not own expert profile %s", actorUserID, expertID)
	}

	if err := validateRules(req.Availability); err != nil {
		return nil, err
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", req.Timezone, err)
		}
	}

	rules := make([]models.AvailabilityRule, len(req.Availability))
	copy(rules, req.Availability)
	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.New().String()
		}
	}

	if err := s.Repo.UpdateAvailability(ctx, expertID, rules, req.Timezone); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}

	expert.Availability = rules
	if req.Timezone != "" {
		expert.Timezone = req.Timezone
	}
	return expert, nil
}

// UpdateStatus changes the expert's presence and pushes an expert:status
// event to connected clients.
func (s *DefaultExpertService) UpdateStatus(ctx context.Context, expertID, actorUserID, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status %q", status)
	}
	expert, err := s.Repo.GetByID(ctx, expertID)
	if err != nil {
		return err
	}
	if expert.UserID != actorUserID {
		return fmt.Errorf("user %s does not own expert profile %s", actorUserID, expertID)
	}
	if err := s.Repo.UpdateStatus(ctx, expertID, status); err != nil {
		return err
	}
	if s.Cache != nil {
		// The featured listing embeds presence; drop it so the next read
		// sees the new status.
		if err := s.Cache.Del(ctx, featuredCacheKey); err != nil {
			utils.GetLogger().Warn("featured cache invalidation failed", zap.Error(err))
		}
	}
	if s.Events != nil {
		s.Events.Publish(events.KindExpertStatus, map[string]string{
			"expertId": expertID,
			"status":   status,
		})
	}
	return nil
}

// validateRules rejects malformed weekly rules before they reach storage
// or the resolver. Duplicate weekday entries are tolerated; the resolver
// uses the first match.
func validateRules(rules []models.AvailabilityRule) error {
	seen := map[int]bool{}
	for i, rule := range rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return fmt.Errorf("rule %d: dayOfWeek %d out of range", i, rule.DayOfWeek)
		}
		start, err := time.Parse(models.RuleTimeLayout, rule.StartTime)
		if err != nil {
			return fmt.Errorf("rule %d: invalid startTime %q", i, rule.StartTime)
		}
		end, err := time.Parse(models.RuleTimeLayout, rule.EndTime)
		if err != nil {
			return fmt.Errorf("rule %d: invalid endTime %q", i, rule.EndTime)
		}
		if !start.Before(end) {
			return fmt.Errorf("rule %d: startTime must precede endTime", i)
		}
		if rule.BufferMinutes < 0 {
			return fmt.Errorf("rule %d: negative bufferMinutes", i)
		}
		if seen[rule.DayOfWeek] {
			utils.GetLogger().Warn("duplicate availability rule for weekday, first match wins",
				zap.Int("dayOfWeek", rule.DayOfWeek))
		}
		seen[rule.DayOfWeek] = true
	}
	return nil
}
