package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/foodbridge/food-bridge/internal/adapter"
	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/store"
	"github.com/foodbridge/food-bridge/models"
)

const matchPrompt = `You are helping match surplus food to recipients.

Food: %s, quantity: %s, urgency: %s.
Recipient: %s, capacity: %s, location: %s.
Rate the suitability of this food donation to the recipient from 0 to 100, and respond with only the number.`

// matchService is the concrete implementation of MatchService. For every
// food item it asks the oracle to rate each candidate recipient and keeps
// the single best-scoring pairing: a greedy per-food selection, not a
// global assignment.
type matchService struct {
	foodRepository      store.FoodRepository
	recipientRepository store.RecipientRepository
	oracle              adapter.OracleClient

	// maxConcurrent caps in-flight oracle calls per food item.
	// 1 keeps the calls fully sequential.
	maxConcurrent int

	logger *logger.Logger
}

// NewMatchService constructs a MatchService over the given repositories and
// oracle client.
func NewMatchService(foodRepository store.FoodRepository, recipientRepository store.RecipientRepository, oracle adapter.OracleClient, cfg config.Oracle, logger *logger.Logger) MatchService {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &matchService{
		foodRepository:      foodRepository,
		recipientRepository: recipientRepository,
		oracle:              oracle,
		maxConcurrent:       maxConcurrent,
		logger:              logger,
	}
}

// MatchFoods implements MatchService.
//
// Either repository fetch failing aborts the whole operation. An empty food
// or recipient set returns ErrNothingToMatch. A failed oracle call only
// removes that one recipient from consideration; foods for which every call
// failed are omitted from the result without error. One oracle call is
// issued per (food, recipient) pair, so cost grows as foods × recipients.
func (m *matchService) MatchFoods(ctx context.Context) ([]models.Match, error) {
	log := logger.FromContext(ctx)

	foods, err := m.foodRepository.GetAllFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching foods for matching failed: %w", err)
	}

	recipients, err := m.recipientRepository.GetAllRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching recipients for matching failed: %w", err)
	}

	if len(foods) == 0 || len(recipients) == 0 {
		log.Info().Int("foods", len(foods)).Int("recipients", len(recipients)).Msg("nothing to match")
		return nil, ErrNothingToMatch
	}

	matches := make([]models.Match, 0, len(foods))
	for _, food := range foods {
		match, ok := m.bestMatch(ctx, food, recipients)
		if !ok {
			log.Info().Str("food", food.Name).Msg("no usable score for food")
			continue
		}

		log.Debug().Str("food", food.Name).Str("recipient", match.Recipient).Int("score", match.Score).Msg("best match for food")
		matches = append(matches, match)
	}

	return matches, nil
}

// bestMatch scores every recipient for one food and returns the pairing
// with the highest score. Selection runs over recipient input order with a
// strict greater-than comparison, so the earliest maximum wins regardless
// of how the underlying calls interleave. ok is false when no call
// produced a usable score.
func (m *matchService) bestMatch(ctx context.Context, food models.Food, recipients []models.Recipient) (models.Match, bool) {
	scores := m.scoreRecipients(ctx, food, recipients)

	bestScore := -1
	var best models.Match
	for i, recipient := range recipients {
		if scores[i] == nil {
			continue
		}

		if *scores[i] > bestScore {
			bestScore = *scores[i]
			best = models.Match{
				Recipient: recipient.Name,
				Score:     *scores[i],
				Food: models.MatchedFood{
					Name:     food.Name,
					Quantity: food.Quantity,
					Urgency:  food.Urgency,
				},
			}
		}
	}

	return best, bestScore >= 0
}

// scoreRecipients asks the oracle to rate food against each recipient and
// returns the parsed scores indexed by recipient position. A nil entry
// means the call failed and the recipient contributes no score. At most
// maxConcurrent calls are in flight at once.
func (m *matchService) scoreRecipients(ctx context.Context, food models.Food, recipients []models.Recipient) []*int {
	log := logger.FromContext(ctx)

	scores := make([]*int, len(recipients))
	sem := make(chan struct{}, m.maxConcurrent)
	var wg sync.WaitGroup

	for i, recipient := range recipients {
		wg.Add(1)
		go func() {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			reply, err := m.oracle.Score(ctx, buildMatchPrompt(food, recipient))
			if err != nil {
				log.Err(err).Str("food", food.Name).Str("recipient", recipient.Name).Msg("oracle call failed")
				return
			}

			score := ParseScore(reply)
			scores[i] = &score
		}()
	}

	wg.Wait()
	return scores
}

// buildMatchPrompt renders the natural-language rating prompt for one
// (food, recipient) pair. Absent or zero numeric fields render as
// "unknown", matching the gaps a seeded inventory row may have.
func buildMatchPrompt(food models.Food, recipient models.Recipient) string {
	return fmt.Sprintf(matchPrompt,
		food.Name,
		numberOrUnknown(food.Quantity),
		textOrUnknown(food.Urgency),
		recipient.Name,
		numberOrUnknown(recipient.Capacity),
		recipient.Address,
	)
}

func numberOrUnknown(v *int64) string {
	if v == nil || *v == 0 {
		return "unknown"
	}
	return strconv.FormatInt(*v, 10)
}

func textOrUnknown(v *string) string {
	if v == nil || *v == "" {
		return "unknown"
	}
	return *v
}
