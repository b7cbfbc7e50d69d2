package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/idx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

type GameService struct {
	Store  store.Store
	Policy ScoringPolicy
	Now    func() time.Time
}

// CreateGame opens a new prediction game in a class the teacher owns.
func (s *GameService) CreateGame(ctx context.Context, teacherID, classID, question string) (domain.Game, error) {
	question, err := validateText(question, 500, ErrInvalidQuestion)
	if err != nil {
		return domain.Game{}, err
	}

	class, err := s.Store.Classes().GetClassByID(ctx, classID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Game{}, ErrClassNotFound
	}
	if err != nil {
		return domain.Game{}, err
	}
	if class.TeacherID != teacherID {
		return domain.Game{}, ErrNotClassTeacher
	}

	now := clock(s.Now)
	game := domain.Game{
		ID:        idx.NewAt(now).String(),
		ClassID:   class.ID,
		Question:  question,
		CreatedAt: now,
	}
	if err := s.Store.Games().CreateGame(ctx, game); err != nil {
		return domain.Game{}, err
	}

	slogx.FromContext(ctx).Info("game created", "game_id", game.ID, "class_id", class.ID)
	return game, nil
}

// SubmitPrediction records a student's single prediction for an open game.
// Confidence is checked before anything is read.
func (s *GameService) SubmitPrediction(
	ctx context.Context,
	studentID, gameID, choice string,
	confidence float64,
) (domain.Prediction, error) {
	if err := ValidateConfidence(confidence); err != nil {
		return domain.Prediction{}, err
	}
	choice, err := validateText(choice, 100, ErrInvalidChoice)
	if err != nil {
		return domain.Prediction{}, err
	}

	game, err := s.Store.Games().GetGameByID(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Prediction{}, ErrGameNotFound
	}
	if err != nil {
		return domain.Prediction{}, err
	}
	if game.Resolved() {
		return domain.Prediction{}, ErrGameResolved
	}

	enrolled, err := s.Store.Classes().IsEnrolled(ctx, game.ClassID, studentID)
	if err != nil {
		return domain.Prediction{}, err
	}
	if !enrolled {
		return domain.Prediction{}, ErrNotEnrolled
	}

	now := clock(s.Now)
	p := domain.Prediction{
		ID:         idx.NewAt(now).String(),
		GameID:     game.ID,
		StudentID:  studentID,
		Choice:     choice,
		Confidence: confidence,
		CreatedAt:  now,
	}
	if err := s.Store.Predictions().CreatePrediction(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Prediction{}, ErrAlreadyPredicted
		}
		return domain.Prediction{}, err
	}

	slogx.FromContext(ctx).Info("prediction submitted", "game_id", game.ID, "student_id", studentID)
	return p, nil
}

// ResolveResult is a resolved game and the predictions as scored.
type ResolveResult struct {
	Game        domain.Game
	Predictions []domain.Prediction
}

// ResolveGame closes a game with outcome and scores every prediction with
// the configured policy. Resolving and scoring commit together.
func (s *GameService) ResolveGame(ctx context.Context, teacherID, gameID, outcome string) (ResolveResult, error) {
	outcome, err := validateText(outcome, 100, ErrInvalidChoice)
	if err != nil {
		return ResolveResult{}, err
	}

	var res ResolveResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		game, err := tx.Games().GetGameByID(ctx, gameID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}

		class, err := tx.Classes().GetClassByID(ctx, game.ClassID)
		if err != nil {
			return err
		}
		if class.TeacherID != teacherID {
			return ErrNotClassTeacher
		}

		now := clock(s.Now)
		if err := tx.Games().ResolveGame(ctx, game.ID, outcome, now); err != nil {
			if errors.Is(err, store.ErrNotMatched) {
				return ErrGameResolved
			}
			return err
		}
		game.Outcome = &outcome
		game.ResolvedAt = &now

		preds, err := tx.Predictions().ListPredictionsByGame(ctx, game.ID)
		if err != nil {
			return err
		}

		for i := range preds {
			p := &preds[i]
			correct := strings.EqualFold(p.Choice, outcome)

			points, err := s.policy().Score(domain.Outcome{
				PredictionID: p.ID,
				IsCorrect:    correct,
				Confidence:   p.Confidence,
			})
			if err != nil {
				return fmt.Errorf("score prediction %s: %w", p.ID, err)
			}
			if err := tx.Predictions().ScorePrediction(ctx, p.ID, correct, points); err != nil {
				return fmt.Errorf("store score for %s: %w", p.ID, err)
			}
			p.IsCorrect = &correct
			p.Points = &points
		}

		res = ResolveResult{Game: game, Predictions: preds}
		return nil
	})
	if err != nil {
		return ResolveResult{}, err
	}

	slogx.FromContext(ctx).Info("game resolved",
		"game_id", res.Game.ID,
		"predictions", len(res.Predictions),
	)
	return res, nil
}

func (s *GameService) policy() ScoringPolicy {
	if s.Policy != nil {
		return s.Policy
	}
	return LinearV1
}
