package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/mindconnect/mind-service/internal/auth"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/repository"
)

// SeedDemoData populates empty therapist and motivation stores with sample
// content for development environments. Roles are seeded by migration, not
// here. Safe to call repeatedly: non-empty stores are left untouched.
func SeedDemoData(ctx context.Context, therapists repository.TherapistRepository, motivations repository.MotivationRepository, bcryptCost int, logger *zap.Logger) error {
	existing, err := therapists.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		hash, err := auth.HashPassword("password123", bcryptCost)
		if err != nil {
			return err
		}
		for _, t := range demoTherapists(hash) {
			if err := therapists.Create(ctx, t); err != nil {
				return err
			}
		}
		logger.Info("seeded demo therapists", zap.Int("count", len(demoTherapists(hash))))
	}

	count, err := motivations.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for _, m := range demoMotivations() {
			if err := motivations.Create(ctx, m); err != nil {
				return err
			}
		}
		logger.Info("seeded demo motivation content", zap.Int("count", len(demoMotivations())))
	}

	return nil
}

func demoTherapists(passwordHash string) []*domain.Therapist {
	return []*domain.Therapist{
		{
			FirstName:      "Dr. Sarah",
			LastName:       "Johnson",
			Email:          "sarah.johnson@mindconnect.example",
			PasswordHash:   passwordHash,
			Specialization: "Anxiety and Depression",
			Qualification:  "PhD in Clinical Psychology",
			Experience:     8,
			Phone:          "+1-555-0101",
			Bio:            "Specialized in cognitive behavioral therapy with 8 years of experience helping individuals overcome anxiety and depression.",
			Rating:         4.8,
			Available:      true,
		},
		{
			FirstName:      "Dr. Michael",
			LastName:       "Chen",
			Email:          "michael.chen@mindconnect.example",
			PasswordHash:   passwordHash,
			Specialization: "Trauma and PTSD",
			Qualification:  "MD, Psychiatrist",
			Experience:     12,
			Phone:          "+1-555-0102",
			Bio:            "Board-certified psychiatrist specializing in trauma recovery and PTSD treatment using evidence-based approaches.",
			Rating:         4.9,
			Available:      true,
		},
		{
			FirstName:      "Dr. Emily",
			LastName:       "Rodriguez",
			Email:          "emily.rodriguez@mindconnect.example",
			PasswordHash:   passwordHash,
			Specialization: "Family and Relationship Therapy",
			Qualification:  "LMFT, Licensed Marriage and Family Therapist",
			Experience:     6,
			Phone:          "+1-555-0103",
			Bio:            "Licensed therapist focusing on family dynamics, couples counseling, and relationship building.",
			Rating:         4.7,
			Available:      true,
		},
	}
}

func demoMotivations() []*domain.Motivation {
	return []*domain.Motivation{
		{
			Title:    "Daily Inspiration",
			Content:  "The greatest revolution of our generation is the discovery that human beings, by changing the inner attitudes of their minds, can change the outer aspects of their lives.",
			Type:     domain.MotivationQuote,
			Author:   "William James",
			Category: "Inspiration",
			Active:   true,
		},
		{
			Title:    "Breathing Exercise",
			Content:  "Try the 4-7-8 breathing technique: Inhale for 4 counts, hold for 7 counts, exhale for 8 counts. Repeat 3-4 times to reduce anxiety and promote relaxation.",
			Type:     domain.MotivationTip,
			Author:   "MindConnect Team",
			Category: "Anxiety Relief",
			Active:   true,
		},
		{
			Title:    "Understanding Mental Health",
			Content:  "Mental health includes our emotional, psychological, and social well-being. It affects how we think, feel, and act. It also helps determine how we handle stress, relate to others, and make choices.",
			Type:     domain.MotivationArticle,
			Author:   "Mental Health Foundation",
			Category: "Education",
			Active:   true,
		},
		{
			Title:    "Gratitude Practice",
			Content:  "Each morning, write down three things you're grateful for. This simple practice can significantly improve your mood and overall mental well-being.",
			Type:     domain.MotivationExercise,
			Author:   "MindConnect Team",
			Category: "Gratitude",
			Active:   true,
		},
	}
}
