package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/bank"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/taxonomy"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/services"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/apperr"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mcontext"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mopentelemetry"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

const defaultBankName = "My Question Bank"

// BootstrapDefaultBank implements C4: a user may bootstrap exactly once
// (I1). It rejects a second call with DUPLICATE_USER and otherwise creates
// the user's QuestionBanksPerUser record and its seeded TaxonomySet inside a
// single transaction, so a bank is never visible without a taxonomy set to
// validate references against (I2).
func (uc *UseCase) BootstrapDefaultBank(ctx context.Context, authUserID int64, in *mmodel.BootstrapInput) (*mmodel.BootstrapOutput, error) {
	tracer := mcontext.NewTracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "command.bootstrap_default_bank")

	defer span.End()

	if err := mopentelemetry.SetSpanAttributesFromStruct(&span, "app.request", in); err != nil {
		mopentelemetry.HandleSpanError(&span, "failed to set span attributes", err)
	}

	if in.UserID != authUserID {
		return nil, apperr.Translate(constant.ErrUnauthorizedAccess, "QuestionBanksPerUser")
	}

	var alreadyExists bool

	existsErr := mretry.Do(ctx, uc.Metrics, "bootstrap_exists_check", uc.RetryBudget, func(ctx context.Context) error {
		exists, err := uc.BankRepo.Exists(ctx, in.UserID)
		if err != nil {
			return mretry.Retryable(err)
		}

		alreadyExists = exists

		return nil
	})
	if existsErr != nil {
		mopentelemetry.HandleSpanError(&span, "bootstrap existence check failed", existsErr)
		return nil, services.TranslateLookupError(existsErr, "QuestionBanksPerUser")
	}

	if alreadyExists {
		return nil, apperr.Translate(constant.ErrDuplicateUser, "QuestionBanksPerUser", in.UserID)
	}

	now := time.Now()
	bankID := uuid.Must(uuid.NewV7()).String()

	record := &bank.QuestionBanksPerUser{
		UserID: in.UserID,
		Banks: []bank.QuestionBank{
			{
				BankID:      bankID,
				Name:        defaultBankName,
				Description: "Automatically created default question bank",
				IsActive:    true,
				CreatedAt:   now,
			},
		},
		DefaultBankID: bankID,
		CreatedAt:     now,
	}

	seed := taxonomy.DefaultSeed(in.UserID, bankID)

	writeErr := mretry.Do(ctx, uc.Metrics, "bootstrap_transaction", uc.RetryBudget, func(ctx context.Context) error {
		txErr := uc.Mongo.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
			if err := uc.BankRepo.Insert(sessCtx, record); err != nil {
				return nil, err
			}

			if err := uc.TaxonomyRepo.Insert(sessCtx, &seed); err != nil {
				return nil, err
			}

			return nil, nil
		})
		if txErr != nil {
			return mretry.Retryable(txErr)
		}

		return nil
	})
	if writeErr != nil {
		mopentelemetry.HandleSpanError(&span, "bootstrap transaction failed", writeErr)
		return nil, services.TranslateMongoError(writeErr, "QuestionBanksPerUser", constant.ErrDuplicateUser)
	}

	return &mmodel.BootstrapOutput{
		UserID:             in.UserID,
		BankID:             bankID,
		BankName:           defaultBankName,
		Description:        record.Banks[0].Description,
		IsActive:           true,
		TaxonomySetCreated: true,
		AvailableTaxonomy:  projectTaxonomy(&seed),
		CreatedAt:          now,
	}, nil
}

// projectTaxonomy flattens a TaxonomySet into the available_taxonomy shape
// the bootstrap response exposes: category ids keyed by level, tag ids, and
// difficulty level ids.
func projectTaxonomy(set *taxonomy.TaxonomySet) mmodel.TaxonomyProjection {
	categories := map[string][]string{}

	for n := 1; n <= 4; n++ {
		levels := set.CategoryLevelByNumber(n)
		if len(levels) == 0 {
			continue
		}

		ids := make([]string, len(levels))
		for i, c := range levels {
			ids[i] = c.ID
		}

		categories[categoryLevelKey(n)] = ids
	}

	tags := make([]string, len(set.Tags))
	for i, t := range set.Tags {
		tags[i] = t.ID
	}

	difficulty := make([]string, len(set.Difficulty))
	for i, d := range set.Difficulty {
		difficulty[i] = d.Level
	}

	return mmodel.TaxonomyProjection{
		Categories: categories,
		Tags:       tags,
		Difficulty: difficulty,
	}
}

func categoryLevelKey(n int) string {
	switch n {
	case 1:
		return "category_level_1"
	case 2:
		return "category_level_2"
	case 3:
		return "category_level_3"
	default:
		return "category_level_4"
	}
}
