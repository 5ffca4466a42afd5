package command

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/services"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mcontext"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mopentelemetry"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

// UpsertQuestion implements C3: validate (C1), validate the type-specific
// payload (C2), look the question up by its natural key, overlay-or-create
// the aggregate, and replace its taxonomy relationships — natural-key lookup,
// question write, and relationship replace happen inside one transaction so
// a question is never visible without its relationships (I4, I5).
func (uc *UseCase) UpsertQuestion(ctx context.Context, authUserID int64, in *mmodel.UpsertQuestionInput) (*mmodel.UpsertQuestionOutput, error) {
	tracer := mcontext.NewTracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "command.upsert_question")

	defer span.End()

	if err := mopentelemetry.SetSpanAttributesFromStruct(&span, "app.request", in); err != nil {
		mopentelemetry.HandleSpanError(&span, "failed to set span attributes", err)
	}

	if err := uc.RunValidationChain(ctx, authUserID, in); err != nil {
		return nil, err
	}

	mcqData, tfData, essayData, err := buildTypedPayload(in)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "type strategy failed", err)
		return nil, err
	}

	var existing *question.Question

	lookupErr := mretry.Do(ctx, uc.Metrics, "natural_key_lookup", uc.RetryBudget, func(ctx context.Context) error {
		found, err := uc.QuestionRepo.FindByNaturalKey(ctx, in.UserID, in.BankID, in.SourceQuestionID)
		if err != nil {
			return mretry.Retryable(err)
		}

		existing = found

		return nil
	})
	if lookupErr != nil {
		mopentelemetry.HandleSpanError(&span, "natural key lookup failed", lookupErr)
		return nil, services.TranslateLookupError(lookupErr, "Question")
	}

	operation := mmodel.OperationCreated
	if existing != nil {
		operation = mmodel.OperationUpdated
	}

	now := time.Now()
	aggregate := buildAggregate(in, existing, mcqData, tfData, essayData, now)

	relationships := relationshipsFromAxes(in.UserID, in.BankID, aggregate.ID, relationshipAxesFromSelection(in.Taxonomy))

	writeErr := mretry.Do(ctx, uc.Metrics, "upsert_transaction", uc.RetryBudget, func(ctx context.Context) error {
		txErr := uc.Mongo.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
			persisted, err := uc.QuestionRepo.UpsertByNaturalKey(sessCtx, aggregate)
			if err != nil {
				return nil, err
			}

			aggregate = persisted

			if err := uc.RelationshipRepo.ReplaceForQuestion(sessCtx, aggregate.ID, relationships); err != nil {
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
		mopentelemetry.HandleSpanError(&span, "upsert transaction failed", writeErr)
		return nil, services.TranslateMongoError(writeErr, "Question", constant.ErrDuplicateSourceQuestionID)
	}

	return &mmodel.UpsertQuestionOutput{
		QuestionID:                 aggregate.ID,
		SourceQuestionID:           aggregate.SourceQuestionID,
		Operation:                  operation,
		TaxonomyRelationshipsCount: len(relationships),
	}, nil
}

func relationshipsFromAxes(userID int64, bankID, questionID string, axes map[relationship.TaxonomyType][]string) []relationship.Relationship {
	var relationships []relationship.Relationship

	for taxonomyType, ids := range axes {
		for _, id := range ids {
			relationships = append(relationships, relationship.Relationship{
				UserID:       userID,
				BankID:       bankID,
				QuestionID:   questionID,
				TaxonomyType: taxonomyType,
				TaxonomyID:   id,
			})
		}
	}

	return relationships
}
