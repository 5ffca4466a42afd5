package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/security"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/apperr"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mchecksum"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mcontext"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mopentelemetry"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

// sumChecksum adapts pkg/mchecksum.Sum to the func(any) (string, error)
// shape security.Event.Seal expects.
func sumChecksum(v any) (string, error) {
	return mchecksum.Sum(v)
}

// step is one handler of the C1 validation chain: it either passes (nil) or
// fails with a typed error that short-circuits the remaining steps.
type step struct {
	name string
	run  func(ctx context.Context, uc *UseCase, tracer trace.Tracer, authUserID int64, in *mmodel.UpsertQuestionInput) error
}

// RunValidationChain executes C1's fixed, ordered pipeline: identity binding,
// ownership, taxonomy references, data integrity. authUserID is the caller's
// authenticated identity (I6); in.UserID is what the command claims.
func (uc *UseCase) RunValidationChain(ctx context.Context, authUserID int64, in *mmodel.UpsertQuestionInput) error {
	tracer := mcontext.NewTracerFromContext(ctx)
	logger := mcontext.NewLoggerFromContext(ctx)

	for _, s := range chainSteps {
		stepCtx, span := tracer.Start(ctx, "command.validation_chain."+s.name)

		err := mretry.Do(stepCtx, uc.Metrics, s.name, uc.RetryBudget, func(stepCtx context.Context) error {
			return s.run(stepCtx, uc, tracer, authUserID, in)
		})

		if err != nil {
			mopentelemetry.HandleSpanError(&span, "validation step failed", err)
			uc.Metrics.IncrementErrorCode(errorCode(err))
			logger.Warnf("validation chain failed at step %q: %v", s.name, err)
			span.End()

			return err
		}

		span.End()
	}

	return nil
}

var chainSteps = []step{
	{name: "identity_binding", run: identityBindingStep},
	{name: "ownership", run: ownershipStep},
	{name: "taxonomy_references", run: taxonomyReferencesStep},
	{name: "data_integrity", run: dataIntegrityStep},
}

func errorCode(err error) string {
	code, _, _ := strings.Cut(err.Error(), ":")
	return code
}

// identityBindingStep asserts (I6): the identity the pipeline sees is the
// authenticated caller's identity.
func identityBindingStep(ctx context.Context, uc *UseCase, _ trace.Tracer, authUserID int64, in *mmodel.UpsertQuestionInput) error {
	if in.UserID == authUserID {
		return nil
	}

	event := &security.Event{
		Type:     security.EventTypePathParameterManipulation,
		UserID:   authUserID,
		Severity: security.SeverityCritical,
		Details: map[string]any{
			"claimed_user_id":       in.UserID,
			"authenticated_user_id": authUserID,
		},
	}

	if err := sealAndAppend(ctx, uc, event); err != nil {
		return err
	}

	return apperr.Translate(constant.ErrUnauthorizedAccess, "Question")
}

// ownershipStep runs the two ownership probes: does user_id own bank_id,
// and is that bank active?
func ownershipStep(ctx context.Context, uc *UseCase, _ trace.Tracer, authUserID int64, in *mmodel.UpsertQuestionInput) error {
	owns, err := uc.BankRepo.ValidateOwnership(ctx, in.UserID, in.BankID)
	if err != nil {
		return mretry.Retryable(err)
	}

	if !owns {
		event := &security.Event{
			Type:     security.EventTypeTokenPrivilegeEscalation,
			UserID:   authUserID,
			Severity: security.SeverityCritical,
			Details:  map[string]any{"bank_id": in.BankID, "reason": "bank not owned by user"},
		}

		if err := sealAndAppend(ctx, uc, event); err != nil {
			return err
		}

		return apperr.Translate(constant.ErrUnauthorizedAccess, "QuestionBank")
	}

	active, err := uc.BankRepo.IsActive(ctx, in.UserID, in.BankID)
	if err != nil {
		return mretry.Retryable(err)
	}

	if !active {
		event := &security.Event{
			Type:     security.EventTypeTokenPrivilegeEscalation,
			UserID:   authUserID,
			Severity: security.SeverityHigh,
			Details:  map[string]any{"bank_id": in.BankID, "reason": "bank inactive"},
		}

		if err := sealAndAppend(ctx, uc, event); err != nil {
			return err
		}

		return apperr.Translate(constant.ErrUnauthorizedAccess, "QuestionBank")
	}

	return nil
}

// taxonomyReferencesStep collects every taxonomy_id referenced by the
// command and asks the taxonomy-set repository which are unknown; also
// enforces the category-gap rule (level N present => levels 1..N-1 present).
func taxonomyReferencesStep(ctx context.Context, uc *UseCase, _ trace.Tracer, _ int64, in *mmodel.UpsertQuestionInput) error {
	sel := in.Taxonomy

	levels := [4]string{sel.CategoryLevel1, sel.CategoryLevel2, sel.CategoryLevel3, sel.CategoryLevel4}
	for n := 2; n <= 4; n++ {
		if levels[n-1] != "" && levels[n-2] == "" {
			return apperr.Translate(constant.ErrConstraintViolation, "TaxonomySet",
				fmt.Sprintf("category_level_%d present without category_level_%d", n, n-1))
		}
	}

	total := 0

	var unknown []string

	checkRefs := func(taxonomyType string, ids []string) error {
		if len(ids) == 0 {
			return nil
		}

		total += len(ids)

		missing, err := uc.TaxonomyRepo.GetUnknownReferences(ctx, in.UserID, in.BankID, taxonomyType, ids)
		if err != nil {
			return mretry.Retryable(err)
		}

		unknown = append(unknown, missing...)

		return nil
	}

	for n, level := range levels {
		if level == "" {
			continue
		}

		if err := checkRefs(fmt.Sprintf("category_level_%d", n+1), []string{level}); err != nil {
			return err
		}
	}

	if err := checkRefs("tag", sel.Tags); err != nil {
		return err
	}

	if len(sel.Quizzes) > 0 {
		quizIDs := make([]string, len(sel.Quizzes))
		for i, q := range sel.Quizzes {
			quizIDs[i] = fmt.Sprint(q)
		}

		if err := checkRefs("quiz", quizIDs); err != nil {
			return err
		}
	}

	if sel.DifficultyLevel != "" {
		if err := checkRefs("difficulty_level", []string{sel.DifficultyLevel}); err != nil {
			return err
		}
	}

	uc.Metrics.ObserveTaxonomyBatch(total)

	if len(unknown) > 0 {
		return apperr.Translate(constant.ErrTaxonomyReferenceNotFound, "TaxonomySet", unknown)
	}

	return nil
}

// dataIntegrityStep asserts (I3): question_type matches the presence of
// exactly one of the three type-specific payloads.
func dataIntegrityStep(_ context.Context, _ *UseCase, _ trace.Tracer, _ int64, in *mmodel.UpsertQuestionInput) error {
	present := 0
	if in.MCQData != nil {
		present++
	}

	if in.TrueFalseData != nil {
		present++
	}

	if in.EssayData != nil {
		present++
	}

	if present != 1 {
		return apperr.Translate(constant.ErrTypeDataMismatch, "Question")
	}

	var ok bool

	switch in.QuestionType {
	case question.TypeMCQ:
		ok = in.MCQData != nil
	case question.TypeTrueFalse:
		ok = in.TrueFalseData != nil
	case question.TypeEssay:
		ok = in.EssayData != nil
	default:
		return apperr.Translate(constant.ErrInvalidQuestionType, "Question", in.QuestionType)
	}

	if !ok {
		return apperr.Translate(constant.ErrTypeDataMismatch, "Question")
	}

	return nil
}

func sealAndAppend(ctx context.Context, uc *UseCase, event *security.Event) error {
	if err := event.Seal(time.Now(), sumChecksum); err != nil {
		return mretry.Retryable(err)
	}

	if err := uc.SecurityRepo.Append(ctx, event); err != nil {
		return mretry.Retryable(err)
	}

	return nil
}

// relationshipAxesFromSelection is shared with the upsert engine (C3) for
// deriving the relationship set from a taxonomy selection.
func relationshipAxesFromSelection(sel question.TaxonomySelection) map[relationship.TaxonomyType][]string {
	axes := map[relationship.TaxonomyType][]string{}

	if sel.CategoryLevel1 != "" {
		axes[relationship.TaxonomyTypeCategoryLevel1] = []string{sel.CategoryLevel1}
	}

	if sel.CategoryLevel2 != "" {
		axes[relationship.TaxonomyTypeCategoryLevel2] = []string{sel.CategoryLevel2}
	}

	if sel.CategoryLevel3 != "" {
		axes[relationship.TaxonomyTypeCategoryLevel3] = []string{sel.CategoryLevel3}
	}

	if sel.CategoryLevel4 != "" {
		axes[relationship.TaxonomyTypeCategoryLevel4] = []string{sel.CategoryLevel4}
	}

	if len(sel.Tags) > 0 {
		axes[relationship.TaxonomyTypeTag] = sel.Tags
	}

	if len(sel.Quizzes) > 0 {
		quizIDs := make([]string, len(sel.Quizzes))
		for i, q := range sel.Quizzes {
			quizIDs[i] = fmt.Sprint(q)
		}

		axes[relationship.TaxonomyTypeQuiz] = quizIDs
	}

	if sel.DifficultyLevel != "" {
		axes[relationship.TaxonomyTypeDifficulty] = []string{sel.DifficultyLevel}
	}

	return axes
}
