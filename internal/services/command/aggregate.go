package command

import (
	"time"

	"github.com/google/uuid"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
)

// buildAggregate builds a fresh Question from in. When existing is present
// (an update) it keeps existing's id, created_at, published_at and
// archived_at; otherwise (a create) it assigns a new id and sets created_at
// to now. published_at/archived_at are stamped with now the first time the
// status becomes published/archived.
func buildAggregate(in *mmodel.UpsertQuestionInput, existing *question.Question, mcqData *question.MCQData, tfData *question.TrueFalseData, essayData *question.EssayData, now time.Time) *question.Question {
	q := &question.Question{
		UserID:              in.UserID,
		BankID:              in.BankID,
		SourceQuestionID:    in.SourceQuestionID,
		QuestionType:        in.QuestionType,
		Title:               in.Title,
		Content:             in.Content,
		Status:              in.Status,
		Points:              in.Points,
		DisplayOrder:        in.DisplayOrder,
		SolutionExplanation: in.SolutionExplanation,
		Attachments:         in.Attachments,
		QuestionSettings:    in.QuestionSettings,
		Metadata:            in.Metadata,
		MCQData:             mcqData,
		TrueFalseData:       tfData,
		EssayData:           essayData,
		UpdatedAt:           now,
	}

	if existing != nil {
		q.ID = existing.ID
		q.CreatedAt = existing.CreatedAt
		q.PublishedAt = existing.PublishedAt
		q.ArchivedAt = existing.ArchivedAt
	} else {
		q.ID = uuid.NewString()
		q.CreatedAt = now
	}

	switch in.Status {
	case question.StatusPublished:
		if q.PublishedAt == nil {
			q.PublishedAt = &now
		}
	case question.StatusArchived:
		if q.ArchivedAt == nil {
			q.ArchivedAt = &now
		}
	}

	return q
}
