// Package mmodel holds the command/query core's input/output DTOs — the
// transport-independent shapes of spec §6's three command entry points.
package mmodel

import (
	"time"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
)

// BootstrapInput is the bootstrap-default-bank command's input.
type BootstrapInput struct {
	UserID    int64          `json:"user_id"`
	UserEmail *string        `json:"user_email,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TaxonomyProjection is the available_taxonomy shape of the bootstrap response.
type TaxonomyProjection struct {
	Categories map[string][]string `json:"categories"`
	Tags       []string            `json:"tags"`
	Difficulty []string            `json:"difficulty"`
}

// BootstrapOutput is the bootstrap-default-bank command's success output.
type BootstrapOutput struct {
	UserID             int64              `json:"user_id"`
	BankID             string             `json:"bank_id"`
	BankName           string             `json:"bank_name"`
	Description        string             `json:"description"`
	IsActive           bool               `json:"is_active"`
	TaxonomySetCreated bool               `json:"taxonomy_set_created"`
	AvailableTaxonomy  TaxonomyProjection `json:"available_taxonomy"`
	CreatedAt          time.Time          `json:"created_at"`
}

// UpsertQuestionInput is the upsert-question command's input.
type UpsertQuestionInput struct {
	UserID              int64                       `json:"user_id"`
	BankID              string                       `json:"bank_id"`
	SourceQuestionID    string                       `json:"source_question_id"`
	QuestionType        question.Type               `json:"question_type"`
	Title               string                       `json:"title"`
	Content             string                       `json:"content"`
	Status              question.Status              `json:"status"`
	Points              *int                         `json:"points,omitempty"`
	DisplayOrder        *int                         `json:"display_order,omitempty"`
	SolutionExplanation *string                      `json:"solution_explanation,omitempty"`
	Attachments         []string                     `json:"attachments,omitempty"`
	QuestionSettings    map[string]any               `json:"question_settings,omitempty"`
	Metadata            map[string]any               `json:"metadata,omitempty"`
	Taxonomy            question.TaxonomySelection   `json:"taxonomy"`
	MCQData             *question.MCQData            `json:"mcq_data,omitempty"`
	TrueFalseData       *question.TrueFalseData      `json:"true_false_data,omitempty"`
	EssayData           *question.EssayData          `json:"essay_data,omitempty"`
}

// Operation is the closed set of upsert outcomes.
type Operation string

// The two possible upsert outcomes.
const (
	OperationCreated Operation = "created"
	OperationUpdated Operation = "updated"
)

// UpsertQuestionOutput is the upsert-question command's success output.
type UpsertQuestionOutput struct {
	QuestionID              string    `json:"question_id"`
	SourceQuestionID        string    `json:"source_question_id"`
	Operation               Operation `json:"operation"`
	TaxonomyRelationshipsCount int    `json:"taxonomy_relationships_count"`
}

// QueryQuestionsInput is the query-questions entry point's input.
type QueryQuestionsInput struct {
	UserID          int64
	BankID          string
	CategoryLevel1  string
	CategoryLevel2  string
	CategoryLevel3  string
	CategoryLevel4  string
	Tags            []string
	Quizzes         []int64
	DifficultyLevel string
	QuestionType    string
	Status          string
	Search          string
	Page            int
	Size            int
	Sort            []string
}

// FiltersApplied is the filters.applied portion of the query response.
type FiltersApplied struct {
	CategoryLevel1  string   `json:"category_level_1,omitempty"`
	CategoryLevel2  string   `json:"category_level_2,omitempty"`
	CategoryLevel3  string   `json:"category_level_3,omitempty"`
	CategoryLevel4  string   `json:"category_level_4,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Quizzes         []int64  `json:"quizzes,omitempty"`
	DifficultyLevel string   `json:"difficulty_level,omitempty"`
	QuestionType    string   `json:"question_type,omitempty"`
	Status          string   `json:"status,omitempty"`
	Search          string   `json:"search,omitempty"`
}

// QueryFilters wraps the applied filters and the result count.
type QueryFilters struct {
	Applied     FiltersApplied `json:"applied"`
	ResultCount int            `json:"result_count"`
}

// QueryQuestionsOutput is the query-questions entry point's success output.
type QueryQuestionsOutput struct {
	Questions  []question.Question `json:"questions"`
	Pagination question.Pagination `json:"pagination"`
	Filters    QueryFilters        `json:"filters"`
}

// Envelope is the uniform user-visible response wrapper (spec §7).
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
