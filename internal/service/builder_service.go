package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/edustack/dashboard/internal/builder"
	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/model"
	"github.com/edustack/dashboard/internal/session"
	"github.com/edustack/dashboard/internal/upstream"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ErrNoActiveExam means the tab has no builder in progress; the screen
// should send the user back to the start step.
var ErrNoActiveExam = errors.New("no exam draft in progress for this session")

// BuilderService drives the multi-step exam authoring flow. Every
// mutation returns the post-action state so the screen can observe
// whether a silent commit rejection changed anything.
type BuilderService interface {
	Start(sctx session.Context, req dto.BuilderStartRequest) (*builder.State, error)
	State(sctx session.Context) (*builder.State, error)
	SetMeta(sctx session.Context, req dto.ExamMetaRequest) (*builder.State, error)
	SetQuestionDraft(sctx session.Context, req dto.QuestionDraftRequest) (*builder.State, error)
	AddChoice(sctx session.Context, req dto.ChoiceRequest) (*builder.State, error)
	RemoveChoice(sctx session.Context, index int) (*builder.State, error)
	CommitQuestion(sctx session.Context) (*builder.State, error)
	RemoveQuestion(sctx session.Context, index int) (*builder.State, error)
	SetSectionDraft(sctx session.Context, req dto.SectionDraftRequest) (*builder.State, error)
	CommitSection(sctx session.Context) (*builder.State, error)
	RemoveSection(sctx session.Context, index int) (*builder.State, error)
	// Submit posts the assembled tree in one call. Success clears the
	// builder; failure preserves it so the user can retry as-is.
	Submit(ctx context.Context, sctx session.Context) (*dto.ExamSummaryResponse, error)
}

type builderService struct {
	registry *builder.Registry
	exams    upstream.ExamService
}

func NewBuilderService(registry *builder.Registry, exams upstream.ExamService) BuilderService {
	return &builderService{registry: registry, exams: exams}
}

func (s *builderService) Start(sctx session.Context, req dto.BuilderStartRequest) (*builder.State, error) {
	b, err := s.registry.Start(sctx.ID(), req.ExamType, builder.Meta{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Practice:    req.Practice,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("exam_type", req.ExamType).Str("title", req.Title).Msg("Exam draft started")
	return snapshot(b), nil
}

func (s *builderService) State(sctx session.Context) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	return snapshot(b), nil
}

func (s *builderService) SetMeta(sctx session.Context, req dto.ExamMetaRequest) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.SetMeta(builder.Meta{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Practice:    req.Practice,
	})
	return snapshot(b), nil
}

func (s *builderService) SetQuestionDraft(sctx session.Context, req dto.QuestionDraftRequest) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.SetQuestionDraft(req.Text, req.Marks, req.Graphic)
	return snapshot(b), nil
}

func (s *builderService) AddChoice(sctx session.Context, req dto.ChoiceRequest) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.AddChoice(builder.Choice{Text: req.Text, IsCorrect: req.IsCorrect, Graphic: req.Graphic})
	return snapshot(b), nil
}

func (s *builderService) RemoveChoice(sctx session.Context, index int) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.RemoveChoice(index)
	return snapshot(b), nil
}

func (s *builderService) CommitQuestion(sctx session.Context) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.CommitQuestion()
	return snapshot(b), nil
}

func (s *builderService) RemoveQuestion(sctx session.Context, index int) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.RemoveQuestion(index)
	return snapshot(b), nil
}

func (s *builderService) SetSectionDraft(sctx session.Context, req dto.SectionDraftRequest) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.SetSectionDraft(req.Name, req.Description)
	return snapshot(b), nil
}

func (s *builderService) CommitSection(sctx session.Context) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.CommitSection()
	return snapshot(b), nil
}

func (s *builderService) RemoveSection(sctx session.Context, index int) (*builder.State, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	b.RemoveSection(index)
	return snapshot(b), nil
}

func (s *builderService) Submit(ctx context.Context, sctx session.Context) (*dto.ExamSummaryResponse, error) {
	b, ok := s.registry.Get(sctx.ID())
	if !ok {
		return nil, ErrNoActiveExam
	}
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}

	payload := b.Payload()
	payload.Track, err = requireID(sctx, session.KeyTrackID)
	if err != nil {
		return nil, err
	}
	switch b.ExamType() {
	case model.ExamTypeChapter:
		payload.Subject, err = requireID(sctx, session.KeySubjectID)
		if err != nil {
			return nil, err
		}
		chapterID, err := requireID(sctx, session.KeyChapterID)
		if err != nil {
			return nil, err
		}
		payload.Chapter = &chapterID
	case model.ExamTypeGrand:
		payload.Subject, err = requireID(sctx, session.KeySubjectID)
		if err != nil {
			return nil, err
		}
	case model.ExamTypeUniversity:
		universityID, err := requireID(sctx, session.KeyUniversityID)
		if err != nil {
			return nil, err
		}
		payload.University = &universityID
	}

	created, err := s.exams.CreateExam(ctx, token, payload)
	if err != nil {
		// Builder state is left intact so nothing has to be re-entered.
		log.Error().Err(err).Str("exam_type", b.ExamType()).Str("title", payload.Title).Msg("Exam submission failed")
		return nil, fmt.Errorf("submitting exam: %w", err)
	}
	s.registry.Clear(sctx.ID())
	log.Info().Uint("exam_id", created.ID).Str("exam_type", created.ExamType).Msg("Exam created upstream")

	var resp dto.ExamSummaryResponse
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("preparing created exam response: %w", err)
	}
	return &resp, nil
}

func snapshot(b *builder.Builder) *builder.State {
	st := b.Snapshot()
	return &st
}

// requireID reads a selection key and parses it as a record identifier.
// An unparsable value is treated the same as a missing one: the context
// was never properly established.
func requireID(sctx session.Context, key string) (uint, error) {
	v, err := sctx.Require(key)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Malformed identifier in session context")
		return 0, session.IncompleteError{Key: key}
	}
	return uint(id), nil
}
