package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edustack/dashboard/internal/builder"
	"github.com/edustack/dashboard/internal/model"
)

// Chapter and grand exams share the track-exams collection on the
// remote API, distinguished by exam_type; university exams have their
// own collection.
const (
	trackExamsPath      = "/exams_app/track-exams/"
	universityExamsPath = "/exams_app/university-exams/"
	questionsPath       = "/exams_app/questions/"
)

type ExamService interface {
	ListChapterExams(ctx context.Context, token, chapterID string) ([]model.Exam, error)
	ListGrandExams(ctx context.Context, token, trackID string) ([]model.Exam, error)
	ListUniversityExams(ctx context.Context, token, universityID string) ([]model.Exam, error)
	// CreateExam posts the assembled builder tree in a single call,
	// routed to the right collection by the payload's exam type.
	CreateExam(ctx context.Context, token string, payload builder.ExamPayload) (*model.Exam, error)
	// ListQuestions fetches the question bank entries for one exam.
	ListQuestions(ctx context.Context, token, examID string) ([]model.Question, error)
}

type examService struct {
	client *Client
}

func NewExamService(client *Client) ExamService {
	return &examService{client: client}
}

func (s *examService) ListChapterExams(ctx context.Context, token, chapterID string) ([]model.Exam, error) {
	var exams []model.Exam
	query := url.Values{"chapter": {chapterID}, "exam_type": {model.ExamTypeChapter}}
	if err := s.client.getJSON(ctx, token, trackExamsPath, query, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (s *examService) ListGrandExams(ctx context.Context, token, trackID string) ([]model.Exam, error) {
	var exams []model.Exam
	query := url.Values{"track": {trackID}, "exam_type": {model.ExamTypeGrand}}
	if err := s.client.getJSON(ctx, token, trackExamsPath, query, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (s *examService) ListUniversityExams(ctx context.Context, token, universityID string) ([]model.Exam, error) {
	var exams []model.Exam
	query := url.Values{"university": {universityID}}
	if err := s.client.getJSON(ctx, token, universityExamsPath, query, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (s *examService) CreateExam(ctx context.Context, token string, payload builder.ExamPayload) (*model.Exam, error) {
	path := trackExamsPath
	if payload.ExamType == model.ExamTypeUniversity {
		path = universityExamsPath
	}
	var created model.Exam
	if err := s.client.sendJSON(ctx, http.MethodPost, token, path, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *examService) ListQuestions(ctx context.Context, token, examID string) ([]model.Question, error) {
	var questions []model.Question
	query := url.Values{"exam": {examID}}
	if err := s.client.getJSON(ctx, token, questionsPath, query, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
