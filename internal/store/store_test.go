package store

import (
	"context"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// One named in-memory database per test so tests don't share state.
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testQuiz(id, createdBy string) quiz.Quiz {
	return quiz.Quiz{
		ID:              id,
		Title:           "Capitals",
		DurationMinutes: 10,
		Questions: []quiz.Question{
			{
				ID:            id + "-q1",
				Text:          "What is the capital of France?",
				Kind:          quiz.KindMultipleChoice,
				Options:       []string{"Paris", "Rome", "Berlin", "Madrid"},
				CorrectAnswer: "Paris",
			},
			{
				ID:            id + "-q2",
				Text:          "The Seine flows through Paris.",
				Kind:          quiz.KindTrueFalse,
				Options:       []string{"True", "False"},
				CorrectAnswer: "True",
			},
		},
		CreatedBy: createdBy,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestQuizSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	want := testQuiz("quiz1", "teacher1")
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "quiz1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected quiz, got nil")
	}
	if got.Title != want.Title || got.DurationMinutes != want.DurationMinutes {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got.Questions))
	}
	if got.Questions[0].CorrectAnswer != "Paris" || got.Questions[0].Kind != quiz.KindMultipleChoice {
		t.Fatalf("question round trip mismatch: %+v", got.Questions[0])
	}
}

func TestQuizGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.QuizRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing quiz")
	}
}

func TestQuizReplace(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	q := testQuiz("quiz1", "teacher1")
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("save: %v", err)
	}

	q.Title = "World Capitals"
	q.Questions = q.Questions[:1]
	if err := repo.Replace(ctx, q); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.Get(ctx, "quiz1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "World Capitals" {
		t.Fatalf("title not replaced: %q", got.Title)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("question list not replaced: %d questions", len(got.Questions))
	}
}

func TestQuizDeleteKeepsAttempts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.QuizRepo().Save(ctx, testQuiz("quiz1", "teacher1")); err != nil {
		t.Fatalf("save quiz: %v", err)
	}
	attempt := quiz.Attempt{
		ID:             "attempt1",
		QuizID:         "quiz1",
		StudentID:      "student1",
		Answers:        map[string]string{"quiz1-q1": "Paris"},
		Score:          1,
		TotalQuestions: 2,
		CompletedAt:    time.Now(),
	}
	if err := s.AttemptRepo().Append(ctx, attempt); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	if err := s.QuizRepo().Delete(ctx, "quiz1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	gone, err := s.QuizRepo().Get(ctx, "quiz1")
	if err != nil {
		t.Fatalf("get deleted quiz: %v", err)
	}
	if gone != nil {
		t.Fatal("expected quiz to be gone")
	}

	// The attempt must survive the quiz deletion.
	kept, err := s.AttemptRepo().Get(ctx, "attempt1")
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if kept == nil {
		t.Fatal("attempt should not be cascade-deleted")
	}
}

func TestAttemptQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := quiz.Attempt{
		Answers:        map[string]string{},
		Score:          0,
		TotalQuestions: 1,
		CompletedAt:    time.Now(),
	}
	a1 := base
	a1.ID, a1.QuizID, a1.StudentID = "a1", "quiz1", "student1"
	a2 := base
	a2.ID, a2.QuizID, a2.StudentID = "a2", "quiz1", "student2"
	a3 := base
	a3.ID, a3.QuizID, a3.StudentID = "a3", "quiz2", "student1"

	for _, a := range []quiz.Attempt{a1, a2, a3} {
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("append %s: %v", a.ID, err)
		}
	}

	n, err := repo.CountByQuiz(ctx, "quiz1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 attempts for quiz1, got %d", n)
	}

	mine, err := repo.ListByStudent(ctx, "student1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 attempts for student1, got %d", len(mine))
	}

	exists, err := repo.ExistsForStudent(ctx, "student1", "quiz1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected attempt to exist for (student1, quiz1)")
	}
	exists, err = repo.ExistsForStudent(ctx, "student2", "quiz2")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("expected no attempt for (student2, quiz2)")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	current, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("current (empty): %v", err)
	}
	if current != "" {
		t.Fatalf("expected empty session, got %q", current)
	}

	if err := repo.Set(ctx, "student1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "teacher1"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	current, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current != "teacher1" {
		t.Fatalf("expected teacher1, got %q", current)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	current, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current (cleared): %v", err)
	}
	if current != "" {
		t.Fatalf("expected empty session after clear, got %q", current)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "question-gen",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Purpose != "question-gen" || !events[0].Success {
		t.Fatalf("event mismatch: %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.OutputTokens != 20 {
		t.Fatalf("get mismatch: %+v", got)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rows := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen",
			InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "other",
			InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: false},
	}
	for _, row := range rows {
		if err := repo.AppendLLMRequest(ctx, row); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose != "question-gen" {
			continue
		}
		if u.Calls != 2 || u.InputTokens != 400 || u.OutputTokens != 200 {
			t.Fatalf("question-gen aggregate mismatch: %+v", u)
		}
		if u.AvgLatencyMs != 300 {
			t.Fatalf("expected avg latency 300, got %d", u.AvgLatencyMs)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
	for _, u := range byModel {
		if u.Model == "gpt-4o-mini" && u.Calls != 1 {
			t.Fatalf("gpt-4o-mini aggregate mismatch: %+v", u)
		}
	}
}
