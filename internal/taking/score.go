package taking

import "github.com/quizdeck/quizdeck/internal/quiz"

// Score counts correct answers against the quiz's original question
// order. Answers are keyed by question ID; unanswered questions count
// as wrong.
func Score(q *quiz.Quiz, answers map[string]string) int {
	score := 0
	for _, question := range q.Questions {
		if answers[question.ID] == question.CorrectAnswer {
			score++
		}
	}
	return score
}
