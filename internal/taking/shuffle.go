package taking

import (
	"math/rand/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// shuffleQuestions returns a shuffled copy of the quiz's questions with
// each question's options independently shuffled. The originals are not
// touched; scoring keys off question IDs and answer text, so display
// order carries no meaning.
func shuffleQuestions(questions []quiz.Question, rng *rand.Rand) []quiz.Question {
	out := make([]quiz.Question, len(questions))
	for i, q := range questions {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		rng.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
		q.Options = opts
		out[i] = q
	}
	rng.Shuffle(len(out), func(a, b int) {
		out[a], out[b] = out[b], out[a]
	})
	return out
}
