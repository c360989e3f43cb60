package task

import "testing"

func TestTask_Judge_Trivia(t *testing.T) {
	trivia := Task{Type: TypeTrivia, CorrectAnswer: "Sachin Tendulkar", Points: 20}

	cases := []struct {
		name    string
		answer  string
		correct bool
		points  int64
	}{
		{name: "exact", answer: "Sachin Tendulkar", correct: true, points: 20},
		{name: "case insensitive", answer: "sachin tendulkar", correct: true, points: 20},
		{name: "whitespace trimmed", answer: "  Sachin Tendulkar \n", correct: true, points: 20},
		{name: "wrong", answer: "Virat Kohli", correct: false, points: 0},
		{name: "empty", answer: "", correct: false, points: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			correct, points := trivia.Judge(tc.answer)
			if correct != tc.correct || points != tc.points {
				t.Fatalf("Judge(%q) = (%v, %d), expected (%v, %d)", tc.answer, correct, points, tc.correct, tc.points)
			}
		})
	}
}

func TestTask_Judge_NonTriviaAlwaysCorrect(t *testing.T) {
	upload := Task{Type: TypeContentUpload, Points: 40}

	correct, points := upload.Judge("")
	if !correct || points != 40 {
		t.Fatalf("expected non-trivia submission to earn full points, got (%v, %d)", correct, points)
	}
}
