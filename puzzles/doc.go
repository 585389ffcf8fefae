// Package puzzles is the catalogue of every implemented day.
//
// All returns the days ordered by year then day; Find looks one up. The
// expected answers for the embedded inputs ship in answers.yaml and are
// read with LoadAnswers or Answers.
package puzzles
