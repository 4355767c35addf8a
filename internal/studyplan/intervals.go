package studyplan

import "time"

// Retry intervals in days, keyed by which attempt it was. A correct answer
// pushes the question out further each time; an incorrect answer brings it
// back sooner. Attempts beyond the table use the last entry.
var (
	correctIntervals   = []int{3, 7, 14}
	incorrectIntervals = []int{1, 3, 10}
)

// RetryIntervalDays returns how many days to wait before re-serving a
// question after its attemptNumber-th attempt (1-based).
func RetryIntervalDays(attemptNumber int, correct bool) int {
	table := incorrectIntervals
	if correct {
		table = correctIntervals
	}
	if attemptNumber < 1 {
		attemptNumber = 1
	}
	if attemptNumber > len(table) {
		attemptNumber = len(table)
	}
	return table[attemptNumber-1]
}

// NextServeDate returns the earliest date a question may be served again.
func NextServeDate(lastAttempt time.Time, attemptNumber int, correct bool) time.Time {
	return lastAttempt.AddDate(0, 0, RetryIntervalDays(attemptNumber, correct))
}
