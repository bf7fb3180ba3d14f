package quiz

import "time"

// timerTickMsg is sent every second to advance the attempt clock.
type timerTickMsg time.Time

// finishMsg triggers the grading and summary flow, either because the
// last question was passed or the user ended the attempt early.
type finishMsg struct{}
