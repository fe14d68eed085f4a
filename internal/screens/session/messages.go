package session

import (
	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/report"
)

// sessionReadyMsg is sent when the question list and prior progress
// have been loaded.
type sessionReadyMsg struct {
	Questions []bank.Question
	Prior     progress.UserProgress
	Err       error
}

// commitDoneMsg is sent when a completed session has been persisted.
type commitDoneMsg struct {
	Report report.Report
	Next   progress.UserProgress
	Err    error
}
