// Package testutil collects timing summaries for package tests.
package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// TestTimer measures how long a test case takes.
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

// Stop returns the elapsed time and prints it.
func (t *TestTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, duration)
	return duration
}

type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// TestSuiteResult aggregates the cases of one test function. Safe for
// parallel subtests.
type TestSuiteResult struct {
	mu          sync.Mutex
	SuiteName   string
	TotalTests  int
	PassedTests int
	FailedTests int
	TotalTime   time.Duration
	Results     []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{SuiteName: suiteName}
}

func (s *TestSuiteResult) AddResult(result TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Results = append(s.Results, result)
	s.TotalTests++
	s.TotalTime += result.Duration
	if result.Passed {
		s.PassedTests++
	} else {
		s.FailedTests++
	}
}

// Track starts a timer for the current subtest and records its outcome when
// the subtest finishes:
//
//	t.Run("TestX", func(t *testing.T) {
//		defer suite.Track(t, "X")()
//		...
//	})
func (s *TestSuiteResult) Track(t *testing.T, name string) func() {
	timer := NewTestTimer(name)
	return func() {
		s.AddResult(TestResult{Name: name, Duration: timer.Stop(), Passed: !t.Failed()})
	}
}

// PrintSummary พิมพ์สรุปผลของ suite
func (s *TestSuiteResult) PrintSummary() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.SuiteName)
	fmt.Printf("   Total Tests: %d\n", s.TotalTests)
	fmt.Printf("   Passed: %d ✅\n", s.PassedTests)
	fmt.Printf("   Failed: %d ❌\n", s.FailedTests)
	fmt.Printf("   Total Time: %v\n", s.TotalTime)
	if s.TotalTests == 0 {
		fmt.Println()
		return
	}
	fmt.Printf("   Average Time: %v\n", s.TotalTime/time.Duration(s.TotalTests))

	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
	fmt.Println()
}
