package doctor

import "time"

// Check is a single diagnostic run by doctor.
type Check interface {
	// Name identifies the check in reports, e.g. "os-release".
	Name() string

	// Category groups checks: "detection" or "host".
	Category() string

	// Run performs the check. It must not panic on a broken host.
	Run() *CheckResult
}

// Runner runs checks in the order they were added.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner returns a Runner with no checks.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// AddCheck appends c to the run.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check and tallies the outcomes.
// A check that returns nil is recorded as an error.
func (r *Runner) Run() *DoctorReport {
	report := &DoctorReport{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		if result == nil {
			result = &CheckResult{
				Name:     check.Name(),
				Category: check.Category(),
				Status:   SeverityError,
				Message:  "check returned no result",
			}
		}
		report.Results = append(report.Results, result)
		report.Summary.record(result.Status)
	}

	return report
}

// DoctorReport is the outcome of one doctor run.
type DoctorReport struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed outright.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check produced a warning.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// Worst returns the highest severity in the report, or SeverityPass when
// nothing was run.
func (r *DoctorReport) Worst() Severity {
	switch {
	case r.HasErrors():
		return SeverityError
	case r.HasWarnings():
		return SeverityWarning
	case r.Summary.Info > 0:
		return SeverityInfo
	}
	return SeverityPass
}
