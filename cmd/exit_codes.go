package cmd

// ExitCode is the process status reported by main.
type ExitCode int

const (
	ExitSuccess        ExitCode = 0
	ExitGeneralError   ExitCode = 1
	ExitKilledBySigint ExitCode = 130
)

// ExitCodeFor maps the result of Execute to a process status.
func ExitCodeFor(err error) ExitCode {
	if err != nil {
		return ExitGeneralError
	}
	return ExitSuccess
}
