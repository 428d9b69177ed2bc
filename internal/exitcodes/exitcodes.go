package exitcodes

// Exit codes for unitcheck runs
// These codes form the contract with CI jobs and test runners
const (
	Success       = 0 // Every check passed
	ChecksFailed  = 1 // At least one check failed, whatever the count
	InvalidConfig = 2 // Configuration file invalid or missing
	RuntimeError  = 4 // Runtime error outside the checks themselves
)
