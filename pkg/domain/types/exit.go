package types

// Process exit codes.
const (
	// ExitSuccess covers both a completed release and "not a release commit".
	ExitSuccess = 0

	// ExitFailure is returned for any fatal error.
	ExitFailure = 1

	// ExitNeutral tells the CI system the step was skipped on purpose (EX_CONFIG in sysexits.h,
	// which GitHub Actions v1 rendered as a neutral check).
	ExitNeutral = 78
)
