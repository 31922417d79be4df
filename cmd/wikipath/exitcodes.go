package main

// Process exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, missing snapshot path)
	ExitDataError   = 3 // Data error (unreadable or malformed page/link sources)
	ExitNotFound    = 4 // A queried title matches no page
	ExitNoPath      = 5 // Both titles exist but no path connects them
)
