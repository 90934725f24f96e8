package quoteclient

import "regexp"

// emailShape is the same pragmatic local@domain.tld pattern the server
// applies, kept in sync by the contract tests on both sides.
var emailShape = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
