package app

import "github.com/treykane/clock-dash/internal/logging"

// appLog is the package-level structured logger for the app package.
//
// It is pre-configured with the component tag "app". All output goes to
// stderr so it never interferes with the Bubble Tea frame on stdout; the
// level is controlled by CLOCKDASH_LOG_LEVEL (see the logging package).
var appLog = logging.New("app")
