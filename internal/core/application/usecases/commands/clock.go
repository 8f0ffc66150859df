package commands

import "time"

// timeNow is swapped in tests that need a fixed clock.
var timeNow = time.Now
