package orchestrators

import "time"

// timeNow is a variable for testability.
var timeNow = time.Now
