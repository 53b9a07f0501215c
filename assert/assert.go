package assert

import (
	"fmt"

	"github.com/bloeys/nrender/logging"
)

// T panics with the formatted message if check is false
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	formattedMsg := fmt.Sprintf(msg, args...)
	logging.ErrLog.Panicln("Assert failed: " + formattedMsg)
}
