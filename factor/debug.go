package factor

import (
	"fmt"
	"os"
)

var debugOn = os.Getenv("QUASPY_DEBUG") == "1"

func debugf(f string, a ...any) {
	if debugOn {
		fmt.Fprintf(os.Stderr, f, a...)
	}
}
