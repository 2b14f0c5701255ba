package conduit

import (
	"fmt"
	"runtime"
)

// ErrMsg returns an error with a message function name and line number.
func ErrMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}

// geomErr wraps a panic raised during construction of an optional geometry
// block (flange, stiffener). Generation recovers these and omits the block.
type geomErr struct {
	panicObj interface{}
}

func (e *geomErr) Error() string {
	return fmt.Sprintf("%s", e.panicObj)
}
