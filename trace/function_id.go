package trace

import "github.com/isle-engine/omni/internal/stack"

// lists do not resolve caller names for traces unless asked to
var skipFunctionID = true

func FunctionID(id string) call {
	if skipFunctionID {
		return stack.FunctionID(id)
	}

	return stack.Call(1)
}

func EnableFunctionID() {
	skipFunctionID = false
}
