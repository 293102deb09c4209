package page

import "errors"

// ErrorInfo is the payload of the Error view.
type ErrorInfo struct {
	Message string
	// Debug is an optional structured diagnostic dumped beneath the message.
	Debug any
}

// Debugger is implemented by errors that carry structured diagnostics.
type Debugger interface {
	DebugInfo() any
}

// ErrorFrom converts err into an ErrorInfo. When err (or an error it wraps)
// implements Debugger, its diagnostics become the Debug payload.
func ErrorFrom(message string, err error) ErrorInfo {
	info := ErrorInfo{Message: message}
	if err == nil {
		return info
	}
	if info.Message == "" {
		info.Message = err.Error()
	}
	var d Debugger
	if errors.As(err, &d) {
		info.Debug = d.DebugInfo()
	} else {
		info.Debug = map[string]string{"error": err.Error()}
	}
	return info
}
