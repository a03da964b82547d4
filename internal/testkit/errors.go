package testkit

import "errors"

// ErrInjected is returned by MemoryWriter for the name in FailOn
var ErrInjected = errors.New("testkit: injected write failure")
