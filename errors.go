package ecs

import "github.com/rotisserie/eris"

var (
	// errComponentNotRegistered is wrapped with the offending type name and
	// logged as fatal when a component pool is accessed before registration.
	errComponentNotRegistered = eris.New("component type not registered")

	// errComponentSpaceExhausted is logged as fatal when registering a
	// component type would exceed MaxComponents.
	errComponentSpaceExhausted = eris.New("component id space exhausted")
)
