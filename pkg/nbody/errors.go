package nbody

import errorsmod "cosmossdk.io/errors"

// ModuleName is the error codespace for the N-body integrator
const ModuleName = "nbody"

var (
	ErrInvalidBody   = errorsmod.Register(ModuleName, 2, "invalid body")
	ErrDuplicateBody = errorsmod.Register(ModuleName, 3, "duplicate body")
	ErrUnknownBody   = errorsmod.Register(ModuleName, 4, "unknown body")
	ErrInvalidStep   = errorsmod.Register(ModuleName, 5, "invalid integration step")
	ErrNoMass        = errorsmod.Register(ModuleName, 6, "system has no mass")
	ErrInvalidOrbit  = errorsmod.Register(ModuleName, 7, "invalid orbital elements")
)
