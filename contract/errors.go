// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"fmt"
)

// Precompile failures fall into exactly three disjoint classes:
//
//  1. format errors - malformed buffer, unknown mode, wrong fixed-field size.
//     Surfaced as a hard call failure wrapping [ErrInvalidInput]; gas for the
//     attempt is still charged.
//  2. out of gas - [ErrOutOfGas], raised by the dispatcher before any codec or
//     engine work begins.
//  3. negative verification - NOT an error. The call succeeds and returns the
//     false word/byte; calling contracts branch on the return value.
var (
	// ErrOutOfGas is returned when the supplied gas is less than the quote
	// computed from the input's declared sizes.
	ErrOutOfGas = errors.New("out of gas")

	// ErrInvalidInput is the base of the format error class. Scheme packages
	// wrap it with detail so errors.Is(err, ErrInvalidInput) identifies every
	// format failure.
	ErrInvalidInput = errors.New("invalid precompile input")

	// ErrUnknownMode is returned when a multi-mode precompile's leading mode
	// byte is not a member of the scheme's parameter-set enum. It wraps
	// ErrInvalidInput: an unknown mode is a format error, never a negative
	// verification result.
	ErrUnknownMode = fmt.Errorf("%w: unknown parameter set mode", ErrInvalidInput)
)
