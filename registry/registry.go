// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry force-imports every precompile package so that each one
// registers itself with the module table. Importing this package is the only
// thing an embedder has to do to get the full precompile set.
//
// Addresses in use:
//
//	0x0300000000000000000000000000000000000001  cggmp21 ECDSA-threshold verify
//	0x0300000000000000000000000000000000000002  frost Schnorr-threshold verify
//	0x0300000000000000000000000000000000000003  ringtail lattice-threshold verify
//	0x0300000000000000000000000000000000000004  slhdsa verify
//	0x0300000000000000000000000000000000000005  mldsa verify
//	0x0300000000000000000000000000000000000006  bls verify
//	0x0300000000000000000000000000000000000007  bls aggregate
//	0x0300000000000000000000000000000000000008  verkle compressed-witness check
//
// New precompiles take the next address in the range. ConfigKeys must also be
// unique; registration panics on either collision.
package registry

import (
	_ "github.com/luxfi/precompiles/bls"
	_ "github.com/luxfi/precompiles/cggmp21"
	_ "github.com/luxfi/precompiles/frost"
	_ "github.com/luxfi/precompiles/mldsa"
	_ "github.com/luxfi/precompiles/ringtail"
	_ "github.com/luxfi/precompiles/slhdsa"
	_ "github.com/luxfi/precompiles/verkle"
)
