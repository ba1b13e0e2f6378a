// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - run a Lua configuration script
//
// the script returns a table that is mapped onto a structure using
// the gluamapper field tags; the standard Lua libraries are open so
// os.getenv and io.open can supply keys and addresses
package configuration
