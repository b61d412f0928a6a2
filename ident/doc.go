// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates opaque string identifiers for polls and options.

Identifiers are random hex strings drawn from crypto/rand. They are
deliberately not sequential: polls can be created on any client without
central coordination, and opaque IDs stay collision-safe if remote
synchronization ever becomes authoritative.
*/
package ident
