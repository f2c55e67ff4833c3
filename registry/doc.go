// Package registry implements the process-wide, lazily initialized,
// thread-safe plugin registry (§4.2): a mapping from TRE/compression/
// decompression identifier strings to handler constructors, sourced from a
// colon/semicolon-separated plugin search path and/or programmatic
// registration.
//
// A single mutex scopes first-time construction of the singleton and any
// LoadDir call; steady-state Retrieve* calls also take the mutex (the spec
// permits this — "implementations that do not trust [lock-free] property
// must take the mutex on every lookup — this is permissible").
package registry
