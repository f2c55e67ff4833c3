// Package complexity implements C7: the Complexity Level (CLEVEL) engine.
// Measure runs an ordered battery of checks over a populated Record and
// returns the maximum of their individual results — the smallest CLEVEL
// (03/05/06/07/09) the file conforms to, per the NITF 2.1 standard's
// thresholds. A check that cannot read a required field fails the whole
// measurement immediately (kCheckFailed); a check whose subject (an image's
// IREP) is not one this engine recognizes contributes nothing to the
// maximum, per §4.7a.
package complexity
