// Package record implements C4 and C5: the six segment-kind containers and
// the Record that owns them. Record enforces the count/component-info
// invariants (I1, I2) on every mutation, supports version-aware default
// construction of new segments, and provides atomic add/remove/move
// operations with rollback on partial failure.
package record
