// Package merge implements C6: the TRE overflow protocol that links
// subheader extension sections to a pool of synthetic TRE_OVERFLOW DES
// segments. UnmergeTREs prepares a Record for writing by splitting any
// oversized section into a retained part and an overflow DES; MergeTREs
// prepares a Record read from disk by collapsing overflow DES segments back
// into their host sections. Both keep every DESOFLW/DESITEM/offset-field
// cross-reference numerically correct across the segment additions and
// removals they perform.
package merge
