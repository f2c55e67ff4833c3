// Package subheader implements C3: the typed field bundles for each NITF
// segment kind's subheader (File/Image/Graphic/Label/Text/DES/RES), the
// FileSecurity group every one of them embeds, and the ComponentInfo
// parallel-array entries the file header carries per segment kind.
//
// Only the fields that participate in the invariants, the CLEVEL battery, or
// the TRE overflow protocol are modeled — per spec §1, individual field
// semantics beyond those are deliberately out of scope for this core.
package subheader
