// Package codec is the thin read/write seam C8 describes: it turns a
// populated Record into bytes and back for the structural skeleton the core
// is responsible for — the 9-byte FHDR/FVER prefix, per-kind component-info
// arrays, each subheader's fixed fields and TRE extension sections, and the
// TRE tag+length framing within them. It deliberately does not read or
// write pixel/graphic/text payload bytes beyond copying them verbatim
// (§1's Non-goals: "Raw pixel I/O, blocking, band interleaving, J2K/JPEG
// codecs"), and it does not attempt byte-exact fidelity with every field
// the full NITF standard defines — only the ones the Record model carries.
//
// Write runs the full write path from §2's control-flow summary:
// merge.UnmergeTREs, then complexity.MeasureString to fill a blank CLEVEL,
// then serialization. Read runs the read path in reverse: decode the byte
// stream into a Record, then merge.MergeTREs to collapse any TRE_OVERFLOW
// DES segments back into their hosts.
package codec
