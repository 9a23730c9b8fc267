// Package dpfmt renders values into caller-sized byte buffers using a
// two-phase count/write protocol (destination-passing style).
//
// Every formattable value implements [Formatter]: Count reports the exact
// number of bytes the value renders to, and Write emits exactly that many
// bytes into a [Memory] buffer at a given offset. Callers size the buffer
// from the count, allocate it once, and write into it, with no intermediate
// buffers and no growth logic:
//
//	n, err := dpfmt.Count(tmpl, args...)
//	m := dpfmt.NewMemory(n, 0)
//	end, err := dpfmt.Write(m, 0, tmpl, args...)
//
// [Marshal] bundles the three steps when a fresh buffer per call is fine.
//
// # Count and Write
//
// The protocol is a hard contract: for every [Formatter] f and every
// sufficiently large buffer, Write returns off + f.Count(). Count is pure:
// it inspects only the value's own state and yields the same result on every
// call. Composite formatters (templates, padding) size themselves from their
// children's counts, so a value that breaks the contract corrupts every
// layout built on top of it.
//
// # Templates
//
// A template is a byte pattern mixing literal runs with {} placeholders.
// Arguments bind to placeholders in order and must match them one to one:
//
//	dpfmt.Marshal([]byte("{} -> {}"), dpfmt.Str("src"), dpfmt.Str("dst"))
//
// Doubled braces escape themselves: {{ emits a literal { and }} emits a
// literal }. Any other brace use is malformed. Both the count pass and the
// write pass re-scan the template independently; no parse state is shared
// between them. [Template] packages a pattern with its arguments as a single
// [Formatter], so templates nest inside other templates.
//
// # Combinators
//
// Combinators wrap another value or an integer and derive their own
// count/write from it:
//
//   - [HexLower], [HexUpper] — minimal-digit hexadecimal
//   - [BigEndian], [LittleEndian] — full fixed width of the integer type
//   - [Int], [Uint] — minimal-digit ASCII decimal
//   - [Uvarint] — base-128 varint
//   - [PadLeft], [PadRight], [PadCenter] — pad to a field width, never
//     truncating
//
// Widths and fills count bytes, not display cells; the package operates on
// raw bytes and does no Unicode-aware layout.
//
// # Buffers
//
// [Memory] is a fixed-capacity byte buffer with bounds-checked access. It
// carries no notion of how much of it is used; the offset returned by each
// write tracks that externally. Buffers are safely reusable across
// sequential format operations ([Memory.Reset] restores the fill byte);
// nothing in the package synchronizes concurrent writers, so callers sharing
// a buffer across goroutines must serialize access themselves.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrArityMismatch] — placeholder and argument counts differ
//   - [ErrOutOfBounds] — an index or write falls outside buffer capacity
//   - [ErrInvalidTemplate] — malformed brace sequence
//
// All failures are ordinary error values wrapped with context; the package
// never panics on caller input and performs no logging.
package dpfmt
