// Package target models the emitted DAW binding map and renders it to XML.
//
// Key capabilities:
//   - Tagged Binding entries: exactly one of controller/note number, at most
//     one of symbolic function / parameter URI
//   - Mutating Builder with snapshot-on-build semantics
//   - Convenience expansions for transport and channel-strip groups
//   - Deterministic XML rendering with fixed attribute order and five-entity
//     escaping of free-text attribute values
//
// Decoding target-format text back into a Map is deliberately unsupported;
// ParseTargetMap fails with ErrTargetDecodeUnsupported.
package target
