// Package fixedstr provides the storage and primitives behind strings of
// fixed maximum length.
//
// The capacity is carried by an array type: storage for up to N characters
// of type C is requested as New[C, [N+1]C]. One of three layouts is picked
// per buffer type and never changes afterwards:
//
//   - empty: N == 0. No storage; Data points at a shared zero terminator.
//   - encoded: N fits in C. The last slot holds N minus the size, so a full
//     string ends on a zero without a separate size field.
//   - sized: otherwise, or when Options.NoNullOptimization is set. A size
//     field of the smallest width that holds N sits next to the buffer.
//
// Storage primitives do no bounds checking; String layers length checks on
// top. Compare, RawToString and FindNotOf work on plain slices.
//
// Build tags fixedstr_uninit and fixedstr_nonullopt change the defaults
// returned by DefaultOptions.
package fixedstr
