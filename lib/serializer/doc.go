// Package serializer provides the encoding formats under comparison. It
// defines a common interface and multiple implementations for serializing and
// deserializing the fixed sample record.
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must satisfy.
//
//   - msgpackSerializerImpl: Compact binary encoding via the msgpack library,
//     the smallest general-purpose binary payload in the set.
//
//   - cborSerializerImpl: Canonical CBOR encoding with deterministic field
//     ordering, so equal records encode to byte-identical output.
//
//   - jsonSerializerImpl: Textual self-describing encoding via the sonic
//     library, useful for debugging and interoperability.
//
//   - gobSerializerImpl: Go's built-in gob encoding, offering good
//     compatibility with Go's type system but with larger serialized sizes.
//
//   - binarySerializerImpl: Custom deterministic fixed-layout format written
//     by hand, the smallest and cheapest encoding in the set.
//
// Registry returns all implementations keyed by format name; the benchmark
// and report commands iterate over it.
//
// Thread Safety:
//
//	All serializer implementations are stateless except for the CBOR handle,
//	which the codec library documents as safe for concurrent use. All are
//	safe for concurrent use across multiple goroutines.
package serializer
