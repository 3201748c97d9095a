// Package blocks defines the host side of the block editor: block type
// descriptors with their attribute schema, a registry, the Host capability
// handed to editors, and the selector based extractor that rebuilds
// attributes from persisted markup.
//
// A block's Save output and its schema are one contract. Whatever Save emits
// must parse back through Extract into the same attribute values.
package blocks
