// Package arena provides the fixed-size-record pool that backs every
// node, edge and subnode-block allocation in package graph, keeping Go
// allocation patterns close to the block allocator of the system this
// module was distilled from.
package arena
