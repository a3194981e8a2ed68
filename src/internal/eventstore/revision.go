// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package eventstore

import "fmt"

type revisionKind uint8

const (
	kindAny revisionKind = iota
	kindNoStream
	kindExact
)

// Revision is the expected state of a stream when appending to it.
type Revision struct {
	kind  revisionKind
	value uint64
}

// Any skips the revision check.
func Any() Revision { return Revision{kind: kindAny} }

// NoStream requires that the stream does not exist yet.
func NoStream() Revision { return Revision{kind: kindNoStream} }

// Exact requires that the last event in the stream has revision n.
func Exact(n uint64) Revision { return Revision{kind: kindExact, value: n} }

// IsAny reports whether r skips the revision check.
func (r Revision) IsAny() bool { return r.kind == kindAny }

// IsNoStream reports whether r requires a new stream.
func (r Revision) IsNoStream() bool { return r.kind == kindNoStream }

// IsExact reports whether r requires a specific revision.
func (r Revision) IsExact() bool { return r.kind == kindExact }

// Value returns the exact revision, or 0 for Any and NoStream.
func (r Revision) Value() uint64 { return r.value }

func (r Revision) String() string {
	switch r.kind {
	case kindNoStream:
		return "NoStream"
	case kindExact:
		return fmt.Sprintf("Exact(%d)", r.value)
	default:
		return "Any"
	}
}
