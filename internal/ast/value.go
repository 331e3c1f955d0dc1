package ast

import (
	"swipc/internal/source"
)

// HandleTransferType says whether a kernel handle is duplicated or moved.
type HandleTransferType uint8

const (
	HandleCopy HandleTransferType = iota
	HandleMove
)

func (h HandleTransferType) String() string {
	if h == HandleMove {
		return "move"
	}
	return "copy"
}

// BufferTransferMode is how a buffer argument travels over the wire.
type BufferTransferMode uint8

const (
	TransferMapAlias BufferTransferMode = iota
	TransferPointer
	TransferAutoSelect
)

func (m BufferTransferMode) String() string {
	switch m {
	case TransferMapAlias:
		return "MapAlias"
	case TransferPointer:
		return "Pointer"
	case TransferAutoSelect:
		return "AutoSelect"
	}
	return "?"
}

// BufferExtraAttrs are orthogonal flags on a buffer argument.
type BufferExtraAttrs uint8

const (
	AttrsNone BufferExtraAttrs = iota
	AttrsAllowNonSecure
	AttrsAllowNonDevice
)

// ValueKind discriminates the closed vocabulary of wire-level argument
// kinds a command may carry.
type ValueKind uint8

const (
	ValueClientProcessID ValueKind = iota
	ValueIn
	ValueOut
	ValueInObject
	ValueOutObject
	ValueInHandle
	ValueOutHandle
	ValueInArray
	ValueOutArray
	ValueInBuffer
	ValueOutBuffer
)

// Value is one wire-level argument kind. Values only appear in command
// argument position; they cannot be stored in struct fields and are not
// recursive.
type Value struct {
	Kind ValueKind

	// ValueIn / ValueOut / ValueInArray / ValueOutArray
	Type Nominal

	// ValueInObject / ValueOutObject. An empty Object on ValueOutObject
	// means the interface is unknown (sf::IUnknown). ObjectSpan covers
	// exactly the interface name tokens inside SharedPointer<...>.
	Object     NamespacedIdent
	ObjectSpan source.Span

	// ValueInHandle / ValueOutHandle
	Handle HandleTransferType

	// Buffers and arrays. HasMode is false for the plain sf::InArray /
	// sf::OutArray forms that leave the transfer mode to the type.
	Mode    BufferTransferMode
	HasMode bool

	// Buffers only.
	Attrs BufferExtraAttrs
}

func ClientProcessID() Value {
	return Value{Kind: ValueClientProcessID}
}

func In(t Nominal) Value {
	return Value{Kind: ValueIn, Type: t}
}

func Out(t Nominal) Value {
	return Value{Kind: ValueOut, Type: t}
}

func InObject(iface NamespacedIdent, span source.Span) Value {
	return Value{Kind: ValueInObject, Object: iface, ObjectSpan: span}
}

// OutObject builds an out-object value. Pass an empty iface for
// sf::IUnknown.
func OutObject(iface NamespacedIdent, span source.Span) Value {
	return Value{Kind: ValueOutObject, Object: iface, ObjectSpan: span}
}

func InHandle(h HandleTransferType) Value {
	return Value{Kind: ValueInHandle, Handle: h}
}

func OutHandle(h HandleTransferType) Value {
	return Value{Kind: ValueOutHandle, Handle: h}
}

func InArray(t Nominal, mode *BufferTransferMode) Value {
	v := Value{Kind: ValueInArray, Type: t}
	if mode != nil {
		v.Mode = *mode
		v.HasMode = true
	}
	return v
}

func OutArray(t Nominal, mode *BufferTransferMode) Value {
	v := Value{Kind: ValueOutArray, Type: t}
	if mode != nil {
		v.Mode = *mode
		v.HasMode = true
	}
	return v
}

func InBuffer(mode BufferTransferMode, attrs BufferExtraAttrs) Value {
	return Value{Kind: ValueInBuffer, Mode: mode, HasMode: true, Attrs: attrs}
}

func OutBuffer(mode BufferTransferMode, attrs BufferExtraAttrs) Value {
	return Value{Kind: ValueOutBuffer, Mode: mode, HasMode: true, Attrs: attrs}
}

// HasObject reports whether an object value names a concrete interface.
func (v Value) HasObject() bool {
	return !v.Object.IsEmpty()
}

// Equal compares two values structurally, ignoring spans.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueClientProcessID:
		return true
	case ValueIn, ValueOut:
		return v.Type.Equal(other.Type)
	case ValueInObject, ValueOutObject:
		return v.Object.Equal(other.Object)
	case ValueInHandle, ValueOutHandle:
		return v.Handle == other.Handle
	case ValueInArray, ValueOutArray:
		return v.Type.Equal(other.Type) && v.HasMode == other.HasMode &&
			(!v.HasMode || v.Mode == other.Mode)
	case ValueInBuffer, ValueOutBuffer:
		return v.Mode == other.Mode && v.Attrs == other.Attrs
	}
	return false
}
