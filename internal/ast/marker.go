package ast

import "swipc/internal/source"

// MarkerKind discriminates the trait tags a struct may carry.
type MarkerKind uint8

const (
	// MarkerLargeData tags a struct that is transferred as a buffer
	// instead of inline payload.
	MarkerLargeData MarkerKind = iota
	// MarkerPrefersTransferMode expresses the struct's preferred buffer
	// transfer mode. At most one per struct.
	MarkerPrefersTransferMode
)

// StructMarker is one trait tag with its defining span.
type StructMarker struct {
	Kind MarkerKind
	Mode BufferTransferMode // MarkerPrefersTransferMode only
	Span source.Span
}

func LargeData(span source.Span) StructMarker {
	return StructMarker{Kind: MarkerLargeData, Span: span}
}

func PrefersTransferMode(mode BufferTransferMode, span source.Span) StructMarker {
	return StructMarker{Kind: MarkerPrefersTransferMode, Mode: mode, Span: span}
}

func (m StructMarker) String() string {
	switch m.Kind {
	case MarkerLargeData:
		return "sf::LargeData"
	case MarkerPrefersTransferMode:
		switch m.Mode {
		case TransferMapAlias:
			return "sf::PrefersMapAliasTransferMode"
		case TransferPointer:
			return "sf::PrefersPointerTransferMode"
		case TransferAutoSelect:
			return "sf::PrefersAutoSelectTransferMode"
		}
	}
	return "sf::?"
}

// MarkerByName maps a qualified marker spelling to its marker. The span is
// attached to the result.
func MarkerByName(name NamespacedIdent, span source.Span) (StructMarker, bool) {
	if len(name.Segments) != 2 || name.Segments[0] != "sf" {
		return StructMarker{}, false
	}
	switch name.Segments[1] {
	case "LargeData":
		return LargeData(span), true
	case "PrefersMapAliasTransferMode":
		return PrefersTransferMode(TransferMapAlias, span), true
	case "PrefersPointerTransferMode":
		return PrefersTransferMode(TransferPointer, span), true
	case "PrefersAutoSelectTransferMode":
		return PrefersTransferMode(TransferAutoSelect, span), true
	}
	return StructMarker{}, false
}
