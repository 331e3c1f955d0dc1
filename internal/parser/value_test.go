package parser

import (
	"testing"

	"swipc/internal/ast"
	"swipc/internal/source"
)

// argValue parses one command with a single argument and returns it.
func argValue(t *testing.T, arg string) ast.Value {
	t.Helper()
	iface := singleItem[*ast.Interface](t, "interface ns::I { [0] M("+arg+"); }")
	if len(iface.Commands[0].Args) != 1 {
		t.Fatalf("args = %+v", iface.Commands[0].Args)
	}
	return iface.Commands[0].Args[0].Value
}

func TestValueDispatchTable(t *testing.T) {
	modePtr := func(m ast.BufferTransferMode) *ast.BufferTransferMode { return &m }

	tests := []struct {
		name string
		arg  string
		want ast.Value
	}{
		{"client_process_id", "sf::ClientProcessId", ast.ClientProcessID()},

		{"copy_handle", "sf::CopyHandle", ast.InHandle(ast.HandleCopy)},
		{"move_handle", "sf::MoveHandle", ast.InHandle(ast.HandleMove)},
		{"out_copy_handle", "sf::OutCopyHandle", ast.OutHandle(ast.HandleCopy)},
		{"out_move_handle", "sf::OutMoveHandle", ast.OutHandle(ast.HandleMove)},

		{"in_buffer", "sf::InBuffer", ast.InBuffer(ast.TransferMapAlias, ast.AttrsNone)},
		{"in_map_alias_buffer", "sf::InMapAliasBuffer", ast.InBuffer(ast.TransferMapAlias, ast.AttrsNone)},
		{"in_pointer_buffer", "sf::InPointerBuffer", ast.InBuffer(ast.TransferPointer, ast.AttrsNone)},
		{"in_auto_select_buffer", "sf::InAutoSelectBuffer", ast.InBuffer(ast.TransferAutoSelect, ast.AttrsNone)},
		{"in_non_secure_buffer", "sf::InNonSecureBuffer", ast.InBuffer(ast.TransferMapAlias, ast.AttrsAllowNonSecure)},
		{"in_non_device_buffer", "sf::InNonDeviceBuffer", ast.InBuffer(ast.TransferMapAlias, ast.AttrsAllowNonDevice)},
		{"in_non_secure_auto_select", "sf::InNonSecureAutoSelectBuffer", ast.InBuffer(ast.TransferAutoSelect, ast.AttrsAllowNonSecure)},

		{"out_buffer", "sf::OutBuffer", ast.OutBuffer(ast.TransferMapAlias, ast.AttrsNone)},
		{"out_map_alias_buffer", "sf::OutMapAliasBuffer", ast.OutBuffer(ast.TransferMapAlias, ast.AttrsNone)},
		{"out_pointer_buffer", "sf::OutPointerBuffer", ast.OutBuffer(ast.TransferPointer, ast.AttrsNone)},
		{"out_auto_select_buffer", "sf::OutAutoSelectBuffer", ast.OutBuffer(ast.TransferAutoSelect, ast.AttrsNone)},
		{"out_non_secure_buffer", "sf::OutNonSecureBuffer", ast.OutBuffer(ast.TransferMapAlias, ast.AttrsAllowNonSecure)},
		{"out_non_device_buffer", "sf::OutNonDeviceBuffer", ast.OutBuffer(ast.TransferMapAlias, ast.AttrsAllowNonDevice)},
		{"out_non_secure_auto_select", "sf::OutNonSecureAutoSelectBuffer", ast.OutBuffer(ast.TransferAutoSelect, ast.AttrsAllowNonSecure)},

		{"in_array", "sf::InArray<u32>", ast.InArray(ast.Int(ast.U32), nil)},
		{"in_map_alias_array", "sf::InMapAliasArray<ns::T>", ast.InArray(ast.TypeName(ast.NewNamespacedIdent("ns", "T"), source.Span{}), modePtr(ast.TransferMapAlias))},
		{"in_pointer_array", "sf::InPointerArray<u8>", ast.InArray(ast.Int(ast.U8), modePtr(ast.TransferPointer))},
		{"in_auto_select_array", "sf::InAutoSelectArray<u8>", ast.InArray(ast.Int(ast.U8), modePtr(ast.TransferAutoSelect))},
		{"out_array", "sf::OutArray<u64>", ast.OutArray(ast.Int(ast.U64), nil)},
		{"out_map_alias_array", "sf::OutMapAliasArray<u8>", ast.OutArray(ast.Int(ast.U8), modePtr(ast.TransferMapAlias))},
		{"out_pointer_array", "sf::OutPointerArray<u8>", ast.OutArray(ast.Int(ast.U8), modePtr(ast.TransferPointer))},
		{"out_auto_select_array", "sf::OutAutoSelectArray<u8>", ast.OutArray(ast.Int(ast.U8), modePtr(ast.TransferAutoSelect))},

		{"out_scalar", "sf::Out<u32>", ast.Out(ast.Int(ast.U32))},
		{"out_bool", "sf::Out<b8>", ast.Out(ast.Bool())},
		{"out_typename", "sf::Out<ns::T>", ast.Out(ast.TypeName(ast.NewNamespacedIdent("ns", "T"), source.Span{}))},
		{"out_bytes", "sf::Out<sf::Bytes<0x10, 8>>", ast.Out(ast.Nominal{Kind: ast.NominalBytes, Size: 0x10, Alignment: 8})},

		{"in_object", "sf::SharedPointer<fssrv::IFile>", ast.InObject(ast.NewNamespacedIdent("fssrv", "IFile"), source.Span{})},
		{"out_object", "sf::Out<sf::SharedPointer<fssrv::IFile>>", ast.OutObject(ast.NewNamespacedIdent("fssrv", "IFile"), source.Span{})},
		{"out_object_unknown", "sf::Out<sf::SharedPointer<sf::IUnknown>>", ast.OutObject(ast.NamespacedIdent{}, source.Span{})},

		{"bare_scalar", "u32", ast.In(ast.Int(ast.U32))},
		{"bare_bool", "bool", ast.In(ast.Bool())},
		{"bare_f32", "f32", ast.In(ast.F32())},
		{"bare_typename", "nn::ApplicationId", ast.In(ast.TypeName(ast.NewNamespacedIdent("nn", "ApplicationId"), source.Span{}))},
		{"bytes_in_arg", "sf::Bytes<0x40, 8>", ast.In(ast.Nominal{Kind: ast.NominalBytes, Size: 0x40, Alignment: 8})},
		{"unknown_in_arg", "sf::Unknown", ast.In(ast.Unknown(nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := argValue(t, tt.arg)
			if !got.Equal(tt.want) {
				t.Errorf("value = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOutObjectDisambiguation(t *testing.T) {
	// the specialized object form must win over the generic sf::Out<T>
	src := "interface ns::I { [0] M(sf::Out<sf::SharedPointer<fssrv::IFile>> out); }"
	iface := singleItem[*ast.Interface](t, src)
	arg := iface.Commands[0].Args[0]

	if arg.Name != "out" {
		t.Errorf("arg name = %q", arg.Name)
	}
	v := arg.Value
	if v.Kind != ast.ValueOutObject {
		t.Fatalf("kind = %v, want OutObject", v.Kind)
	}
	if !v.HasObject() || v.Object.String() != "fssrv::IFile" {
		t.Errorf("object = %q", v.Object)
	}
	// the span covers exactly the interface name inside SharedPointer<...>
	if !spanIs(src, v.ObjectSpan, "fssrv::IFile", 0) {
		t.Errorf("object span = %v", v.ObjectSpan)
	}
}

func TestInObjectSpan(t *testing.T) {
	src := "interface ns::I { [0] M(sf::SharedPointer<nn::sm::detail::IUserInterface> session); }"
	iface := singleItem[*ast.Interface](t, src)
	v := iface.Commands[0].Args[0].Value

	if v.Kind != ast.ValueInObject {
		t.Fatalf("kind = %v", v.Kind)
	}
	if !spanIs(src, v.ObjectSpan, "nn::sm::detail::IUserInterface", 0) {
		t.Errorf("object span = %v", v.ObjectSpan)
	}
}

func TestOutObjectUnknownInterface(t *testing.T) {
	v := argValue(t, "sf::Out<sf::SharedPointer<sf::IUnknown>>")
	if v.Kind != ast.ValueOutObject {
		t.Fatalf("kind = %v", v.Kind)
	}
	if v.HasObject() {
		t.Errorf("sf::IUnknown must map to the unknown interface, got %q", v.Object)
	}
}

func TestUnlistedSfNameFallsBackToTypeName(t *testing.T) {
	v := argValue(t, "sf::SomeFutureThing")
	want := ast.In(ast.TypeName(ast.NewNamespacedIdent("sf", "SomeFutureThing"), source.Span{}))
	if !v.Equal(want) {
		t.Errorf("value = %+v", v)
	}
}

func TestValuesCannotAppearInStructFields(t *testing.T) {
	tests := []string{
		"struct ns::S { sf::InBuffer b; }",
		"struct ns::S { sf::CopyHandle h; }",
		"struct ns::S { sf::Out<u32> o; }",
	}
	for _, src := range tests {
		file, bag := parseFileSrc(t, src)
		if file != nil && !bag.HasErrors() {
			// sf::InBuffer etc. parse as unresolved type names, which the
			// lexical front-end cannot reject; they must at least not
			// produce a Value in field position
			s := file.Items[0].(*ast.Struct)
			if s.Fields[0].Type.Kind != ast.NominalTypeName {
				t.Errorf("%s: field type = %+v", src, s.Fields[0].Type)
			}
		}
	}
}
