package itch

import "testing"

func TestAddOrderRoundTrip(t *testing.T) {
	want := AddOrderMessage{
		Header:               MessageHeader{StockLocate: 7, TrackingNumber: 1, Timestamp: 34200123456789},
		OrderReferenceNumber: 9001,
		Side:                 SideBuy,
		Shares:               500,
		Symbol:               SymbolFromString("AAPL"),
		Price:                Price4(189.23),
	}

	// EncodeAddOrder omits the type tag, which WireSize counts.
	encoded := EncodeAddOrder(want)
	if len(encoded) != MsgAddOrder.WireSize()-1 {
		t.Fatalf("encoded length = %d, want %d", len(encoded), MsgAddOrder.WireSize()-1)
	}

	got, err := DecodeAddOrder(encoded)
	if err != nil {
		t.Fatalf("DecodeAddOrder: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestOrderReplaceRoundTrip(t *testing.T) {
	want := OrderReplaceMessage{
		Header:                       MessageHeader{StockLocate: 3, TrackingNumber: 2, Timestamp: 50000000000},
		OriginalOrderReferenceNumber: 100,
		NewOrderReferenceNumber:      101,
		Shares:                       250,
		Price:                        Price4(42.5),
	}
	got, err := DecodeOrderReplace(EncodeOrderReplace(want))
	if err != nil {
		t.Fatalf("DecodeOrderReplace: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestDecodeDispatchUnknownType(t *testing.T) {
	_, err := Decode('?', nil)
	var unk *UnknownMessageError
	if !asUnknownMessage(err, &unk) {
		t.Fatalf("expected *UnknownMessageError, got %v (%T)", err, err)
	}
	if unk.Tag != '?' {
		t.Fatalf("Tag = %q, want %q", unk.Tag, '?')
	}
}

func asUnknownMessage(err error, target **UnknownMessageError) bool {
	e, ok := err.(*UnknownMessageError)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestDecodeDispatchKnownTypes(t *testing.T) {
	for tag, want := range map[MsgType]any{
		MsgSystemEvent:    SystemEventMessage{},
		MsgAddOrder:       AddOrderMessage{},
		MsgOrderDelete:    OrderDeleteMessage{},
		MsgTrade:          TradeMessage{},
		MsgStockDirectory: StockDirectoryMessage{},
	} {
		size := tag.WireSize()
		buf := make([]byte, size-1) // payload excludes the type tag itself
		got, err := Decode(byte(tag), buf)
		// A zero byte lies outside most coded-enum sets, so an
		// *UnknownEnumValueError is expected for some types; any other error
		// means the well-sized block was not handed to its own decoder.
		if _, isEnum := err.(*UnknownEnumValueError); err != nil && !isEnum {
			t.Fatalf("Decode(%s): unexpected error on well-sized zero buffer: %v", tag, err)
		}
		if got != want {
			t.Fatalf("Decode(%s) = %#v, want %#v", tag, got, want)
		}
	}
}

func TestSystemEventUnknownEnumValue(t *testing.T) {
	msg := SystemEventMessage{
		Header:    MessageHeader{StockLocate: 1, TrackingNumber: 1, Timestamp: 1},
		EventCode: EventCode('?'),
	}
	encoded := EncodeSystemEvent(msg)
	_, err := DecodeSystemEvent(encoded)
	if err == nil {
		t.Fatal("expected an error for an invalid event code")
	}
	var uev *UnknownEnumValueError
	e, ok := err.(*UnknownEnumValueError)
	if !ok {
		t.Fatalf("expected *UnknownEnumValueError, got %T", err)
	}
	uev = e
	if uev.Field != "EventCode" {
		t.Fatalf("Field = %q, want EventCode", uev.Field)
	}
}

func TestShortReadOnTruncatedBuffer(t *testing.T) {
	_, err := DecodeAddOrder(make([]byte, 5))
	var sre *ShortReadError
	e, ok := err.(*ShortReadError)
	if !ok {
		t.Fatalf("expected *ShortReadError, got %v (%T)", err, err)
	}
	sre = e
	// Locate and tracking consume 4 of the 5 bytes; the 6-byte timestamp
	// read then finds 1 byte left.
	if sre.Remaining != 1 {
		t.Fatalf("Remaining = %d, want 1", sre.Remaining)
	}
}

func TestSymbolTrimming(t *testing.T) {
	s := SymbolFromString("IBM")
	if got := s.Trimmed(); got != "IBM" {
		t.Fatalf("Trimmed() = %q, want IBM", got)
	}
}

func TestIssueSubTypeLookup(t *testing.T) {
	st := IssueSubType(pack2('C', ' '))
	if !st.Valid() {
		t.Fatal("expected common-shares subtype to be valid")
	}
	if st.String() != "CommonShares" {
		t.Fatalf("String() = %q, want CommonShares", st.String())
	}
	if IssueSubType(0xFFFF).Valid() {
		t.Fatal("expected an unpacked code to be invalid")
	}
}
