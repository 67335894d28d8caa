package itch

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode error taxonomy, matched via errors.Is.
// Grounded on tienpsm-go-trader/matching/errors.go's sentinel-plus-code
// pattern, adapted from its ErrorCode consts to typed wrapper errors that
// also carry structured fields for logging.
var (
	ErrShortRead        = errors.New("itch: short read")
	ErrLengthMismatch   = errors.New("itch: declared length does not match decoded size")
	ErrUnknownMessage   = errors.New("itch: unknown message type")
	ErrUnknownEnumValue = errors.New("itch: unknown enum value")
	ErrTruncatedPacket  = errors.New("itch: truncated packet")
)

// ShortReadError reports a decode that ran out of buffer mid-message.
type ShortReadError struct {
	Needed    int
	Remaining int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("itch: short read: needed %d bytes, %d remaining", e.Needed, e.Remaining)
}

func (e *ShortReadError) Is(target error) bool { return target == ErrShortRead }

// LengthMismatchError reports a message whose declared length (Declared,
// including the type tag) didn't match its type's fixed wire size (Actual).
type LengthMismatchError struct {
	Type     MsgType
	Declared int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("itch: %s declared length %d, fixed wire size %d", e.Type, e.Declared, e.Actual)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// UnknownMessageError reports a type tag not among the 23 known types.
type UnknownMessageError struct {
	Tag byte
}

func (e *UnknownMessageError) Error() string {
	return fmt.Sprintf("itch: unknown message type %q", e.Tag)
}

func (e *UnknownMessageError) Is(target error) bool { return target == ErrUnknownMessage }

// UnknownEnumValueError reports a coded-enum wire byte outside its closed set.
type UnknownEnumValueError struct {
	Field string
	Value byte
	Type  MsgType
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("itch: %s.%s has unknown value %q", e.Type, e.Field, e.Value)
}

func (e *UnknownEnumValueError) Is(target error) bool { return target == ErrUnknownEnumValue }

// TruncatedPacketError reports a SessionFramer envelope that promised more
// messages than the datagram actually contains.
type TruncatedPacketError struct {
	Expected int
	Got      int
}

func (e *TruncatedPacketError) Error() string {
	return fmt.Sprintf("itch: truncated packet: expected %d messages, got %d", e.Expected, e.Got)
}

func (e *TruncatedPacketError) Is(target error) bool { return target == ErrTruncatedPacket }
