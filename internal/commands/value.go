// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/cmdbind/internal/color"
	"github.com/jeranaias/cmdbind/internal/util"
)

// =============================================================================
// ARGUMENT VALUES
// =============================================================================

// Value is the typed payload of a parsed argument. It is one of
// StringValue, IntValue, BoolValue or ColorValue.
type Value interface {
	Type() ArgType
	String() string
	isValue()
}

// StringValue is the verbatim text of a string argument.
type StringValue string

// IntValue is a best-effort integer.
type IntValue int

// BoolValue is an explicit or implied boolean.
type BoolValue bool

// ColorValue is a decoded color.
type ColorValue struct {
	color.Color
}

func (StringValue) Type() ArgType { return ArgString }
func (IntValue) Type() ArgType    { return ArgInt }
func (BoolValue) Type() ArgType   { return ArgBool }
func (ColorValue) Type() ArgType  { return ArgColor }

func (v StringValue) String() string { return string(v) }
func (v IntValue) String() string    { return strconv.Itoa(int(v)) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (v ColorValue) String() string  { return v.Color.String() }

func (StringValue) isValue() {}
func (IntValue) isValue()    {}
func (BoolValue) isValue()   {}
func (ColorValue) isValue()  {}

// Arg is one parsed argument of a command instance.
type Arg struct {
	Name  string
	Value Value
}

// Type returns the type of the argument's value.
func (a Arg) Type() ArgType {
	if a.Value == nil {
		return ArgNone
	}
	return a.Value.Type()
}

func (a Arg) String() string {
	if a.Value == nil {
		return a.Name
	}
	return a.Name + "=" + a.Value.String()
}

// parseValue converts raw into an argument of the declared type.
// Only colors can fail; ints fall back to 0 on garbage. Booleans are
// handled by the scanner and are rejected here.
func parseValue(name string, typ ArgType, raw string) (Arg, error) {
	switch typ {
	case ArgString:
		return Arg{Name: name, Value: StringValue(raw)}, nil
	case ArgInt:
		return Arg{Name: name, Value: IntValue(util.ParseInt(raw))}, nil
	case ArgColor:
		c, ok := color.Parse(raw)
		if !ok {
			return Arg{}, fmt.Errorf("%w: %s=%q is not a color", ErrInvalidValue, name, raw)
		}
		return Arg{Name: name, Value: ColorValue{c}}, nil
	default:
		return Arg{}, fmt.Errorf("%w: %s has unsupported type %s", ErrInvalidValue, name, typ)
	}
}
