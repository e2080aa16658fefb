// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log"
	"strings"

	"github.com/jeranaias/cmdbind/internal/util"
)

// =============================================================================
// GRAMMAR SCANNER
// =============================================================================

// Accepted argument forms, tried left to right over the remainder of a
// definition:
//
//	<name> <value>
//	<name>: <value>
//	<name>=<value>
//	<name>            (bool only, means true)
//	<value>           (the group's default argument)
type scanner struct {
	specs  []ArgSpec
	rest   string
	logger *log.Logger
	def    string
}

// scanArgs parses every argument in rest against specs. Arguments whose
// value fails conversion are logged and dropped; the scan goes on.
func scanArgs(specs []ArgSpec, rest, def string, logger *log.Logger) []Arg {
	sc := &scanner{specs: specs, rest: rest, logger: logger, def: def}
	var args []Arg
	for {
		sc.rest = strings.TrimLeft(sc.rest, " ")
		if sc.rest == "" {
			return args
		}
		before := sc.rest
		arg, ok := sc.named()
		if !ok {
			arg, ok = sc.positional()
		}
		if ok && arg.Value != nil {
			args = append(args, arg)
		}
		if sc.rest == before {
			// no attempt consumed anything
			sc.logger.Printf("ARG_STALLED | def=%q rest=%q", sc.def, sc.rest)
			return args
		}
	}
}

// named tries every spec of the group as a name prefix. handled is true
// when some spec matched, even if its value was invalid and dropped.
func (sc *scanner) named() (arg Arg, handled bool) {
	for _, spec := range sc.specs {
		if !util.HasPrefixFold(sc.rest, spec.Name) {
			continue
		}
		after := sc.rest[len(spec.Name):]

		var valStart string
		switch {
		case after == "":
			if spec.Type != ArgBool {
				continue
			}
			sc.rest = ""
			return Arg{Name: spec.Name, Value: BoolValue(true)}, true
		case after[0] == ' ':
			valStart = strings.TrimLeft(after, " ")
		case strings.HasPrefix(after, ": "):
			valStart = strings.TrimLeft(after[1:], " ")
		case after[0] == '=':
			valStart = after[1:]
		default:
			// "colorful" is not "color"
			continue
		}

		token, next := splitToken(valStart)
		if spec.Type == ArgBool {
			b, known := parseBoolToken(token)
			if !known {
				// bare name; leave the token for the next attempt
				sc.rest = valStart
				return Arg{Name: spec.Name, Value: BoolValue(true)}, true
			}
			sc.rest = next
			return Arg{Name: spec.Name, Value: BoolValue(b)}, true
		}

		sc.rest = next
		a, err := parseValue(spec.Name, spec.Type, token)
		if err != nil {
			sc.logger.Printf("ARG_DROPPED | def=%q error=%v", sc.def, err)
			return Arg{}, true
		}
		return a, true
	}
	return Arg{}, false
}

// positional interprets the next token as the group's default argument.
// A default string argument takes everything that is left.
func (sc *scanner) positional() (arg Arg, handled bool) {
	spec := sc.specs[0]
	var token string
	if spec.Type == ArgString {
		token, sc.rest = sc.rest, ""
	} else {
		token, sc.rest = splitToken(sc.rest)
	}
	if spec.Type == ArgBool {
		sc.logger.Printf("ARG_DROPPED | def=%q error=default bool argument %s unsupported", sc.def, spec.Name)
		return Arg{}, true
	}
	a, err := parseValue(spec.Name, spec.Type, token)
	if err != nil {
		sc.logger.Printf("ARG_DROPPED | def=%q error=%v", sc.def, err)
		return Arg{}, true
	}
	return a, true
}

// splitToken splits s at the first space. The space is dropped.
func splitToken(s string) (token, rest string) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// parseBoolToken recognizes 1/true/yes and 0/false/no, case-insensitively.
func parseBoolToken(s string) (value, known bool) {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	}
	return false, false
}
