// Copyright 2026 The graphql-codegen Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/cel-go/cel"
)

// compile classifies and compiles one expression string. Literal and path
// forms are recognized first; everything else goes through the fallback CEL
// environment.
func compile(env *cel.Env, src string) (*Expression, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrCompile)
	}

	if lit, ok := parseLiteral(trimmed); ok {
		return &Expression{Original: src, kind: kindLiteral, literal: lit}, nil
	}
	if segs, ok := parsePath(trimmed); ok {
		return &Expression{Original: src, kind: kindPath, path: segs}, nil
	}

	ast, issues := env.Compile(trimmed)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, src, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, src, err)
	}
	return &Expression{Original: src, kind: kindFallback, program: prg}, nil
}

// parseLiteral recognizes numeric and quoted string literals.
func parseLiteral(s string) (any, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if unquoted, err := strconv.Unquote(s); err == nil {
			return unquoted, true
		}
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' && !strings.ContainsAny(s[1:len(s)-1], `'\`) {
		return s[1 : len(s)-1], true
	}
	return nil, false
}

// parsePath recognizes the path grammar:
//
//	path    = segment { "." segment }
//	segment = ident [ "[" "is" ident "]" ]
//
// It returns false for anything else, handing the string to the fallback
// compiler instead.
func parsePath(s string) ([]Segment, bool) {
	var segs []Segment
	i := 0
	for {
		start := i
		if i >= len(s) || !isIdentStart(s[i]) {
			return nil, false
		}
		i++
		for i < len(s) && isIdentPart(s[i]) {
			i++
		}
		seg := Segment{Name: s[start:i]}

		if i < len(s) && s[i] == '[' {
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, false
			}
			filter, ok := parseFilter(s[i+1 : i+end])
			if !ok {
				return nil, false
			}
			seg.Filter = filter
			i += end + 1
		}
		segs = append(segs, seg)

		if i == len(s) {
			return segs, true
		}
		if s[i] != '.' {
			return nil, false
		}
		i++
	}
}

// parseFilter parses the inside of a bracket filter: "is TypeName".
func parseFilter(inner string) (string, bool) {
	inner = strings.TrimSpace(inner)
	rest, ok := strings.CutPrefix(inner, "is")
	if !ok {
		return "", false
	}
	name := strings.TrimSpace(rest)
	if name == rest || name == "" || !isIdent(name) {
		return "", false
	}
	return name, true
}

func isIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
