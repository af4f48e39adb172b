package ifcio

import (
	"fmt"
	"strconv"
	"strings"
)

// Entity is one parsed STEP line: "#id=TYPE(param1,param2,...);".
type Entity struct {
	ID     uint64
	Type   string
	Params []string
}

// quote wraps s as a STEP single-quoted string literal. STEP escapes an
// embedded quote by doubling it; this package's own writer never produces
// embedded quotes, but parsing (below) still has to round-trip them.
func quote(s string) string { return "'" + strings.ReplaceAll(s, "'", "''") + "'" }

// ref formats an entity reference.
func ref(id uint64) string { return fmt.Sprintf("#%d", id) }

// refList formats a parenthesized list of entity references.
func refList(ids ...uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = ref(id)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// float6 formats a float with six decimal digits, STEP's usual precision
// for export.rs-style coordinate literals.
func float6(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// line builds one "#id=TYPE(args...);\n" STEP entity line.
func line(id uint64, entityType string, args ...string) string {
	return fmt.Sprintf("#%d=%s(%s);\n", id, entityType, strings.Join(args, ","))
}

// ParseEntities extracts every "#id=TYPE(...);" line from content's DATA
// section, keyed by id. Ported from import.rs's parse_entities/
// parse_entity_line/parse_parameters.
func ParseEntities(content string) (map[uint64]Entity, error) {
	dataStart := strings.Index(content, "DATA;")
	if dataStart < 0 {
		return nil, NewInvalidStructure("missing DATA section")
	}
	rel := strings.Index(content[dataStart:], "ENDSEC;")
	if rel < 0 {
		return nil, NewInvalidStructure("missing ENDSEC")
	}
	dataEnd := dataStart + rel
	section := content[dataStart+len("DATA;") : dataEnd]

	entities := make(map[uint64]Entity)
	for _, rawLine := range strings.Split(section, "\n") {
		l := strings.TrimSpace(rawLine)
		if l == "" || !strings.HasPrefix(l, "#") {
			continue
		}
		e, ok := parseEntityLine(l)
		if ok {
			entities[e.ID] = e
		}
	}
	return entities, nil
}

// parseEntityLine parses one "#123=IFCTYPE(a,b,c);" line.
func parseEntityLine(l string) (Entity, bool) {
	l = strings.TrimSuffix(strings.TrimSpace(l), ";")
	eq := strings.IndexByte(l, '=')
	if eq < 0 || len(l) == 0 || l[0] != '#' {
		return Entity{}, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(l[1:eq]), 10, 64)
	if err != nil {
		return Entity{}, false
	}
	rest := l[eq+1:]
	paren := strings.IndexByte(rest, '(')
	if paren < 0 || !strings.HasSuffix(rest, ")") {
		return Entity{}, false
	}
	entityType := strings.ToUpper(strings.TrimSpace(rest[:paren]))
	params := parseParameters(rest[paren+1 : len(rest)-1])
	return Entity{ID: id, Type: entityType, Params: params}, true
}

// parseParameters splits a STEP parameter list at depth-0 commas, treating
// single-quoted strings as opaque (commas and parens inside them don't
// count) and nested parens as one opaque parameter. Ported from
// import.rs's parse_parameters.
func parseParameters(params string) []string {
	var result []string
	var current strings.Builder
	depth := 0
	inString := false

	for _, ch := range params {
		switch {
		case ch == '\'':
			inString = !inString
			current.WriteRune(ch)
		case ch == '(' && !inString:
			depth++
			current.WriteRune(ch)
		case ch == ')' && !inString:
			depth--
			current.WriteRune(ch)
		case ch == ',' && depth == 0 && !inString:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		result = append(result, strings.TrimSpace(current.String()))
	}
	return result
}

// unquote strips a STEP string literal's surrounding quotes and un-doubles
// any embedded quote.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "''", "'")
}

// parseRef parses a "#123" reference, returning ok=false for "$", "*", or
// anything else that isn't a bare reference.
func parseRef(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return 0, false
	}
	id, err := strconv.ParseUint(s[1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseFloats splits a "(x,y,z)" coordinate tuple into its components.
func parseFloats(s string) []float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err == nil {
			out = append(out, v)
		}
	}
	return out
}

func paramAt(params []string, i int) (string, bool) {
	if i < 0 || i >= len(params) {
		return "", false
	}
	return params[i], true
}
