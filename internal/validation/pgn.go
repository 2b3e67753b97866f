package validation

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PGN is the result of splitting PGN text: header tags in order of
// appearance and the move tokens with numbers and results removed.
type PGN struct {
	Tags  []Tag
	Moves []string
}

// Tag is one header pair.
type Tag struct {
	Name  string
	Value string
}

// Header returns the tags as a map. Later duplicates win.
func (p *PGN) Header() map[string]string {
	h := make(map[string]string, len(p.Tags))
	for _, tag := range p.Tags {
		h[tag.Name] = tag.Value
	}
	return h
}

var (
	tagPattern        = regexp.MustCompile(`^\[(\S+) "(.*)"\]$`)
	moveNumberPattern = regexp.MustCompile(`^\d+\.+`)
)

// resultTokens terminate a game and are not moves.
var resultTokens = map[string]bool{
	"*":       true,
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
}

// ParsePGN splits a single game's text into header tags and move tokens.
// Header lines are read until the first line that is not a tag. Tag values
// are unescaped. Brace and semicolon comments, variations at any depth,
// NAGs and trailing !/? annotations are dropped from the move text.
func ParsePGN(text string) (*PGN, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	pgn := &PGN{}
	lines := strings.Split(text, "\n")
	parsingHeader := true
	var moveText strings.Builder

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if parsingHeader {
			if m := tagPattern.FindStringSubmatch(line); m != nil {
				pgn.Tags = append(pgn.Tags, Tag{Name: m[1], Value: unescapeTagValue(m[2])})
				continue
			}
			if strings.HasPrefix(line, "[") {
				return nil, &errors.ParseError{Err: errors.ErrParseFailure, Line: i + 1, Got: line}
			}
			parsingHeader = false
		}
		if j := strings.IndexByte(line, ';'); j >= 0 && !insideComment(moveText.String()+line[:j]) {
			line = line[:j]
		}
		moveText.WriteString(line)
		moveText.WriteByte(' ')
	}

	body, err := stripAnnotations(moveText.String())
	if err != nil {
		return nil, err
	}

	for _, tok := range strings.Fields(body) {
		tok = moveNumberPattern.ReplaceAllString(tok, "")
		tok = strings.TrimRight(tok, "!?")
		if tok == "" || resultTokens[tok] || strings.HasPrefix(tok, "$") {
			continue
		}
		pgn.Moves = append(pgn.Moves, tok)
	}
	return pgn, nil
}

// stripAnnotations removes brace comments and parenthesised variations.
// Parentheses inside a comment are plain text. A stray ')' is ignored.
func stripAnnotations(s string) (string, error) {
	var sb strings.Builder
	comments, variations := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '{':
			comments++
		case comments > 0:
			if c == '}' {
				comments--
				sb.WriteByte(' ')
			}
		case c == '(':
			variations++
		case c == ')':
			if variations > 0 {
				variations--
			}
			sb.WriteByte(' ')
		case variations == 0:
			sb.WriteByte(c)
		}
	}
	if comments != 0 {
		return "", &errors.ParseError{Err: errors.ErrParseFailure, Got: "unterminated comment"}
	}
	if variations != 0 {
		return "", &errors.ParseError{Err: errors.ErrParseFailure, Got: "unterminated variation"}
	}
	return sb.String(), nil
}

// unescapeTagValue resolves the \" and \\ escapes of a tag string.
func unescapeTagValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

func insideComment(s string) bool {
	return strings.Count(s, "{") > strings.Count(s, "}")
}
