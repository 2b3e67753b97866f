package validation

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParsePGN(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTags  []Tag
		wantMoves []string
	}{
		{
			name:      "moves only",
			text:      "1. e4 e5 2. Nf3 Nc6 *",
			wantMoves: []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name: "header and result",
			text: "[Event \"Casual Game\"]\n[White \"Anderssen\"]\n\n1.e4 e5 2.f4 exf4 1-0\n",
			wantTags: []Tag{
				{Name: "Event", Value: "Casual Game"},
				{Name: "White", Value: "Anderssen"},
			},
			wantMoves: []string{"e4", "e5", "f4", "exf4"},
		},
		{
			name:      "comments and NAGs",
			text:      "1. d4 {queen pawn} d5 $1 2. c4 ; gambit\n2... e6 1/2-1/2",
			wantMoves: []string{"d4", "d5", "c4", "e6"},
		},
		{
			name:      "variation",
			text:      "1. e4 (1. d4 d5) e5 2. Nf3 Nc6 *",
			wantMoves: []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name:      "nested variation",
			text:      "1. e4 e5 (1... c5 2. Nf3 (2. c3 d5) d6) 2. Nf3 {main (line)} Nc6 *",
			wantMoves: []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name:      "variation glued to moves",
			text:      "1. e4(1.d4)e5 2. Nf3 *",
			wantMoves: []string{"e4", "e5", "Nf3"},
		},
		{
			name:      "stray closing parenthesis",
			text:      "1. e4 e5) 2. Nf3 *",
			wantMoves: []string{"e4", "e5", "Nf3"},
		},
		{
			name: "escaped tag value",
			text: "[Event \"Say \\\"hi\\\"\"]\n[Site \"C:\\\\games\"]\n\n1. e4 *",
			wantTags: []Tag{
				{Name: "Event", Value: `Say "hi"`},
				{Name: "Site", Value: `C:\games`},
			},
			wantMoves: []string{"e4"},
		},
		{
			name:      "carriage returns",
			text:      "[Site \"?\"]\r\n\r\n1. c4 c5\r0-1",
			wantTags:  []Tag{{Name: "Site", Value: "?"}},
			wantMoves: []string{"c4", "c5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePGN(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Tags, tt.wantTags, "tags")
			testutil.AssertEqual(t, got.Moves, tt.wantMoves, "moves")
		})
	}
}

func TestParsePGN_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unterminated comment", "1. e4 {never closed e5"},
		{"unterminated variation", "1. e4 (1. d4 d5 e5"},
		{"malformed tag", "[Event Casual]\n1. e4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePGN(tt.text)
			if !errors.Is(err, chesserrors.ErrParseFailure) {
				t.Errorf("ParsePGN() error = %v, want ErrParseFailure", err)
			}
		})
	}
}

func TestPGNHeader(t *testing.T) {
	pgn := &PGN{Tags: []Tag{{"White", "a"}, {"Black", "b"}, {"White", "c"}}}
	testutil.AssertEqual(t, pgn.Header(), map[string]string{"White": "c", "Black": "b"})
}
