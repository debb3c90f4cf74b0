package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestDestinations_Standard(t *testing.T) {
	board := testutil.MustBoard(t, chess.StandardArrangement)

	tests := []struct {
		origin          string
		includeDefended bool
		want            []string
	}{
		{"E2", false, []string{"E3", "E4"}},
		{"E2", true, []string{"E3", "E4"}},
		{"A2", true, []string{"A3", "A4"}},
		{"E7", false, []string{"E5", "E6"}},
		{"G1", false, []string{"F3", "H3"}},
		{"G1", true, []string{"E2", "F3", "H3"}},
		{"A1", false, nil},
		{"A1", true, []string{"A2", "B1"}},
		{"C1", false, nil},
		{"C1", true, []string{"B2", "D2"}},
		{"D1", true, []string{"C2", "D2", "E2", "C1", "E1"}},
		{"E1", false, nil},
		{"E1", true, []string{"D2", "E2", "F2", "D1", "F1"}},
		{"E4", false, nil},
		{"E4", true, nil},
	}

	for _, tt := range tests {
		name := tt.origin
		if tt.includeDefended {
			name += "/defended"
		}
		t.Run(name, func(t *testing.T) {
			got := Destinations(board, testutil.MustPosition(t, tt.origin), tt.includeDefended)
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...), "Destinations(%s, %v)", tt.origin, tt.includeDefended)
		})
	}
}

func TestDestinations_Pieces(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		origin string
		want   []string
	}{
		{
			name:   "knight in corner",
			rows:   []string{"k", "", "", "", "", "", "", "N---K"},
			origin: "A1",
			want:   []string{"B3", "C2"},
		},
		{
			name:   "knight captures but not friendly",
			rows:   []string{"k", "", "", "--p-P", "", "---N", "", "----K"},
			origin: "D3",
			want:   []string{"C5", "B4", "F4", "B2", "F2", "C1"},
		},
		{
			name:   "rook ray stops at blockers",
			rows:   []string{"k", "", "", "---p", "", "", "", "---S-K"},
			origin: "D1",
			want:   []string{"D5", "D4", "D3", "D2", "A1", "B1", "C1", "E1"},
		},
		{
			name:   "bishop captures first opposing piece",
			rows:   []string{"k", "", "", "", "-----p", "", "", "--B-K"},
			origin: "C1",
			want:   []string{"F4", "E3", "D2", "B2", "A3"},
		},
		{
			name:   "queen combines rays",
			rows:   []string{"k", "", "", "", "", "", "PP", "QN--K"},
			origin: "A1",
			want:   nil,
		},
		{
			name:   "pawn double push blocked at second square",
			rows:   []string{"k", "", "", "", "----p", "", "----P", "----K"},
			origin: "E2",
			want:   []string{"E3"},
		},
		{
			name:   "pawn blocked directly",
			rows:   []string{"k", "", "", "", "", "----n", "----P", "----K"},
			origin: "E2",
			want:   nil,
		},
		{
			name:   "pawn off starting rank pushes one",
			rows:   []string{"k", "", "", "", "", "----P", "", "----K"},
			origin: "E3",
			want:   []string{"E4"},
		},
		{
			name:   "pawn captures diagonally",
			rows:   []string{"k", "", "", "", "", "---p-R", "----P", "----K"},
			origin: "E2",
			want:   []string{"D3", "E3", "E4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, testutil.Arrangement(tt.rows...))
			got := Destinations(board, testutil.MustPosition(t, tt.origin), false)
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestDestinations_King(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		origin string
		want   []string
	}{
		{
			name:   "avoids pawn pushes but not empty pawn diagonals",
			rows:   []string{"k", "", "", "", "", "----p", "", "----L"},
			origin: "E1",
			want:   []string{"D2", "F2", "D1", "F1"},
		},
		{
			name:   "never adjacent to the other king",
			rows:   []string{"", "", "", "", "", "----l", "", "----L"},
			origin: "E1",
			want:   []string{"D1", "F1"},
		},
		{
			name:   "cannot capture a defended piece",
			rows:   []string{"", "", "", "", "", "----l", "----q", "----L"},
			origin: "E1",
			want:   nil,
		},
		{
			name:   "captures an undefended piece",
			rows:   []string{"k", "", "", "", "", "", "----q", "----L"},
			origin: "E1",
			want:   []string{"E2"},
		},
		{
			name:   "keeps squares the rook only reaches through the king",
			rows:   []string{"k", "", "", "", "", "", "", "---rL"},
			origin: "E1",
			want:   []string{"E2", "F2", "D1", "F1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, testutil.Arrangement(tt.rows...))
			got := Destinations(board, testutil.MustPosition(t, tt.origin), false)
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestDestinations_PawnFootprint(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		origin string
		want   []string
	}{
		{
			name:   "push only when both diagonals are empty",
			rows:   []string{"-------k", "", "---p", "", "--L"},
			origin: "D6",
			want:   []string{"D5"},
		},
		{
			name:   "occupied diagonals of either colour",
			rows:   []string{"-------k", "", "---p", "--N-b", "", "", "", "K"},
			origin: "D6",
			want:   []string{"C5", "D5", "E5"},
		},
		{
			name:   "double push from the starting rank",
			rows:   []string{"k", "", "", "", "", "", "----P", "----K"},
			origin: "E2",
			want:   []string{"E3", "E4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, testutil.Arrangement(tt.rows...))
			got := Destinations(board, testutil.MustPosition(t, tt.origin), true)
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestKing_CannotStepInFrontOfPawn(t *testing.T) {
	rows := []string{"-------k", "", "---p", "", "--L"}
	g := mustGame(t, chess.White, rows...)

	board := g.Board()
	candidates := Destinations(&board, testutil.MustPosition(t, "C4"), false)
	testutil.AssertFalse(t, candidates.Has(testutil.MustPosition(t, "D5")), "D5 is in front of the pawn")
	testutil.AssertTrue(t, candidates.Has(testutil.MustPosition(t, "C5")), "C5 is an empty pawn diagonal")

	testutil.AssertFalse(t, g.AttemptMove(testutil.MustMove(t, "C4 D5")))
	testutil.AssertEqual(t, g.Arrangement(), testutil.Arrangement(rows...))
	testutil.AssertTrue(t, g.AttemptMove(testutil.MustMove(t, "C4 D4")))
}

func TestAttackedSquares(t *testing.T) {
	board := testutil.MustBoard(t, chess.StandardArrangement)

	white := AttackedSquares(board, chess.White)
	want := testutil.Squares(t,
		"A4", "B4", "C4", "D4", "E4", "F4", "G4", "H4",
		"A3", "B3", "C3", "D3", "E3", "F3", "G3", "H3",
		"A2", "B2", "C2", "D2", "E2", "F2", "G2", "H2",
		"B1", "C1", "D1", "E1", "F1", "G1",
	)
	testutil.AssertSquares(t, white, want)

	if !IsSquareAttacked(board, testutil.MustPosition(t, "F6"), chess.Black) {
		t.Error("IsSquareAttacked(F6, Black) = false, want true")
	}
	if IsSquareAttacked(board, testutil.MustPosition(t, "E4"), chess.Black) {
		t.Error("IsSquareAttacked(E4, Black) = true, want false")
	}
	if IsKingUnderAttack(board, chess.White) || IsKingUnderAttack(board, chess.Black) {
		t.Error("IsKingUnderAttack() = true in the starting position")
	}
	if IsKingUnderAttack(chess.NewBoard(), chess.White) {
		t.Error("IsKingUnderAttack(empty board) = true, want false")
	}
}
