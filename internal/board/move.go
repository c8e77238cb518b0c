package board

// MoveKind tags what a move does on the board. Identical from/to pairs can
// differ in kind (a king stepping to g1 versus castling king-side), so the
// tag, not the coordinates, drives MakeMove.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	DoublePawnPush
	EnPassant
	CastleKingSide
	CastleQueenSide
	PromotionQuiet
	PromotionCapture
)

// String returns the move kind name.
func (k MoveKind) String() string {
	names := [...]string{
		"Quiet", "Capture", "DoublePawnPush", "EnPassant",
		"CastleKingSide", "CastleQueenSide", "PromotionQuiet", "PromotionCapture",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move encodes one ply in 18 bits of a uint32:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bits 14-17: move kind
type Move uint32

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a non-promotion move of the given kind.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(from) | Move(to)<<6 | Move(kind)<<14
}

// NewPromotion creates a promotion move. capture selects the capturing variant.
func NewPromotion(from, to Square, promo PieceType, capture bool) Move {
	kind := PromotionQuiet
	if capture {
		kind = PromotionCapture
	}
	// promo: Knight=0, Bishop=1, Rook=2, Queen=3
	promoIdx := promo - Knight
	return Move(from) | Move(to)<<6 | Move(promoIdx)<<12 | Move(kind)<<14
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Kind returns the move kind tag.
func (m Move) Kind() MoveKind {
	return MoveKind((m >> 14) & 0xF)
}

// Promotion returns the promotion piece type.
// Only meaningful when IsPromotion() is true.
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	k := m.Kind()
	return k == PromotionQuiet || k == PromotionCapture
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	k := m.Kind()
	return k == Capture || k == EnPassant || k == PromotionCapture
}

// IsCastle returns true if this is a castling move (either side).
func (m Move) IsCastle() bool {
	k := m.Kind()
	return k == CastleKingSide || k == CastleQueenSide
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Promotion()-Knight])
	}

	return s
}

// MaxMoves bounds the number of moves reachable from any legal position.
// 218 is the accepted upper bound for the chess branching factor.
const MaxMoves = 218

// MoveList is a fixed-capacity move list. It lives on the stack of its
// owner; generation never allocates.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	if ml.count < MaxMoves {
		ml.moves[ml.count] = m
		ml.count++
	}
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list's array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// retain keeps only the moves for which keep returns true,
// preserving order.
func (ml *MoveList) retain(keep func(Move) bool) {
	w := 0
	for i := 0; i < ml.count; i++ {
		if keep(ml.moves[i]) {
			ml.moves[w] = ml.moves[i]
			w++
		}
	}
	ml.count = w
}

// UndoInfo stores the irreversible state clobbered by MakeMove, enough to
// restore the exact prior position with UnmakeMove.
type UndoInfo struct {
	Captured       Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
}
