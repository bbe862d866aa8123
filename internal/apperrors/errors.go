package apperrors

// 错误码
const (
	ErrCodeIllegalMove = 1001 + iota
	ErrCodeCardNotInHand
	ErrCodeNotEnoughPlayers
	ErrCodeTooManyPlayers
	ErrCodeAwaitingSuitChoice
	ErrCodeNoSuitChoicePending
	ErrCodeRoundEnded
	ErrCodeRoundNotStarted
	ErrCodeUnknownPlayer
	ErrCodeInvalidSuit
	ErrCodeMustCoverSix
	ErrCodeNoSixToCover
	ErrCodePilesExhausted = 2001
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// IsInvariant 2xxx 为内部不变量被破坏，不应出现
func (e *GameError) IsInvariant() bool {
	return e.Code >= 2000
}

// 预定义错误
var (
	ErrIllegalMove        = &GameError{Code: ErrCodeIllegalMove, Message: "illegal move"}
	ErrCardNotInHand      = &GameError{Code: ErrCodeCardNotInHand, Message: "card is not in the current player's hand"}
	ErrNotEnoughPlayers   = &GameError{Code: ErrCodeNotEnoughPlayers, Message: "at least 2 players are required"}
	ErrTooManyPlayers     = &GameError{Code: ErrCodeTooManyPlayers, Message: "not enough cards to deal to every player"}
	ErrAwaitingSuitChoice = &GameError{Code: ErrCodeAwaitingSuitChoice, Message: "waiting for a suit to be chosen"}
	ErrNoSuitChoice       = &GameError{Code: ErrCodeNoSuitChoicePending, Message: "no suit choice is pending"}
	ErrRoundEnded         = &GameError{Code: ErrCodeRoundEnded, Message: "round has ended"}
	ErrRoundNotStarted    = &GameError{Code: ErrCodeRoundNotStarted, Message: "round has not started"}
	ErrUnknownPlayer      = &GameError{Code: ErrCodeUnknownPlayer, Message: "player is not part of this game"}
	ErrInvalidSuit        = &GameError{Code: ErrCodeInvalidSuit, Message: "invalid suit"}
	ErrMustCoverSix       = &GameError{Code: ErrCodeMustCoverSix, Message: "a six must be covered before drawing normally"}
	ErrNoSixToCover       = &GameError{Code: ErrCodeNoSixToCover, Message: "there is no six to cover"}
	ErrPilesExhausted     = &GameError{Code: ErrCodePilesExhausted, Message: "draw and discard piles are both exhausted"}
)
