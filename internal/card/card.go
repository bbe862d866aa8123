package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// Card 定义一张牌，构造后不可变
type Card struct {
	Suit Suit
	Rank Rank
}

const (
	Club    Suit = iota // 梅花
	Diamond             // 方块
	Heart               // 红心
	Spade               // 黑桃
)

// Suits 按枚举顺序列出全部花色，平局时按此顺序取前者
var Suits = []Suit{Club, Diamond, Heart, Spade}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Club:    "♣",
	Diamond: "♦",
	Heart:   "♥",
	Spade:   "♠",
}

// suitNames 花色名称映射表
var suitNames = map[Suit]string{
	Club:    "Club",
	Diamond: "Diamond",
	Heart:   "Heart",
	Spade:   "Spade",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Name returns the English suit name.
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "Suit(" + strconv.Itoa(int(s)) + ")"
}

// IsRed 红心和方块为红色
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

// Valid 是否为四种花色之一
func (s Suit) Valid() bool {
	return s >= Club && s <= Spade
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// DefaultLowestRank 默认牌组为 6 到 A，共 36 张
const DefaultLowestRank = Rank6

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Valid 点数是否在 2..A 范围内
func (r Rank) Valid() bool {
	return r >= Rank2 && r <= RankA
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'2': Rank2,
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'A': RankA,
}

// RankFromString parses "6".."10", "J", "Q", "K", "A" (case-insensitive, "T" for ten).
func RankFromString(s string) (Rank, error) {
	clean := strings.ToUpper(strings.TrimSpace(s))
	if clean == "10" {
		return Rank10, nil
	}
	runes := []rune(clean)
	if len(runes) == 1 {
		if rank, ok := charToRank[runes[0]]; ok {
			return rank, nil
		}
	}
	return -1, fmt.Errorf("无法识别的点数: %q", s)
}

// endgameValues 局末手牌计分表，未列出的点数计 0 分
var endgameValues = map[Rank]int{
	Rank6:  6,
	Rank7:  7,
	Rank8:  8,
	Rank10: 10,
	RankJ:  2,
	RankQ:  3,
	RankK:  4,
	RankA:  11,
}

// queenPenalties 以 Q 收尾或手中全是 Q 时使用的花色罚分
var queenPenalties = map[Suit]int{
	Club:    20,
	Diamond: 20,
	Heart:   20,
	Spade:   40,
}

// Value returns the end-of-round penalty value of the card.
func (c Card) Value() int {
	return endgameValues[c.Rank]
}

// QueenPenalty returns the suit penalty applied in the queen scoring branch.
func (c Card) QueenPenalty() int {
	return queenPenalties[c.Suit]
}

// IsQueen Q 可以随时改花色
func (c Card) IsQueen() bool {
	return c.Rank == RankQ
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns a long form such as "Queen of Spade".
func (c Card) Name() string {
	return longRankName(c.Rank) + " of " + c.Suit.Name()
}

func longRankName(r Rank) string {
	switch r {
	case RankJ:
		return "Jack"
	case RankQ:
		return "Queen"
	case RankK:
		return "King"
	case RankA:
		return "Ace"
	default:
		return r.String()
	}
}

// Parse parses a compact card such as "QS", "10h" or "6♣".
func Parse(s string) (Card, error) {
	clean := strings.TrimSpace(s)
	runes := []rune(clean)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("无法识别的牌: %q", s)
	}

	suit, err := suitFromRune(runes[len(runes)-1])
	if err != nil {
		return Card{}, err
	}
	rank, err := RankFromString(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParse is Parse for fixed inputs; it panics on error.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func suitFromRune(r rune) (Suit, error) {
	switch r {
	case 'C', 'c', '♣':
		return Club, nil
	case 'D', 'd', '♦':
		return Diamond, nil
	case 'H', 'h', '♥':
		return Heart, nil
	case 'S', 's', '♠':
		return Spade, nil
	}
	return -1, fmt.Errorf("无法识别的花色: %c", r)
}

// NewSet 生成 lowest..A 的完整有序牌组（花色优先）
func NewSet(lowest Rank) []Card {
	if !lowest.Valid() {
		lowest = DefaultLowestRank
	}
	set := make([]Card, 0, len(Suits)*int(RankA-lowest+1))
	for _, s := range Suits {
		for r := lowest; r <= RankA; r++ {
			set = append(set, Card{Suit: s, Rank: r})
		}
	}
	return set
}
