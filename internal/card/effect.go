package card

// Effect 牌的特殊效果标签，集合封闭
type Effect int

const (
	EffectNone       Effect = iota
	EffectReverse           // 10：反转出牌方向
	EffectDrawTwo           // 7：下家摸两张
	EffectDrawFive          // 黑桃K/红心K：下家摸五张并跳过
	EffectChooseSuit        // Q：打出者指定花色
	EffectSkip              // A：跳过下家
	EffectCoverSix          // 6：下家必须盖住
)

// effectNames 效果名称映射表
var effectNames = map[Effect]string{
	EffectNone:       "none",
	EffectReverse:    "reverse",
	EffectDrawTwo:    "draw-two",
	EffectDrawFive:   "draw-five",
	EffectChooseSuit: "choose-suit",
	EffectSkip:       "skip",
	EffectCoverSix:   "cover-six",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "unknown"
}

// rankEffects 按点数查找效果，K 另行按花色判断
var rankEffects = map[Rank]Effect{
	Rank6:  EffectCoverSix,
	Rank7:  EffectDrawTwo,
	Rank10: EffectReverse,
	RankQ:  EffectChooseSuit,
	RankA:  EffectSkip,
}

// Effect returns the ability tag triggered when the card is played.
func (c Card) Effect() Effect {
	if c.Rank == RankK {
		if c.Suit == Spade || c.Suit == Heart {
			return EffectDrawFive
		}
		return EffectNone
	}
	return rankEffects[c.Rank]
}
