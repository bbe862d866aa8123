package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/game"
	"github.com/palemoky/game-101/internal/ui/common"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, RenderGameRules())
	}

	var sb strings.Builder
	center := func(s string) {
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s))
		sb.WriteString("\n")
	}

	center(common.TitleStyle(fmt.Sprintf("🃏 101 · 第 %d 局 %s", m.engine.Round(), directionArrow(m.engine.Direction()))))
	center(m.renderSeats())
	center(m.renderTable())
	if m.me != nil {
		center(m.renderHand())
	}
	if m.summary != nil {
		center(m.renderSummary())
	}
	if len(m.board) > 0 {
		center(m.renderLeaderboard())
	}
	center(m.renderEvents())
	sb.WriteString(m.renderPrompt())

	return common.DocStyle.Render(sb.String())
}

func directionArrow(dir int) string {
	if dir < 0 {
		return "↺"
	}
	return "↻"
}

// renderSeats 其他玩家的手牌数与分数
func (m *Model) renderSeats() string {
	var parts []string
	current := m.engine.CurrentPlayer()
	for _, p := range m.engine.Players() {
		if p == m.me {
			continue
		}
		icon := common.BotIcon
		if !p.IsBot() {
			icon = common.HumanIcon
		}
		style := common.BoxStyle
		if p == current && m.engine.State() != game.StateRoundEnded {
			style = common.ActiveBoxStyle
			icon = common.TurnIcon + icon
		}
		info := fmt.Sprintf("%s %s\n🃏 %d张  分 %d", icon, common.TruncateName(p.Name, 10), p.HandSize(), m.engine.Score(p))
		parts = append(parts, style.Width(20).Render(info))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderTable 顶牌、指定花色、待盖的 6 和牌堆数量
func (m *Model) renderTable() string {
	deck := m.engine.Deck()
	top := deck.TopCard()

	lines := []string{
		"顶牌 " + renderCard(top, true),
	}
	if s, ok := deck.SuitOverride(); ok {
		lines = append(lines, "指定花色 "+common.SuitStyle(s).Render(" "+s.String()+" "))
	}
	if six, ok := deck.SixToCover(); ok {
		lines = append(lines, common.ErrorStyle.Render(fmt.Sprintf("%s 需要盖住 %s", common.WarningIcon, six)))
	}
	lines = append(lines, common.HintStyle.Render(fmt.Sprintf("摸牌堆 %d  弃牌堆 %d", deck.DrawPileSize(), deck.DiscardPileSize())))

	return common.BoxStyle.Width(30).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func renderCard(c card.Card, playable bool) string {
	return common.CardStyle(c, playable).Render(fmt.Sprintf(" %s ", c))
}

// renderHand 手牌带序号，可出的牌高亮
func (m *Model) renderHand() string {
	hand := m.me.Hand()
	if len(hand) == 0 {
		return common.BoxStyle.Render("(无手牌)")
	}

	myTurn := m.Phase() == PhaseMyTurn
	var idx, cards strings.Builder
	for i, c := range hand {
		playable := !myTurn || m.engine.IsMoveLegal(c)
		rendered := renderCard(c, playable)
		w := lipgloss.Width(rendered) + 1
		idx.WriteString(fmt.Sprintf("%-*d", w, i+1))
		cards.WriteString(rendered + " ")
	}

	style := common.BoxStyle
	if m.engine.CurrentPlayer() == m.me && m.engine.State() != game.StateRoundEnded {
		style = common.ActiveBoxStyle
	}
	title := fmt.Sprintf("%s 我的手牌 (%d张)  分 %d", common.HumanIcon, len(hand), m.engine.Score(m.me))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, common.HintStyle.Render(idx.String()), cards.String()))
}

// renderSummary 本局结算
func (m *Model) renderSummary() string {
	s := m.summary
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s 以 %s 获胜\n", common.WinnerIcon, s.Winner.Name, s.FinishingCard)
	for _, p := range m.engine.Players() {
		fmt.Fprintf(&sb, "%-10s %+4d → %d\n", common.TruncateName(p.Name, 10), s.Delta(p), s.Score(p))
	}
	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderLeaderboard 罚分越低排名越高
func (m *Model) renderLeaderboard() string {
	var sb strings.Builder
	sb.WriteString("排行榜 (罚分)\n")
	for _, e := range m.board {
		fmt.Fprintf(&sb, "%d. %-10s %4d  胜 %d/%d\n", e.Rank, common.TruncateName(e.PlayerName, 10), e.Points, e.Wins, e.Rounds)
	}
	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m *Model) renderEvents() string {
	if len(m.events) == 0 {
		return ""
	}
	return common.HintStyle.Render(strings.Join(m.events, "\n"))
}

func (m *Model) renderPrompt() string {
	var sb strings.Builder
	switch m.Phase() {
	case PhaseMyTurn:
		if six, ok := m.engine.Deck().SixToCover(); ok {
			fmt.Fprintf(&sb, "轮到你! 出牌盖住 %s，或 d 摸到能盖为止\n", six)
		} else {
			sb.WriteString("轮到你! 输入牌号出牌，d 摸牌\n")
		}
	case PhaseConfirmDraw:
		fmt.Fprintf(&sb, "摸到 %s，能出。打出吗? (y/n)\n", *m.drawn)
	case PhaseChooseSuit:
		var opts []string
		for i, s := range card.Suits {
			opts = append(opts, fmt.Sprintf("%d %s", i+1, s))
		}
		fmt.Fprintf(&sb, "选择花色: %s\n", strings.Join(opts, "  "))
	case PhaseRoundOver:
		sb.WriteString("本局结束。n 下一局，q 退出\n")
	default:
		fmt.Fprintf(&sb, "等待 %s 出牌...\n", m.engine.CurrentPlayer().Name)
	}

	if m.err != "" {
		sb.WriteString(common.ErrorStyle.Render(m.err))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())

	return common.PromptStyle.Render(sb.String())
}

// RenderGameRules renders the rules overlay.
func RenderGameRules() string {
	var sb strings.Builder

	sb.WriteString("【游戏目标】\n")
	sb.WriteString("先出完手牌。其他玩家按剩余手牌计罚分，分低者胜\n\n")

	sb.WriteString("【出牌规则】\n")
	sb.WriteString("• 与顶牌同花色或同点数即可出\n")
	sb.WriteString("• 没有能出的牌就摸一张，能出可以直接打出\n\n")

	sb.WriteString("【特殊牌】\n")
	sb.WriteString("• 6：下家必须用 6 或同花色盖住，否则一直摸到能盖为止\n")
	sb.WriteString("• 7：下家摸 2 张\n")
	sb.WriteString("• 10：反转出牌方向\n")
	sb.WriteString("• Q：出牌者指定花色，指定花色后仍可再出 Q 改花色\n")
	sb.WriteString("• K♠ K♥：下家摸 5 张并跳过\n")
	sb.WriteString("• A：跳过下家\n\n")

	sb.WriteString("【计分】\n")
	sb.WriteString("• 6=6 7=7 8=8 10=10 J=2 Q=3 K=4 A=11，9 不计分\n")
	sb.WriteString("• 只剩 Q 时按花色计：♠ 40，其余 20\n")
	sb.WriteString("• 以 Q 结束时罚分翻倍，赢家减去该 Q 的分值\n\n")

	sb.WriteString("【按键】\n")
	sb.WriteString("• 牌号+回车：出牌  d：摸牌  y/n：是否打出摸到的牌\n")
	sb.WriteString("• 1-4：选择花色  n：下一局  h：帮助  q：退出\n")

	return common.BoxStyle.Render(sb.String())
}
