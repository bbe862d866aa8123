package ui

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/game-101/internal/apperrors"
	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/sound"
)

// handleKey 处理键盘输入，回车提交输入框内容
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return tea.Quit
	case tea.KeyEnter:
		value := strings.ToLower(strings.TrimSpace(m.input.Value()))
		m.input.SetValue("")
		return m.handleCommand(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// handleCommand runs one submitted command for the current phase.
func (m *Model) handleCommand(cmd string) tea.Cmd {
	switch cmd {
	case "":
		return nil
	case "q":
		m.quitting = true
		return tea.Quit
	case "h":
		m.showHelp = !m.showHelp
		return nil
	}

	switch m.Phase() {
	case PhaseRoundOver:
		if cmd == "n" {
			return m.nextRound()
		}
		m.err = "输入 n 开始下一局，q 退出"
	case PhaseChooseSuit:
		return m.chooseSuit(cmd)
	case PhaseConfirmDraw:
		return m.confirmDrawn(cmd)
	case PhaseMyTurn:
		if cmd == "d" {
			return m.draw()
		}
		return m.playIndex(cmd)
	default:
		m.err = "还没轮到你"
	}
	return nil
}

// playIndex 按手牌序号出牌，从 1 开始
func (m *Model) playIndex(cmd string) tea.Cmd {
	hand := m.me.Hand()
	n, err := strconv.Atoi(cmd)
	if err != nil || n < 1 || n > len(hand) {
		m.err = "请输入 1-" + strconv.Itoa(len(hand)) + " 之间的牌号，或 d 摸牌"
		return nil
	}
	return m.play(hand[n-1])
}

func (m *Model) play(c card.Card) tea.Cmd {
	summary, err := m.engine.PlayTurn(c)
	if err != nil {
		return m.fail(err)
	}
	m.drawn = nil
	m.announcePlay(m.me, c)
	return m.afterMove(summary)
}

// draw 摸牌。有 6 要盖时一直摸到能盖为止并自动打出
func (m *Model) draw() tea.Cmd {
	if six, ok := m.engine.Deck().SixToCover(); ok {
		drawn, summary, err := m.engine.CoverSix()
		if len(drawn) > 0 {
			m.sound.Play(sound.CueDraw)
			m.addEvent("为盖住 %s 摸了 %d 张", six, len(drawn))
		}
		if err != nil {
			return m.fail(err)
		}
		m.announcePlay(m.me, drawn[len(drawn)-1])
		return m.afterMove(summary)
	}

	c, err := m.engine.DrawForCurrentPlayer()
	if err != nil {
		return m.fail(err)
	}
	m.sound.Play(sound.CueDraw)
	m.addEvent("你摸到 %s", c)
	m.err = ""

	if m.engine.IsMoveLegal(c) {
		m.drawn = &c
		return nil
	}
	return m.pass()
}

func (m *Model) confirmDrawn(cmd string) tea.Cmd {
	switch cmd {
	case "y":
		return m.play(*m.drawn)
	case "n":
		return m.pass()
	}
	m.err = "输入 y 打出摸到的牌，n 跳过"
	return nil
}

func (m *Model) pass() tea.Cmd {
	m.drawn = nil
	if err := m.engine.PassTurnToTheNextPlayer(); err != nil {
		return m.fail(err)
	}
	m.addEvent("%s 过", m.me.Name)
	return m.afterMove(nil)
}

// chooseSuit 1-4 对应 ♣ ♦ ♥ ♠
func (m *Model) chooseSuit(cmd string) tea.Cmd {
	n, err := strconv.Atoi(cmd)
	if err != nil || n < 1 || n > len(card.Suits) {
		m.err = "请输入 1-4 选择花色"
		return nil
	}

	s := card.Suits[n-1]
	if err := m.engine.SetCurrentSuitOverride(s); err != nil {
		return m.fail(err)
	}
	m.addEvent("%s 指定花色 %s", m.me.Name, s)
	if err := m.engine.PassTurnToTheNextPlayer(); err != nil {
		return m.fail(err)
	}
	return m.afterMove(nil)
}

func (m *Model) nextRound() tea.Cmd {
	if err := m.engine.StartNewRound(); err != nil {
		return m.fail(err)
	}
	m.summary = nil
	m.drawn = nil
	m.err = ""
	m.events = nil
	m.addEvent("第 %d 局开始", m.engine.Round())
	return m.scheduleBot()
}

// describeError 把引擎错误翻译成提示
func describeError(err error) string {
	var gameErr *apperrors.GameError
	if !errors.As(err, &gameErr) {
		return err.Error()
	}

	switch gameErr.Code {
	case apperrors.ErrCodeIllegalMove:
		return "这张牌现在不能出"
	case apperrors.ErrCodeCardNotInHand:
		return "手里没有这张牌"
	case apperrors.ErrCodeMustCoverSix:
		return "必须先盖住 6，输入 d 摸牌"
	case apperrors.ErrCodeAwaitingSuitChoice:
		return "请先选择花色"
	case apperrors.ErrCodePilesExhausted:
		return "牌堆已摸空，本局作废。n 下一局，q 退出"
	default:
		return gameErr.Message
	}
}
