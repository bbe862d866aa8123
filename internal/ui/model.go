// Package ui is the terminal client: one human seat against bots on a local engine.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/game"
	"github.com/palemoky/game-101/internal/logger"
	"github.com/palemoky/game-101/internal/sound"
	"github.com/palemoky/game-101/internal/storage"
	"github.com/palemoky/game-101/internal/ui/common"
)

const (
	maxEvents        = 6
	leaderboardLimit = 5
	storeTimeout     = 3 * time.Second
)

// Phase 界面阶段，由引擎状态推导
type Phase int

const (
	PhaseWaiting     Phase = iota // 等待其他玩家
	PhaseMyTurn                   // 轮到我出牌
	PhaseConfirmDraw              // 摸到能出的牌，确认是否打出
	PhaseChooseSuit               // 出了 Q，选择花色
	PhaseRoundOver                // 本局结束
)

// CuePlayer 播放音效
type CuePlayer interface {
	Play(cue sound.Cue)
}

type noSound struct{}

func (noSound) Play(sound.Cue) {}

// botTurnMsg 触发一次机器人行动
type botTurnMsg struct{}

// leaderboardMsg 排行榜刷新结果
type leaderboardMsg struct {
	entries []*storage.LeaderboardEntry
	err     error
}

// Options 可选依赖
type Options struct {
	BotDelay time.Duration
	Sound    CuePlayer        // nil 则静音
	Recorder storage.Recorder // nil 则不记录成绩
}

// Model 本地对局的 model
type Model struct {
	engine *game.Engine
	me     *game.Player // 第一个真人玩家，全是机器人时为 nil

	botDelay time.Duration
	sound    CuePlayer
	recorder storage.Recorder

	drawn   *card.Card // 摸到的可出的牌，等待 y/n
	summary *game.RoundSummary
	board   []*storage.LeaderboardEntry

	events   []string
	err      string
	showHelp bool
	quitting bool
	input    textinput.Model
	width    int
	height   int
}

// New builds a model over an engine whose round has already been started.
func New(engine *game.Engine, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "牌号 / d 摸牌 / h 帮助"
	ti.CharLimit = 4
	ti.Width = 24
	ti.Focus()

	m := &Model{
		engine:   engine,
		botDelay: opts.BotDelay,
		sound:    opts.Sound,
		recorder: opts.Recorder,
		input:    ti,
		width:    80,
		height:   24,
	}
	if m.sound == nil {
		m.sound = noSound{}
	}
	for _, p := range engine.Players() {
		if !p.IsBot() {
			m.me = p
			break
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleBot())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case botTurnMsg:
		return m, m.playBot()

	case leaderboardMsg:
		if msg.err != nil {
			logger.LogError("leaderboard: %v", msg.err)
			m.err = fmt.Sprintf("排行榜不可用: %v", msg.err)
			return m, nil
		}
		m.board = msg.entries
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Phase 当前界面阶段
func (m *Model) Phase() Phase {
	switch m.engine.State() {
	case game.StateRoundEnded:
		return PhaseRoundOver
	case game.StateAwaitingSuitChoice:
		if m.me != nil && m.engine.PlayerToChooseSuit() == m.me {
			return PhaseChooseSuit
		}
		return PhaseWaiting
	}
	if m.me == nil || m.engine.CurrentPlayer() != m.me {
		return PhaseWaiting
	}
	if m.drawn != nil {
		return PhaseConfirmDraw
	}
	return PhaseMyTurn
}

// Events 最近的对局记录，旧的在前
func (m *Model) Events() []string {
	return m.events
}

// Err 最近一次提示的错误
func (m *Model) Err() string {
	return m.err
}

// Summary 最近一局的结算
func (m *Model) Summary() *game.RoundSummary {
	return m.summary
}

func (m *Model) addEvent(format string, args ...any) {
	m.events = append(m.events, fmt.Sprintf(format, args...))
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

// scheduleBot 当前轮到机器人时延迟触发一次行动
func (m *Model) scheduleBot() tea.Cmd {
	if m.engine.State() == game.StateRoundEnded || !m.engine.CurrentPlayer().IsBot() {
		return nil
	}
	return tea.Tick(m.botDelay, func(time.Time) tea.Msg {
		return botTurnMsg{}
	})
}

func (m *Model) playBot() tea.Cmd {
	p := m.engine.CurrentPlayer()
	if m.engine.State() == game.StateRoundEnded || !p.IsBot() {
		return nil
	}

	deck := m.engine.Deck()
	beforeTop, beforeHand := deck.TopCard(), p.HandSize()

	summary, err := m.engine.PlayBotTurn()
	if err != nil {
		return m.fail(err)
	}

	// 每张牌只有一张，顶牌变了就是出过牌
	played := deck.TopCard() != beforeTop
	drew := p.HandSize() - beforeHand
	if played {
		drew++
	}
	if drew > 0 {
		m.addEvent("%s 摸了 %d 张", p.Name, drew)
	}
	if played {
		m.announcePlay(p, deck.TopCard())
	} else {
		m.addEvent("%s 过", p.Name)
	}

	return m.afterMove(summary)
}

// announcePlay 记录出牌及其效果
func (m *Model) announcePlay(p *game.Player, c card.Card) {
	m.sound.Play(sound.CuePlay)
	m.addEvent("%s 出了 %s", p.Name, c)

	switch c.Effect() {
	case card.EffectChooseSuit:
		m.sound.Play(sound.CueQueen)
		if s, ok := m.engine.Deck().SuitOverride(); ok {
			m.addEvent("%s 指定花色 %s", p.Name, s)
		}
	case card.EffectDrawTwo, card.EffectDrawFive:
		m.sound.Play(sound.CuePenalty)
	case card.EffectReverse:
		m.addEvent("出牌方向反转")
	}
}

// afterMove handles the end of a round or hands the turn to the next bot.
func (m *Model) afterMove(summary *game.RoundSummary) tea.Cmd {
	m.err = ""
	if summary == nil {
		return m.scheduleBot()
	}

	m.summary = summary
	m.drawn = nil
	m.addEvent("%s %s 以 %s 结束本局", common.WinnerIcon, summary.Winner.Name, summary.FinishingCard)
	if m.me != nil && summary.Winner == m.me {
		m.sound.Play(sound.CueWin)
	} else {
		m.sound.Play(sound.CueLose)
	}
	return m.recordRound(summary)
}

// recordRound 记录成绩并刷新排行榜
func (m *Model) recordRound(summary *game.RoundSummary) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	recorder := m.recorder
	players := m.engine.Players()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := recorder.RecordRound(ctx, summary, players); err != nil {
			return leaderboardMsg{err: err}
		}
		entries, err := recorder.GetLeaderboard(ctx, leaderboardLimit)
		return leaderboardMsg{entries: entries, err: err}
	}
}

func (m *Model) fail(err error) tea.Cmd {
	logger.LogError("round %d: %v", m.engine.Round(), err)
	m.err = describeError(err)
	return nil
}
