package sound

// Cue 音效名，对应音效目录下同名的 .mp3/.wav 文件
type Cue string

const (
	CuePlay    Cue = "play"
	CueDraw    Cue = "draw"
	CueQueen   Cue = "queen"
	CuePenalty Cue = "penalty"
	CueWin     Cue = "win"
	CueLose    Cue = "lose"
)
