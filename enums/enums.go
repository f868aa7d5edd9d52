// Package enums defines the enumerations used by the flagbind command.
//
// String, XxxValues and XxxString are generated by enumer, so the types can
// be lifted with flagmeta.EnumOf and used as go-flags choices.
package enums

// LogFormat selects the log output format.
//
//go:generate go tool enumer -type=LogFormat -trimprefix=LogFormat -transform=snake_upper
type LogFormat int

const (
	LogFormatText LogFormat = iota
	LogFormatJSON
	LogFormatZap
)

// QuestMode is the game's quest progression mode.
//
//go:generate go tool enumer -type=QuestMode -trimprefix=QuestMode -transform=snake_upper
type QuestMode int

const (
	QuestModeStory QuestMode = iota
	QuestModeEndless
)

// Difficulty is the game difficulty.
//
//go:generate go tool enumer -type=Difficulty -trimprefix=Difficulty -transform=snake_upper
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)
