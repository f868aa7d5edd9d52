package main

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/apstndb/flagbind/binding"
	"github.com/apstndb/flagbind/enums"
	"github.com/apstndb/flagbind/flagmeta"
)

var (
	questModeEnum  = flagmeta.EnumOf("QuestMode", enums.QuestModeValues()...)
	difficultyEnum = flagmeta.EnumOf("Difficulty", enums.DifficultyValues()...)

	questListType = flagmeta.CustomType("quest_list")
)

// gameSettings declares its bindings explicitly.
type gameSettings struct {
	SpawnVerticalOffset int
	QuestMode           enums.QuestMode
	Difficulty          enums.Difficulty
	HiddenQuests        []string
	TickInterval        time.Duration
	PvPEnabled          bool
}

func (s *gameSettings) FlagBindings() []binding.Declaration {
	return []binding.Declaration{
		{
			Property: "SpawnVerticalOffset",
			Accessor: binding.IntField(&s.SpawnVerticalOffset),
			Metadata: flagmeta.New("spawn_z_offset", flagmeta.Int(0)).
				WithDescription("Vertical offset applied to player spawn points"),
		},
		{
			Property: "QuestMode",
			Accessor: binding.EnumField(&s.QuestMode, questModeEnum),
			Metadata: flagmeta.New("quest_mode", questModeEnum.MustMember(enums.QuestModeStory.String())).
				WithDescription("Quest progression mode"),
		},
		{
			Property: "Difficulty",
			Accessor: binding.EnumField(&s.Difficulty, difficultyEnum),
			Metadata: flagmeta.New("difficulty", difficultyEnum.MustMember(enums.DifficultyNormal.String())),
		},
		{
			Property: "HiddenQuests",
			Accessor: binding.CustomField(&s.HiddenQuests, questListType),
			Metadata: flagmeta.New("hidden_quests_csv", flagmeta.NewCustom(questListType, []string{})).
				WithDescription("Comma-separated quest IDs hidden from the quest log"),
		},
		{
			Property: "TickInterval",
			Accessor: binding.DurationField(&s.TickInterval),
			Metadata: flagmeta.New("tick_interval", flagmeta.Duration(50*time.Millisecond)),
		},
		{
			Property: "PvPEnabled",
			Accessor: binding.BoolField(&s.PvPEnabled),
			Metadata: flagmeta.New("pvp_enabled", flagmeta.Bool(false)).
				WithDescription("Allow player versus player combat"),
		},
	}
}

// serverSettings declares its bindings with struct tags.
type serverSettings struct {
	Motd       string        `flag:"name=motd,default='Welcome, adventurer!',desc='Message of the day'"`
	MaxPlayers uint8         `flag:"name=max_players,default=16"`
	IdleKick   time.Duration `flag:"name=idle_kick,default=10m,desc='Disconnect idle players after this long'"`
}

type demo struct {
	engine *binding.Engine
	game   *gameSettings
	server *serverSettings
}

// newDemo registers the demo containers with a new engine.
func newDemo(opts ...binding.Option) (*demo, error) {
	d := &demo{
		engine: binding.NewEngine(opts...),
		game:   &gameSettings{},
		server: &serverSettings{},
	}

	// Quest lists have no type-level parser, so the name-level one must be
	// installed before registration.
	d.engine.SetParserForName("hidden_quests_csv", binding.ListParser(questListType, ","))
	d.engine.SetParserForName("tick_interval", binding.DurationRangeParser(time.Millisecond, time.Minute))
	d.engine.SetParserForName("max_players", binding.IntRangeParser(1, 64))
	d.engine.SetParserForName("motd", binding.StringLengthParser(0, 120))

	if err := d.engine.Register(d.game); err != nil {
		return nil, fmt.Errorf("failed to register game settings: %w", err)
	}

	server, err := binding.FromStruct(d.server)
	if err != nil {
		return nil, fmt.Errorf("failed to read server settings: %w", err)
	}
	if err := d.engine.Register(server); err != nil {
		return nil, fmt.Errorf("failed to register server settings: %w", err)
	}

	// Start every property from its declared default.
	defaults := lo.SliceToMap(d.engine.Names(), func(name string) (string, *string) {
		return name, nil
	})
	if err := d.engine.ApplyAll(defaults); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	return d, nil
}
