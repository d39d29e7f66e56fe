package game

// GameConfig holds the parameters the engine announces before the first turn.
// A GameConfig is only ever built with all nine fields present.
type GameConfig struct {
	LoadTime      int32 `yaml:"loadtime"`
	TurnTime      int32 `yaml:"turntime"`
	Rows          int32 `yaml:"rows"`
	Cols          int32 `yaml:"cols"`
	Turns         int32 `yaml:"turns"`
	ViewRadius2   int32 `yaml:"viewradius2"`
	AttackRadius2 int32 `yaml:"attackradius2"`
	// SpawnRadius2 is the squared radius within which food is gathered.
	SpawnRadius2 int32 `yaml:"spawnradius2"`
	PlayerSeed   int64 `yaml:"player_seed"`
}
