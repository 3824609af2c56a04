package meta

import "time"

// GO_ROUTINES defines the number of games played at once in experiments.
const GO_ROUTINES = 8

// NUM_GAMES defines the number of games per matchup in experiments.
const NUM_GAMES = 10

// MAX_TURNS caps the length of a game played by the engine.
const MAX_TURNS = 300

// QUICK_DEPTH is the search depth of the shallow fixed-depth player.
const QUICK_DEPTH = 4

// ALPHA_BETA_DEPTH is the search depth of the deeper fixed-depth player.
const ALPHA_BETA_DEPTH = 8

// MIN_DEPTH is the first depth searched by the time-bounded driver.
const MIN_DEPTH = 1

// MAX_DEPTH caps iterative deepening. A 6x7 board holds 42 pieces.
const MAX_DEPTH = 42

// TIME_BUDGET is the wall-clock budget of the time-bounded players.
const TIME_BUDGET = 5 * time.Second

// RANDOM_SEED seeds the random player.
const RANDOM_SEED = 42
