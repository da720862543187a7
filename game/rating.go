package game

import (
	"fmt"
	"os"

	"github.com/ur-fault/checkengine/meta"
	"gopkg.in/yaml.v3"
)

// PieceRates is the material value of each piece kind.
type PieceRates struct {
	Pawn  float64 `yaml:"pawn"`
	Queen float64 `yaml:"queen"`
}

func (r PieceRates) Rate(piece Piece) float64 {
	if piece == Queen {
		return r.Queen
	}
	return r.Pawn
}

// PositionRates values where a piece stands.
type PositionRates struct {
	// The closer to the opponent's side, the higher the rate.
	// The home row is worth Pawn, the next one 2×Pawn and so on.
	Pawn float64 `yaml:"pawn"`

	// The closer to the center, the higher the rate.
	// Each axis contributes Queen at the edge up to 4×Queen in the middle.
	Queen float64 `yaml:"queen"`
}

func (r PositionRates) Rate(c Coord, color Color, piece Piece) float64 {
	if piece == Pawn {
		advance := c.Row + 1
		if color == Black {
			advance = Size - c.Row
		}
		return float64(advance) * r.Pawn
	}
	return float64(centered(c.Row)+centered(c.Col)) * r.Queen
}

func centered(v int) int {
	d := 2*v - (Size - 1)
	if d < 0 {
		d = -d
	}
	return 5 - (d+1)/2
}

// KillRates values a capture threat by the kind of piece it would take.
type KillRates struct {
	Pawn  float64 `yaml:"pawn"`
	Queen float64 `yaml:"queen"`
}

func (r KillRates) Rate(piece Piece) float64 {
	if piece == Queen {
		return r.Queen
	}
	return r.Pawn
}

func (r KillRates) enabled() bool {
	return r.Pawn != 0 || r.Queen != 0
}

// RateConfig holds the evaluation weights and search limits.
type RateConfig struct {
	Pieces   PieceRates    `yaml:"pieces"`
	Position PositionRates `yaml:"position"`
	Kills    KillRates     `yaml:"kills"`
	Win      float64       `yaml:"win"`      // score of a decided game
	MaxDepth int           `yaml:"max_depth"` // in full turns
}

func DefaultRateConfig() RateConfig {
	return RateConfig{
		Pieces:   PieceRates{Pawn: 1, Queen: 3},
		Position: PositionRates{Pawn: 0, Queen: 0},
		Kills:    KillRates{Pawn: 10, Queen: 30},
		Win:      1000,
		MaxDepth: meta.DefaultDepth,
	}
}

func (rc RateConfig) Validate() error {
	if rc.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d: %w", rc.MaxDepth, ErrInvalidConfig)
	}
	if rc.Win <= 0 {
		return fmt.Errorf("win must be positive, got %g: %w", rc.Win, ErrInvalidConfig)
	}
	return nil
}

// LoadRateConfig reads a YAML rate configuration. Keys missing from the file
// keep their default values.
func LoadRateConfig(path string) (RateConfig, error) {
	rc := DefaultRateConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return rc, fmt.Errorf("failed to read rate config: %w", err)
	}
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rc, fmt.Errorf("failed to parse rate config %s: %w", path, err)
	}
	if err := rc.Validate(); err != nil {
		return rc, err
	}
	return rc, nil
}
