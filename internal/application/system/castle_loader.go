package system

import (
	"math"

	"github.com/younwookim/ballerburg/internal/domain/castle"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
)

// LoadCastles converts castle configs into castle entities, one per player.
func LoadCastles(cfgs []config.CastleConfig) []*castle.Castle {
	castles := make([]*castle.Castle, 0, len(cfgs))
	for _, cfg := range cfgs {
		castles = append(castles, LoadCastle(cfg))
	}
	return castles
}

// LoadCastle converts a CastleConfig into a Castle entity
func LoadCastle(cfg config.CastleConfig) *castle.Castle {
	towers := make([]*castle.Tower, 0, len(cfg.Towers))
	for _, tc := range cfg.Towers {
		tower := &castle.Tower{
			Position: tc.Position.Vec(),
			Height:   tc.Height,
		}
		if cc := tc.Cannon; cc != nil {
			tower.Cannon = &castle.Cannon{
				Offset:        cc.Offset.Vec(),
				Heading:       radians(cc.HeadingDeg),
				RestElevation: radians(cc.ElevationDeg),
				MuzzleSpeed:   cc.MuzzleSpeed,
			}
		}
		towers = append(towers, tower)
	}

	return castle.New(cfg.Name, cfg.Origin.Vec(), towers)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
