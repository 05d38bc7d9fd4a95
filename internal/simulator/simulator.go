package simulator

import (
	"context"

	"github.com/vk/ramsesgo/internal/config"
)

// Simulator executes one case to completion.
type Simulator interface {
	Exec(ctx context.Context, c *config.Case) error
}
