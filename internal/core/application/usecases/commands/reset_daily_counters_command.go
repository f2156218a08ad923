package commands

import (
	"errors"

	"pocketmart/internal/pkg/guard"
)

var ErrResetDailyCountersCommandIsNotConstructed = errors.New(
	"ResetDailyCountersCommand must be created via NewResetDailyCountersCommand constructor",
)

// ResetDailyCountersCommand triggers the daily reset of every delivery
// person's order_count_today. It is a parameterless command issued by the
// midnight cron job.
type ResetDailyCountersCommand struct {
	guard guard.ConstructorGuard
}

// NewResetDailyCountersCommand creates a daily-reset command.
func NewResetDailyCountersCommand() ResetDailyCountersCommand {
	return ResetDailyCountersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ResetDailyCountersCommand) Validate() error {
	return c.guard.Validate(ErrResetDailyCountersCommandIsNotConstructed)
}
