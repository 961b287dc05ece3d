package model

import (
	"fmt"

	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// CommitPeriod is the window for commit counting. Only whole years are supported.
type CommitPeriod struct {
	Year  int
	Month int
	Day   int
}

// IsSet returns true if any granularity was requested.
func (x CommitPeriod) IsSet() bool {
	return x.Year != 0 || x.Month != 0 || x.Day != 0
}

func (x CommitPeriod) Validate() error {
	if x.Month != 0 {
		return goerr.Wrap(types.ErrUnsupportedGranularity, "commit count by month is not implemented", goerr.V("month", x.Month))
	}
	if x.Day != 0 {
		return goerr.Wrap(types.ErrUnsupportedGranularity, "commit count by day is not implemented", goerr.V("day", x.Day))
	}
	if x.Year <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "year is required for commit count", goerr.V("year", x.Year))
	}
	return nil
}

// Range returns since and until in a format accepted by git --since/--until.
func (x CommitPeriod) Range() (since, until string, err error) {
	if err := x.Validate(); err != nil {
		return "", "", err
	}
	since = fmt.Sprintf("%04d-01-01T00:00:00", x.Year)
	until = fmt.Sprintf("%04d-12-31T23:59:59", x.Year)
	return since, until, nil
}
