package alignment

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestPageMatchesOS(t *testing.T) {
	assert.Equal(t, os.Getpagesize(), Page{}.Size())
}

func TestPageConcurrentFirstAccess(t *testing.T) {
	// The memoized value must be consistent under concurrent access,
	// including a concurrent first access after process start.
	var g errgroup.Group

	for range 32 {
		g.Go(func() error {
			assert.Equal(t, os.Getpagesize(), Page{}.Size())
			return nil
		})
	}

	assert.NoError(t, g.Wait())
}
