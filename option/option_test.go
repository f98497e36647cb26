package option

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacity(t *testing.T) {
	assert := assert.New(t)

	var nilOpt *Option
	assert.Equal(DefaultInitialCapacity, nilOpt.Capacity())
	assert.Equal(DefaultInitialCapacity, DefaultOption.Capacity())
	assert.Equal(DefaultInitialCapacity, (&Option{InitialCapacity: 0}).Capacity())
	assert.Equal(DefaultInitialCapacity, (&Option{InitialCapacity: -3}).Capacity())
	assert.Equal(1, (&Option{InitialCapacity: 1}).Capacity())
	assert.Equal(64, (&Option{InitialCapacity: 64}).Capacity())
}

func TestGetLogger(t *testing.T) {
	assert := assert.New(t)

	var nilOpt *Option
	assert.Equal(slog.Default(), nilOpt.GetLogger())
	assert.Equal(slog.Default(), DefaultOption.GetLogger())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(logger, (&Option{Logger: logger}).GetLogger())
}
