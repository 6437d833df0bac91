package storage

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aspyra/jobboard-api/config"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestOpenMemory(t *testing.T) {
	repos, err := Open(context.Background(), &config.Config{StoreDriver: DriverMemory}, quietLogger())
	require.NoError(t, err)
	defer repos.Close()

	assert.NotNil(t, repos.Users)
	assert.NotNil(t, repos.Jobs)
	assert.NotNil(t, repos.Applications)
	assert.NotNil(t, repos.Companies)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StoreDriver: "sqlite"}, quietLogger())
	assert.ErrorContains(t, err, "sqlite")
}
