package jobs_test

import (
	"errors"
	"testing"

	"vizoshop/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j *recordingJob) Name() string { return j.name }

func (j *recordingJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.events = append(*j.events, "start "+j.name)
	return nil
}

func (j *recordingJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestJobManager_StartAndStopInOrder(t *testing.T) {
	var events []string
	jm := jobs.NewJobManager(
		&recordingJob{name: "a", events: &events},
		nil,
		&recordingJob{name: "b", events: &events},
	)
	assert.Equal(t, 2, jm.Len())

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
}

func TestJobManager_FailedStartStopsStartedJobs(t *testing.T) {
	var events []string
	boom := errors.New("bad schedule")
	jm := jobs.NewJobManager(
		&recordingJob{name: "a", events: &events},
		&recordingJob{name: "b", events: &events, startErr: boom},
		&recordingJob{name: "c", events: &events},
	)

	err := jm.StartAll()

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to start b")
	assert.Equal(t, []string{"start a", "stop a"}, events)
}

func TestJobManager_Empty(t *testing.T) {
	jm := jobs.NewJobManager()

	require.NoError(t, jm.StartAll())
	jm.StopAll()
	assert.Zero(t, jm.Len())
}
