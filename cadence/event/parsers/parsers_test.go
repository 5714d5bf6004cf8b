package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/evolens/cadence/cadence/event"
	"github.com/evolens/cadence/cadence/event/monitor"
	"github.com/evolens/cadence/cadence/presenter/table"
	"github.com/evolens/cadence/cadence/result"
)

func assertBadPayload(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var payloadErr *ErrBadPayload
	assert.ErrorAs(t, err, &payloadErr)
}

func TestParseAnalysisStarted(t *testing.T) {
	mon, err := ParseAnalysisStarted(partybus.Event{
		Type:  event.AnalysisStarted,
		Value: monitor.Analysis{},
	})
	require.NoError(t, err)
	assert.NotNil(t, mon)

	_, err = ParseAnalysisStarted(partybus.Event{Type: event.AnalysisFinished})
	assertBadPayload(t, err)

	_, err = ParseAnalysisStarted(partybus.Event{Type: event.AnalysisStarted, Value: "nope"})
	assertBadPayload(t, err)
}

func TestParseAnalysisFinished(t *testing.T) {
	pres, err := ParseAnalysisFinished(partybus.Event{
		Type:  event.AnalysisFinished,
		Value: table.NewPresenter(result.Result{}),
	})
	require.NoError(t, err)
	assert.NotNil(t, pres)

	_, err = ParseAnalysisFinished(partybus.Event{Type: event.AnalysisFinished, Value: 42})
	assertBadPayload(t, err)
}

func TestParseNonRootCommandFinished(t *testing.T) {
	msg, err := ParseNonRootCommandFinished(partybus.Event{
		Type:  event.NonRootCommandFinished,
		Value: "done",
	})
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "done", *msg)

	_, err = ParseNonRootCommandFinished(partybus.Event{Type: event.NonRootCommandFinished, Value: 42})
	assertBadPayload(t, err)
}

func TestParseAppUpdateAvailable(t *testing.T) {
	newVersion, err := ParseAppUpdateAvailable(partybus.Event{
		Type:  event.AppUpdateAvailable,
		Value: "1.2.3",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", newVersion)

	_, err = ParseAppUpdateAvailable(partybus.Event{Type: event.AnalysisStarted})
	assertBadPayload(t, err)
}
