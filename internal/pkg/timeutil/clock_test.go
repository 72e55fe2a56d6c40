package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("07:12")
	require.NoError(t, err)
	assert.Equal(t, 7*60+12, c.Minutes())
	assert.Equal(t, "07:12", c.String())

	for _, s := range []string{"25:00", "07:60", "7h12", ""} {
		_, err := ParseClock(s)
		assert.Error(t, err, "ParseClock(%q)", s)
	}
}

func TestSub(t *testing.T) {
	exit := MustClock("17:50")
	entry := MustClock("07:05")
	assert.Equal(t, 645, exit.Sub(entry))
	assert.Equal(t, -645, entry.Sub(exit))
}

func TestJSONRoundTrip(t *testing.T) {
	c := MustClock("17:00")

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"17:00"`, string(data))

	var back ClockTime
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}

func TestScanFromTime(t *testing.T) {
	var c ClockTime
	require.NoError(t, c.Scan(time.Date(2026, 6, 1, 7, 12, 0, 0, time.UTC)))
	assert.Equal(t, MustClock("07:12"), c)
}

func TestScanFromString(t *testing.T) {
	var c ClockTime
	require.NoError(t, c.Scan("17:00:00"))
	assert.Equal(t, MustClock("17:00"), c)

	assert.Error(t, c.Scan(nil))
	assert.Error(t, c.Scan(42))
}

func TestValueFormatsAsTimeColumn(t *testing.T) {
	v, err := MustClock("07:12").Value()
	require.NoError(t, err)
	assert.Equal(t, "07:12:00", v)
}
