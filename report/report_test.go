package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/evolve"
	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResult_AndWrite(t *testing.T) {
	res, err := evolve.Run(cities.Sample(), 10, 100, evolve.DefaultOptions())
	require.NoError(t, err)

	sys := &report.SysInfo{Platform: "test", CPU: "none", RAM: "0 GB"}
	rep := report.FromResult(res, sys)
	assert.Equal(t, res.Best.Route(), rep.Route)
	assert.Equal(t, res.Best.Length(), rep.Distance)
	assert.Equal(t, res.Best.Fitness(), rep.Fitness)
	require.NotNil(t, rep.Summary)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep))

	// The route/distance/fitness contract decodes with plain maps.
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for _, key := range []string{"route", "distance", "fitness", "system", "summary"} {
		assert.Contains(t, doc, key)
	}

	var route []geom.Point
	require.NoError(t, json.Unmarshal(doc["route"], &route))
	assert.Len(t, route, 10)
}

func TestFromResult_WithoutHistoryOrSystem(t *testing.T) {
	opts := evolve.DefaultOptions()
	opts.KeepHistory = false
	res, err := evolve.Run(cities.Sample(), 4, 5, opts)
	require.NoError(t, err)

	rep := report.FromResult(res, nil)
	assert.Nil(t, rep.Summary)
	assert.Nil(t, rep.System)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep))
	assert.NotContains(t, buf.String(), `"system"`)
}

func TestCollectSysInfo(t *testing.T) {
	info, err := report.CollectSysInfo()
	if err != nil {
		t.Skipf("system info unavailable here: %v", err)
	}
	assert.True(t, strings.HasSuffix(info.RAM, " GB"))
}
