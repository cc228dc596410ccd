package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/series"
)

const lineInput = `{
  "series": [
    {
      "name": "sales",
      "type": "line",
      "label": {"show": true, "numericFormatter": "f0"},
      "title": {"show": true},
      "data": [
        {"name": "mon", "value": 10},
        {"name": "tue", "value": 25},
        {"name": "wed", "value": 30}
      ]
    }
  ]
}`

const pieInput = `{
  "theme": "dark",
  "series": [
    {
      "name": "share",
      "type": "pie",
      "colorByName": true,
      "label": {"show": true, "position": "inside", "formatter": "{b}: {d}%"},
      "data": [
        {"name": "a", "value": 1},
        {"name": "b", "value": 3, "children": [{"name": "b1", "values": [0, 2]}]}
      ]
    }
  ]
}`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig() Config {
	return Config{Theme: "default", Width: 300, Height: 200, Format: "json", Frames: 2, Tooltip: -1, LogLevel: "error"}
}

func resetLogger(t *testing.T) {
	t.Cleanup(func() { ggchart.SetLogger(nil) })
}

func TestDecodeInput(t *testing.T) {
	theme, ss, err := decodeInput(strings.NewReader(pieInput))
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
	require.Len(t, ss, 1)

	s := ss[0]
	assert.Equal(t, series.TypePie, s.Type)
	assert.True(t, s.UseDataNameForColor)
	require.Equal(t, 3, s.DataCount())
	assert.Equal(t, []int{2}, s.Data[1].Children)
	assert.Equal(t, 1, s.Data[2].Parent)
	assert.Equal(t, []float64{0, 2}, s.Data[2].Values)
	assert.Equal(t, "{b}: {d}%", s.Label.Formatter)
}

func TestDecodeInputErrors(t *testing.T) {
	_, _, err := decodeInput(strings.NewReader(`{"series": []}`))
	assert.ErrorIs(t, err, errNoSeries)

	_, _, err = decodeInput(strings.NewReader(`{"series": [{"type": "donut"}]}`))
	assert.ErrorIs(t, err, errUnknownType)

	_, _, err = decodeInput(strings.NewReader(`{`))
	assert.Error(t, err)

	_, _, err = decodeInput(strings.NewReader(`{"series": [{"label": {"color": "#zzz"}}]}`))
	assert.Error(t, err)
}

func TestRunJSON(t *testing.T) {
	resetLogger(t)
	cfg := testConfig()
	cfg.Tooltip = 1

	var out bytes.Buffer
	require.NoError(t, run(&out, writeInput(t, lineInput), cfg))

	var r report
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, 2, r.Frames)
	require.Len(t, r.Labels, 3)
	texts := []string{r.Labels[0].Text, r.Labels[1].Text, r.Labels[2].Text}
	assert.Equal(t, []string{"10", "25", "30"}, texts)
	assert.Equal(t, "label_0_1", r.Labels[1].Name)
	assert.Equal(t, "#c23531", r.Labels[0].Color)
	assert.True(t, r.Labels[0].Active)

	require.Len(t, r.Titles, 1)
	assert.Equal(t, "mon", r.Titles[0].Text)

	require.Len(t, r.Legend, 1)
	assert.Equal(t, "sales", r.Legend[0].Name)

	require.Len(t, r.Tooltip, 1)
	assert.Equal(t, 25.0, r.Tooltip[0].Value)
	assert.Equal(t, 65.0, r.Tooltip[0].Total)
}

func TestRunPieDepthFirst(t *testing.T) {
	resetLogger(t)
	var out bytes.Buffer
	require.NoError(t, run(&out, writeInput(t, pieInput), testConfig()))

	var r report
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	require.Len(t, r.Labels, 3)
	byName := map[string]labelReport{}
	for _, l := range r.Labels {
		byName[l.Name] = l
	}
	assert.Equal(t, 0, byName["label_0_0"].LabelIndex)
	assert.Equal(t, 1, byName["label_0_1"].LabelIndex)
	assert.Equal(t, 2, byName["label_0_2"].LabelIndex)
	assert.Equal(t, "#ffffff", byName["label_0_0"].Color, "inside labels of category-colored series are white")
	assert.Equal(t, "a: 25.0%", byName["label_0_0"].Text)

	names := make([]string, 0, len(r.Legend))
	for _, e := range r.Legend {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRunMsgpackViaFlags(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.bin")
	pngPath := filepath.Join(dir, "labels.png")

	cmd := newRootCmd(testConfig())
	cmd.SetArgs([]string{writeInput(t, lineInput), "--format", "msgpack", "-o", outPath, "--png", pngPath, "--shaping"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var r struct {
		Frames int `msgpack:"frames"`
		Labels []struct {
			Text string `msgpack:"text"`
		} `msgpack:"labels"`
	}
	require.NoError(t, msgpack.Unmarshal(data, &r))
	assert.Equal(t, 2, r.Frames)
	require.Len(t, r.Labels, 3)
	assert.Equal(t, "25", r.Labels[1].Text)

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRunErrors(t *testing.T) {
	resetLogger(t)
	var out bytes.Buffer
	assert.Error(t, run(&out, filepath.Join(t.TempDir(), "missing.json"), testConfig()))

	cfg := testConfig()
	cfg.Format = "xml"
	assert.ErrorContains(t, run(&out, writeInput(t, lineInput), cfg), "unsupported output format")

	cfg = testConfig()
	cfg.Theme = "neon"
	assert.ErrorContains(t, run(&out, writeInput(t, lineInput), cfg), "unknown theme")
}

func TestRunWritesLogFile(t *testing.T) {
	resetLogger(t)
	cfg := testConfig()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "seriesdemo.log")

	var out bytes.Buffer
	require.NoError(t, run(&out, writeInput(t, lineInput), cfg))

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "serie labels rebuilt")
	assert.Contains(t, string(data), "chart updated")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERIESDEMO_WIDTH", "1024")
	t.Setenv("SERIESDEMO_FORMAT", "MSGPACK")
	t.Setenv("SERIESDEMO_SHAPING", "true")
	t.Setenv("SERIESDEMO_FRAMES", "not-a-number")

	cfg := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "msgpack", cfg.Format)
	assert.True(t, cfg.Shaping)
	assert.Equal(t, 2, cfg.Frames)
	assert.Equal(t, -1, cfg.Tooltip)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	t.Setenv("SERIESDEMO_THEME", "")
	require.NoError(t, os.Unsetenv("SERIESDEMO_THEME"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERIESDEMO_THEME=dark\n"), 0o644))

	cfg := loadConfig(path)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("bogus").String())
}
