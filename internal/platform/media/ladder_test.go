package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLadder(t *testing.T) {
	l, err := DefaultLadder()
	require.NoError(t, err)

	assert.Equal(t, "emp_output", l.OutputGroup)
	assert.Equal(t, "EMBEDDED", l.TimecodeSource)
	require.Len(t, l.Video, 3)

	tests := []struct {
		name                         string
		width, height                int32
		bitrate, maxBitrate, bufSize int32
		profile                      string
		qvbr, slices                 int32
	}{
		{"video_4mpbs", 1920, 1080, 4000000, 6000000, 8000000, "HIGH", 9, 4},
		{"video_2mpbs", 1280, 720, 2000000, 3000000, 4000000, "HIGH", 9, 2},
		{"video_1_2mpbs", 1024, 576, 1200000, 1800000, 2400000, "MAIN", 7, 1},
	}
	for i, tt := range tests {
		v := l.Video[i]
		assert.Equal(t, tt.name, v.Name)
		assert.Equal(t, tt.width, v.Width)
		assert.Equal(t, tt.height, v.Height)
		assert.Equal(t, tt.bitrate, v.Bitrate)
		assert.Equal(t, tt.maxBitrate, v.MaxBitrate)
		assert.Equal(t, tt.bufSize, v.BufSize)
		assert.Equal(t, tt.profile, v.Profile)
		assert.Equal(t, tt.qvbr, v.QvbrQualityLevel)
		assert.Equal(t, tt.slices, v.Slices)
	}

	assert.Equal(t, "audio", l.Audio.Name)
	assert.Equal(t, 192000.0, l.Audio.AAC.Bitrate)
	assert.Equal(t, 48000.0, l.Audio.AAC.SampleRate)
	assert.Equal(t, "LC", l.Audio.AAC.Profile)
	assert.Equal(t, "CBR", l.Audio.AAC.RateControlMode)
	assert.Equal(t, "CODING_MODE_2_0", l.Audio.AAC.CodingMode)
}

func TestParseLadder_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not yaml", "video: [", "failed to parse"},
		{"no output group", "video: [{name: a, width: 1, height: 1, bitrate: 1}]\naudio: {name: audio}", "outputGroup"},
		{"no video", "outputGroup: g\naudio: {name: audio}", "at least one video"},
		{"unnamed video", "outputGroup: g\nvideo: [{width: 1, height: 1, bitrate: 1}]\naudio: {name: audio}", "name is required"},
		{"zero size", "outputGroup: g\nvideo: [{name: a, width: 0, height: 1, bitrate: 1}]\naudio: {name: audio}", "must be positive"},
		{"duplicate video", "outputGroup: g\nvideo: [{name: a, width: 1, height: 1, bitrate: 1}, {name: a, width: 1, height: 1, bitrate: 1}]\naudio: {name: audio}", "duplicate"},
		{"audio clashes", "outputGroup: g\nvideo: [{name: a, width: 1, height: 1, bitrate: 1}]\naudio: {name: a}", "duplicate"},
		{"no audio", "outputGroup: g\nvideo: [{name: a, width: 1, height: 1, bitrate: 1}]", "audio name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLadder([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
