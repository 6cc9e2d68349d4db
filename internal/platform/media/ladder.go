package media

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed ladder.yaml
var defaultLadderYAML []byte

// Ladder is the set of renditions a channel emits into its MediaPackage output group.
type Ladder struct {
	OutputGroup      string           `yaml:"outputGroup"`
	TimecodeSource   string           `yaml:"timecodeSource"`
	H264             H264Settings     `yaml:"h264"`
	Video            []VideoRendition `yaml:"video"`
	VideoDescription VideoDescription `yaml:"videoDescription"`
	Audio            AudioRendition   `yaml:"audio"`
}

// H264Settings holds the codec settings shared by all video renditions.
type H264Settings struct {
	AdaptiveQuantization string  `yaml:"adaptiveQuantization"`
	AfdSignaling         string  `yaml:"afdSignaling"`
	BufFillPct           int32   `yaml:"bufFillPct"`
	ColorMetadata        string  `yaml:"colorMetadata"`
	EntropyEncoding      string  `yaml:"entropyEncoding"`
	FlickerAq            string  `yaml:"flickerAq"`
	FramerateControl     string  `yaml:"framerateControl"`
	FramerateNumerator   int32   `yaml:"framerateNumerator"`
	FramerateDenominator int32   `yaml:"framerateDenominator"`
	GopBReference        string  `yaml:"gopBReference"`
	GopClosedCadence     int32   `yaml:"gopClosedCadence"`
	GopNumBFrames        int32   `yaml:"gopNumBFrames"`
	GopSize              float64 `yaml:"gopSize"`
	GopSizeUnits         string  `yaml:"gopSizeUnits"`
	Level                string  `yaml:"level"`
	LookAheadRateControl string  `yaml:"lookAheadRateControl"`
	NumRefFrames         int32   `yaml:"numRefFrames"`
	ParControl           string  `yaml:"parControl"`
	ParNumerator         int32   `yaml:"parNumerator"`
	ParDenominator       int32   `yaml:"parDenominator"`
	RateControlMode      string  `yaml:"rateControlMode"`
	ScanType             string  `yaml:"scanType"`
	SceneChangeDetect    string  `yaml:"sceneChangeDetect"`
	SpatialAq            string  `yaml:"spatialAq"`
	SubgopLength         string  `yaml:"subgopLength"`
	Syntax               string  `yaml:"syntax"`
	TemporalAq           string  `yaml:"temporalAq"`
	TimecodeInsertion    string  `yaml:"timecodeInsertion"`
}

// VideoRendition is one H.264 rung of the ladder.
type VideoRendition struct {
	Name             string `yaml:"name"`
	Width            int32  `yaml:"width"`
	Height           int32  `yaml:"height"`
	Bitrate          int32  `yaml:"bitrate"`
	MaxBitrate       int32  `yaml:"maxBitrate"`
	BufSize          int32  `yaml:"bufSize"`
	Profile          string `yaml:"profile"`
	QvbrQualityLevel int32  `yaml:"qvbrQualityLevel"`
	Slices           int32  `yaml:"slices"`
}

// VideoDescription holds the description settings shared by all video renditions.
type VideoDescription struct {
	RespondToAfd    string `yaml:"respondToAfd"`
	ScalingBehavior string `yaml:"scalingBehavior"`
	Sharpness       int32  `yaml:"sharpness"`
}

// AudioRendition is the AAC audio rendition.
type AudioRendition struct {
	Name                string      `yaml:"name"`
	AudioTypeControl    string      `yaml:"audioTypeControl"`
	LanguageCodeControl string      `yaml:"languageCodeControl"`
	AAC                 AACSettings `yaml:"aac"`
}

// AACSettings holds the AAC codec settings.
type AACSettings struct {
	Bitrate         float64 `yaml:"bitrate"`
	CodingMode      string  `yaml:"codingMode"`
	InputType       string  `yaml:"inputType"`
	Profile         string  `yaml:"profile"`
	RateControlMode string  `yaml:"rateControlMode"`
	RawFormat       string  `yaml:"rawFormat"`
	SampleRate      float64 `yaml:"sampleRate"`
	Spec            string  `yaml:"spec"`
}

// DefaultLadder returns the embedded three-rendition H.264 + AAC ladder.
func DefaultLadder() (*Ladder, error) {
	return ParseLadder(defaultLadderYAML)
}

// ParseLadder parses and validates a ladder document.
func ParseLadder(data []byte) (*Ladder, error) {
	var l Ladder
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse encoder ladder: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that the ladder can be turned into encoder settings.
func (l *Ladder) Validate() error {
	if l.OutputGroup == "" {
		return errors.New("encoder ladder: outputGroup is required")
	}
	if len(l.Video) == 0 {
		return errors.New("encoder ladder: at least one video rendition is required")
	}
	seen := make(map[string]bool, len(l.Video)+1)
	for i, v := range l.Video {
		if v.Name == "" {
			return fmt.Errorf("encoder ladder: video[%d]: name is required", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("encoder ladder: duplicate rendition name %q", v.Name)
		}
		seen[v.Name] = true
		if v.Width <= 0 || v.Height <= 0 || v.Bitrate <= 0 {
			return fmt.Errorf("encoder ladder: video %q: width, height and bitrate must be positive", v.Name)
		}
	}
	if l.Audio.Name == "" {
		return errors.New("encoder ladder: audio name is required")
	}
	if seen[l.Audio.Name] {
		return fmt.Errorf("encoder ladder: duplicate rendition name %q", l.Audio.Name)
	}
	return nil
}
