package media

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	mltypes "github.com/aws/aws-sdk-go-v2/service/medialive/types"
)

// EncoderSettings builds the MediaLive encoder settings for the ladder.
// Every rendition becomes one output of a single MediaPackage output group
// bound to destinationID. The audio rendition reads audioSelectorName.
func (l *Ladder) EncoderSettings(audioSelectorName, destinationID string) *mltypes.EncoderSettings {
	settings := &mltypes.EncoderSettings{
		AudioDescriptions: []mltypes.AudioDescription{l.audioDescription(audioSelectorName)},
		TimecodeConfig: &mltypes.TimecodeConfig{
			Source: mltypes.TimecodeConfigSource(l.TimecodeSource),
		},
	}

	outputs := make([]mltypes.Output, 0, len(l.Video)+1)
	for _, v := range l.Video {
		settings.VideoDescriptions = append(settings.VideoDescriptions, l.videoDescription(v))
		outputs = append(outputs, mltypes.Output{
			OutputName:              aws.String(v.Name),
			VideoDescriptionName:    aws.String(v.Name),
			AudioDescriptionNames:   []string{},
			CaptionDescriptionNames: []string{},
			OutputSettings:          mediaPackageOutput(),
		})
	}
	outputs = append(outputs, mltypes.Output{
		OutputName:              aws.String(l.Audio.Name),
		AudioDescriptionNames:   []string{l.Audio.Name},
		CaptionDescriptionNames: []string{},
		OutputSettings:          mediaPackageOutput(),
	})

	settings.OutputGroups = []mltypes.OutputGroup{{
		Name: aws.String(l.OutputGroup),
		OutputGroupSettings: &mltypes.OutputGroupSettings{
			MediaPackageGroupSettings: &mltypes.MediaPackageGroupSettings{
				Destination: &mltypes.OutputLocationRef{DestinationRefId: aws.String(destinationID)},
			},
		},
		Outputs: outputs,
	}}
	return settings
}

func mediaPackageOutput() *mltypes.OutputSettings {
	return &mltypes.OutputSettings{
		MediaPackageOutputSettings: &mltypes.MediaPackageOutputSettings{},
	}
}

func (l *Ladder) videoDescription(v VideoRendition) mltypes.VideoDescription {
	h := l.H264
	return mltypes.VideoDescription{
		Name:            aws.String(v.Name),
		Width:           aws.Int32(v.Width),
		Height:          aws.Int32(v.Height),
		RespondToAfd:    mltypes.VideoDescriptionRespondToAfd(l.VideoDescription.RespondToAfd),
		ScalingBehavior: mltypes.VideoDescriptionScalingBehavior(l.VideoDescription.ScalingBehavior),
		Sharpness:       aws.Int32(l.VideoDescription.Sharpness),
		CodecSettings: &mltypes.VideoCodecSettings{
			H264Settings: &mltypes.H264Settings{
				AdaptiveQuantization: mltypes.H264AdaptiveQuantization(h.AdaptiveQuantization),
				AfdSignaling:         mltypes.AfdSignaling(h.AfdSignaling),
				Bitrate:              aws.Int32(v.Bitrate),
				BufFillPct:           aws.Int32(h.BufFillPct),
				BufSize:              aws.Int32(v.BufSize),
				ColorMetadata:        mltypes.H264ColorMetadata(h.ColorMetadata),
				EntropyEncoding:      mltypes.H264EntropyEncoding(h.EntropyEncoding),
				FlickerAq:            mltypes.H264FlickerAq(h.FlickerAq),
				FramerateControl:     mltypes.H264FramerateControl(h.FramerateControl),
				FramerateNumerator:   aws.Int32(h.FramerateNumerator),
				FramerateDenominator: aws.Int32(h.FramerateDenominator),
				GopBReference:        mltypes.H264GopBReference(h.GopBReference),
				GopClosedCadence:     aws.Int32(h.GopClosedCadence),
				GopNumBFrames:        aws.Int32(h.GopNumBFrames),
				GopSize:              aws.Float64(h.GopSize),
				GopSizeUnits:         mltypes.H264GopSizeUnits(h.GopSizeUnits),
				Level:                mltypes.H264Level(h.Level),
				LookAheadRateControl: mltypes.H264LookAheadRateControl(h.LookAheadRateControl),
				MaxBitrate:           aws.Int32(v.MaxBitrate),
				NumRefFrames:         aws.Int32(h.NumRefFrames),
				ParControl:           mltypes.H264ParControl(h.ParControl),
				ParNumerator:         aws.Int32(h.ParNumerator),
				ParDenominator:       aws.Int32(h.ParDenominator),
				Profile:              mltypes.H264Profile(v.Profile),
				QvbrQualityLevel:     aws.Int32(v.QvbrQualityLevel),
				RateControlMode:      mltypes.H264RateControlMode(h.RateControlMode),
				ScanType:             mltypes.H264ScanType(h.ScanType),
				SceneChangeDetect:    mltypes.H264SceneChangeDetect(h.SceneChangeDetect),
				Slices:               aws.Int32(v.Slices),
				SpatialAq:            mltypes.H264SpatialAq(h.SpatialAq),
				SubgopLength:         mltypes.H264SubGopLength(h.SubgopLength),
				Syntax:               mltypes.H264Syntax(h.Syntax),
				TemporalAq:           mltypes.H264TemporalAq(h.TemporalAq),
				TimecodeInsertion:    mltypes.H264TimecodeInsertionBehavior(h.TimecodeInsertion),
			},
		},
	}
}

func (l *Ladder) audioDescription(audioSelectorName string) mltypes.AudioDescription {
	a := l.Audio
	return mltypes.AudioDescription{
		Name:                aws.String(a.Name),
		AudioSelectorName:   aws.String(audioSelectorName),
		AudioTypeControl:    mltypes.AudioDescriptionAudioTypeControl(a.AudioTypeControl),
		LanguageCodeControl: mltypes.AudioDescriptionLanguageCodeControl(a.LanguageCodeControl),
		CodecSettings: &mltypes.AudioCodecSettings{
			AacSettings: &mltypes.AacSettings{
				Bitrate:         aws.Float64(a.AAC.Bitrate),
				CodingMode:      mltypes.AacCodingMode(a.AAC.CodingMode),
				InputType:       mltypes.AacInputType(a.AAC.InputType),
				Profile:         mltypes.AacProfile(a.AAC.Profile),
				RateControlMode: mltypes.AacRateControlMode(a.AAC.RateControlMode),
				RawFormat:       mltypes.AacRawFormat(a.AAC.RawFormat),
				SampleRate:      aws.Float64(a.AAC.SampleRate),
				Spec:            mltypes.AacSpec(a.AAC.Spec),
			},
		},
	}
}
