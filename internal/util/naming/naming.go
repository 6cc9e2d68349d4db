package naming

import "fmt"

// InputAttachment is the attachment name used when wiring the RTMP input to the channel.
const InputAttachment = "elemental_rtmp_push_input"

// IngestStreamName is the stream name of the single RTMP push destination.
const IngestStreamName = "live"

func PackageChannel(pipeline string) string {
	return fmt.Sprintf("%s_package_channel", pipeline)
}

func OriginEndpoint(pipeline string) string {
	return fmt.Sprintf("%s_package_origin_endpoint", pipeline)
}

func RTMPInput(pipeline string) string {
	return fmt.Sprintf("%s_rtmp_push_input", pipeline)
}

func LiveChannel(pipeline string) string {
	return fmt.Sprintf("%s_channel", pipeline)
}

func AudioSelector(pipeline string) string {
	return fmt.Sprintf("%s_audio", pipeline)
}
