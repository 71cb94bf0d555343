package utils

import "fmt"

// FormatVoiceEvent builds the human-readable log line for a voice event.
func FormatVoiceEvent(displayName, username, eventType, channel, clock string) string {
	return fmt.Sprintf("🎤 %s (%s) %s channel '%s' at %s", displayName, username, eventType, channel, clock)
}
