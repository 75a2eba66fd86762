package voices

// defaultVoiceIDs are the provider's stock premade voices. Every account
// already ships with these, so syncing them would be redundant remote work and
// would pollute the ledger. They are never synced and never recorded.
var defaultVoiceIDs = map[string]struct{}{
	"21m00Tcm4TlvDq8ikWAM": {}, // Rachel
	"AZnzlk1XvdvUeBnXmlld": {}, // Domi
	"EXAVITQu4vr4xnSDxMaL": {}, // Bella
	"ErXwobaYiN019PkySvjV": {}, // Antoni
	"MF3mGyEYCl7XYWbV9V6O": {}, // Elli
	"TxGEqnHWrfWFTfGW9XjX": {}, // Josh
	"VR6AewLTigWG4xSOukaG": {}, // Arnold
	"pNInz6obpgDQGcFmaJgB": {}, // Adam
	"yoZ06aMxZJJ28mfd3POQ": {}, // Sam
}

// IsDefaultVoice reports whether the voice is one of the provider's stock
// premade voices. Pure membership test, no side effects.
func IsDefaultVoice(voiceID string) bool {
	_, ok := defaultVoiceIDs[voiceID]
	return ok
}
