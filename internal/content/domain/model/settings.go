package model

// SettingsKey is the fixed document key for the settings singleton. Storing
// the singleton under a well-known key keeps its cardinality at exactly 0
// or 1 even under concurrent first reads.
const SettingsKey = "global"

// Default settings values, created lazily on first read.
const (
	DefaultAdminPhone     = "919876543210"
	DefaultWelcomeMessage = "Hi! I want to join the yoga class."
)

// Settings is the singleton contact configuration for the public site.
type Settings struct {
	ID             string `json:"-" bson:"_id"`
	AdminPhone     string `json:"adminPhone" bson:"adminPhone"`
	WelcomeMessage string `json:"welcomeMessage" bson:"welcomeMessage"`
}

// DefaultSettings returns the settings document created on first read.
func DefaultSettings() *Settings {
	return &Settings{
		ID:             SettingsKey,
		AdminPhone:     DefaultAdminPhone,
		WelcomeMessage: DefaultWelcomeMessage,
	}
}
