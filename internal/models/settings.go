package models

// NotificationSettings holds the viewer's notification preferences.
type NotificationSettings struct {
	GroupNotifications bool `json:"group_notifications"`
	MessagePreview     bool `json:"message_preview"`
	Sound              bool `json:"sound"`
	Vibration          bool `json:"vibration"`
}

// PrivacyAudience is who may see a piece of profile information.
type PrivacyAudience string

const (
	AudienceEveryone PrivacyAudience = "everyone"
	AudienceContacts PrivacyAudience = "contacts"
	AudienceNobody   PrivacyAudience = "nobody"
)

// PrivacySettings holds the viewer's privacy preferences.
type PrivacySettings struct {
	LastSeen     PrivacyAudience `json:"last_seen"`
	ProfilePhoto PrivacyAudience `json:"profile_photo"`
	Status       PrivacyAudience `json:"status"`
	ReadReceipts bool            `json:"read_receipts"`
}

// NotificationSettingsUpdate is a partial edit, nil fields are untouched.
type NotificationSettingsUpdate struct {
	GroupNotifications *bool `json:"group_notifications,omitempty"`
	MessagePreview     *bool `json:"message_preview,omitempty"`
	Sound              *bool `json:"sound,omitempty"`
	Vibration          *bool `json:"vibration,omitempty"`
}

// PrivacySettingsUpdate is a partial edit, nil fields are untouched.
type PrivacySettingsUpdate struct {
	LastSeen     *PrivacyAudience `json:"last_seen,omitempty"`
	ProfilePhoto *PrivacyAudience `json:"profile_photo,omitempty"`
	Status       *PrivacyAudience `json:"status,omitempty"`
	ReadReceipts *bool            `json:"read_receipts,omitempty"`
}

// DefaultNotificationSettings mirrors the initial demo preferences.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		GroupNotifications: true,
		MessagePreview:     true,
		Sound:              true,
		Vibration:          true,
	}
}

// DefaultPrivacySettings mirrors the initial demo preferences.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		LastSeen:     AudienceEveryone,
		ProfilePhoto: AudienceEveryone,
		Status:       AudienceEveryone,
		ReadReceipts: true,
	}
}
