package settings

// Peer ID display modes for ShowPeerID.
const (
	PeerIDHidden      = 0
	PeerIDTelegramAPI = 1
	PeerIDBotAPI      = 2
)

// DefaultFilename is the settings file location relative to the data directory.
const DefaultFilename = "tdata/ayu_settings.json"

// Settings contains the user preferences persisted to ayu_settings.json.
// JSON keys are part of the on-disk format and must not change.
type Settings struct {
	SendReadPackets              bool `json:"sendReadPackets"`
	SendOnlinePackets            bool `json:"sendOnlinePackets"`
	SendUploadProgress           bool `json:"sendUploadProgress"`
	SendOfflinePacketAfterOnline bool `json:"sendOfflinePacketAfterOnline"`

	MarkReadAfterSend    bool `json:"markReadAfterSend"`
	UseScheduledMessages bool `json:"useScheduledMessages"`

	SaveDeletedMessages bool `json:"saveDeletedMessages"`
	SaveMessagesHistory bool `json:"saveMessagesHistory"`

	EnableAds bool `json:"enableAds"`

	DeletedMark         string `json:"deletedMark"`
	EditedMark          string `json:"editedMark"`
	RecentStickersCount int    `json:"recentStickersCount"`

	ShowGhostToggleInDrawer bool `json:"showGhostToggleInDrawer"`
	ShowPeerID              int  `json:"showPeerId"`
	ShowMessageSeconds      bool `json:"showMessageSeconds"`

	StickerConfirmation bool `json:"stickerConfirmation"`
	GIFConfirmation     bool `json:"GIFConfirmation"`
	VoiceConfirmation   bool `json:"voiceConfirmation"`

	CopyUsernameAsLink bool `json:"copyUsernameAsLink"`
}

// Defaults returns the settings used before anything is loaded.
func Defaults() Settings {
	return Settings{
		SendReadPackets:              true,
		SendOnlinePackets:            true,
		SendUploadProgress:           true,
		SendOfflinePacketAfterOnline: false,
		MarkReadAfterSend:            false,
		UseScheduledMessages:         false,
		SaveDeletedMessages:          true,
		SaveMessagesHistory:          true,
		EnableAds:                    false,
		DeletedMark:                  "🧹",
		EditedMark:                   "edited",
		RecentStickersCount:          20,
		ShowGhostToggleInDrawer:      true,
		ShowPeerID:                   PeerIDBotAPI,
		ShowMessageSeconds:           false,
		StickerConfirmation:          false,
		GIFConfirmation:              false,
		VoiceConfirmation:            false,
		CopyUsernameAsLink:           true,
	}
}

// GhostMode reports whether s suppresses read, online and upload packets
// while still sending the offline packet after going online.
func GhostMode(s Settings) bool {
	return !s.SendReadPackets &&
		!s.SendOnlinePackets &&
		!s.SendUploadProgress &&
		s.SendOfflinePacketAfterOnline
}
