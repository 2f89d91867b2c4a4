package settings

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownKey is returned for a key that is not a settings field.
var ErrUnknownKey = errors.New("unknown settings key")

type field struct {
	key   string
	get   func(Settings) any
	apply func(*Store, string) error
}

func boolField(key string, get func(Settings) bool, set func(*Store, bool)) field {
	return field{
		key: key,
		get: func(s Settings) any { return get(s) },
		apply: func(st *Store, raw string) error {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s: invalid boolean %q", key, raw)
			}
			set(st, v)
			return nil
		},
	}
}

func intField(key string, get func(Settings) int, set func(*Store, int)) field {
	return field{
		key: key,
		get: func(s Settings) any { return get(s) },
		apply: func(st *Store, raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s: invalid integer %q", key, raw)
			}
			set(st, v)
			return nil
		},
	}
}

func stringField(key string, get func(Settings) string, set func(*Store, string)) field {
	return field{
		key: key,
		get: func(s Settings) any { return get(s) },
		apply: func(st *Store, raw string) error {
			set(st, raw)
			return nil
		},
	}
}

// fields follows the declaration order of Settings; keys match the JSON tags.
var fields = []field{
	boolField("sendReadPackets", func(s Settings) bool { return s.SendReadPackets }, (*Store).SetSendReadPackets),
	boolField("sendOnlinePackets", func(s Settings) bool { return s.SendOnlinePackets }, (*Store).SetSendOnlinePackets),
	boolField("sendUploadProgress", func(s Settings) bool { return s.SendUploadProgress }, (*Store).SetSendUploadProgress),
	boolField("sendOfflinePacketAfterOnline", func(s Settings) bool { return s.SendOfflinePacketAfterOnline }, (*Store).SetSendOfflinePacketAfterOnline),
	boolField("markReadAfterSend", func(s Settings) bool { return s.MarkReadAfterSend }, (*Store).SetMarkReadAfterSend),
	boolField("useScheduledMessages", func(s Settings) bool { return s.UseScheduledMessages }, (*Store).SetUseScheduledMessages),
	boolField("saveDeletedMessages", func(s Settings) bool { return s.SaveDeletedMessages }, (*Store).SetKeepDeletedMessages),
	boolField("saveMessagesHistory", func(s Settings) bool { return s.SaveMessagesHistory }, (*Store).SetKeepMessagesHistory),
	boolField("enableAds", func(s Settings) bool { return s.EnableAds }, (*Store).SetEnableAds),
	stringField("deletedMark", func(s Settings) string { return s.DeletedMark }, (*Store).SetDeletedMark),
	stringField("editedMark", func(s Settings) string { return s.EditedMark }, (*Store).SetEditedMark),
	intField("recentStickersCount", func(s Settings) int { return s.RecentStickersCount }, (*Store).SetRecentStickersCount),
	boolField("showGhostToggleInDrawer", func(s Settings) bool { return s.ShowGhostToggleInDrawer }, (*Store).SetShowGhostToggleInDrawer),
	intField("showPeerId", func(s Settings) int { return s.ShowPeerID }, (*Store).SetShowPeerID),
	boolField("showMessageSeconds", func(s Settings) bool { return s.ShowMessageSeconds }, (*Store).SetShowMessageSeconds),
	boolField("stickerConfirmation", func(s Settings) bool { return s.StickerConfirmation }, (*Store).SetStickerConfirmation),
	boolField("GIFConfirmation", func(s Settings) bool { return s.GIFConfirmation }, (*Store).SetGIFConfirmation),
	boolField("voiceConfirmation", func(s Settings) bool { return s.VoiceConfirmation }, (*Store).SetVoiceConfirmation),
	boolField("copyUsernameAsLink", func(s Settings) bool { return s.CopyUsernameAsLink }, (*Store).SetCopyUsernameAsLink),
}

func findField(key string) (field, bool) {
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// Keys returns every settings key in file order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Lookup returns the value stored under key.
func Lookup(s Settings, key string) (any, bool) {
	f, ok := findField(key)
	if !ok {
		return nil, false
	}
	return f.get(s), true
}

// Apply parses value for key and runs the matching setter.
func (s *Store) Apply(key, value string) error {
	f, ok := findField(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.apply(s, value)
}
