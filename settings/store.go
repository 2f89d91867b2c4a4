package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ayugram/ayu-settings/reactive"
)

var log = logging.Logger("ayu/settings")

// Store owns the settings record and the observable slots mirroring it.
//
// A Store is not safe for concurrent use: setters, getters, Load and Save are
// expected to run on one goroutine. Slot subscribers run synchronously inside
// the setter that changed the value. Nothing guards the file against another
// process writing it at the same time.
type Store struct {
	path   string
	record *Settings
	digest Digest

	sendReadPackets              *reactive.Variable[bool]
	sendOnlinePackets            *reactive.Variable[bool]
	sendUploadProgress           *reactive.Variable[bool]
	sendOfflinePacketAfterOnline *reactive.Variable[bool]

	deletedMark *reactive.Variable[string]
	editedMark  *reactive.Variable[string]
	showPeerID  *reactive.Variable[int]

	ghostMode *reactive.Variable[bool]

	lifetime reactive.Lifetime
}

// New creates a Store backed by the file at path. An empty path means
// DefaultFilename in the working directory. The record is created lazily.
func New(path string) *Store {
	if path == "" {
		path = filepath.FromSlash(DefaultFilename)
	}
	d := Defaults()
	return &Store{
		path:                         path,
		sendReadPackets:              reactive.NewVariable(d.SendReadPackets),
		sendOnlinePackets:            reactive.NewVariable(d.SendOnlinePackets),
		sendUploadProgress:           reactive.NewVariable(d.SendUploadProgress),
		sendOfflinePacketAfterOnline: reactive.NewVariable(d.SendOfflinePacketAfterOnline),
		deletedMark:                  reactive.NewVariable(d.DeletedMark),
		editedMark:                   reactive.NewVariable(d.EditedMark),
		showPeerID:                   reactive.NewVariable(d.ShowPeerID),
		ghostMode:                    reactive.NewVariable(GhostMode(d)),
	}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Initialize creates the default record and wires ghost mode to its inputs.
// It does nothing once the record exists.
func (s *Store) Initialize() {
	if s.record != nil {
		return
	}
	rec := Defaults()
	s.record = &rec

	inputs := []*reactive.Variable[bool]{
		s.sendReadPackets,
		s.sendOnlinePackets,
		s.sendUploadProgress,
		s.sendOfflinePacketAfterOnline,
	}
	for _, in := range inputs {
		in.Changes(&s.lifetime, func(bool) { s.recomputeGhostMode() })
	}
}

// PostInitialize pushes every record field into its slot and republishes
// ghost mode. Call it after the record was overwritten in bulk.
func (s *Store) PostInitialize() {
	s.Initialize()
	r := s.record

	s.sendReadPackets.Set(r.SendReadPackets)
	s.sendOnlinePackets.Set(r.SendOnlinePackets)
	s.sendUploadProgress.Set(r.SendUploadProgress)
	s.sendOfflinePacketAfterOnline.Set(r.SendOfflinePacketAfterOnline)

	s.deletedMark.Set(r.DeletedMark)
	s.editedMark.Set(r.EditedMark)
	s.showPeerID.Set(r.ShowPeerID)

	s.ghostMode.Set(GhostMode(*r))
}

// Instance returns a copy of the current record, creating it if needed.
func (s *Store) Instance() Settings {
	s.Initialize()
	return *s.record
}

// Replace overwrites the whole record and resyncs the slots.
func (s *Store) Replace(rec Settings) {
	s.Initialize()
	*s.record = rec
	s.PostInitialize()
}

// Load reads the settings file into the record. A missing file leaves the
// record as is. A file that fails to decode is logged and ignored. Only read
// failures are returned. The slots are resynced in every case.
func (s *Store) Load() error {
	s.Initialize()
	defer s.PostInitialize()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugw("settings file not found, using current values", "path", s.path)
			return nil
		}
		log.Errorw("failed to read settings file", "path", s.path, "error", err)
		return fmt.Errorf("failed to read settings: %w", err)
	}
	s.digest = Sum(data)

	rec, err := Decode(data)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Path = s.path
		}
		log.Errorw("failed to parse settings file, keeping current values", "path", s.path, "error", err)
		return nil
	}

	*s.record = rec
	log.Debugw("settings loaded", "path", s.path, "digest", s.digest)
	return nil
}

// Save writes the record to the settings file, creating its directory if needed.
func (s *Store) Save() error {
	s.Initialize()
	defer s.PostInitialize()

	data, err := Encode(*s.record)
	if err != nil {
		log.Errorw("failed to encode settings", "error", err)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Errorw("failed to create settings directory", "path", s.path, "error", err)
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Errorw("failed to save settings", "path", s.path, "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.digest = Sum(data)
	log.Debugw("settings saved", "path", s.path, "digest", s.digest)
	return nil
}

// Digest returns the digest of the bytes last loaded from or saved to disk.
func (s *Store) Digest() Digest {
	return s.digest
}

// ReloadIfChanged loads the file unless d matches what the store last
// read or wrote. It reports whether a load happened.
func (s *Store) ReloadIfChanged(d Digest) (bool, error) {
	if d == s.digest {
		return false, nil
	}
	return true, s.Load()
}

// Close detaches the ghost mode wiring. Slots keep their last values.
func (s *Store) Close() {
	s.lifetime.Destroy()
}

func (s *Store) recomputeGhostMode() {
	s.ghostMode.Set(GhostMode(*s.record))
}

func (s *Store) rec() *Settings {
	s.Initialize()
	return s.record
}

// GhostModeEnabled reports the derived ghost mode flag.
func (s *Store) GhostModeEnabled() bool {
	s.Initialize()
	return s.ghostMode.Current()
}

// SetGhostMode writes the four ghost mode inputs so that GhostModeEnabled
// becomes enabled.
func (s *Store) SetGhostMode(enabled bool) {
	s.SetSendReadPackets(!enabled)
	s.SetSendOnlinePackets(!enabled)
	s.SetSendUploadProgress(!enabled)
	s.SetSendOfflinePacketAfterOnline(enabled)
}

// SetSendReadPackets controls whether read receipts are sent.
func (s *Store) SetSendReadPackets(val bool) {
	s.rec().SendReadPackets = val
	s.sendReadPackets.Set(val)
}

// SetSendOnlinePackets controls whether online status is sent.
func (s *Store) SetSendOnlinePackets(val bool) {
	s.rec().SendOnlinePackets = val
	s.sendOnlinePackets.Set(val)
}

// SetSendUploadProgress controls whether upload progress is sent.
func (s *Store) SetSendUploadProgress(val bool) {
	s.rec().SendUploadProgress = val
	s.sendUploadProgress.Set(val)
}

// SetSendOfflinePacketAfterOnline controls whether an offline packet follows each online one.
func (s *Store) SetSendOfflinePacketAfterOnline(val bool) {
	s.rec().SendOfflinePacketAfterOnline = val
	s.sendOfflinePacketAfterOnline.Set(val)
}

// SetMarkReadAfterSend controls whether a chat is marked read after sending to it.
func (s *Store) SetMarkReadAfterSend(val bool) {
	s.rec().MarkReadAfterSend = val
}

// SetUseScheduledMessages controls whether messages are sent as scheduled ones.
func (s *Store) SetUseScheduledMessages(val bool) {
	s.rec().UseScheduledMessages = val
}

// SetKeepDeletedMessages writes saveDeletedMessages.
func (s *Store) SetKeepDeletedMessages(val bool) {
	s.rec().SaveDeletedMessages = val
}

// SetKeepMessagesHistory writes saveMessagesHistory.
func (s *Store) SetKeepMessagesHistory(val bool) {
	s.rec().SaveMessagesHistory = val
}

// SetEnableAds controls whether sponsored messages are shown.
func (s *Store) SetEnableAds(val bool) {
	s.rec().EnableAds = val
}

// SetDeletedMark sets the label shown on deleted messages.
func (s *Store) SetDeletedMark(val string) {
	s.rec().DeletedMark = val
	s.deletedMark.Set(val)
}

// SetEditedMark sets the label shown on edited messages.
func (s *Store) SetEditedMark(val string) {
	s.rec().EditedMark = val
	s.editedMark.Set(val)
}

// SetRecentStickersCount stores val as is; the client clamps it.
func (s *Store) SetRecentStickersCount(val int) {
	s.rec().RecentStickersCount = val
}

// SetShowGhostToggleInDrawer controls the ghost mode toggle in the side menu.
func (s *Store) SetShowGhostToggleInDrawer(val bool) {
	s.rec().ShowGhostToggleInDrawer = val
}

// SetShowPeerID takes one of PeerIDHidden, PeerIDTelegramAPI or PeerIDBotAPI.
func (s *Store) SetShowPeerID(val int) {
	s.rec().ShowPeerID = val
	s.showPeerID.Set(val)
}

// SetShowMessageSeconds controls seconds in message timestamps.
func (s *Store) SetShowMessageSeconds(val bool) {
	s.rec().ShowMessageSeconds = val
}

// SetStickerConfirmation controls the prompt before sending a sticker.
func (s *Store) SetStickerConfirmation(val bool) {
	s.rec().StickerConfirmation = val
}

// SetGIFConfirmation controls the prompt before sending a GIF.
func (s *Store) SetGIFConfirmation(val bool) {
	s.rec().GIFConfirmation = val
}

// SetVoiceConfirmation controls the prompt before sending a voice message.
func (s *Store) SetVoiceConfirmation(val bool) {
	s.rec().VoiceConfirmation = val
}

// SetCopyUsernameAsLink controls whether usernames are copied as t.me links.
func (s *Store) SetCopyUsernameAsLink(val bool) {
	s.rec().CopyUsernameAsLink = val
}

// SendReadPacketsReactive mirrors sendReadPackets.
func (s *Store) SendReadPacketsReactive() reactive.Producer[bool] {
	return s.sendReadPackets
}

// SendOnlinePacketsReactive mirrors sendOnlinePackets.
func (s *Store) SendOnlinePacketsReactive() reactive.Producer[bool] {
	return s.sendOnlinePackets
}

// SendUploadProgressReactive mirrors sendUploadProgress.
func (s *Store) SendUploadProgressReactive() reactive.Producer[bool] {
	return s.sendUploadProgress
}

// SendOfflinePacketAfterOnlineReactive mirrors sendOfflinePacketAfterOnline.
func (s *Store) SendOfflinePacketAfterOnlineReactive() reactive.Producer[bool] {
	return s.sendOfflinePacketAfterOnline
}

// DeletedMarkReactive mirrors deletedMark.
func (s *Store) DeletedMarkReactive() reactive.Producer[string] {
	return s.deletedMark
}

// EditedMarkReactive mirrors editedMark.
func (s *Store) EditedMarkReactive() reactive.Producer[string] {
	return s.editedMark
}

// ShowPeerIDReactive mirrors showPeerId.
func (s *Store) ShowPeerIDReactive() reactive.Producer[int] {
	return s.showPeerID
}

// GhostModeEnabledReactive streams the derived ghost mode flag.
func (s *Store) GhostModeEnabledReactive() reactive.Producer[bool] {
	return s.ghostMode
}
