package settings

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGhostMode(t *testing.T) {
	tests := []struct {
		name                                      string
		readPackets, online, upload, offlineAfter bool
		want                                      bool
	}{
		{"all off except offline", false, false, false, true, true},
		{"defaults", true, true, true, false, false},
		{"read packets on", true, false, false, true, false},
		{"online packets on", false, true, false, true, false},
		{"upload progress on", false, false, true, true, false},
		{"offline after online off", false, false, false, false, false},
		{"everything on", true, true, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			s.SendReadPackets = tt.readPackets
			s.SendOnlinePackets = tt.online
			s.SendUploadProgress = tt.upload
			s.SendOfflinePacketAfterOnline = tt.offlineAfter

			if got := GhostMode(s); got != tt.want {
				t.Errorf("GhostMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.True(t, d.SendReadPackets)
	assert.True(t, d.SendOnlinePackets)
	assert.True(t, d.SendUploadProgress)
	assert.False(t, d.SendOfflinePacketAfterOnline)
	assert.False(t, GhostMode(d))
	assert.Equal(t, 20, d.RecentStickersCount)
	assert.Equal(t, PeerIDBotAPI, d.ShowPeerID)
	assert.Equal(t, "edited", d.EditedMark)
}

func TestSettings_JSONKeys(t *testing.T) {
	data, err := Encode(Defaults())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Len(t, raw, len(Keys()))
	for _, key := range Keys() {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, float64(20), raw["recentStickersCount"])
	assert.Equal(t, true, raw["copyUsernameAsLink"])
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, s Settings)
	}{
		{
			name: "partial object keeps defaults",
			data: `{"sendReadPackets":false,"editedMark":"✎"}`,
			check: func(t *testing.T, s Settings) {
				assert.False(t, s.SendReadPackets)
				assert.Equal(t, "✎", s.EditedMark)
				assert.True(t, s.SendOnlinePackets)
				assert.Equal(t, 20, s.RecentStickersCount)
			},
		},
		{
			name: "unknown keys ignored",
			data: `{"someFutureFlag":true,"showPeerId":1}`,
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, PeerIDTelegramAPI, s.ShowPeerID)
			},
		},
		{
			name: "keys match exactly",
			data: `{"SENDREADPACKETS":false,"gifconfirmation":true,"editedmark":"x"}`,
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, Defaults(), s)
			},
		},
		{name: "invalid json", data: "invalid json {{{", wantErr: true},
		{name: "null", data: "null", wantErr: true},
		{name: "null with whitespace", data: " \n null \n", wantErr: true},
		{name: "string", data: `"settings"`, wantErr: true},
		{name: "empty", data: "", wantErr: true},
		{name: "wrong type", data: `{"sendReadPackets":"yes"}`, wantErr: true},
		{name: "not an object", data: `[1,2,3]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				var decodeErr *DecodeError
				assert.True(t, errors.As(err, &decodeErr))
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("boom")
	err := &DecodeError{Path: "tdata/ayu_settings.json", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "tdata/ayu_settings.json")
	assert.Contains(t, (&DecodeError{Err: cause}).Error(), "boom")
}

func TestSum(t *testing.T) {
	a := Sum([]byte(`{"a":1}`))
	b := Sum([]byte(`{"a":1}`))
	c := Sum([]byte(`{"a":2}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a.String(), 16)
}
