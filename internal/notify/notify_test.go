package notify

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatsu/internal/core/phasetimer"
	"tatsu/internal/core/scheduler"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name      string
		kind      phasetimer.NotificationKind
		standing  int
		walk      int
		wantTitle string
		wantBody  string
	}{
		{
			name:      "standing default",
			kind:      phasetimer.NotifyStanding,
			standing:  1800,
			walk:      3600,
			wantTitle: "スタンディングに切り替えよう！🧍",
			wantBody:  "30分経ったよ。立ち上がろう。",
		},
		{
			name:      "walk default",
			kind:      phasetimer.NotifyWalk,
			standing:  1800,
			walk:      3600,
			wantTitle: "散歩しよう！🚶",
			wantBody:  "1時間経ったよ。少し歩いてリフレッシュしよう。",
		},
		{
			name:      "walk ninety minutes",
			kind:      phasetimer.NotifyWalk,
			standing:  2700,
			walk:      5400,
			wantTitle: "散歩しよう！🚶",
			wantBody:  "90分経ったよ。少し歩いてリフレッシュしよう。",
		},
		{
			name:      "sub-minute standing",
			kind:      phasetimer.NotifyStanding,
			standing:  10,
			walk:      20,
			wantTitle: "スタンディングに切り替えよう！🧍",
			wantBody:  "10秒経ったよ。立ち上がろう。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := phasetimer.New(tt.standing, tt.walk, nil).Snapshot()
			title, body := Message(tt.kind, snapshot)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestFloatingMessage(t *testing.T) {
	assert.Equal(t, "立ち上がる時間だよ！\n体を動かそう 🧍", FloatingMessage(phasetimer.NotifyStanding))
	assert.Equal(t, "散歩しよう！\n外の空気を吸ってリフレッシュ 🚶", FloatingMessage(phasetimer.NotifyWalk))
}

type recordingSender struct {
	sent []*fyne.Notification
}

func (sender *recordingSender) SendNotification(notification *fyne.Notification) {
	sender.sent = append(sender.sent, notification)
}

func TestNotifierHandle(t *testing.T) {
	sender := &recordingSender{}
	notifier := New(sender)
	snapshot := phasetimer.NewDefault(nil).Snapshot()

	assert.False(t, notifier.Handle(scheduler.Event{Type: scheduler.EventStateChange, Snapshot: snapshot}))
	assert.True(t, notifier.Handle(scheduler.Event{
		Type:     scheduler.EventNotification,
		Kind:     phasetimer.NotifyWalk,
		ID:       uuid.New(),
		Snapshot: snapshot,
	}))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "散歩しよう！🚶", sender.sent[0].Title)
	assert.Equal(t, "1時間経ったよ。少し歩いてリフレッシュしよう。", sender.sent[0].Content)
}

func TestNotifierWithoutSender(t *testing.T) {
	notifier := New(nil)
	assert.False(t, notifier.Handle(scheduler.Event{Type: scheduler.EventNotification}))
}
