// Package notify turns reminder events into desktop notifications.
package notify

import (
	"fmt"

	"tatsu/internal/core/phasetimer"
)

// Message returns the notification title and body for a crossed boundary.
func Message(kind phasetimer.NotificationKind, snapshot phasetimer.Snapshot) (title, body string) {
	switch kind {
	case phasetimer.NotifyWalk:
		return "散歩しよう！🚶", fmt.Sprintf("%s経ったよ。少し歩いてリフレッシュしよう。", spoken(snapshot.WalkInterval))
	default:
		return "スタンディングに切り替えよう！🧍", fmt.Sprintf("%s経ったよ。立ち上がろう。", spoken(snapshot.StandingInterval))
	}
}

// FloatingMessage is the caption shown next to the character overlay.
func FloatingMessage(kind phasetimer.NotificationKind) string {
	if kind == phasetimer.NotifyWalk {
		return "散歩しよう！\n外の空気を吸ってリフレッシュ 🚶"
	}
	return "立ち上がる時間だよ！\n体を動かそう 🧍"
}

func spoken(seconds int) string {
	minutes := seconds / 60
	switch {
	case minutes >= 60 && minutes%60 == 0:
		return fmt.Sprintf("%d時間", minutes/60)
	case minutes > 0:
		return fmt.Sprintf("%d分", minutes)
	default:
		return fmt.Sprintf("%d秒", seconds)
	}
}
