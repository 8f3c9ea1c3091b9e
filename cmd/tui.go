package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"tatsu/internal/ui/preferences"
	"tatsu/internal/ui/terminal"
)

func runTUI(ctx context.Context, sess *session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := sess.scheduler.Subscribe(16)

	if sess.store != nil {
		err := sess.store.Watch(ctx, func(updated preferences.Settings, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("reload settings")
				return
			}
			if _, err := sess.applySettings(updated, false); err != nil {
				log.Warn().Err(err).Msg("apply reloaded settings")
			}
		})
		if err != nil {
			log.Warn().Err(err).Msg("settings hot reload disabled")
		}
	}

	sess.scheduler.Start(ctx)
	defer sess.scheduler.Stop()

	return terminal.Run(ctx, sess.scheduler, events, terminal.Options{
		OnIntervalsChanged: sess.persistIntervals,
	})
}
