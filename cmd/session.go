package main

import (
	"context"
	"fmt"
	"log"

	"aurafocus/internal/core/timekeeper"
	"aurafocus/internal/storage"
)

const recorderBuffer = 32

// session is the engine with its state file and history attached.
type session struct {
	dir     string
	store   *storage.FileStore
	state   storage.State
	keeper  *timekeeper.TimeKeeper
	history *storage.History
	cancel  context.CancelFunc
	done    chan struct{}
}

type historyRecorder interface {
	Record(ctx context.Context, record storage.SessionRecord) (storage.SessionRecord, error)
}

func stateDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	return storage.DefaultDir(appName)
}

func openSession() (*session, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}

	store := storage.NewFileStore(dir)
	state, err := store.Load()
	if err != nil {
		log.Printf("storage: %v", err)
		state = storage.DefaultState()
	}

	history, err := storage.OpenHistory(dir)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	keeper := timekeeper.New(state.Timer, timekeeper.Config{TickInterval: tickInterval})
	keeper.SetStore(store)

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		dir:     dir,
		store:   store,
		state:   state,
		keeper:  keeper,
		history: history,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	events := keeper.Subscribe(recorderBuffer)
	go func() {
		defer close(sess.done)
		recordHistory(ctx, events, history, verbose)
	}()
	return sess, nil
}

func (sess *session) close() {
	sess.keeper.Close()
	<-sess.done
	sess.cancel()
	if err := sess.history.Close(); err != nil {
		log.Printf("history: close: %v", err)
	}
}

// recordHistory writes every completed session to history until events is
// closed.
func recordHistory(ctx context.Context, events <-chan timekeeper.Event, history historyRecorder, logStates bool) {
	for event := range events {
		snapshot := event.Snapshot
		switch event.Type {
		case timekeeper.EventStateChange:
			if logStates {
				log.Printf("timer: %s %s %s", snapshot.Session, snapshot.Phase, snapshot.RemainingText())
			}
		case timekeeper.EventSessionComplete:
			if logStates {
				log.Printf("timer: %s complete, %d focus sessions", snapshot.Session, snapshot.CompletedFocusSessions)
			}
			_, err := history.Record(ctx, storage.SessionRecord{
				Session:         snapshot.Session,
				DurationSeconds: snapshot.TotalSeconds,
				CompletedAt:     event.At,
			})
			if err != nil {
				log.Printf("history: %v", err)
			}
		}
	}
}
