package archive

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"github.com/HuXin0817/pipopipette/pkg/models/message/moverecord"
	"github.com/HuXin0817/pipopipette/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	DefaultPushInterval = time.Second
	insertTimeout       = 5 * time.Second
)

type startInserter interface {
	Insert(ctx context.Context, data *moverecord.GameStartRecode) error
}

type endInserter interface {
	Insert(ctx context.Context, data *moverecord.GameEndRecode) error
}

// Archive records game starts and results in mongo. Records are buffered and written by a
// background pusher so that callers never wait on the database.
type Archive struct {
	startModel  startInserter
	endModel    endInserter
	startPusher *pusher.Pusher[*moverecord.GameStartRecode]
	endPusher   *pusher.Pusher[*moverecord.GameEndRecode]
	failed      atomic.Int64
}

func NewMongoArchive(url, db string) *Archive {
	return New(
		moverecord.NewGameStartRecodeModel(url, db),
		moverecord.NewGameEndRecodeModel(url, db),
		DefaultPushInterval,
	)
}

func New(starts startInserter, ends endInserter, interval time.Duration) *Archive {
	a := &Archive{startModel: starts, endModel: ends}
	a.startPusher = pusher.NewPusher(
		pusher.WithPushLogic(a.insertStarts),
		pusher.WithPushInterval[*moverecord.GameStartRecode](interval),
	)
	a.endPusher = pusher.NewPusher(
		pusher.WithPushLogic(a.insertEnds),
		pusher.WithPushInterval[*moverecord.GameEndRecode](interval),
	)
	a.startPusher.Start()
	a.endPusher.Start()
	return a
}

func (a *Archive) RecordStart(uid message.GameUid, m *chess.Match) {
	a.startPusher.AddMessages(&moverecord.GameStartRecode{
		GameUid: uid,
		Rows:    m.Grid().Rows(),
		Cols:    m.Grid().Cols(),
		Red:     m.Player(chess.Red).Kind().String(),
		Blue:    m.Player(chess.Blue).Kind().String(),
	})
}

func (a *Archive) RecordEnd(uid message.GameUid, m *chess.Match, steps int) {
	winner, _ := m.Winner()
	score := m.Grid().Score()
	a.endPusher.AddMessages(&moverecord.GameEndRecode{
		GameUid:   uid,
		Winner:    string(winner),
		RedScore:  score.Red,
		BlueScore: score.Blue,
		StepCount: steps,
	})
}

// Close stops the background writers and writes what is still buffered. Records that
// could not be written are logged and dropped; Close reports how many.
func (a *Archive) Close() error {
	a.startPusher.Stop()
	a.endPusher.Stop()

	if n := a.failed.Load(); n > 0 {
		return fmt.Errorf("%d archive records not written", n)
	}
	return nil
}

func (a *Archive) insertStarts(records ...*moverecord.GameStartRecode) error {
	for _, r := range records {
		a.insert(func(ctx context.Context) error { return a.startModel.Insert(ctx, r) })
	}
	return nil
}

func (a *Archive) insertEnds(records ...*moverecord.GameEndRecode) error {
	for _, r := range records {
		a.insert(func(ctx context.Context) error { return a.endModel.Insert(ctx, r) })
	}
	return nil
}

func (a *Archive) insert(f func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()

	if err := f(ctx); err != nil {
		a.failed.Add(1)
		logx.WithContext(ctx).Errorf("archive insert: %v", err)
	}
}
