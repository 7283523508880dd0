package svc

import (
	"io"
	"math/rand"
	"time"

	"github.com/HuXin0817/pipopipette/pkg/archive"
	"github.com/HuXin0817/pipopipette/pkg/config"
	"github.com/HuXin0817/pipopipette/pkg/game"
	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/player"
	"github.com/HuXin0817/pipopipette/pkg/store"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// ServiceContext holds what every session of a process shares.
type ServiceContext struct {
	Config  config.Config
	Store   store.Store
	Archive *archive.Archive
	Rand    *rand.Rand
	Seating chess.Seating
}

func NewServiceContext(c config.Config, in io.Reader, out io.Writer) *ServiceContext {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svcCtx := &ServiceContext{
		Config: c,
		Rand:   rand.New(rand.NewSource(seed)),
	}
	svcCtx.Seating = player.Seat(in, out, svcCtx.Rand)

	if c.UseRedis() {
		svcCtx.Store = store.NewRedisStore(redis.MustNewRedis(c.Redis), store.DefaultExpiry)
		logx.Infof("saves kept in redis at %s", c.Redis.Host)
	} else {
		svcCtx.Store = store.NewFileStore(c.SaveDir)
	}

	if c.UseMongo() {
		svcCtx.Archive = archive.NewMongoArchive(c.MongoUrl(), c.Mongo.DataBaseName)
		logx.Infof("results archived in mongo database %s", c.Mongo.DataBaseName)
	}

	return svcCtx
}

// NewMatch starts a match with the configured size and players.
func (s *ServiceContext) NewMatch(opts ...chess.Option) (*chess.Match, error) {
	red, blue, err := s.Config.Kinds()
	if err != nil {
		return nil, err
	}
	return chess.NewMatch(s.Config.Rows, s.Config.Cols, red, blue, s.Seating, opts...)
}

func (s *ServiceContext) NewSession(m *chess.Match, opts ...game.Option) *game.Session {
	base := []game.Option{game.WithStore(s.Store, s.Config.SaveSlot())}
	if s.Config.Autosave {
		base = append(base, game.WithAutosave())
	}
	if s.Archive != nil {
		base = append(base, game.WithRecorder(s.Archive))
	}
	return game.NewSession(m, append(base, opts...)...)
}

func (s *ServiceContext) Close() {
	if s.Archive == nil {
		return
	}
	if err := s.Archive.Close(); err != nil {
		logx.Error(err)
	}
}
