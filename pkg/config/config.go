package config

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"github.com/HuXin0817/pipopipette/pkg/models/player"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Rows     int    `json:",default=3,range=[1:30]"`
	Cols     int    `json:",default=3,range=[1:30]"`
	Red      string `json:",default=human"`
	Blue     string `json:",default=ai"`
	SaveDir  string `json:",default=."`
	Slot     string `json:",default=default"`
	Seed     int64  `json:",optional"`
	Autosave bool   `json:",optional"`
	Pprof    string `json:",optional"`

	Log   logx.LogConf
	Redis redis.RedisConf `json:",optional"`
	Mongo struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=pipopipette"`
		PassWord     string `json:",optional"`
	}
}

// MustLoad reads the config file at path, or only fills the defaults when path is empty.
// ${VAR} references in the file are expanded from the environment.
func MustLoad(path string) (c Config) {
	if path == "" {
		logx.Must(conf.FillDefault(&c))
		return
	}

	conf.MustLoad(path, &c, conf.UseEnv())
	return
}

func (c Config) Kinds() (red, blue chess.Kind, err error) {
	if red, err = player.ParseKind(c.Red); err != nil {
		return
	}
	blue, err = player.ParseKind(c.Blue)
	return
}

func (c Config) SaveSlot() message.SaveSlot {
	return message.SaveSlot(c.Slot)
}

func (c Config) UseRedis() bool {
	return c.Redis.Host != ""
}

func (c Config) UseMongo() bool {
	return c.Mongo.Url != ""
}

// MongoUrl fills a "%s" in the configured url with the password.
func (c Config) MongoUrl() string {
	if c.Mongo.PassWord != "" && strings.Contains(c.Mongo.Url, "%s") {
		return fmt.Sprintf(c.Mongo.Url, c.Mongo.PassWord)
	}
	return c.Mongo.Url
}

const DefaultLogDir = "logs"

// LogToFiles sends plain-text logs to files under dir, keeping stdout for the board and
// prompts.
func (c *Config) LogToFiles(dir string) {
	c.Log.Mode = "file"
	c.Log.Path = dir
	c.Log.Encoding = "plain"
}
