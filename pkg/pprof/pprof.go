package pprof

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Serve starts the profiling endpoints in the background. An empty addr picks a random
// localhost port.
func Serve(addr string) {
	go run(addr)
}

func run(addr string) {
	random := addr == ""
	if random {
		addr = fmt.Sprintf("localhost:%d", 1024+rand.New(rand.NewSource(time.Now().UnixNano())).Intn(0xffff-1024))
	}

	logx.Infof("pprof listening on http://%s/debug/pprof/", addr)
	if err := http.ListenAndServe(addr, Handler()); err != nil {
		logx.Errorf("pprof: %v", err)
		if random {
			time.Sleep(time.Second)
			run("")
		}
	}
}
