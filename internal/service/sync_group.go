package service

import (
	"context"
	"sync"
	"time"
)

// syncGroup 尽力而为的后台推送。调用方不等待结果，失败由任务自己记日志；
// wait 只在关机时用，保证进行中的推送有机会收尾。
type syncGroup struct {
	wg sync.WaitGroup
}

func newSyncGroup() *syncGroup {
	return &syncGroup{}
}

func (g *syncGroup) run(fn func(ctx context.Context)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		fn(ctx)
	}()
}

func (g *syncGroup) wait() {
	g.wg.Wait()
}
