package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var onlyOneSignalHandler = make(chan struct{})

// SetupSignalHandler 注册 SIGINT/SIGTERM 信号处理，
// 第一次收到信号时取消返回的 context（批处理循环在行间停止），
// 第二次收到信号时直接退出进程。整个进程只能调用一次。
func SetupSignalHandler() context.Context {
	close(onlyOneSignalHandler) // 第二次调用会 panic

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
		<-c
		os.Exit(1)
	}()

	return ctx
}
