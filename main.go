package main

import (
	"os"

	"rna-structure-predict/cmd"
	"rna-structure-predict/pkg/logging"

	"go.uber.org/zap"
)

func main() {
	logging.SetupConsole()
	defer func() {
		_ = zap.L().Sync()
	}()

	if err := cmd.NewRootCommand().Execute(); err != nil {
		zap.S().Errorf("命令执行失败:%s", err.Error())
		os.Exit(1)
	}
}
