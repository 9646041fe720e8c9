// @title Lexigrain 周计划服务 API
// @version 1.0
// @description Lexigrain 学习平台的本地周计划守护进程，离线可用，远端同步尽力而为。

// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"lexigrain_schedule/internal/app"
	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/pkg/configwatcher"
	"lexigrain_schedule/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	watch := flag.Bool("watch-config", false, "监听配置文件变化并热更新后端地址")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(*configPath, application.OnConfigChange)
	}

	application.Run()
}
