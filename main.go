// @title Quiz API
// @version 1.0
// @description API para aplicación de preguntas y respuestas interactivas.
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"quiz_api_backend/internal/app"
	"quiz_api_backend/internal/config"
	"quiz_api_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	seedOnStartup := flag.Bool("seed", false, "启动时灌入样例数据")
	seedForce := flag.Bool("seed-force", false, "清空数据后重新灌入样例数据")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly
	if *seedOnStartup || *seedForce {
		cfg.Seed.OnStartup = true
	}
	if *seedForce {
		cfg.Seed.Force = true
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
